package parser

import "github.com/cwbudde/mlc/internal/token"

// cursor is a single-token-lookahead view over a token stream. The final
// token is always EOI, and advancing past it is a no-op, so callers never
// need to guard against running off the end.
type cursor struct {
	tokens []token.Token
	pos    int
}

func (c *cursor) current() token.Token {
	return c.tokens[c.pos]
}

// peekKind reports the kind of the token offset positions ahead of
// current, clamped to EOI past the end of the stream.
func (c *cursor) peekKind(offset int) token.Kind {
	i := c.pos + offset
	if i >= len(c.tokens) {
		return token.EOI
	}
	return c.tokens[i].Kind
}

func (c *cursor) advance() token.Token {
	t := c.current()
	if c.pos < len(c.tokens)-1 {
		c.pos++
	}
	return t
}

func (c *cursor) check(k token.Kind) bool {
	return c.current().Kind == k
}

// match advances and returns (token, true) if current is of kind k,
// otherwise leaves the cursor untouched and returns (zero, false).
func (c *cursor) match(k token.Kind) (token.Token, bool) {
	if c.check(k) {
		return c.advance(), true
	}
	return token.Token{}, false
}
