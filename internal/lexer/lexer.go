// Package lexer tokenizes source language text into a stream of
// token.Token values terminated by a single EOI sentinel.
//
// The lexer is table-driven: at every position it first tries the literals
// in lexTable (longest-before-shortest among colliding prefixes, keywords
// before generic names), then falls back to integer literals, then names,
// then newline handling, and finally silently skips any other character.
// That last case is how whitespace is ignored, and it is also how any
// genuinely unrecognized character is ignored — there is no lexical error
// reporting in this language (see SPEC_FULL.md §9).
package lexer

import (
	"strings"
	"unicode"

	"github.com/cwbudde/mlc/internal/token"
)

// Lexer holds the cursor state for one tokenization pass. It is not
// reusable across inputs; construct a fresh Lexer per call to Lex, or just
// call the package-level Lex function.
type Lexer struct {
	runes  []rune
	index  int
	row    int
	column int
}

// New constructs a Lexer positioned at the start of text.
func New(text string) *Lexer {
	return &Lexer{runes: []rune(text), row: 1, column: 1}
}

// Lex tokenizes text in one pass and returns the resulting tokens,
// including the trailing EOI.
func Lex(text string) []token.Token {
	return New(text).Lex()
}

// Lex runs the lexer to completion and returns every token it produced.
func (l *Lexer) Lex() []token.Token {
	var tokens []token.Token

outer:
	for l.index < len(l.runes) {
		for _, e := range lexTable {
			if l.hasPrefix(e.literal) {
				tokens = append(tokens, l.accept(e.kind, string(e.literal)))
				continue outer
			}
		}

		if tok, ok := l.matchInt(); ok {
			tokens = append(tokens, tok)
			continue
		}

		if tok, ok := l.matchName(); ok {
			tokens = append(tokens, tok)
			continue
		}

		if l.runes[l.index] == '\n' {
			l.row++
			l.column = 1
			l.index++
			continue
		}

		// Any other character, including ordinary whitespace, is silently
		// skipped. Unlike every other branch, this one advances only
		// index, not column: a run of skipped characters narrows the
		// column reported for the next real token, which is harmless for
		// diagnostics but means column is not a substitute for a true
		// offset if a caller ever needs one.
		l.index++
	}

	tokens = append(tokens, token.Token{
		Kind: token.EOI,
		Pos:  token.Position{Row: l.row, Column: l.column + 1},
	})

	return tokens
}

// hasPrefix reports whether lit matches the runes starting at the current
// index.
func (l *Lexer) hasPrefix(lit []rune) bool {
	if l.index+len(lit) > len(l.runes) {
		return false
	}
	for i, r := range lit {
		if l.runes[l.index+i] != r {
			return false
		}
	}
	return true
}

// accept records a token for lexeme at the current position, then
// advances index and column by the lexeme's rune count.
func (l *Lexer) accept(kind token.Kind, lexeme string) token.Token {
	tok := token.Token{
		Kind:   kind,
		Pos:    token.Position{Row: l.row, Column: l.column},
		Lexeme: lexeme,
	}
	n := len([]rune(lexeme))
	l.index += n
	l.column += n
	return tok
}

func (l *Lexer) matchInt() (token.Token, bool) {
	digits := l.peekWhile(l.index, isASCIIDigit)
	if digits == "" {
		return token.Token{}, false
	}
	return l.accept(token.Int, digits), true
}

func (l *Lexer) matchName() (token.Token, bool) {
	if l.index >= len(l.runes) {
		return token.Token{}, false
	}

	first := l.runes[l.index]
	if first != '_' && !unicode.IsLetter(first) {
		return token.Token{}, false
	}

	rest := l.peekWhile(l.index+1, isNameRune)
	return l.accept(token.Name, string(first)+rest), true
}

// peekWhile returns the longest run starting at from, without mutating
// lexer state, of runes satisfying pred.
func (l *Lexer) peekWhile(from int, pred func(rune) bool) string {
	var sb strings.Builder
	for i := from; i < len(l.runes); i++ {
		if !pred(l.runes[i]) {
			break
		}
		sb.WriteRune(l.runes[i])
	}
	return sb.String()
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNameRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
