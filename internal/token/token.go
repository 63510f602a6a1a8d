package token

// Kind identifies the lexical category of a Token.
type Kind int

const (
	// EOI is the sentinel appended once to every token stream.
	EOI Kind = iota

	// Structural
	LCurly
	RCurly
	LParen
	RParen
	LBracket
	RBracket
	Semicolon
	Colon
	Comma
	Arrow
	Equals

	// Operators
	Plus
	Minus
	Bang
	EqualsEquals
	RAngle
	PipePipe
	AmpAmp

	// Keywords
	While
	Let
	Fn
	If
	Else
	Return
	True
	False

	// Type keywords
	IntType
	BoolType
	ListType

	// Literal classes
	Int
	Name
)

// names gives each Kind a human-readable label for diagnostics.
var names = map[Kind]string{
	EOI:          "end of input",
	LCurly:       "'{'",
	RCurly:       "'}'",
	LParen:       "'('",
	RParen:       "')'",
	LBracket:     "'['",
	RBracket:     "']'",
	Semicolon:    "';'",
	Colon:        "':'",
	Comma:        "','",
	Arrow:        "'->'",
	Equals:       "'='",
	Plus:         "'+'",
	Minus:        "'-'",
	Bang:         "'!'",
	EqualsEquals: "'=='",
	RAngle:       "'>'",
	PipePipe:     "'||'",
	AmpAmp:       "'&&'",
	While:        "'while'",
	Let:          "'let'",
	Fn:           "'fn'",
	If:           "'if'",
	Else:         "'else'",
	Return:       "'return'",
	True:         "'true'",
	False:        "'false'",
	IntType:      "'int'",
	BoolType:     "'bool'",
	ListType:     "'list'",
	Int:          "integer literal",
	Name:         "identifier",
}

// String renders the Kind the way diagnostics want to quote it.
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "unknown token"
}

// Token bundles a Kind, its Position, and its source lexeme.
//
// Invariant: every token other than EOI carries a non-empty Lexeme; EOI's
// Lexeme is the empty string and its Position sits one column past the end
// of input.
type Token struct {
	Kind   Kind
	Pos    Position
	Lexeme string
}

// Unlocated builds a Token without meaningful position information, useful
// for constructing expected values in tests.
func Unlocated(kind Kind, lexeme string) Token {
	return Token{Kind: kind, Lexeme: lexeme}
}

// ContentEqual compares two tokens ignoring position, which is what most
// parser/typer tests want: they care about kind and lexeme, not where the
// token happened to sit in some particular source string.
func (t Token) ContentEqual(other Token) bool {
	return t.Kind == other.Kind && t.Lexeme == other.Lexeme
}
