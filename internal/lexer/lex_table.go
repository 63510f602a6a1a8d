package lexer

import "github.com/cwbudde/mlc/internal/token"

// tableEntry pairs a literal lexeme with the token kind it produces.
type tableEntry struct {
	literal []rune
	kind    token.Kind
}

// lexTable is scanned top to bottom at every lexer position; the first
// entry whose literal matches as a prefix of the remaining input wins.
//
// Ordering is load-bearing: multi-character literals must precede any
// single-character literal that is also a prefix of them ("->" before "-",
// "==" before "=", "||" and "&&" have no single-character counterpart in
// this language so there is nothing to shadow). Keywords must precede
// Name matching entirely, which is why they live here rather than in the
// identifier fallback.
//
// Matching is prefix-based, not word-boundary-based: an identifier that
// merely begins with a keyword's spelling (e.g. "intake") still matches
// the keyword literal first. This is a known rough edge rather than a
// design goal.
var lexTable = buildLexTable([]struct {
	literal string
	kind    token.Kind
}{
	{"->", token.Arrow},
	{"==", token.EqualsEquals},
	{"||", token.PipePipe},
	{"&&", token.AmpAmp},
	{"while", token.While},
	{"let", token.Let},
	{"fn", token.Fn},
	{"if", token.If},
	{"else", token.Else},
	{"return", token.Return},
	{"true", token.True},
	{"false", token.False},
	{"int", token.IntType},
	{"bool", token.BoolType},
	{"list", token.ListType},
	{"{", token.LCurly},
	{"}", token.RCurly},
	{"(", token.LParen},
	{")", token.RParen},
	{"[", token.LBracket},
	{"]", token.RBracket},
	{";", token.Semicolon},
	{":", token.Colon},
	{",", token.Comma},
	{"=", token.Equals},
	{"+", token.Plus},
	{"-", token.Minus},
	{"!", token.Bang},
	{">", token.RAngle},
})

func buildLexTable(raw []struct {
	literal string
	kind    token.Kind
}) []tableEntry {
	out := make([]tableEntry, len(raw))
	for i, r := range raw {
		out[i] = tableEntry{literal: []rune(r.literal), kind: r.kind}
	}
	return out
}
