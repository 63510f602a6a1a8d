package sexpr_test

import (
	"testing"

	"github.com/cwbudde/mlc/internal/sexpr"
)

func TestParseValue(t *testing.T) {
	got := sexpr.Parse("cat")
	if !got.IsValue() || got.Head != "cat" {
		t.Fatalf("Parse(%q) = %+v, want leaf 'cat'", "cat", got)
	}
}

func TestParseFunction(t *testing.T) {
	got := sexpr.Parse("(+ 1 2)")
	want := sexpr.Func("+", sexpr.Value("1"), sexpr.Value("2"))
	if got.String() != want.String() {
		t.Fatalf("Parse(%q) = %s, want %s", "(+ 1 2)", got, want)
	}
}

func TestParseNested(t *testing.T) {
	got := sexpr.Parse("(+ (+ 1 2) 3)")
	want := sexpr.Func("+", sexpr.Func("+", sexpr.Value("1"), sexpr.Value("2")), sexpr.Value("3"))
	if got.String() != want.String() {
		t.Fatalf("Parse(%q) = %s, want %s", "(+ (+ 1 2) 3)", got, want)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, text := range []string{"cat", "(+ 1 2)", "(if y (z))", "(function_define universe a:int b:int (+ a b) ->int)"} {
		if got := sexpr.Parse(text).String(); got != text {
			t.Errorf("round trip of %q produced %q", text, got)
		}
	}
}
