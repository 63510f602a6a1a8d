// Package cerrors renders parser and typer errors with source-line context
// and a caret, the way a user-facing diagnostic should look. It is a pure
// presentation layer: it never replaces the typed error values produced by
// internal/parser and internal/typer, only formats them.
package cerrors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/mlc/internal/token"
)

// Positioned is implemented by any error that names the token it failed
// on; internal/parser.Error and internal/typer.Error both satisfy it.
type Positioned interface {
	error
	Pos() token.Position
}

// Render formats err with a "line N | <source line>" block and a caret
// pointing at its column, followed by the error's own message. If err does
// not implement Positioned, only the message is returned.
func Render(err error, source string) string {
	positioned, ok := err.(Positioned)
	if !ok {
		return err.Error()
	}

	pos := positioned.Pos()
	var sb strings.Builder

	fmt.Fprintf(&sb, "error at %s\n", pos)

	if line := sourceLine(source, pos.Row); line != "" {
		prefix := fmt.Sprintf("%4d | ", pos.Row)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+pos.Column-1))
		sb.WriteString("^\n")
	}

	sb.WriteString(positioned.Error())
	return sb.String()
}

// RenderAll renders each error in turn, separated by a blank line.
func RenderAll(errs []error, source string) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = Render(e, source)
	}
	return strings.Join(parts, "\n\n")
}

// sourceLine extracts the 1-indexed row from source, or "" if out of
// range.
func sourceLine(source string, row int) string {
	lines := strings.Split(source, "\n")
	if row < 1 || row > len(lines) {
		return ""
	}
	return lines[row-1]
}
