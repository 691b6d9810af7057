// Package diag formats syntax-error messages. Messages are returned as
// text; whether a mismatch aborts a parse is up to the caller.
package diag

import (
	"fmt"
	"strings"
)

// Locator supplies the current "line:col" of a parse.
type Locator interface {
	LineColumn() string
}

// Describer is anything that can say what it expected to match.
type Describer interface {
	Expected() string
}

// Formatter stamps messages with the position its Locator reports at the
// time of formatting.
type Formatter struct {
	loc Locator
}

func New(loc Locator) Formatter {
	return Formatter{loc: loc}
}

// SyntaxError formats "Syntax Error (<line>:<col>): <message>.".
func (f Formatter) SyntaxError(message string) string {
	return fmt.Sprintf("Syntax Error (%s): %s.", f.loc.LineColumn(), message)
}

// Invalid formats "Syntax Error (<line>:<col>): Invalid <what>; <detail>.".
func (f Formatter) Invalid(what, detail string) string {
	return f.SyntaxError(fmt.Sprintf("Invalid %s; %s", what, detail))
}

// Unexpected formats "Syntax Error (<line>:<col>): Unexpected '<got>'
// (expected <alternatives>).".
func (f Formatter) Unexpected(got interface{}, expected ...Describer) string {
	return f.SyntaxError(fmt.Sprintf("Unexpected '%v' (expected %s)", got, JoinExpected(expected...)))
}

// JoinExpected lists alternatives as "a", "a or b", "a, b or c", ...
func JoinExpected(expected ...Describer) string {
	var sb strings.Builder
	for i, d := range expected {
		switch {
		case i == 0:
		case i == len(expected)-1:
			sb.WriteString(" or ")
		default:
			sb.WriteString(", ")
		}
		sb.WriteString(d.Expected())
	}
	return sb.String()
}

// Literal is a Describer for a fixed piece of text.
type Literal string

func (l Literal) Expected() string {
	return fmt.Sprintf("'%s'", string(l))
}
