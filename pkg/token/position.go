package token

import "fmt"

// Position represents a location in the source text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number, counted in runes
	Offset int // 0-based byte offset
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// After reports whether p lies further into the input than q.
func (p Position) After(q Position) bool {
	return p.Offset > q.Offset
}

// Span represents a range in source text.
type Span struct {
	Start Position
	End   Position
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}
