package token

import "strings"

// CommentKind distinguishes line, block and hint comments.
type CommentKind int

// Comment kinds.
const (
	LineComment  CommentKind = iota // -- comment
	BlockComment                    // /* comment */
	HintComment                     // /*+ hint */
)

// Comment represents a SQL comment with position.
type Comment struct {
	Kind CommentKind
	Text string // includes delimiters
	Span Span
}

// IsHint returns true if this is an optimizer hint comment.
func (c *Comment) IsHint() bool {
	return c.Kind == HintComment
}

// HintPayload returns the hint body with nested comments removed and
// surrounding whitespace trimmed. It returns "" for non-hint comments.
func (c *Comment) HintPayload() string {
	if c.Kind != HintComment {
		return ""
	}
	body := strings.TrimSuffix(strings.TrimPrefix(c.Text, "/*+"), "*/")
	return strings.TrimSpace(StripComments(body))
}

// StripComments removes nested /* ... */ sections from s.
func StripComments(s string) string {
	var b strings.Builder
	depth := 0
	for i := 0; i < len(s); i++ {
		switch {
		case i+1 < len(s) && s[i] == '/' && s[i+1] == '*':
			depth++
			i++
		case depth > 0 && i+1 < len(s) && s[i] == '*' && s[i+1] == '/':
			depth--
			i++
		case depth == 0:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
