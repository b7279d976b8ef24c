package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/teiid/teiid-sub017/pkg/token"
)

// ErrEmptySQL is the cause of the error returned for blank input.
var ErrEmptySQL = errors.New("empty SQL")

// ParseError represents a lexical or syntax error with position information.
type ParseError struct {
	Pos     token.Position
	Token   string // image of the offending token
	Message string
	Detail  string // optional cause, rendered on its own line
	Err     error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("Parsing error: ")
	b.WriteString(e.Message)
	if e.Detail != "" {
		b.WriteByte('\n')
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error { return e.Err }

func syntaxError(tok token.Token, detail string) *ParseError {
	return &ParseError{
		Pos:     tok.Pos,
		Token:   tok.Image(),
		Message: fmt.Sprintf("Encountered \"%s\" at line %d, column %d.", tok.Image(), tok.Pos.Line, tok.Pos.Column),
		Detail:  detail,
	}
}

func lexicalError(tok token.Token) *ParseError {
	return &ParseError{
		Pos:     tok.Pos,
		Token:   tok.Image(),
		Message: fmt.Sprintf("Lexical error at line %d, column %d. %s", tok.Pos.Line, tok.Pos.Column, tok.Err),
	}
}

// semanticError reports a construct that is well formed but not allowed,
// such as a qualified name where a simple one is required.
func semanticError(tok token.Token, format string, args ...any) *ParseError {
	return &ParseError{
		Pos:     tok.Pos,
		Token:   tok.Image(),
		Message: fmt.Sprintf(format, args...),
	}
}

// Error details.
const (
	errExpecting       = "Was expecting: %s"
	errSimpleID        = "Invalid simple identifier format: [%s]"
	errEscapeChar      = "Escape character '%s' must be a single character."
	errEscapeLiteral   = "Invalid escape literal {%s'%s'}."
	errTypedLiteral    = "Invalid %s literal '%s'."
	errSubqueryAlias   = "A subquery in the FROM clause must have an alias."
	errMixedParams     = "Named and positional parameters cannot be mixed."
	errOverRequired    = "%s requires an OVER clause."
	errDuplicateClause = "Duplicate %s clause."
)
