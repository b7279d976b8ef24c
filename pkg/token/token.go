// Package token defines the token types for the federated SQL dialect.
//
// Reserved words are lexed into their own token types. Non-reserved words
// (YEAR, VIEW, KEY, TEXTTABLE, ...) stay IDENT and are recognised by the
// parser from context, so they remain usable as names.
package token

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

//nolint:revive // ALL_CAPS names follow SQL token conventions
const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT   // identifier, quoted or not
	STRING  // 'hello'
	INTEGER // 123
	DECIMAL // 1.5, .5
	FLOAT   // 1.3e8

	// Operators
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	PERCENT   // %
	DPIPE     // ||
	EQ        // =
	NE        // <> or !=
	LT        // <
	GT        // >
	LE        // <=
	GE        // >=
	DOT       // .
	COMMA     // ,
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]
	LBRACE    // {
	RBRACE    // }
	QMARK     // ?
	SEMICOLON // ;
	COLON     // :
	ARROW     // =>

	keywordStart

	// Reserved keywords (alphabetical)
	ALL
	ALTER
	AND
	ANY
	ARRAY_AGG
	AS
	ASC
	ATOMIC
	BEGIN
	BETWEEN
	BOTH
	BREAK
	BY
	CALL
	CASE
	CAST
	CHAR
	CONSTRAINT
	CONTINUE
	CONVERT
	CREATE
	CRITERIA
	CROSS
	DECLARE
	DEFAULT
	DELETE
	DESC
	DISTINCT
	DROP
	EACH
	ELSE
	END
	ERROR
	ESCAPE
	EXCEPT
	EXEC
	EXECUTE
	EXISTS
	FALSE
	FETCH
	FILTER
	FOR
	FOREIGN
	FROM
	FULL
	FUNCTION
	GROUP
	HAVING
	IF
	IMMEDIATE
	IN
	INNER
	INOUT
	INSERT
	INTERSECT
	INTO
	IS
	JOIN
	LATERAL
	LEADING
	LEFT
	LIKE
	LIKE_REGEX
	LIMIT
	LOCAL
	LOOP
	MAKEDEP
	MAKENOTDEP
	MERGE
	NOCACHE
	NOT
	NULL
	OF
	OFFSET
	ON
	ONLY
	OPTION
	OPTIONS
	OR
	ORDER
	OUT
	OUTER
	OVER
	PARTITION
	PRIMARY
	PROCEDURE
	REFERENCES
	RETURNS
	RIGHT
	ROLLUP
	ROW
	ROWS
	SELECT
	SET
	SIMILAR
	SOME
	TABLE
	TEMPORARY
	THEN
	TO
	TRAILING
	TRANSLATE
	TRIGGER
	TRUE
	UNION
	UNIQUE
	UNKNOWN
	UPDATE
	USER
	USING
	VALUES
	VIRTUAL
	WHEN
	WHERE
	WHILE
	WITH
	XMLAGG
	XMLATTRIBUTES
	XMLCOMMENT
	XMLCONCAT
	XMLELEMENT
	XMLFOREST
	XMLNAMESPACES
	XMLPARSE
	XMLPI
	XMLQUERY
	XMLSERIALIZE
	XMLTABLE

	keywordEnd
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	if name, ok := keywordNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:   "IDENT",
	STRING:  "STRING",
	INTEGER: "INTEGER",
	DECIMAL: "DECIMAL",
	FLOAT:   "FLOAT",

	PLUS:      "+",
	MINUS:     "-",
	STAR:      "*",
	SLASH:     "/",
	PERCENT:   "%",
	DPIPE:     "||",
	EQ:        "=",
	NE:        "<>",
	LT:        "<",
	GT:        ">",
	LE:        "<=",
	GE:        ">=",
	DOT:       ".",
	COMMA:     ",",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACKET:  "[",
	RBRACKET:  "]",
	LBRACE:    "{",
	RBRACE:    "}",
	QMARK:     "?",
	SEMICOLON: ";",
	COLON:     ":",
	ARROW:     "=>",
}

// keywords maps lowercase reserved words to their token types.
var keywords = map[string]TokenType{}

// keywordNames maps keyword token types back to their upper-case spelling.
var keywordNames = map[TokenType]string{}

func init() {
	words := []string{
		"ALL", "ALTER", "AND", "ANY", "ARRAY_AGG", "AS", "ASC", "ATOMIC",
		"BEGIN", "BETWEEN", "BOTH", "BREAK", "BY", "CALL", "CASE", "CAST",
		"CHAR", "CONSTRAINT", "CONTINUE", "CONVERT", "CREATE", "CRITERIA",
		"CROSS", "DECLARE", "DEFAULT", "DELETE", "DESC", "DISTINCT", "DROP",
		"EACH", "ELSE", "END", "ERROR", "ESCAPE", "EXCEPT", "EXEC", "EXECUTE",
		"EXISTS", "FALSE", "FETCH", "FILTER", "FOR", "FOREIGN", "FROM", "FULL",
		"FUNCTION", "GROUP", "HAVING", "IF", "IMMEDIATE", "IN", "INNER",
		"INOUT", "INSERT", "INTERSECT", "INTO", "IS", "JOIN", "LATERAL",
		"LEADING", "LEFT", "LIKE", "LIKE_REGEX", "LIMIT", "LOCAL", "LOOP",
		"MAKEDEP", "MAKENOTDEP", "MERGE", "NOCACHE", "NOT", "NULL", "OF",
		"OFFSET", "ON", "ONLY", "OPTION", "OPTIONS", "OR", "ORDER", "OUT",
		"OUTER", "OVER", "PARTITION", "PRIMARY", "PROCEDURE", "REFERENCES",
		"RETURNS", "RIGHT", "ROLLUP", "ROW", "ROWS", "SELECT", "SET",
		"SIMILAR", "SOME", "TABLE", "TEMPORARY", "THEN", "TO", "TRAILING",
		"TRANSLATE", "TRIGGER", "TRUE", "UNION", "UNIQUE", "UNKNOWN",
		"UPDATE", "USER", "USING", "VALUES", "VIRTUAL", "WHEN", "WHERE",
		"WHILE", "WITH", "XMLAGG", "XMLATTRIBUTES", "XMLCOMMENT", "XMLCONCAT",
		"XMLELEMENT", "XMLFOREST", "XMLNAMESPACES", "XMLPARSE", "XMLPI",
		"XMLQUERY", "XMLSERIALIZE", "XMLTABLE",
	}
	if len(words) != int(keywordEnd-keywordStart-1) {
		panic("token: keyword table out of sync with constants")
	}
	for i, w := range words {
		t := keywordStart + 1 + TokenType(i)
		keywords[strings.ToLower(w)] = t
		keywordNames[t] = w
	}
}

// LookupIdent returns the keyword token type for a reserved word, or IDENT.
// The lookup is case-insensitive.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[strings.ToLower(ident)]; ok {
		return tok
	}
	return IDENT
}

// IsReserved reports whether word is a reserved word and therefore must be
// quoted when used as a name.
func IsReserved(word string) bool {
	_, ok := keywords[strings.ToLower(word)]
	return ok
}

// IsKeyword returns true if the token type is a reserved keyword.
func IsKeyword(t TokenType) bool {
	return t > keywordStart && t < keywordEnd
}

// IsOperator returns true if the token type is an operator or punctuation.
func IsOperator(t TokenType) bool {
	return t >= PLUS && t <= ARROW
}

// IsLiteral returns true for string and numeric literal tokens.
func IsLiteral(t TokenType) bool {
	return t >= STRING && t <= FLOAT
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string // decoded value: unquoted identifier body, string contents
	Raw     string // source image, used in diagnostics
	Pos     Position
	Quoted  bool     // identifier was written in double quotes
	Hints   []string // payloads of /*+ ... */ comments directly before the token
	Err     string   // lexical error detail for ILLEGAL tokens
}

// Is reports whether the token is an unquoted identifier spelled word,
// compared case-insensitively. Non-reserved keywords are matched this way.
func (t Token) Is(word string) bool {
	return t.Type == IDENT && !t.Quoted && strings.EqualFold(t.Literal, word)
}

// Image returns the text used for this token in error messages.
func (t Token) Image() string {
	if t.Type == EOF {
		return "<EOF>"
	}
	if t.Raw != "" {
		return t.Raw
	}
	return t.Literal
}
