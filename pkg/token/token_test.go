package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		in   string
		want TokenType
	}{
		{"select", SELECT},
		{"SeLeCt", SELECT},
		{"like_regex", LIKE_REGEX},
		{"xmltable", XMLTABLE},
		{"year", IDENT},
		{"view", IDENT},
		{"texttable", IDENT},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, LookupIdent(tt.in))
		})
	}
}

func TestKeywordNames(t *testing.T) {
	assert.Equal(t, "SELECT", SELECT.String())
	assert.Equal(t, "XMLTABLE", XMLTABLE.String())
	assert.Equal(t, "ALL", ALL.String())
	assert.Equal(t, "=>", ARROW.String())
	assert.True(t, IsKeyword(WITH))
	assert.False(t, IsKeyword(IDENT))
	assert.True(t, IsOperator(SEMICOLON))
	assert.True(t, IsLiteral(FLOAT))
}

func TestIsReserved(t *testing.T) {
	assert.True(t, IsReserved("from"))
	assert.True(t, IsReserved("Select"))
	assert.False(t, IsReserved("year"))
	assert.False(t, IsReserved("g"))
}

func TestTokenIs(t *testing.T) {
	tok := Token{Type: IDENT, Literal: "TextTable"}
	assert.True(t, tok.Is("texttable"))
	tok.Quoted = true
	assert.False(t, tok.Is("texttable"))
	assert.Equal(t, "<EOF>", Token{Type: EOF}.Image())
}

func TestHintPayload(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"/*+ MAKEDEP */", "MAKEDEP"},
		{"/*+ /*nested*/ */", ""},
		{"/*+ cache(ttl:100) /* x */ */", "cache(ttl:100)"},
	}
	for _, tt := range tests {
		c := &Comment{Kind: HintComment, Text: tt.text}
		assert.Equal(t, tt.want, c.HintPayload())
	}
	plain := &Comment{Kind: BlockComment, Text: "/* x */"}
	assert.Empty(t, plain.HintPayload())
}

func TestPosition(t *testing.T) {
	a := Position{Line: 1, Column: 8, Offset: 7}
	b := Position{Line: 2, Column: 1, Offset: 12}
	assert.Equal(t, "line 1, column 8", a.String())
	assert.True(t, b.After(a))
	assert.False(t, a.After(b))
	assert.False(t, a.After(a))
	assert.Equal(t, 5, Span{Start: a, End: b}.Len())
}
