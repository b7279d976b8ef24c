package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teiid/teiid-sub017/pkg/token"
)

func tokenTypes(toks []token.Token) []token.TokenType {
	out := make([]token.TokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestLexer_Types(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.TokenType
	}{
		{
			name:  "select",
			input: "SELECT a, b FROM g",
			want:  []token.TokenType{token.SELECT, token.IDENT, token.COMMA, token.IDENT, token.FROM, token.IDENT, token.EOF},
		},
		{
			name:  "numbers",
			input: "1 1.5 .5 1e3 1.3E-8",
			want:  []token.TokenType{token.INTEGER, token.DECIMAL, token.DECIMAL, token.FLOAT, token.FLOAT, token.EOF},
		},
		{
			name:  "operators",
			input: "<> != <= >= = => || ? ;",
			want: []token.TokenType{
				token.NE, token.NE, token.LE, token.GE, token.EQ, token.ARROW,
				token.DPIPE, token.QMARK, token.SEMICOLON, token.EOF,
			},
		},
		{
			name:  "dotted name",
			input: `db."g".a`,
			want:  []token.TokenType{token.IDENT, token.DOT, token.IDENT, token.DOT, token.IDENT, token.EOF},
		},
		{
			name:  "comments skipped",
			input: "a -- line\n/* block /* nested */ */ b",
			want:  []token.TokenType{token.IDENT, token.IDENT, token.EOF},
		},
		{
			name:  "prefixed strings",
			input: `N'x' E'\n'`,
			want:  []token.TokenType{token.STRING, token.STRING, token.EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenTypes(Tokenize(tt.input, DefaultParseInfo())))
		})
	}
}

func TestLexer_Literals(t *testing.T) {
	toks := Tokenize(`'it''s' "a""b" E'\txA'`, DefaultParseInfo())
	require.Len(t, toks, 4)

	assert.Equal(t, "it's", toks[0].Literal)
	assert.Equal(t, `'it''s'`, toks[0].Raw)

	assert.Equal(t, token.IDENT, toks[1].Type)
	assert.Equal(t, `a"b`, toks[1].Literal)
	assert.True(t, toks[1].Quoted)

	assert.Equal(t, "\txA", toks[2].Literal)
}

func TestLexer_NonAnsiQuotes(t *testing.T) {
	toks := Tokenize(`"abc"`, ParseInfo{AnsiQuotedIdentifiers: false})
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, "abc", toks[0].Literal)
}

func TestLexer_Positions(t *testing.T) {
	toks := Tokenize("SELECT\n  a,\n\tбуква", DefaultParseInfo())
	require.Len(t, toks, 5)

	assert.Equal(t, token.Position{Line: 1, Column: 1, Offset: 0}, toks[0].Pos)
	assert.Equal(t, 2, toks[1].Pos.Line)
	assert.Equal(t, 3, toks[1].Pos.Column)
	assert.Equal(t, 3, toks[3].Pos.Line)
	assert.Equal(t, 2, toks[3].Pos.Column)
	assert.Equal(t, "буква", toks[3].Literal)
}

func TestLexer_Hints(t *testing.T) {
	l := NewLexer("SELECT a FROM /*+ MAKEDEP */ /*+ optional */ g", DefaultParseInfo())
	var g token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		g = tok
	}
	assert.Equal(t, "g", g.Literal)
	assert.Equal(t, []string{"MAKEDEP", "optional"}, g.Hints)
	assert.Len(t, l.Comments, 2)
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   string
	}{
		{"unterminated string", "'abc", "Unterminated string literal."},
		{"unterminated identifier", `"abc`, "Unterminated quoted identifier."},
		{"unterminated comment", "a /* x", "Unterminated comment."},
		{"empty identifier", `""`, "Empty quoted identifier."},
		{"bad escape", `E'\u00G0'`, "Invalid escape sequence."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := Tokenize(tt.input, DefaultParseInfo())
			last := toks[len(toks)-1]
			assert.Equal(t, token.ILLEGAL, last.Type)
			assert.Equal(t, tt.err, last.Err)
		})
	}
}

func TestLexer_PrefixedIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"SELECT a FROM #t", []string{"SELECT", "a", "FROM", "#t"}},
		{"@x", []string{"@x"}},
		{"#", []string{"#"}},
		{"#t1.@v_2", []string{"#t1", ".", "@v_2"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := Tokenize(tt.input, DefaultParseInfo())
			require.Len(t, toks, len(tt.want)+1)
			for i, want := range tt.want {
				assert.Equal(t, want, toks[i].Image())
			}
			assert.Equal(t, token.EOF, toks[len(toks)-1].Type)
		})
	}
}

func TestLexer_NoEmptyTokens(t *testing.T) {
	inputs := []string{
		"CREATE LOCAL TEMPORARY TABLE #t (a integer)",
		"EXECUTE IMMEDIATE 'select 1' AS a integer INTO #t",
		"select @a, #b, _c from g where x=#",
		"a <> b || 'c' => ? ; :",
	}
	for _, input := range inputs {
		for _, tok := range Tokenize(input, DefaultParseInfo()) {
			if tok.Type == token.EOF {
				continue
			}
			assert.NotEmpty(t, tok.Image(), "%s in %q", tok.Type, input)
		}
	}
}
