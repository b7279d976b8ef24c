package format

import (
	"strings"

	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/token"
)

// SQL renders any node in canonical form. The result parses back into a
// node equal to n.
func SQL(n core.Node) string {
	if n == nil {
		return ""
	}
	p := newPrinter()
	n.Accept(p)
	return p.String()
}

// escapeName quotes every dot separated part of name that needs it.
func escapeName(name string) string {
	if !strings.Contains(name, ".") {
		return escapeIdentifier(name)
	}
	parts := strings.Split(name, ".")
	for i, part := range parts {
		parts[i] = escapeIdentifier(part)
	}
	return strings.Join(parts, ".")
}

// escapeIdentifier double-quotes id when it is reserved or falls outside
// the unquoted identifier alphabet. Embedded quotes are doubled.
func escapeIdentifier(id string) string {
	if !token.NeedsQuotes(id) {
		return id
	}
	return `"` + strings.ReplaceAll(id, `"`, `""`) + `"`
}

// quoteString renders s as a string literal.
func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
