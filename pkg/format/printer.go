// Package format renders AST nodes back into canonical SQL text.
package format

import (
	"bytes"

	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/token"
)

// Printer renders nodes into a buffer. Commands come out on one line;
// procedural blocks are split over lines and indented one tab per level.
type Printer struct {
	output      *bytes.Buffer
	depth       int
	atLineStart bool
}

var _ core.Visitor = (*Printer)(nil)

func newPrinter() *Printer {
	return &Printer{
		output:      &bytes.Buffer{},
		atLineStart: true,
	}
}

// String returns the rendered text.
func (p *Printer) String() string {
	return p.output.String()
}

func (p *Printer) write(s string) {
	if p.atLineStart && len(s) > 0 && s[0] != '\n' {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *Printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.depth; i++ {
		p.output.WriteByte('\t')
	}
	p.atLineStart = false
}

func (p *Printer) indent() {
	p.depth++
}

func (p *Printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

func (p *Printer) space() {
	p.write(" ")
}

// kw prints keywords separated by single spaces.
func (p *Printer) kw(tokens ...token.TokenType) {
	for i, t := range tokens {
		if i > 0 {
			p.space()
		}
		p.write(t.String())
	}
}

// formatList prints a list of items with separators.
// count is the number of items, format is called for each index,
// sep is the separator string, multiline adds newlines after separators.
func (p *Printer) formatList(count int, format func(i int), sep string, multiline bool) {
	for i := 0; i < count; i++ {
		format(i)
		if i < count-1 {
			p.write(sep)
			if multiline {
				p.writeln()
			}
		}
	}
}

// node renders n, ignoring nil.
func (p *Printer) node(n core.Node) {
	if n != nil {
		n.Accept(p)
	}
}

// expr renders e in a value position. Predicates are parenthesized there
// so they read back as a single operand.
func (p *Printer) expr(e core.Expression) {
	switch e.(type) {
	case nil:
		return
	case *core.ExpressionCriteria:
	case core.Criteria:
		p.write("(")
		e.Accept(p)
		p.write(")")
		return
	}
	e.Accept(p)
}

// exprs renders a comma separated expression list.
func (p *Printer) exprs(list []core.Expression) {
	p.formatList(len(list), func(i int) { p.expr(list[i]) }, ", ", false)
}

// crit renders c in a condition position.
func (p *Printer) crit(c core.Criteria) {
	p.node(c)
}

// name writes a possibly qualified name with the parts quoted as needed.
func (p *Printer) name(n string) {
	p.write(escapeName(n))
}

// names writes a comma separated list of names.
func (p *Printer) names(list []string) {
	p.formatList(len(list), func(i int) { p.name(list[i]) }, ", ", false)
}

// id writes a single identifier, quoted as needed.
func (p *Printer) id(s string) {
	p.write(escapeIdentifier(s))
}
