package format

import (
	"strconv"
	"strings"

	"github.com/teiid/teiid-sub017/pkg/core"
)

// DDL renders a list of DDL statements, each terminated by a semicolon and
// separated by a blank line.
func DDL(stmts []core.DDLStatement) string {
	var sb strings.Builder
	for i, s := range stmts {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(SQL(s))
		sb.WriteString(";")
	}
	return sb.String()
}

var tableKindText = map[core.TableKind]string{
	core.TableForeign:         "CREATE FOREIGN TABLE ",
	core.TableView:            "CREATE VIEW ",
	core.TableGlobalTemporary: "CREATE GLOBAL TEMPORARY TABLE ",
}

// VisitCreateTable renders the table elements one per line.
func (p *Printer) VisitCreateTable(n *core.CreateTable) {
	p.write(tableKindText[n.Kind])
	p.name(n.Name)
	count := len(n.Columns) + len(n.Constraints)
	if count > 0 || n.Kind != core.TableView {
		p.write(" (")
		p.writeln()
		p.indent()
		p.formatList(count, func(i int) {
			if i < len(n.Columns) {
				p.columnDefinition(n.Columns[i])
				return
			}
			p.constraint(n.Constraints[i-len(n.Columns)])
		}, ",", true)
		p.dedent()
		p.writeln()
		p.write(")")
	}
	p.options(n.Options)
	if n.Query != nil {
		p.writeln()
		p.write("AS")
		p.writeln()
		p.node(n.Query)
	}
}

func (p *Printer) columnDefinition(c *core.ColumnDefinition) {
	p.id(c.Name)
	p.space()
	p.typeSpec(c.Type)
	if c.NotNull {
		p.write(" NOT NULL")
	}
	if c.AutoIncrement {
		p.write(" AUTO_INCREMENT")
	}
	if c.PrimaryKey {
		p.write(" PRIMARY KEY")
	}
	if c.Unique {
		p.write(" UNIQUE")
	}
	if c.Index {
		p.write(" INDEX")
	}
	if c.Default != nil {
		p.write(" DEFAULT ")
		p.expr(c.Default)
	}
	p.options(c.Options)
}

func (p *Printer) constraint(c *core.ConstraintDefinition) {
	if c.Name != "" {
		p.write("CONSTRAINT ")
		p.id(c.Name)
		p.space()
	}
	p.write(c.Kind.String())
	p.write("(")
	if len(c.Expressions) > 0 {
		p.exprs(c.Expressions)
	} else {
		p.ids(c.Columns)
	}
	p.write(")")
	if c.Kind == core.ConstraintForeignKey {
		p.write(" REFERENCES ")
		p.name(c.ReferenceTable)
		if len(c.ReferenceColumns) > 0 {
			p.write("(")
			p.ids(c.ReferenceColumns)
			p.write(")")
		}
	}
	p.options(c.Options)
}

func (p *Printer) ids(list []string) {
	p.formatList(len(list), func(i int) { p.id(list[i]) }, ", ", false)
}

// typeSpec writes name[(params)][[]...].
func (p *Printer) typeSpec(t *core.TypeSpec) {
	if t == nil {
		return
	}
	p.write(t.Name)
	if len(t.Params) > 0 {
		p.write("(")
		p.formatList(len(t.Params), func(i int) { p.write(strconv.Itoa(t.Params[i])) }, ", ", false)
		p.write(")")
	}
	for i := 0; i < t.ArrayDimensions; i++ {
		p.write("[]")
	}
}

// options writes " OPTIONS (key value, ...)" when list is not empty.
func (p *Printer) options(list []*core.OptionEntry) {
	if len(list) == 0 {
		return
	}
	p.write(" OPTIONS (")
	p.formatList(len(list), func(i int) {
		p.optionKey(list[i].Key)
		p.space()
		p.expr(list[i].Value)
	}, ", ", false)
	p.write(")")
}

// optionKey writes a key, keeping a namespace prefix separated by a colon.
func (p *Printer) optionKey(key string) {
	if prefix, local, ok := strings.Cut(key, ":"); ok {
		p.name(prefix)
		p.write(":")
		p.id(local)
		return
	}
	p.name(key)
}

func (p *Printer) VisitCreateProcedure(n *core.CreateProcedure) {
	p.write("CREATE ")
	if n.Kind == core.ProcedureVirtual {
		p.write("VIRTUAL ")
	} else {
		p.write("FOREIGN ")
	}
	if n.Function {
		p.write("FUNCTION ")
	} else {
		p.write("PROCEDURE ")
	}
	p.name(n.Name)
	p.write("(")
	p.formatList(len(n.Parameters), func(i int) { p.parameterDefinition(n.Parameters[i]) }, ", ", false)
	p.write(")")

	switch {
	case len(n.ResultColumns) > 0:
		p.write(" RETURNS TABLE (")
		p.formatList(len(n.ResultColumns), func(i int) {
			c := n.ResultColumns[i]
			p.id(c.Name)
			p.space()
			p.typeSpec(c.Type)
			if c.NotNull {
				p.write(" NOT NULL")
			}
			p.options(c.Options)
		}, ", ", false)
		p.write(")")
	case n.ReturnType != nil:
		p.write(" RETURNS ")
		p.typeSpec(n.ReturnType)
	}
	p.options(n.Options)

	if n.Body == nil {
		return
	}
	p.writeln()
	p.write("AS")
	p.writeln()
	if cs, ok := n.Body.(*core.CommandStatement); ok {
		p.node(cs.Command)
		return
	}
	p.node(n.Body)
}

func (p *Printer) parameterDefinition(d *core.ParameterDefinition) {
	if d.Varargs {
		p.write("VARIADIC ")
	} else {
		p.write(d.Direction.String() + " ")
	}
	p.id(d.Name)
	p.space()
	p.typeSpec(d.Type)
	if d.NotNull {
		p.write(" NOT NULL")
	}
	if d.Result {
		p.write(" RESULT")
	}
	if d.Default != nil {
		p.write(" DEFAULT ")
		p.expr(d.Default)
	}
	p.options(d.Options)
}

var alterTargetText = map[core.AlterTargetKind]string{
	core.TargetTable:     "TABLE ",
	core.TargetView:      "VIEW ",
	core.TargetProcedure: "PROCEDURE ",
	core.TargetFunction:  "FUNCTION ",
}

func (p *Printer) VisitAlterOptions(n *core.AlterOptions) {
	p.write("ALTER ")
	if n.Foreign {
		p.write("FOREIGN ")
	}
	p.write(alterTargetText[n.TargetKind])
	p.name(n.Name)
	switch n.ChildKind {
	case core.ChildColumn:
		p.write(" ALTER COLUMN ")
		p.id(n.ChildName)
	case core.ChildParameter:
		p.write(" ALTER PARAMETER ")
		p.id(n.ChildName)
	}
	p.write(" OPTIONS (")
	p.formatList(len(n.Changes), func(i int) {
		ch := n.Changes[i]
		p.write(ch.Action.String() + " ")
		p.optionKey(ch.Key)
		if ch.Action != core.OptionDrop {
			p.space()
			p.expr(ch.Value)
		}
	}, ", ", false)
	p.write(")")
}

func (p *Printer) VisitSetNamespace(n *core.SetNamespace) {
	p.write("SET NAMESPACE " + quoteString(n.URI) + " AS ")
	p.id(n.Prefix)
}
