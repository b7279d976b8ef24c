package parser

import (
	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/token"
)

// DDL statements.
//
// Grammar:
//
//	ddl          → (ddl_stmt [";"])*
//	ddl_stmt     → CREATE [FOREIGN] TABLE name "(" elements ")" [options]
//	             | CREATE [VIRTUAL] VIEW name ["(" elements ")"] [options] AS query_expr
//	             | CREATE GLOBAL TEMPORARY TABLE name "(" elements ")" [options]
//	             | CREATE [FOREIGN|VIRTUAL] (PROCEDURE|FUNCTION) name "(" [params] ")"
//	               [RETURNS ([TABLE] "(" columns ")" | type)] [options] [AS body]
//	             | CREATE TRIGGER ON name INSTEAD OF event AS FOR EACH ROW block
//	             | ALTER [FOREIGN|VIRTUAL] (TABLE|VIEW|PROCEDURE|FUNCTION) name
//	               [ALTER (COLUMN|PARAMETER) id] OPTIONS "(" change ("," change)* ")"
//	             | ALTER VIEW name AS query_expr | ALTER PROCEDURE name AS block
//	             | ALTER TRIGGER ...
//	             | SET NAMESPACE STRING AS id
//	             | DROP TABLE name
//	element      → column | [CONSTRAINT id] constraint
//	column       → id type (NOT NULL | AUTO_INCREMENT | PRIMARY KEY | UNIQUE | INDEX
//	               | DEFAULT expr | options)*
//	constraint   → PRIMARY KEY names | UNIQUE names | INDEX "(" exprs ")"
//	             | ACCESSPATTERN names | FOREIGN KEY names REFERENCES name [names]
//	param        → [IN|OUT|INOUT|VARIADIC] id type [NOT NULL] [RESULT] [DEFAULT expr] [options]
//	options      → OPTIONS "(" key value ("," key value)* ")"
//	change       → (ADD|SET) key value | DROP key

// parseDDLStatements parses statements until the end of input.
func (p *Parser) parseDDLStatements() []core.DDLStatement {
	var stmts []core.DDLStatement
	for {
		if p.match(token.SEMICOLON) {
			continue
		}
		if p.check(token.EOF) {
			return stmts
		}
		stmts = append(stmts, p.parseDDLStatement())
		if !p.check(token.EOF) && !p.check(token.SEMICOLON) {
			p.fail("")
		}
	}
}

func (p *Parser) parseDDLStatement() core.DDLStatement {
	switch p.tok().Type {
	case token.CREATE:
		return p.parseDDLCreate()
	case token.ALTER:
		return p.parseDDLAlter()
	case token.SET:
		p.next()
		p.expectWord("namespace")
		ns := &core.SetNamespace{URI: p.parseStringLiteral()}
		p.expect(token.AS)
		ns.Prefix = p.parseIdentifier()
		return ns
	case token.DROP:
		p.next()
		p.expect(token.TABLE)
		return &core.Drop{Table: &core.GroupSymbol{Name: p.parseName()}}
	}
	p.failf(errExpecting, `"CREATE" | "ALTER" | "SET" | "DROP"`)
	return nil
}

// ---------- CREATE ----------

func (p *Parser) parseDDLCreate() core.DDLStatement {
	p.expect(token.CREATE)

	if p.match(token.TRIGGER) {
		t := p.parseTriggerHeader()
		t.Create = true
		t.Definition = p.parseTriggerAction()
		return t
	}
	if p.matchWord("global") {
		p.expect(token.TEMPORARY)
		p.expect(token.TABLE)
		return p.parseCreateTable(core.TableGlobalTemporary)
	}

	foreign, virtual := false, false
	switch {
	case p.match(token.FOREIGN):
		foreign = true
	case p.match(token.VIRTUAL):
		virtual = true
	}

	switch {
	case !virtual && p.match(token.TABLE):
		return p.parseCreateTable(core.TableForeign)
	case !foreign && p.matchWord("view"):
		return p.parseCreateTable(core.TableView)
	case p.check(token.PROCEDURE) || p.check(token.FUNCTION):
		cp := &core.CreateProcedure{Function: p.next().Type == token.FUNCTION}
		p.parseCreateProcedure(cp)
		switch {
		case foreign:
			cp.Kind = core.ProcedureForeign
		case virtual || cp.Body != nil:
			cp.Kind = core.ProcedureVirtual
		}
		return cp
	}
	p.failf(errExpecting, `"TABLE" | "VIEW" | "PROCEDURE" | "FUNCTION"`)
	return nil
}

// parseCreateTable parses the part of CREATE TABLE / VIEW after the
// object keyword.
func (p *Parser) parseCreateTable(kind core.TableKind) *core.CreateTable {
	t := &core.CreateTable{Name: p.parseName(), Kind: kind}
	if kind != core.TableView || p.check(token.LPAREN) {
		p.expect(token.LPAREN)
		for {
			if p.isConstraintStart() {
				t.Constraints = append(t.Constraints, p.parseConstraint())
			} else {
				t.Columns = append(t.Columns, p.parseColumnDefinition())
			}
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expect(token.RPAREN)
	}
	t.Options = p.parseOptionsClause()
	if kind == core.TableView {
		p.expect(token.AS)
		t.Query = p.parseQueryExpression()
	} else if p.check(token.AS) {
		p.next()
		t.Query = p.parseQueryExpression()
	}
	return t
}

func (p *Parser) isConstraintStart() bool {
	switch p.tok().Type {
	case token.CONSTRAINT, token.PRIMARY, token.FOREIGN:
		return true
	case token.UNIQUE:
		return p.checkPeek(token.LPAREN)
	}
	return (p.checkWord("index") || p.checkWord("accesspattern")) && p.checkPeek(token.LPAREN)
}

// parseColumnDefinition parses a column and its modifiers in any order.
func (p *Parser) parseColumnDefinition() *core.ColumnDefinition {
	col := &core.ColumnDefinition{Name: p.parseIdentifier(), Type: p.parseDataType()}
	for {
		switch {
		case p.check(token.NOT):
			p.next()
			p.expect(token.NULL)
			col.NotNull = true
		case p.matchWord("auto_increment"):
			col.AutoIncrement = true
		case p.match(token.PRIMARY):
			p.expectWord("key")
			col.PrimaryKey = true
		case p.match(token.UNIQUE):
			col.Unique = true
		case p.matchWord("index"):
			col.Index = true
		case p.match(token.DEFAULT):
			col.Default = p.parseExpression()
		case p.check(token.OPTIONS):
			col.Options = p.parseOptionsClause()
		default:
			return col
		}
	}
}

// parseConstraint parses a table level key, index or access pattern.
func (p *Parser) parseConstraint() *core.ConstraintDefinition {
	c := &core.ConstraintDefinition{}
	if p.match(token.CONSTRAINT) {
		c.Name = p.parseIdentifier()
	}
	switch {
	case p.match(token.PRIMARY):
		p.expectWord("key")
		c.Kind = core.ConstraintPrimaryKey
		c.Columns = p.parseColumnNames()
	case p.match(token.UNIQUE):
		c.Kind = core.ConstraintUnique
		c.Columns = p.parseColumnNames()
	case p.matchWord("accesspattern"):
		c.Kind = core.ConstraintAccessPattern
		c.Columns = p.parseColumnNames()
	case p.matchWord("index"):
		c.Kind = core.ConstraintIndex
		p.expect(token.LPAREN)
		exprs := p.parseExpressionList()
		p.expect(token.RPAREN)
		if names, ok := elementNames(exprs); ok {
			c.Columns = names
		} else {
			c.Expressions = exprs
		}
	case p.match(token.FOREIGN):
		p.expectWord("key")
		c.Kind = core.ConstraintForeignKey
		c.Columns = p.parseColumnNames()
		p.expect(token.REFERENCES)
		c.ReferenceTable = p.parseName()
		if p.check(token.LPAREN) {
			c.ReferenceColumns = p.parseColumnNames()
		}
	default:
		p.failf(errExpecting, `"PRIMARY" | "UNIQUE" | "INDEX" | "ACCESSPATTERN" | "FOREIGN"`)
	}
	c.Options = p.parseOptionsClause()
	return c
}

// parseColumnNames parses "(" id ("," id)* ")".
func (p *Parser) parseColumnNames() []string {
	p.expect(token.LPAREN)
	names := []string{p.parseIdentifier()}
	for p.match(token.COMMA) {
		names = append(names, p.parseIdentifier())
	}
	p.expect(token.RPAREN)
	return names
}

// elementNames returns the column names when every expression is an
// unqualified column reference.
func elementNames(exprs []core.Expression) ([]string, bool) {
	names := make([]string, 0, len(exprs))
	for _, e := range exprs {
		es, ok := e.(*core.ElementSymbol)
		if !ok || es.GroupName() != "" {
			return nil, false
		}
		names = append(names, es.Name)
	}
	return names, true
}

// parseCreateProcedure parses name(params) [RETURNS ...] [OPTIONS] [AS body].
func (p *Parser) parseCreateProcedure(cp *core.CreateProcedure) {
	cp.Name = p.parseName()
	p.expect(token.LPAREN)
	if !p.check(token.RPAREN) {
		for {
			cp.Parameters = append(cp.Parameters, p.parseParameterDefinition())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN)

	if p.match(token.RETURNS) {
		hasTable := p.match(token.TABLE)
		if hasTable || p.check(token.LPAREN) {
			p.expect(token.LPAREN)
			for {
				col := &core.ColumnDefinition{Name: p.parseIdentifier(), Type: p.parseDataType()}
				if p.check(token.NOT) {
					p.next()
					p.expect(token.NULL)
					col.NotNull = true
				}
				col.Options = p.parseOptionsClause()
				cp.ResultColumns = append(cp.ResultColumns, col)
				if !p.match(token.COMMA) {
					break
				}
			}
			p.expect(token.RPAREN)
		} else {
			cp.ReturnType = p.parseDataType()
		}
	}
	cp.Options = p.parseOptionsClause()
	if p.match(token.AS) {
		cp.Body = p.parseProcedureBody()
	}
}

// parseProcedureBody parses a block or a single command. The terminating
// semicolon of a single command is left as the statement separator.
func (p *Parser) parseProcedureBody() core.Statement {
	if p.check(token.BEGIN) {
		return p.parseBlock()
	}
	return &core.CommandStatement{Command: p.parseCommand()}
}

func (p *Parser) parseParameterDefinition() *core.ParameterDefinition {
	param := &core.ParameterDefinition{Direction: core.ParamIn}
	switch {
	case p.match(token.IN):
	case p.match(token.OUT):
		param.Direction = core.ParamOut
	case p.match(token.INOUT):
		param.Direction = core.ParamInOut
	case p.checkWord("variadic") && p.checkPeek(token.IDENT):
		p.next()
		param.Varargs = true
	}
	param.Name = p.parseIdentifier()
	param.Type = p.parseDataType()
	if p.check(token.NOT) {
		p.next()
		p.expect(token.NULL)
		param.NotNull = true
	}
	if p.matchWord("result") {
		param.Result = true
	}
	if p.match(token.DEFAULT) {
		param.Default = p.parseExpression()
	}
	param.Options = p.parseOptionsClause()
	return param
}

// ---------- OPTIONS ----------

// parseOptionsClause parses an optional OPTIONS (key value, ...) list.
func (p *Parser) parseOptionsClause() []*core.OptionEntry {
	if !p.match(token.OPTIONS) {
		return nil
	}
	p.expect(token.LPAREN)
	var list []*core.OptionEntry
	for {
		entry := &core.OptionEntry{Key: p.parseOptionKey()}
		entry.Value = p.parseOptionValue()
		list = append(list, entry)
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	return list
}

// parseOptionKey parses id [":" id]. Namespace prefixed keys keep the
// prefix for the metadata builder to expand.
func (p *Parser) parseOptionKey() string {
	key := p.parseName()
	if p.match(token.COLON) {
		key += ":" + p.parseIdentifier()
	}
	return key
}

// parseOptionValue parses a literal, optionally negated.
func (p *Parser) parseOptionValue() core.Expression {
	tok := p.tok()
	v := p.parseUnary()
	c, ok := v.(*core.Constant)
	if !ok {
		p.abort(syntaxError(tok, "Option values must be literals."))
	}
	return c
}

// ---------- ALTER ----------

func (p *Parser) parseDDLAlter() core.DDLStatement {
	if p.isAlterDefinition() {
		return p.parseAlterCommand().(core.DDLStatement)
	}
	p.expect(token.ALTER)

	a := &core.AlterOptions{}
	switch {
	case p.match(token.FOREIGN):
		a.Foreign = true
	case p.match(token.VIRTUAL):
	}
	switch {
	case p.match(token.TABLE):
		a.TargetKind = core.TargetTable
	case p.matchWord("view"):
		a.TargetKind = core.TargetView
	case p.match(token.PROCEDURE):
		a.TargetKind = core.TargetProcedure
	case p.match(token.FUNCTION):
		a.TargetKind = core.TargetFunction
	default:
		p.failf(errExpecting, `"TABLE" | "VIEW" | "PROCEDURE" | "FUNCTION"`)
	}
	a.Name = p.parseName()
	if p.match(token.ALTER) {
		switch {
		case p.matchWord("column"):
			a.ChildKind = core.ChildColumn
		case p.matchWord("parameter"):
			a.ChildKind = core.ChildParameter
		default:
			p.failf(errExpecting, `"COLUMN" | "PARAMETER"`)
		}
		a.ChildName = p.parseIdentifier()
	}

	p.expect(token.OPTIONS)
	p.expect(token.LPAREN)
	for {
		a.Changes = append(a.Changes, p.parseOptionChange())
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	return a
}

// isAlterDefinition reports whether the ALTER at the current token
// replaces a definition (ALTER TRIGGER, ALTER VIEW|PROCEDURE name AS ...)
// rather than changing options.
func (p *Parser) isAlterDefinition() bool {
	switch t := p.peekAt(1); {
	case t.Type == token.TRIGGER:
		return true
	case !t.Is("view") && t.Type != token.PROCEDURE:
		return false
	}
	if p.peekAt(2).Type != token.IDENT {
		return false
	}
	k := 3
	for p.peekAt(k).Type == token.DOT && p.peekAt(k+1).Type == token.IDENT {
		k += 2
	}
	return p.peekAt(k).Type == token.AS
}

func (p *Parser) parseOptionChange() *core.OptionChange {
	ch := &core.OptionChange{}
	switch {
	case p.matchWord("add"):
		ch.Action = core.OptionAdd
	case p.match(token.SET):
		ch.Action = core.OptionSet
	case p.match(token.DROP):
		ch.Action = core.OptionDrop
		ch.Key = p.parseOptionKey()
		return ch
	default:
		p.failf(errExpecting, `"ADD" | "SET" | "DROP"`)
	}
	ch.Key = p.parseOptionKey()
	ch.Value = p.parseOptionValue()
	return ch
}
