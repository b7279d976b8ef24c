package parser

import (
	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/token"
)

// Procedure calls, dynamic SQL and the command forms of CREATE, DROP and
// ALTER.
//
// Grammar:
//
//	exec      → (EXEC|EXECUTE) name "(" [param ("," param)*] ")"
//	param     → expr | id ("=>" | "=") expr
//	callable  → "{" ["?" "="] CALL name ["(" params ")"] "}"
//	dynamic   → (EXEC|EXECUTE) (IMMEDIATE|STRING) expr [AS id type ("," id type)*]
//	            [INTO id] [USING id "=" expr ("," id "=" expr)*] [UPDATE (int | "*")]
//	create    → CREATE LOCAL TEMPORARY TABLE name "(" temp_cols ")"
//	          | CREATE FOREIGN TEMPORARY TABLE name "(" temp_cols ")" ON STRING
//	          | CREATE [VIRTUAL] PROCEDURE block
//	          | CREATE TRIGGER ON name INSTEAD OF event AS FOR EACH ROW block
//	alter     → ALTER VIEW name AS query_expr
//	          | ALTER PROCEDURE name AS block
//	          | ALTER TRIGGER ON name INSTEAD OF event (AS FOR EACH ROW block | ENABLED | DISABLED)
//	drop      → DROP TABLE name

// ---------- Procedure Calls ----------

// parseExec parses EXEC name(args).
func (p *Parser) parseExec() *core.StoredProcedure {
	if !p.match(token.EXEC) {
		p.expect(token.EXECUTE)
	}
	sp := &core.StoredProcedure{ProcedureName: p.parseName()}
	p.expect(token.LPAREN)
	p.parseExecArgs(sp)
	p.expect(token.RPAREN)
	return sp
}

// parseExecArgs parses the argument list up to the closing parenthesis.
// Arguments are either all positional or all named.
func (p *Parser) parseExecArgs(sp *core.StoredProcedure) {
	if p.check(token.RPAREN) {
		return
	}
	for i := 1; ; i++ {
		start := p.tok()
		param := &core.SPParameter{Index: i, Direction: core.ParamIn}
		if n := p.lookaheadName(); n > 0 && (p.peekAt(n).Type == token.ARROW || p.peekAt(n).Type == token.EQ) {
			param.Name = p.parseName()
			p.next()
		}
		named := param.Name != ""
		if i > 1 && named != sp.DisplayNamedParameters {
			p.failAt(start, errMixedParams)
		}
		sp.DisplayNamedParameters = named
		param.Expression = p.parseExpression()
		sp.Parameters = append(sp.Parameters, param)
		if !p.match(token.COMMA) {
			return
		}
	}
}

// parseCallable parses the ODBC escape form {[?=] call name(args)}.
func (p *Parser) parseCallable() *core.StoredProcedure {
	p.expect(token.LBRACE)
	var ret *core.SPParameter
	if p.match(token.QMARK) {
		ret = p.returnParameter()
		p.expect(token.EQ)
	}
	p.expect(token.CALL)
	sp := &core.StoredProcedure{ProcedureName: p.parseName()}
	if p.match(token.LPAREN) {
		p.parseExecArgs(sp)
		p.expect(token.RPAREN)
	}
	p.expect(token.RBRACE)
	sp.ReturnParameter = ret
	sp.CallableStatement = ret != nil
	return sp
}

// parseReturnExec parses "? = EXEC name(args)", the rendered form of a
// callable statement with a return value.
func (p *Parser) parseReturnExec() core.Command {
	hints := p.tok().Hints
	p.expect(token.QMARK)
	ret := p.returnParameter()
	p.expect(token.EQ)
	if !p.check(token.EXEC) && !p.check(token.EXECUTE) && !p.check(token.CALL) {
		p.failf(errExpecting, `"EXEC"`)
	}
	var sp *core.StoredProcedure
	if p.match(token.CALL) {
		sp = &core.StoredProcedure{ProcedureName: p.parseName()}
		p.expect(token.LPAREN)
		p.parseExecArgs(sp)
		p.expect(token.RPAREN)
	} else {
		sp = p.parseExec()
	}
	sp.ReturnParameter = ret
	sp.CallableStatement = true
	sp.CacheHint = cacheHint(hints)
	sp.Option = p.parseOption()
	return sp
}

func (p *Parser) returnParameter() *core.SPParameter {
	return &core.SPParameter{
		Direction:  core.ParamReturnValue,
		Expression: &core.Reference{Index: p.nextReference()},
	}
}

// ---------- Dynamic SQL ----------

func (p *Parser) isDynamicCommand() bool {
	next := p.peekAt(1)
	return next.Type == token.IMMEDIATE || next.Is("string")
}

// parseDynamicCommand parses EXECUTE IMMEDIATE|STRING and its clauses.
// Column, target and variable names must be simple identifiers.
func (p *Parser) parseDynamicCommand() core.Command {
	p.next()
	p.next()
	dc := &core.DynamicCommand{SQL: p.parseExpression()}
	if p.match(token.AS) {
		for {
			col := &core.ColumnDef{Name: p.parseSimpleName()}
			col.Type = p.parseTypeName()
			dc.AsColumns = append(dc.AsColumns, col)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if p.match(token.INTO) {
		dc.Into = &core.GroupSymbol{Name: p.parseSimpleName()}
	}
	if p.match(token.USING) {
		for {
			sym := &core.ElementSymbol{Name: p.parseSimpleName()}
			p.expect(token.EQ)
			dc.Using = append(dc.Using, &core.SetClause{Symbol: sym, Value: p.parseExpression()})
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if p.match(token.UPDATE) {
		if p.match(token.STAR) {
			dc.UpdatingModelCount = -1
		} else {
			dc.UpdatingModelCount = p.parseIntLiteral()
		}
	}
	return dc
}

// ---------- CREATE / DROP / ALTER ----------

func (p *Parser) parseCreateCommand() core.Command {
	p.expect(token.CREATE)
	switch {
	case p.match(token.LOCAL):
		p.expect(token.TEMPORARY)
		p.expect(token.TABLE)
		return p.parseTempTable(false)
	case p.check(token.FOREIGN) && p.checkPeek(token.TEMPORARY):
		p.next()
		p.next()
		p.expect(token.TABLE)
		return p.parseTempTable(true)
	case p.check(token.VIRTUAL) || p.check(token.PROCEDURE):
		p.match(token.VIRTUAL)
		p.expect(token.PROCEDURE)
		return &core.CreateUpdateProcedureCommand{Block: p.parseBlock(), Virtual: true}
	case p.match(token.TRIGGER):
		t := p.parseTriggerHeader()
		t.Create = true
		t.Definition = p.parseTriggerAction()
		return t
	}
	p.failf(errExpecting, `"LOCAL" | "FOREIGN" | "PROCEDURE" | "TRIGGER"`)
	return nil
}

// parseTempTable parses name "(" column ("," column)* ["," PRIMARY KEY "(" names ")"] ")".
func (p *Parser) parseTempTable(foreign bool) core.Command {
	c := &core.Create{Table: &core.GroupSymbol{Name: p.parseName()}, Foreign: foreign}
	p.expect(token.LPAREN)
	for {
		if p.match(token.PRIMARY) {
			p.expectWord("key")
			p.expect(token.LPAREN)
			c.PrimaryKey = p.parseNameList()
			p.expect(token.RPAREN)
		} else {
			c.Columns = append(c.Columns, p.parseTempColumn())
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	if foreign {
		p.expect(token.ON)
		c.On = p.parseStringLiteral()
	}
	return c
}

// parseTempColumn parses id (SERIAL | type [NOT NULL] [AUTO_INCREMENT]).
func (p *Parser) parseTempColumn() *core.ColumnDef {
	col := &core.ColumnDef{Name: p.parseSimpleName()}
	if p.checkWord("serial") && !p.checkPeek(token.LPAREN) {
		p.next()
		col.Type = core.TypeInteger.String()
		col.NotNull = true
		col.AutoIncrement = true
		return col
	}
	col.Type = p.parseTypeName()
	for {
		switch {
		case p.check(token.NOT):
			p.next()
			p.expect(token.NULL)
			col.NotNull = true
		case p.matchWord("auto_increment"):
			col.AutoIncrement = true
		default:
			return col
		}
	}
}

func (p *Parser) parseDrop() core.Command {
	p.expect(token.DROP)
	p.expect(token.TABLE)
	return &core.Drop{Table: &core.GroupSymbol{Name: p.parseName()}}
}

func (p *Parser) parseAlterCommand() core.Command {
	p.expect(token.ALTER)
	switch {
	case p.matchWord("view"):
		av := &core.AlterView{Target: &core.GroupSymbol{Name: p.parseName()}}
		p.expect(token.AS)
		av.Definition = p.parseQueryExpression()
		return av
	case p.match(token.PROCEDURE):
		ap := &core.AlterProcedure{Target: &core.GroupSymbol{Name: p.parseName()}}
		p.expect(token.AS)
		ap.Definition = p.parseBlock()
		return ap
	case p.match(token.TRIGGER):
		t := p.parseTriggerHeader()
		switch {
		case p.matchWord("enabled"):
			enabled := true
			t.Enabled = &enabled
		case p.matchWord("disabled"):
			enabled := false
			t.Enabled = &enabled
		default:
			t.Definition = p.parseTriggerAction()
		}
		return t
	}
	p.failf(errExpecting, `"VIEW" | "PROCEDURE" | "TRIGGER"`)
	return nil
}

// parseTriggerHeader parses ON name INSTEAD OF (INSERT|UPDATE|DELETE).
func (p *Parser) parseTriggerHeader() *core.AlterTrigger {
	p.expect(token.ON)
	t := &core.AlterTrigger{Target: &core.GroupSymbol{Name: p.parseName()}}
	p.expectWord("instead")
	p.expect(token.OF)
	switch {
	case p.match(token.INSERT):
		t.Event = core.TriggerInsert
	case p.match(token.UPDATE):
		t.Event = core.TriggerUpdate
	case p.match(token.DELETE):
		t.Event = core.TriggerDelete
	default:
		p.failf(errExpecting, `"INSERT" | "UPDATE" | "DELETE"`)
	}
	return t
}

// parseTriggerAction parses AS FOR EACH ROW block.
func (p *Parser) parseTriggerAction() *core.TriggerAction {
	p.expect(token.AS)
	p.expect(token.FOR)
	p.expect(token.EACH)
	p.expect(token.ROW)
	return &core.TriggerAction{Block: p.parseBlock()}
}
