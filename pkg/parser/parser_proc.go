package parser

import (
	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/token"
)

// Procedural block language.
//
// Grammar:
//
//	block      → BEGIN [ATOMIC] statement* END
//	statement  → block
//	           | IF "(" condition ")" body [ELSE body]
//	           | LOOP ON "(" query_expr ")" AS id block
//	           | WHILE "(" condition ")" body
//	           | DECLARE type name ["=" value] ";"
//	           | name "=" value ";"
//	           | BREAK ";" | CONTINUE ";" | ERROR expr ";"
//	           | command ";"
//	body       → block | statement
//	value      → query_expr | exec | expr

// parseBlock parses BEGIN [ATOMIC] ... END.
func (p *Parser) parseBlock() *core.Block {
	p.expect(token.BEGIN)
	b := &core.Block{Atomic: p.match(token.ATOMIC)}
	for !p.check(token.END) {
		if p.check(token.EOF) {
			p.failf(errExpecting, `"END"`)
		}
		b.Statements = append(b.Statements, p.parseStatement())
	}
	p.expect(token.END)
	return b
}

// parseBody parses the body of IF, ELSE and WHILE. A single statement is
// wrapped into a block.
func (p *Parser) parseBody() *core.Block {
	if p.check(token.BEGIN) {
		return p.parseBlock()
	}
	return &core.Block{Statements: []core.Statement{p.parseStatement()}}
}

func (p *Parser) parseStatement() core.Statement {
	switch p.tok().Type {
	case token.BEGIN:
		b := p.parseBlock()
		p.match(token.SEMICOLON)
		return b
	case token.IF:
		return p.parseIf()
	case token.LOOP:
		return p.parseLoop()
	case token.WHILE:
		p.next()
		w := &core.WhileStatement{Condition: p.parseParenthesizedCondition()}
		w.Block = p.parseBody()
		return w
	case token.DECLARE:
		return p.parseDeclare()
	case token.BREAK:
		p.next()
		p.expect(token.SEMICOLON)
		return &core.BranchingStatement{Mode: core.BranchBreak}
	case token.CONTINUE:
		p.next()
		p.expect(token.SEMICOLON)
		return &core.BranchingStatement{Mode: core.BranchContinue}
	case token.ERROR:
		p.next()
		s := &core.RaiseErrorStatement{Expression: p.parseExpression()}
		p.expect(token.SEMICOLON)
		return s
	}

	if n := p.lookaheadName(); n > 0 && p.peekAt(n).Type == token.EQ {
		s := &core.AssignmentStatement{Variable: &core.ElementSymbol{Name: p.parseName()}}
		p.expect(token.EQ)
		s.Value = p.parseAssignedValue()
		p.expect(token.SEMICOLON)
		return s
	}

	s := &core.CommandStatement{Command: p.parseCommand()}
	p.expect(token.SEMICOLON)
	return s
}

func (p *Parser) parseIf() core.Statement {
	p.expect(token.IF)
	s := &core.IfStatement{Condition: p.parseParenthesizedCondition()}
	s.IfBlock = p.parseBody()
	if p.match(token.ELSE) {
		s.ElseBlock = p.parseBody()
	}
	return s
}

func (p *Parser) parseLoop() core.Statement {
	p.expect(token.LOOP)
	p.expect(token.ON)
	s := &core.LoopStatement{Command: p.parseSubqueryInParens()}
	p.expect(token.AS)
	s.Cursor = p.parseIdentifier()
	s.Block = p.parseBlock()
	return s
}

// parseDeclare parses DECLARE type name [= value];
func (p *Parser) parseDeclare() core.Statement {
	p.expect(token.DECLARE)
	s := &core.DeclareStatement{VariableType: p.parseTypeName()}
	s.Variable = &core.ElementSymbol{Name: p.parseName()}
	if p.match(token.EQ) {
		s.Value = p.parseAssignedValue()
	}
	p.expect(token.SEMICOLON)
	return s
}

// parseAssignedValue parses the right-hand side of an assignment. A bare
// query or procedure call becomes a scalar subquery.
func (p *Parser) parseAssignedValue() core.Expression {
	switch p.tok().Type {
	case token.SELECT, token.WITH, token.EXEC, token.EXECUTE:
		return &core.ScalarSubquery{Command: p.parseSubqueryCommand()}
	}
	return p.parseExpression()
}

func (p *Parser) parseParenthesizedCondition() core.Criteria {
	p.expect(token.LPAREN)
	c := p.parseCondition()
	p.expect(token.RPAREN)
	return c
}
