package format

import (
	"github.com/teiid/teiid-sub017/pkg/core"
)

// VisitBlock renders BEGIN, one statement per line indented a level
// deeper, and END.
func (p *Printer) VisitBlock(n *core.Block) {
	if n.Atomic {
		p.write("BEGIN ATOMIC")
	} else {
		p.write("BEGIN")
	}
	p.writeln()
	p.indent()
	for _, s := range n.Statements {
		p.node(s)
		p.writeln()
	}
	p.dedent()
	p.write("END")
}

func (p *Printer) VisitDeclareStatement(n *core.DeclareStatement) {
	p.write("DECLARE " + n.VariableType + " ")
	p.VisitElementSymbol(n.Variable)
	if n.Value != nil {
		p.write(" = ")
		p.expr(n.Value)
	}
	p.write(";")
}

// VisitAssignmentStatement renders name = value;. A query on the right is
// a scalar subquery and so comes out parenthesized.
func (p *Printer) VisitAssignmentStatement(n *core.AssignmentStatement) {
	p.VisitElementSymbol(n.Variable)
	p.write(" = ")
	p.expr(n.Value)
	p.write(";")
}

func (p *Printer) VisitCommandStatement(n *core.CommandStatement) {
	p.node(n.Command)
	p.write(";")
}

// VisitIfStatement always renders the branches as blocks.
func (p *Printer) VisitIfStatement(n *core.IfStatement) {
	p.write("IF(")
	p.crit(n.Condition)
	p.write(")")
	p.writeln()
	p.VisitBlock(n.IfBlock)
	if n.ElseBlock != nil {
		p.writeln()
		p.write("ELSE")
		p.writeln()
		p.VisitBlock(n.ElseBlock)
	}
}

func (p *Printer) VisitLoopStatement(n *core.LoopStatement) {
	p.write("LOOP ON (")
	p.node(n.Command)
	p.write(") AS ")
	p.id(n.Cursor)
	p.writeln()
	p.VisitBlock(n.Block)
}

func (p *Printer) VisitWhileStatement(n *core.WhileStatement) {
	p.write("WHILE(")
	p.crit(n.Condition)
	p.write(")")
	p.writeln()
	p.VisitBlock(n.Block)
}

func (p *Printer) VisitBranchingStatement(n *core.BranchingStatement) {
	if n.Mode == core.BranchContinue {
		p.write("CONTINUE;")
		return
	}
	p.write("BREAK;")
}

func (p *Printer) VisitRaiseErrorStatement(n *core.RaiseErrorStatement) {
	p.write("ERROR ")
	p.expr(n.Expression)
	p.write(";")
}
