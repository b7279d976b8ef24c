package core

// Block is BEGIN [ATOMIC] statements END.
type Block struct {
	Atomic     bool
	Statements []Statement
}

// DeclareStatement is DECLARE type name [= value].
type DeclareStatement struct {
	Variable     *ElementSymbol
	VariableType string
	Value        Expression
}

// AssignmentStatement is name = value. A command on the right-hand side is
// held as a ScalarSubquery.
type AssignmentStatement struct {
	Variable *ElementSymbol
	Value    Expression
}

// CommandStatement runs a command inside a block.
type CommandStatement struct {
	Command Command
}

// IfStatement is IF (crit) block [ELSE block]. A bare statement body is
// wrapped into a single statement Block.
type IfStatement struct {
	Condition Criteria
	IfBlock   *Block
	ElseBlock *Block
}

// LoopStatement is LOOP ON (command) AS cursor block.
type LoopStatement struct {
	Command Command
	Cursor  string
	Block   *Block
}

// WhileStatement is WHILE (crit) block.
type WhileStatement struct {
	Condition Criteria
	Block     *Block
}

// BranchingMode is BREAK or CONTINUE.
type BranchingMode int

// Branching modes.
const (
	BranchBreak BranchingMode = iota
	BranchContinue
)

// BranchingStatement is BREAK or CONTINUE.
type BranchingStatement struct {
	Mode BranchingMode
}

// RaiseErrorStatement is ERROR expr.
type RaiseErrorStatement struct {
	Expression Expression
}

func (*Block) statementNode()               {}
func (*DeclareStatement) statementNode()    {}
func (*AssignmentStatement) statementNode() {}
func (*CommandStatement) statementNode()    {}
func (*IfStatement) statementNode()         {}
func (*LoopStatement) statementNode()       {}
func (*WhileStatement) statementNode()      {}
func (*BranchingStatement) statementNode()  {}
func (*RaiseErrorStatement) statementNode() {}
