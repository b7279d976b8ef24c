package core

// Visitor has one method per concrete node type. Adding a node type adds a
// method here, so every implementation fails to compile until it handles
// the new node.
type Visitor interface {
	// Symbols and expressions
	VisitElementSymbol(n *ElementSymbol)
	VisitGroupSymbol(n *GroupSymbol)
	VisitAliasSymbol(n *AliasSymbol)
	VisitExpressionSymbol(n *ExpressionSymbol)
	VisitMultipleElementSymbol(n *MultipleElementSymbol)
	VisitDerivedColumn(n *DerivedColumn)
	VisitConstant(n *Constant)
	VisitReference(n *Reference)
	VisitFunction(n *Function)
	VisitAggregateSymbol(n *AggregateSymbol)
	VisitWindowSpecification(n *WindowSpecification)
	VisitWindowFunction(n *WindowFunction)
	VisitCaseExpression(n *CaseExpression)
	VisitSearchedCaseExpression(n *SearchedCaseExpression)
	VisitScalarSubquery(n *ScalarSubquery)
	VisitXMLNamespaces(n *XMLNamespaces)
	VisitXMLAttributes(n *XMLAttributes)
	VisitXMLElement(n *XMLElement)
	VisitXMLForest(n *XMLForest)
	VisitXMLQuery(n *XMLQuery)
	VisitXMLParse(n *XMLParse)
	VisitXMLSerialize(n *XMLSerialize)
	VisitTextLine(n *TextLine)

	// Criteria
	VisitCompareCriteria(n *CompareCriteria)
	VisitCompoundCriteria(n *CompoundCriteria)
	VisitNotCriteria(n *NotCriteria)
	VisitMatchCriteria(n *MatchCriteria)
	VisitBetweenCriteria(n *BetweenCriteria)
	VisitIsNullCriteria(n *IsNullCriteria)
	VisitSetCriteria(n *SetCriteria)
	VisitSubquerySetCriteria(n *SubquerySetCriteria)
	VisitSubqueryCompareCriteria(n *SubqueryCompareCriteria)
	VisitExistsCriteria(n *ExistsCriteria)
	VisitExpressionCriteria(n *ExpressionCriteria)
	VisitCriteriaSelector(n *CriteriaSelector)
	VisitHasCriteria(n *HasCriteria)
	VisitTranslateCriteria(n *TranslateCriteria)

	// FROM items
	VisitUnaryFromClause(n *UnaryFromClause)
	VisitSubqueryFromClause(n *SubqueryFromClause)
	VisitJoinPredicate(n *JoinPredicate)
	VisitTextTable(n *TextTable)
	VisitXMLTable(n *XMLTable)
	VisitArrayTable(n *ArrayTable)

	// Clauses and hints
	VisitSelect(n *Select)
	VisitFrom(n *From)
	VisitInto(n *Into)
	VisitGroupBy(n *GroupBy)
	VisitOrderBy(n *OrderBy)
	VisitOrderByItem(n *OrderByItem)
	VisitLimit(n *Limit)
	VisitWithQuery(n *WithQuery)
	VisitSetClause(n *SetClause)
	VisitOption(n *Option)
	VisitCacheHint(n *CacheHint)
	VisitSourceHint(n *SourceHint)

	// Commands
	VisitQuery(n *Query)
	VisitSetQuery(n *SetQuery)
	VisitInsert(n *Insert)
	VisitUpdate(n *Update)
	VisitDelete(n *Delete)
	VisitStoredProcedure(n *StoredProcedure)
	VisitSPParameter(n *SPParameter)
	VisitDynamicCommand(n *DynamicCommand)
	VisitCreate(n *Create)
	VisitDrop(n *Drop)
	VisitAlterView(n *AlterView)
	VisitAlterProcedure(n *AlterProcedure)
	VisitAlterTrigger(n *AlterTrigger)
	VisitTriggerAction(n *TriggerAction)
	VisitCreateUpdateProcedureCommand(n *CreateUpdateProcedureCommand)

	// Procedural statements
	VisitBlock(n *Block)
	VisitDeclareStatement(n *DeclareStatement)
	VisitAssignmentStatement(n *AssignmentStatement)
	VisitCommandStatement(n *CommandStatement)
	VisitIfStatement(n *IfStatement)
	VisitLoopStatement(n *LoopStatement)
	VisitWhileStatement(n *WhileStatement)
	VisitBranchingStatement(n *BranchingStatement)
	VisitRaiseErrorStatement(n *RaiseErrorStatement)

	// DDL
	VisitCreateTable(n *CreateTable)
	VisitCreateProcedure(n *CreateProcedure)
	VisitAlterOptions(n *AlterOptions)
	VisitSetNamespace(n *SetNamespace)
}

// Accept implements Node.
func (n *ElementSymbol) Accept(v Visitor) { v.VisitElementSymbol(n) }

// Accept implements Node.
func (n *GroupSymbol) Accept(v Visitor) { v.VisitGroupSymbol(n) }

// Accept implements Node.
func (n *AliasSymbol) Accept(v Visitor) { v.VisitAliasSymbol(n) }

// Accept implements Node.
func (n *ExpressionSymbol) Accept(v Visitor) { v.VisitExpressionSymbol(n) }

// Accept implements Node.
func (n *MultipleElementSymbol) Accept(v Visitor) { v.VisitMultipleElementSymbol(n) }

// Accept implements Node.
func (n *DerivedColumn) Accept(v Visitor) { v.VisitDerivedColumn(n) }

// Accept implements Node.
func (n *Constant) Accept(v Visitor) { v.VisitConstant(n) }

// Accept implements Node.
func (n *Reference) Accept(v Visitor) { v.VisitReference(n) }

// Accept implements Node.
func (n *Function) Accept(v Visitor) { v.VisitFunction(n) }

// Accept implements Node.
func (n *AggregateSymbol) Accept(v Visitor) { v.VisitAggregateSymbol(n) }

// Accept implements Node.
func (n *WindowSpecification) Accept(v Visitor) { v.VisitWindowSpecification(n) }

// Accept implements Node.
func (n *WindowFunction) Accept(v Visitor) { v.VisitWindowFunction(n) }

// Accept implements Node.
func (n *CaseExpression) Accept(v Visitor) { v.VisitCaseExpression(n) }

// Accept implements Node.
func (n *SearchedCaseExpression) Accept(v Visitor) { v.VisitSearchedCaseExpression(n) }

// Accept implements Node.
func (n *ScalarSubquery) Accept(v Visitor) { v.VisitScalarSubquery(n) }

// Accept implements Node.
func (n *XMLNamespaces) Accept(v Visitor) { v.VisitXMLNamespaces(n) }

// Accept implements Node.
func (n *XMLAttributes) Accept(v Visitor) { v.VisitXMLAttributes(n) }

// Accept implements Node.
func (n *XMLElement) Accept(v Visitor) { v.VisitXMLElement(n) }

// Accept implements Node.
func (n *XMLForest) Accept(v Visitor) { v.VisitXMLForest(n) }

// Accept implements Node.
func (n *XMLQuery) Accept(v Visitor) { v.VisitXMLQuery(n) }

// Accept implements Node.
func (n *XMLParse) Accept(v Visitor) { v.VisitXMLParse(n) }

// Accept implements Node.
func (n *XMLSerialize) Accept(v Visitor) { v.VisitXMLSerialize(n) }

// Accept implements Node.
func (n *TextLine) Accept(v Visitor) { v.VisitTextLine(n) }

// Accept implements Node.
func (n *CompareCriteria) Accept(v Visitor) { v.VisitCompareCriteria(n) }

// Accept implements Node.
func (n *CompoundCriteria) Accept(v Visitor) { v.VisitCompoundCriteria(n) }

// Accept implements Node.
func (n *NotCriteria) Accept(v Visitor) { v.VisitNotCriteria(n) }

// Accept implements Node.
func (n *MatchCriteria) Accept(v Visitor) { v.VisitMatchCriteria(n) }

// Accept implements Node.
func (n *BetweenCriteria) Accept(v Visitor) { v.VisitBetweenCriteria(n) }

// Accept implements Node.
func (n *IsNullCriteria) Accept(v Visitor) { v.VisitIsNullCriteria(n) }

// Accept implements Node.
func (n *SetCriteria) Accept(v Visitor) { v.VisitSetCriteria(n) }

// Accept implements Node.
func (n *SubquerySetCriteria) Accept(v Visitor) { v.VisitSubquerySetCriteria(n) }

// Accept implements Node.
func (n *SubqueryCompareCriteria) Accept(v Visitor) { v.VisitSubqueryCompareCriteria(n) }

// Accept implements Node.
func (n *ExistsCriteria) Accept(v Visitor) { v.VisitExistsCriteria(n) }

// Accept implements Node.
func (n *ExpressionCriteria) Accept(v Visitor) { v.VisitExpressionCriteria(n) }

// Accept implements Node.
func (n *CriteriaSelector) Accept(v Visitor) { v.VisitCriteriaSelector(n) }

// Accept implements Node.
func (n *HasCriteria) Accept(v Visitor) { v.VisitHasCriteria(n) }

// Accept implements Node.
func (n *TranslateCriteria) Accept(v Visitor) { v.VisitTranslateCriteria(n) }

// Accept implements Node.
func (n *UnaryFromClause) Accept(v Visitor) { v.VisitUnaryFromClause(n) }

// Accept implements Node.
func (n *SubqueryFromClause) Accept(v Visitor) { v.VisitSubqueryFromClause(n) }

// Accept implements Node.
func (n *JoinPredicate) Accept(v Visitor) { v.VisitJoinPredicate(n) }

// Accept implements Node.
func (n *TextTable) Accept(v Visitor) { v.VisitTextTable(n) }

// Accept implements Node.
func (n *XMLTable) Accept(v Visitor) { v.VisitXMLTable(n) }

// Accept implements Node.
func (n *ArrayTable) Accept(v Visitor) { v.VisitArrayTable(n) }

// Accept implements Node.
func (n *Select) Accept(v Visitor) { v.VisitSelect(n) }

// Accept implements Node.
func (n *From) Accept(v Visitor) { v.VisitFrom(n) }

// Accept implements Node.
func (n *Into) Accept(v Visitor) { v.VisitInto(n) }

// Accept implements Node.
func (n *GroupBy) Accept(v Visitor) { v.VisitGroupBy(n) }

// Accept implements Node.
func (n *OrderBy) Accept(v Visitor) { v.VisitOrderBy(n) }

// Accept implements Node.
func (n *OrderByItem) Accept(v Visitor) { v.VisitOrderByItem(n) }

// Accept implements Node.
func (n *Limit) Accept(v Visitor) { v.VisitLimit(n) }

// Accept implements Node.
func (n *WithQuery) Accept(v Visitor) { v.VisitWithQuery(n) }

// Accept implements Node.
func (n *SetClause) Accept(v Visitor) { v.VisitSetClause(n) }

// Accept implements Node.
func (n *Option) Accept(v Visitor) { v.VisitOption(n) }

// Accept implements Node.
func (n *CacheHint) Accept(v Visitor) { v.VisitCacheHint(n) }

// Accept implements Node.
func (n *SourceHint) Accept(v Visitor) { v.VisitSourceHint(n) }

// Accept implements Node.
func (n *Query) Accept(v Visitor) { v.VisitQuery(n) }

// Accept implements Node.
func (n *SetQuery) Accept(v Visitor) { v.VisitSetQuery(n) }

// Accept implements Node.
func (n *Insert) Accept(v Visitor) { v.VisitInsert(n) }

// Accept implements Node.
func (n *Update) Accept(v Visitor) { v.VisitUpdate(n) }

// Accept implements Node.
func (n *Delete) Accept(v Visitor) { v.VisitDelete(n) }

// Accept implements Node.
func (n *StoredProcedure) Accept(v Visitor) { v.VisitStoredProcedure(n) }

// Accept implements Node.
func (n *SPParameter) Accept(v Visitor) { v.VisitSPParameter(n) }

// Accept implements Node.
func (n *DynamicCommand) Accept(v Visitor) { v.VisitDynamicCommand(n) }

// Accept implements Node.
func (n *Create) Accept(v Visitor) { v.VisitCreate(n) }

// Accept implements Node.
func (n *Drop) Accept(v Visitor) { v.VisitDrop(n) }

// Accept implements Node.
func (n *AlterView) Accept(v Visitor) { v.VisitAlterView(n) }

// Accept implements Node.
func (n *AlterProcedure) Accept(v Visitor) { v.VisitAlterProcedure(n) }

// Accept implements Node.
func (n *AlterTrigger) Accept(v Visitor) { v.VisitAlterTrigger(n) }

// Accept implements Node.
func (n *TriggerAction) Accept(v Visitor) { v.VisitTriggerAction(n) }

// Accept implements Node.
func (n *CreateUpdateProcedureCommand) Accept(v Visitor) { v.VisitCreateUpdateProcedureCommand(n) }

// Accept implements Node.
func (n *Block) Accept(v Visitor) { v.VisitBlock(n) }

// Accept implements Node.
func (n *DeclareStatement) Accept(v Visitor) { v.VisitDeclareStatement(n) }

// Accept implements Node.
func (n *AssignmentStatement) Accept(v Visitor) { v.VisitAssignmentStatement(n) }

// Accept implements Node.
func (n *CommandStatement) Accept(v Visitor) { v.VisitCommandStatement(n) }

// Accept implements Node.
func (n *IfStatement) Accept(v Visitor) { v.VisitIfStatement(n) }

// Accept implements Node.
func (n *LoopStatement) Accept(v Visitor) { v.VisitLoopStatement(n) }

// Accept implements Node.
func (n *WhileStatement) Accept(v Visitor) { v.VisitWhileStatement(n) }

// Accept implements Node.
func (n *BranchingStatement) Accept(v Visitor) { v.VisitBranchingStatement(n) }

// Accept implements Node.
func (n *RaiseErrorStatement) Accept(v Visitor) { v.VisitRaiseErrorStatement(n) }

// Accept implements Node.
func (n *CreateTable) Accept(v Visitor) { v.VisitCreateTable(n) }

// Accept implements Node.
func (n *CreateProcedure) Accept(v Visitor) { v.VisitCreateProcedure(n) }

// Accept implements Node.
func (n *AlterOptions) Accept(v Visitor) { v.VisitAlterOptions(n) }

// Accept implements Node.
func (n *SetNamespace) Accept(v Visitor) { v.VisitSetNamespace(n) }
