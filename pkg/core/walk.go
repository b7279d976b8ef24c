package core

// Walk traverses an AST depth-first and calls fn for each node.
// If fn returns false, the children of that node are skipped.
func Walk(node Node, fn func(node Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for _, child := range Children(node) {
		Walk(child, fn)
	}
}

// Inspect calls fn for every node of the given type below and including root.
func Inspect[T Node](root Node, fn func(T)) {
	Walk(root, func(n Node) bool {
		if t, ok := n.(T); ok {
			fn(t)
		}
		return true
	})
}

type children []Node

func (c *children) add(nodes ...Node) {
	for _, n := range nodes {
		if n != nil {
			*c = append(*c, n)
		}
	}
}

func (c *children) exprs(list []Expression) {
	for _, e := range list {
		c.add(e)
	}
}

func (c *children) crits(list []Criteria) {
	for _, e := range list {
		c.add(e)
	}
}

func (c *children) derived(list []*DerivedColumn) {
	for _, d := range list {
		c.add(d)
	}
}

func (c *children) elements(list []*ElementSymbol) {
	for _, e := range list {
		c.add(e)
	}
}

func (c *children) setClauses(list []*SetClause) {
	for _, s := range list {
		c.add(s)
	}
}

func (c *children) group(g *GroupSymbol) {
	if g != nil {
		c.add(g)
	}
}

func (c *children) block(b *Block) {
	if b != nil {
		c.add(b)
	}
}

func (c *children) orderBy(o *OrderBy) {
	if o != nil {
		c.add(o)
	}
}

func (c *children) option(o *Option) {
	if o != nil {
		c.add(o)
	}
}

func (c *children) cacheHint(h *CacheHint) {
	if h != nil {
		c.add(h)
	}
}

func (c *children) namespaces(ns *XMLNamespaces) {
	if ns != nil {
		c.add(ns)
	}
}

func (c *children) options(list []*OptionEntry) {
	for _, o := range list {
		c.add(o.Value)
	}
}

// Children returns the direct child nodes of n in source order.
//
//nolint:gocyclo // one case per node type
func Children(n Node) []Node {
	var c children
	switch n := n.(type) {
	case *AliasSymbol:
		c.add(n.Symbol)
	case *ExpressionSymbol:
		c.add(n.Expression)
	case *DerivedColumn:
		c.add(n.Expression)
	case *Function:
		c.exprs(n.Args)
	case *AggregateSymbol:
		c.exprs(n.Args)
		c.orderBy(n.OrderBy)
		c.add(n.Filter)
	case *WindowSpecification:
		c.exprs(n.PartitionBy)
		c.orderBy(n.OrderBy)
	case *WindowFunction:
		if n.Function != nil {
			c.add(n.Function)
		}
		if n.Window != nil {
			c.add(n.Window)
		}
	case *CaseExpression:
		c.add(n.Expression)
		for i := range n.When {
			c.add(n.When[i], n.Then[i])
		}
		c.add(n.Else)
	case *SearchedCaseExpression:
		for i := range n.When {
			c.add(n.When[i], n.Then[i])
		}
		c.add(n.Else)
	case *ScalarSubquery:
		c.add(n.Command)
	case *XMLAttributes:
		c.derived(n.Args)
	case *XMLElement:
		c.namespaces(n.Namespaces)
		if n.Attributes != nil {
			c.add(n.Attributes)
		}
		c.exprs(n.Content)
	case *XMLForest:
		c.namespaces(n.Namespaces)
		c.derived(n.Args)
	case *XMLQuery:
		c.namespaces(n.Namespaces)
		c.derived(n.Passing)
	case *XMLParse:
		c.add(n.Expression)
	case *XMLSerialize:
		c.add(n.Expression)
	case *TextLine:
		c.derived(n.Args)

	case *CompareCriteria:
		c.add(n.Left, n.Right)
	case *CompoundCriteria:
		c.crits(n.Criteria)
	case *NotCriteria:
		c.add(n.Criteria)
	case *MatchCriteria:
		c.add(n.Left, n.Right)
	case *BetweenCriteria:
		c.add(n.Expression, n.Lower, n.Upper)
	case *IsNullCriteria:
		c.add(n.Expression)
	case *SetCriteria:
		c.add(n.Expression)
		c.exprs(n.Values)
	case *SubquerySetCriteria:
		c.add(n.Expression, n.Command)
	case *SubqueryCompareCriteria:
		c.add(n.Left, n.Command)
	case *ExistsCriteria:
		c.add(n.Command)
	case *ExpressionCriteria:
		c.add(n.Expression)
	case *CriteriaSelector:
		c.elements(n.Elements)
	case *HasCriteria:
		if n.Selector != nil {
			c.add(n.Selector)
		}
	case *TranslateCriteria:
		if n.Selector != nil {
			c.add(n.Selector)
		}
		for _, t := range n.Translations {
			c.add(t)
		}

	case *UnaryFromClause:
		c.group(n.Group)
	case *SubqueryFromClause:
		c.add(n.Command)
	case *JoinPredicate:
		c.add(n.Left, n.Right)
		c.crits(n.Criteria)
	case *TextTable:
		c.add(n.File)
	case *XMLTable:
		c.namespaces(n.Namespaces)
		c.derived(n.Passing)
		for _, col := range n.Columns {
			c.add(col.Default)
		}
	case *ArrayTable:
		c.add(n.Expression)

	case *Select:
		for _, s := range n.Symbols {
			c.add(s)
		}
	case *From:
		for _, f := range n.Clauses {
			c.add(f)
		}
	case *Into:
		c.group(n.Group)
	case *GroupBy:
		c.exprs(n.Symbols)
	case *OrderBy:
		for _, item := range n.Items {
			c.add(item)
		}
	case *OrderByItem:
		c.add(n.Expression)
	case *Limit:
		c.add(n.Offset, n.RowCount)
	case *WithQuery:
		c.group(n.Name)
		c.elements(n.Columns)
		c.add(n.Command)
	case *SetClause:
		if n.Symbol != nil {
			c.add(n.Symbol)
		}
		c.add(n.Value)

	case *Query:
		c.cacheHint(n.CacheHint)
		if n.SourceHint != nil {
			c.add(n.SourceHint)
		}
		for _, w := range n.With {
			c.add(w)
		}
		if n.Select != nil {
			c.add(n.Select)
		}
		if n.Into != nil {
			c.add(n.Into)
		}
		if n.From != nil {
			c.add(n.From)
		}
		c.add(n.Where)
		if n.GroupBy != nil {
			c.add(n.GroupBy)
		}
		c.add(n.Having)
		c.orderBy(n.OrderBy)
		if n.Limit != nil {
			c.add(n.Limit)
		}
		c.option(n.Option)
	case *SetQuery:
		c.cacheHint(n.CacheHint)
		for _, w := range n.With {
			c.add(w)
		}
		c.add(n.Left, n.Right)
		c.orderBy(n.OrderBy)
		if n.Limit != nil {
			c.add(n.Limit)
		}
		c.option(n.Option)
	case *Insert:
		c.group(n.Group)
		c.elements(n.Columns)
		c.exprs(n.Values)
		c.add(n.Query)
		c.option(n.Option)
	case *Update:
		c.group(n.Group)
		c.setClauses(n.Changes)
		c.add(n.Where)
		c.option(n.Option)
	case *Delete:
		c.group(n.Group)
		c.add(n.Where)
		c.option(n.Option)
	case *StoredProcedure:
		c.cacheHint(n.CacheHint)
		if n.ReturnParameter != nil {
			c.add(n.ReturnParameter)
		}
		for _, p := range n.Parameters {
			c.add(p)
		}
		c.option(n.Option)
	case *SPParameter:
		c.add(n.Expression)
	case *DynamicCommand:
		c.add(n.SQL)
		c.group(n.Into)
		c.setClauses(n.Using)
	case *Create:
		c.group(n.Table)
	case *Drop:
		c.group(n.Table)
	case *AlterView:
		c.group(n.Target)
		c.add(n.Definition)
	case *AlterProcedure:
		c.group(n.Target)
		c.block(n.Definition)
	case *AlterTrigger:
		c.group(n.Target)
		if n.Definition != nil {
			c.add(n.Definition)
		}
	case *TriggerAction:
		c.block(n.Block)
	case *CreateUpdateProcedureCommand:
		c.block(n.Block)

	case *Block:
		for _, s := range n.Statements {
			c.add(s)
		}
	case *DeclareStatement:
		if n.Variable != nil {
			c.add(n.Variable)
		}
		c.add(n.Value)
	case *AssignmentStatement:
		if n.Variable != nil {
			c.add(n.Variable)
		}
		c.add(n.Value)
	case *CommandStatement:
		c.add(n.Command)
	case *IfStatement:
		c.add(n.Condition)
		c.block(n.IfBlock)
		c.block(n.ElseBlock)
	case *LoopStatement:
		c.add(n.Command)
		c.block(n.Block)
	case *WhileStatement:
		c.add(n.Condition)
		c.block(n.Block)
	case *RaiseErrorStatement:
		c.add(n.Expression)

	case *CreateTable:
		for _, col := range n.Columns {
			c.add(col.Default)
			c.options(col.Options)
		}
		for _, con := range n.Constraints {
			c.exprs(con.Expressions)
			c.options(con.Options)
		}
		c.options(n.Options)
		c.add(n.Query)
	case *CreateProcedure:
		for _, p := range n.Parameters {
			c.add(p.Default)
			c.options(p.Options)
		}
		c.options(n.Options)
		c.add(n.Body)
	case *AlterOptions:
		for _, ch := range n.Changes {
			c.add(ch.Value)
		}
	}
	return c
}
