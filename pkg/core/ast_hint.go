package core

// FromHints are the planner hints a FROM item can carry, written as
// /*+ ... */ before the item.
type FromHints struct {
	Optional   bool
	MakeDep    bool
	MakeNotDep bool
	MakeInd    bool
	NoUnnest   bool
	Preserve   bool
}

// Any reports whether at least one hint is set.
func (h *FromHints) Any() bool {
	return h != nil && (h.Optional || h.MakeDep || h.MakeNotDep || h.MakeInd || h.NoUnnest || h.Preserve)
}

// SubqueryHint controls how a subquery predicate is planned.
type SubqueryHint struct {
	MergeJoin bool
	DepJoin   bool
	NoUnnest  bool
}

// Any reports whether at least one hint is set.
func (h *SubqueryHint) Any() bool {
	return h != nil && (h.MergeJoin || h.DepJoin || h.NoUnnest)
}

// CacheScope is the sharing scope of a cached result.
type CacheScope string

// Cache scopes.
const (
	ScopeNone    CacheScope = ""
	ScopeSession CacheScope = "session"
	ScopeUser    CacheScope = "user"
	ScopeVDB     CacheScope = "vdb"
)

// CacheHint is /*+ cache[(pref_mem ttl:N updatable scope:s)] */.
type CacheHint struct {
	PrefersMemory bool
	TTL           *int64 // milliseconds
	Updatable     bool
	Scope         CacheScope
}

// SpecificHint is a translator specific source hint, name:'text'.
type SpecificHint struct {
	Translator  string
	Hint        string
	KeepAliases bool
}

// SourceHint carries text passed through to the source query.
type SourceHint struct {
	General     string
	KeepAliases bool
	Specific    []*SpecificHint
}

// Option is the trailing OPTION clause of a command.
type Option struct {
	MakeDep       []string
	MakeNotDep    []string
	NoCache       bool
	NoCacheGroups []string
}
