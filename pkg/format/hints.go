package format

import (
	"strconv"
	"strings"

	"github.com/teiid/teiid-sub017/pkg/core"
)

// fromHints writes the hint comment of a FROM item followed by a space.
func (p *Printer) fromHints(h *core.FromHints) {
	if !h.Any() {
		return
	}
	var words []string
	if h.Optional {
		words = append(words, "optional")
	}
	if h.MakeDep {
		words = append(words, "MAKEDEP")
	}
	if h.MakeNotDep {
		words = append(words, "MAKENOTDEP")
	}
	if h.MakeInd {
		words = append(words, "MAKEIND")
	}
	if h.NoUnnest {
		words = append(words, "NO_UNNEST")
	}
	if h.Preserve {
		words = append(words, "PRESERVE")
	}
	p.write("/*+ " + strings.Join(words, " ") + " */ ")
}

// subqueryHint writes the hint comment of an IN or EXISTS subquery
// followed by a space. DJ implies MJ.
func (p *Printer) subqueryHint(h *core.SubqueryHint) {
	if !h.Any() {
		return
	}
	var words []string
	switch {
	case h.DepJoin:
		words = append(words, "DJ")
	case h.MergeJoin:
		words = append(words, "MJ")
	}
	if h.NoUnnest {
		words = append(words, "NO_UNNEST")
	}
	p.write("/*+ " + strings.Join(words, " ") + " */ ")
}

// cacheHint writes the cache hint of a command followed by a space.
func (p *Printer) cacheHint(h *core.CacheHint) {
	if h != nil {
		p.VisitCacheHint(h)
		p.space()
	}
}

// VisitCacheHint renders /*+ cache[(pref_mem ttl:N updatable scope:s)] */.
func (p *Printer) VisitCacheHint(n *core.CacheHint) {
	var opts []string
	if n.PrefersMemory {
		opts = append(opts, "pref_mem")
	}
	if n.TTL != nil {
		opts = append(opts, "ttl:"+strconv.FormatInt(*n.TTL, 10))
	}
	if n.Updatable {
		opts = append(opts, "updatable")
	}
	if n.Scope != core.ScopeNone {
		opts = append(opts, "scope:"+string(n.Scope))
	}
	p.write("/*+ cache")
	if len(opts) > 0 {
		p.write("(" + strings.Join(opts, " ") + ")")
	}
	p.write(" */")
}

// VisitSourceHint renders the source hint. Unlike every other hint it has
// no space after the opening /*+.
func (p *Printer) VisitSourceHint(n *core.SourceHint) {
	p.write("/*+sh")
	if n.KeepAliases {
		p.write(" KEEP ALIASES")
	}
	if n.General != "" {
		p.write(":" + quoteString(n.General))
	}
	for _, s := range n.Specific {
		p.write(" " + s.Translator)
		if s.KeepAliases {
			p.write(" KEEP ALIASES")
		}
		p.write(":" + quoteString(s.Hint))
	}
	p.write(" */")
}

// VisitOption renders OPTION [MAKEDEP ...] [MAKENOTDEP ...] [NOCACHE [...]].
func (p *Printer) VisitOption(n *core.Option) {
	p.write("OPTION")
	if len(n.MakeDep) > 0 {
		p.write(" MAKEDEP ")
		p.names(n.MakeDep)
	}
	if len(n.MakeNotDep) > 0 {
		p.write(" MAKENOTDEP ")
		p.names(n.MakeNotDep)
	}
	if n.NoCache {
		p.write(" NOCACHE")
		if len(n.NoCacheGroups) > 0 {
			p.space()
			p.names(n.NoCacheGroups)
		}
	}
}

// option writes a space and the OPTION clause when there is one.
func (p *Printer) option(o *core.Option) {
	if o != nil {
		p.space()
		p.VisitOption(o)
	}
}
