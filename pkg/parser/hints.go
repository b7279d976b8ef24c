package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/teiid/teiid-sub017/pkg/core"
)

// Hint comments. The lexer attaches the payload of every /*+ ... */
// comment to the token that follows it; the grammar decides what the
// payload means from where that token appears.

var (
	cachePattern = regexp.MustCompile(`(?is)^cache\s*(?:\((.*)\))?\s*$`)
	hintWords    = regexp.MustCompile(`[\s,]+`)
)

// fromHints interprets hints before a FROM item.
func fromHints(payloads []string) core.FromHints {
	var h core.FromHints
	for _, payload := range payloads {
		for _, word := range hintWords.Split(payload, -1) {
			if i := strings.IndexByte(word, '('); i >= 0 {
				word = word[:i]
			}
			switch strings.ToLower(word) {
			case "optional":
				h.Optional = true
			case "makedep":
				h.MakeDep = true
			case "makenotdep":
				h.MakeNotDep = true
			case "makeind":
				h.MakeInd = true
			case "no_unnest":
				h.NoUnnest = true
			case "preserve":
				h.Preserve = true
			}
		}
	}
	return h
}

// mergeFromHints adds the hints set in extra to h.
func mergeFromHints(h *core.FromHints, extra core.FromHints) {
	h.Optional = h.Optional || extra.Optional
	h.MakeDep = h.MakeDep || extra.MakeDep
	h.MakeNotDep = h.MakeNotDep || extra.MakeNotDep
	h.MakeInd = h.MakeInd || extra.MakeInd
	h.NoUnnest = h.NoUnnest || extra.NoUnnest
	h.Preserve = h.Preserve || extra.Preserve
}

// subqueryHint interprets hints before the parenthesis of an IN or EXISTS
// subquery. It returns nil when no subquery hint is present.
func subqueryHint(payloads []string) *core.SubqueryHint {
	var h core.SubqueryHint
	for _, payload := range payloads {
		for _, word := range hintWords.Split(payload, -1) {
			switch strings.ToLower(word) {
			case "mj":
				h.MergeJoin = true
			case "dj":
				h.MergeJoin = true
				h.DepJoin = true
			case "no_unnest":
				h.NoUnnest = true
			}
		}
	}
	if !h.Any() {
		return nil
	}
	return &h
}

// hasHint reports whether any payload contains the given word.
func hasHint(payloads []string, word string) bool {
	for _, payload := range payloads {
		for _, w := range hintWords.Split(payload, -1) {
			if strings.EqualFold(w, word) {
				return true
			}
		}
	}
	return false
}

// cacheHint interprets a /*+ cache(...) */ hint before a command.
func cacheHint(payloads []string) *core.CacheHint {
	for _, payload := range payloads {
		m := cachePattern.FindStringSubmatch(payload)
		if m == nil {
			continue
		}
		h := &core.CacheHint{}
		for _, opt := range strings.Fields(m[1]) {
			key, value, _ := strings.Cut(opt, ":")
			switch strings.ToLower(key) {
			case "pref_mem":
				h.PrefersMemory = true
			case "updatable":
				h.Updatable = true
			case "ttl":
				if ttl, err := strconv.ParseInt(value, 10, 64); err == nil {
					h.TTL = &ttl
				}
			case "scope":
				switch s := core.CacheScope(strings.ToLower(value)); s {
				case core.ScopeSession, core.ScopeUser, core.ScopeVDB:
					h.Scope = s
				}
			}
		}
		return h
	}
	return nil
}

// sourceHint interprets a source hint after SELECT. The payload is
// "sh [KEEP ALIASES][:'text'] (name [KEEP ALIASES]:'text')*".
func sourceHint(payloads []string) *core.SourceHint {
	for _, payload := range payloads {
		if h, ok := parseSourceHint(payload); ok {
			return h
		}
	}
	return nil
}

func parseSourceHint(payload string) (*core.SourceHint, bool) {
	s := &hintScanner{input: payload}
	name := s.word()
	if !strings.EqualFold(name, "sh") {
		return nil, false
	}
	h := &core.SourceHint{}
	first := true
	for name != "" {
		keep := s.keepAliases()
		text, hasText := "", false
		if s.consume(':') {
			var ok bool
			if text, ok = s.quoted(); !ok {
				return nil, false
			}
			hasText = true
		}
		switch {
		case first:
			h.General, h.KeepAliases = text, keep
		case hasText:
			h.Specific = append(h.Specific, &core.SpecificHint{Translator: name, Hint: text, KeepAliases: keep})
		default:
			return nil, false
		}
		first = false
		name = s.word()
	}
	if !s.done() {
		return nil, false
	}
	return h, true
}

// hintScanner is a tiny scanner for the source hint payload.
type hintScanner struct {
	input string
	pos   int
}

func (s *hintScanner) skipSpace() {
	for s.pos < len(s.input) && strings.IndexByte(" \t\r\n", s.input[s.pos]) >= 0 {
		s.pos++
	}
}

func (s *hintScanner) word() string {
	s.skipSpace()
	start := s.pos
	for s.pos < len(s.input) {
		c := s.input[s.pos]
		if c != '_' && !('a' <= c && c <= 'z') && !('A' <= c && c <= 'Z') && !('0' <= c && c <= '9') {
			break
		}
		s.pos++
	}
	return s.input[start:s.pos]
}

func (s *hintScanner) keepAliases() bool {
	save := s.pos
	if strings.EqualFold(s.word(), "keep") && strings.EqualFold(s.word(), "aliases") {
		return true
	}
	s.pos = save
	return false
}

func (s *hintScanner) consume(c byte) bool {
	s.skipSpace()
	if s.pos < len(s.input) && s.input[s.pos] == c {
		s.pos++
		return true
	}
	return false
}

// quoted reads a '...' string with '' escapes.
func (s *hintScanner) quoted() (string, bool) {
	if !s.consume('\'') {
		return "", false
	}
	var b strings.Builder
	for s.pos < len(s.input) {
		c := s.input[s.pos]
		s.pos++
		if c != '\'' {
			b.WriteByte(c)
			continue
		}
		if s.pos < len(s.input) && s.input[s.pos] == '\'' {
			b.WriteByte('\'')
			s.pos++
			continue
		}
		return b.String(), true
	}
	return "", false
}

func (s *hintScanner) done() bool {
	s.skipSpace()
	return s.pos == len(s.input)
}
