package glossary

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/antzucaro/matchr"
)

// SuggestThreshold is the minimum Jaro-Winkler similarity for Suggest.
const SuggestThreshold = 0.85

// Snapshot is an immutable, ordered view of the active glossary.
// A Snapshot is never modified after NewSnapshot returns and may be shared
// between goroutines.
type Snapshot struct {
	entries []Entry
	index   map[string]int
	// entry indices, longest slang first (stable)
	bySlang []int
	// entry indices, longest plain standard form first (stable)
	byStandard []int
}

// NewSnapshot copies entries into a snapshot. Entries with an empty slang
// are skipped; for duplicated slang the first occurrence wins.
func NewSnapshot(entries []Entry) *Snapshot {
	s := &Snapshot{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.Slang == "" {
			continue
		}
		if _, dup := s.index[e.Slang]; dup {
			continue
		}
		s.index[e.Slang] = len(s.entries)
		s.entries = append(s.entries, e.clone())
	}

	s.bySlang = sortedIndices(len(s.entries), func(i int) int {
		return utf8.RuneCountInString(s.entries[i].Slang)
	})
	s.byStandard = sortedIndices(len(s.entries), func(i int) int {
		return utf8.RuneCountInString(s.entries[i].PlainStandard())
	})
	return s
}

// BuiltinSnapshot returns a snapshot of the shipped table only.
func BuiltinSnapshot() *Snapshot {
	return NewSnapshot(builtinEntries)
}

// Builtins returns a copy of the shipped slang table.
func Builtins() []Entry {
	out := make([]Entry, len(builtinEntries))
	for i, e := range builtinEntries {
		out[i] = e.clone()
	}
	return out
}

// IsBuiltin reports whether slang belongs to the shipped table.
func IsBuiltin(slang string) bool {
	for _, e := range builtinEntries {
		if e.Slang == slang {
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Entries returns a copy of the entries in snapshot order.
func (s *Snapshot) Entries() []Entry {
	if s == nil {
		return nil
	}
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.clone()
	}
	return out
}

// Lookup finds an entry by exact slang.
func (s *Snapshot) Lookup(slang string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	i, ok := s.index[slang]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i].clone(), true
}

// Search returns entries whose slang contains query or whose standard form
// contains query, ignoring case. An empty query returns every entry.
func (s *Snapshot) Search(query string) []Entry {
	if s == nil {
		return nil
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return s.Entries()
	}
	q := strings.ToLower(query)
	var out []Entry
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Slang), q) || strings.Contains(strings.ToLower(e.Standard), q) {
			out = append(out, e.clone())
		}
	}
	return out
}

// Suggest returns slang terms that look like query, best match first.
// Used to hint at typos when Search finds nothing.
func (s *Snapshot) Suggest(query string, limit int) []string {
	query = strings.TrimSpace(query)
	if s == nil || query == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		slang string
		score float64
	}
	var hits []scored
	for _, e := range s.entries {
		score := matchr.JaroWinkler(query, e.Slang, false)
		if score >= SuggestThreshold {
			hits = append(hits, scored{slang: e.Slang, score: score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.slang)
	}
	return out
}

func sortedIndices(n int, length func(int) int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return length(idx[a]) > length(idx[b])
	})
	return idx
}
