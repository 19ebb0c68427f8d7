package glossary

import (
	"sort"
	"strings"
)

// Result is the output of Standardize.
type Result struct {
	StandardText  string   `json:"standardText"`
	DetectedTerms []string `json:"detectedTerms"`
}

// Standardize rewrites slang in text to plain standard Korean.
//
// Entries are applied longest slang first. Each entry that occurs in the
// working text replaces all of its occurrences in place, so a replacement
// can create a match for a later (shorter) entry. Matching is raw
// substring matching.
//
// DetectedTerms follows the order in which terms first occur in the
// original text. A term that only appeared through an earlier replacement
// has no position there and is listed after the others.
func Standardize(text string, snap *Snapshot) Result {
	res := Result{StandardText: text, DetectedTerms: []string{}}
	if snap == nil || text == "" {
		return res
	}

	loc := newLocator(text)
	var hits []detection
	working := text
	for _, i := range snap.bySlang {
		e := snap.entries[i]
		if !strings.Contains(working, e.Slang) {
			continue
		}
		hits = append(hits, detection{term: e.Slang, pos: loc.claim(e.Slang), order: len(hits)})
		working = strings.ReplaceAll(working, e.Slang, e.PlainStandard())
	}

	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].before(hits[b])
	})
	for _, h := range hits {
		res.DetectedTerms = append(res.DetectedTerms, h.term)
	}
	res.StandardText = working
	return res
}

type detection struct {
	term  string
	pos   int // byte offset in the original text, -1 when only produced by chaining
	order int
}

func (d detection) before(o detection) bool {
	switch {
	case d.pos < 0 && o.pos < 0:
		return d.order < o.order
	case d.pos < 0:
		return false
	case o.pos < 0:
		return true
	case d.pos != o.pos:
		return d.pos < o.pos
	default:
		return d.order < o.order
	}
}

// locator finds where a detected term sits in the original text, skipping
// spans already taken by longer terms detected before it.
type locator struct {
	text  string
	taken []bool
}

func newLocator(text string) *locator {
	return &locator{text: text, taken: make([]bool, len(text))}
}

// claim marks every free occurrence of term and returns the first one, or -1.
func (l *locator) claim(term string) int {
	first := -1
	for from := 0; from <= len(l.text)-len(term); {
		idx := strings.Index(l.text[from:], term)
		if idx < 0 {
			break
		}
		start := from + idx
		end := start + len(term)
		if l.free(start, end) {
			for i := start; i < end; i++ {
				l.taken[i] = true
			}
			if first < 0 {
				first = start
			}
			from = end
			continue
		}
		from = start + 1
	}
	return first
}

func (l *locator) free(start, end int) bool {
	for i := start; i < end; i++ {
		if l.taken[i] {
			return false
		}
	}
	return true
}
