package picker

import (
	"cmp"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// Match quality tiers. Higher is better. Scores order rows within one
// source only.
const (
	ScoreNone      = 0
	ScoreFuzzy     = 1
	ScoreSubstring = 2
	ScorePrefix    = 3
)

// Match is a candidate that survived filtering.
type Match struct {
	Candidate Candidate
	// Positions are byte offsets into Candidate.Display of matched characters.
	Positions []int
	// Index is the candidate's position in the unfiltered list.
	Index int
	Score int
}

// Filter returns the candidates matching query, best tier first.
//
// An empty query returns every candidate in original order with ScoreNone.
// Otherwise matching is case-insensitive under Unicode simple folding, the
// same rule fuzzy.Find applies: a candidate is kept only when the query's
// characters occur in it in order. Ties keep the original order.
func Filter(cands []Candidate, query string) []Match {
	if query == "" {
		matches := make([]Match, len(cands))
		for i, c := range cands {
			matches[i] = Match{Candidate: c, Index: i, Score: ScoreNone}
		}
		return matches
	}

	displays := make([]string, len(cands))
	for i, c := range cands {
		displays[i] = c.Display
	}

	q := []rune(query)
	found := fuzzy.Find(query, displays)
	matches := make([]Match, 0, len(found))
	for _, f := range found {
		m := Match{
			Candidate: cands[f.Index],
			Index:     f.Index,
			Score:     ScoreFuzzy,
			Positions: f.MatchedIndexes,
		}
		if pos := foldRun(f.Str, q); pos != nil {
			m.Score = ScoreSubstring
			if pos[0] == 0 {
				m.Score = ScorePrefix
			}
			m.Positions = pos
		}
		matches = append(matches, m)
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})
	return matches
}

// foldRun finds the first run of characters in s equal to q under simple
// case folding and returns the byte offset of each of them.
func foldRun(s string, q []rune) []int {
	for start := 0; start < len(s); {
		if pos := foldPrefix(s[start:], q); pos != nil {
			for i := range pos {
				pos[i] += start
			}
			return pos
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		start += size
	}
	return nil
}

func foldPrefix(s string, q []rune) []int {
	pos := make([]int, 0, len(q))
	for at, r := range s {
		if len(pos) == len(q) {
			break
		}
		if !equalFold(r, q[len(pos)]) {
			return nil
		}
		pos = append(pos, at)
	}
	if len(pos) < len(q) {
		return nil
	}
	return pos
}

// equalFold reports whether a and b are equal under simple case folding.
func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
