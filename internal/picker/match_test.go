package picker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func displays(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Candidate.Display
	}
	return out
}

func isSubsequence(query, s string) bool {
	q := []rune(strings.ToLower(query))
	i := 0
	for _, r := range strings.ToLower(s) {
		if i < len(q) && r == q[i] {
			i++
		}
	}
	return i == len(q)
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	cands := Strings("show-paren-mode", "flyspell-mode", "abbrev-mode")

	got := Filter(cands, "")

	require.Len(t, got, 3)
	for i, m := range got {
		assert.Equal(t, cands[i], m.Candidate)
		assert.Equal(t, i, m.Index)
		assert.Equal(t, ScoreNone, m.Score)
		assert.Empty(t, m.Positions)
	}
}

func TestFilter_Tiers(t *testing.T) {
	tests := []struct {
		name  string
		cands []string
		query string
		want  []string
	}{
		{
			name:  "prefix before substring before fuzzy",
			cands: []string{"xfoo", "fxoxo", "foo"},
			query: "foo",
			want:  []string{"foo", "xfoo", "fxoxo"},
		},
		{
			name:  "ties keep original order",
			cands: []string{"show-paren-mode", "flyspell-mode", "abbrev-mode"},
			query: "mode",
			want:  []string{"show-paren-mode", "flyspell-mode", "abbrev-mode"},
		},
		{
			name:  "non-matching candidates are excluded",
			cands: []string{"abbrev-mode", "show-paren-mode", "flyspell-mode"},
			query: "a",
			want:  []string{"abbrev-mode", "show-paren-mode"},
		},
		{
			name:  "case-insensitive",
			cands: []string{"text-mode", "flyspell-mode"},
			query: "FLY",
			want:  []string{"flyspell-mode"},
		},
		{
			name:  "fuzzy subsequence",
			cands: []string{"abbrev-mode", "show-paren-mode", "flyspell-mode"},
			query: "sm",
			want:  []string{"show-paren-mode", "flyspell-mode"},
		},
		{
			name:  "no match",
			cands: []string{"text-mode"},
			query: "zz",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(Strings(tt.cands...), tt.query)
			assert.Equal(t, tt.want, displays(got))
		})
	}
}

func TestFilter_Positions(t *testing.T) {
	got := Filter(Strings("flyspell-mode", "auto-fill-mode"), "fl")

	require.Len(t, got, 2)
	assert.Equal(t, ScorePrefix, got[0].Score)
	assert.Equal(t, []int{0, 1}, got[0].Positions)
	// "auto-fill-mode" only contains "fl" as a subsequence.
	assert.Equal(t, "auto-fill-mode", got[1].Candidate.Display)
	assert.Equal(t, ScoreFuzzy, got[1].Score)
	assert.Len(t, got[1].Positions, 2)
}

func TestFilter_NonASCII(t *testing.T) {
	tests := []struct {
		name      string
		display   string
		query     string
		positions []int
		score     int
	}{
		{name: "prefix", display: "école-mode", query: "éc", score: ScorePrefix, positions: []int{0, 2}},
		{name: "prefix folded", display: "école-mode", query: "ÉC", score: ScorePrefix, positions: []int{0, 2}},
		{name: "substring", display: "mode-école", query: "éco", score: ScoreSubstring, positions: []int{5, 7, 8}},
		{name: "greek", display: "Σίσυφος-mode", query: "σί", score: ScorePrefix, positions: []int{0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(Strings(tt.display), tt.query)

			require.Len(t, got, 1)
			assert.Equal(t, tt.score, got[0].Score)
			assert.Equal(t, tt.positions, got[0].Positions)
			for _, p := range got[0].Positions {
				assert.True(t, utf8.RuneStart(tt.display[p]), "position %d splits a character", p)
			}
		})
	}
}

func TestFilter_DottedCapitalI(t *testing.T) {
	// İ has no simple fold to i, so neither tier nor fuzzy matching keeps it.
	assert.Empty(t, Filter(Strings("İstanbul-mode"), "i"))

	got := Filter(Strings("İstanbul-mode"), "st")
	require.Len(t, got, 1)
	assert.Equal(t, ScoreSubstring, got[0].Score)
	assert.Equal(t, []int{2, 3}, got[0].Positions)
}

func TestFilter_SubsequenceProperty(t *testing.T) {
	cands := Strings(
		"abbrev-mode", "auto-fill-mode", "flyspell-mode", "show-paren-mode",
		"visual-line-mode", "Text-Mode", "prog-mode", "hl-line-mode", "x",
	)
	queries := []string{"m", "mode", "fm", "lm", "TM", "pm", "xyz", "ode", "abm", "-"}

	for _, q := range queries {
		got := Filter(cands, q)
		kept := make(map[int]bool, len(got))
		for _, m := range got {
			kept[m.Index] = true
			assert.True(t, isSubsequence(q, m.Candidate.Display), "%q should not match %q", q, m.Candidate.Display)
			for _, p := range m.Positions {
				assert.Less(t, p, len(m.Candidate.Display))
			}
		}
		for i, c := range cands {
			if !kept[i] {
				assert.False(t, isSubsequence(q, c.Display), "%q should match %q", q, c.Display)
			}
		}
	}
}

func TestFilter_Idempotent(t *testing.T) {
	cands := Strings("visual-line-mode", "hl-line-mode", "line-number-mode", "outline-minor-mode")

	for _, q := range []string{"", "line", "lm", "Mode", "nm"} {
		assert.Equal(t, Filter(cands, q), Filter(cands, q), "query %q", q)
	}
}
