// Package contextcues provides a verbose-mode-only confidence signal for
// telephone keyword context (spec.md §4.6, §9 "Context detection in
// telephone"). The actual disambiguation stays inside the FST weights —
// this package never changes a tagged or spoken result, it only scores
// how close a surface window sat to a known prompt keyword, for an
// optional diagnostic field. Adapted from the prior revision's
// internal/parser/address_matcher.go fuzzy-scoring helpers.
package contextcues

import (
	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"
)

// Match is one keyword candidate scored against a text window.
type Match struct {
	Keyword    string
	Window     string
	Distance   int
	Similarity float64
}

// BestMatch scores window against every candidate keyword and returns the
// closest one by Jaro-Winkler similarity, falling back to Levenshtein
// distance to break ties the same way address_matcher.go does (both
// metrics computed, Jaro-Winkler driving the ranking since it rewards
// shared prefixes — the common shape of a typo'd CJK prompt word).
func BestMatch(window string, keywords []string) (Match, bool) {
	var best Match
	found := false
	for _, kw := range keywords {
		sim := smetrics.JaroWinkler(window, kw, 0.7, 4)
		dist := levenshtein.ComputeDistance(window, kw)
		if !found || sim > best.Similarity || (sim == best.Similarity && dist < best.Distance) {
			best = Match{Keyword: kw, Window: window, Distance: dist, Similarity: sim}
			found = true
		}
	}
	return best, found
}

// NearMiss reports whether window is close enough to some keyword to be
// a plausible typo (spec example: `电活` for `电话`) without being an
// exact match — i.e. a candidate worth surfacing in verbose diagnostics,
// not one that should ever retag the token.
func NearMiss(window string, keywords []string) (Match, bool) {
	m, ok := BestMatch(window, keywords)
	if !ok || m.Window == m.Keyword {
		return Match{}, false
	}
	return m, m.Similarity >= 0.7
}
