package tnorm

import "github.com/cjktextnorm/textnorm/internal/fst"

// SpaceMarker replaces any space that the preprocessor does not fold
// into a hyphen, so the postprocessor can restore it verbatim once
// verbalization is done (spec §4.11).
const SpaceMarker = "<|space|>"

func digitRuneClass() *fst.Fst {
	fsts := make([]*fst.Fst, 10)
	for d := 0; d <= 9; d++ {
		fsts[d] = fst.Accept(string(rune('0' + d)))
	}
	return fst.Union(fsts...)
}

// fullwidthToHalfwidth builds the table-driven rewrite of preprocessor
// step 1, loaded from the shared char/fullwidth_to_halfwidth.tsv table
// (spec §6's data-file list).
func fullwidthToHalfwidth(pairs [][2]string) *fst.Fst {
	ruleFsts := make([]*fst.Fst, len(pairs))
	for i, p := range pairs {
		ruleFsts[i] = fst.Cross(p[0], p[1])
	}
	rule := fst.Union(ruleFsts...)
	return fst.CDRewrite(rule, nil, nil)
}

// fullwidthSpaceToHalfwidth is preprocessor step 2: `　` -> ` `.
func fullwidthSpaceToHalfwidth() *fst.Fst {
	return fst.CDRewrite(fst.Cross("　", " "), nil, nil)
}

// spacePolicy is preprocessor step 3: a space flanked by digits on both
// sides becomes `-` (preserving phone-like grouping); any other space
// becomes SpaceMarker, restored verbatim by the postprocessor.
func spacePolicy() (*fst.Fst, error) {
	digit := digitRuneClass()
	grouping := fst.CDRewrite(fst.Cross(" ", "-"), digit, digit)
	marker := fst.CDRewrite(fst.Cross(" ", SpaceMarker), nil, nil)
	return fst.Compose(grouping, marker)
}

// BuildPreprocessor composes the three preprocessor rewrites (spec
// §4.11) in order, given the fullwidth/halfwidth table loaded by the
// caller (package data.MustLoad("char/fullwidth_to_halfwidth.tsv")).
// Each rewrite is itself a total Σ*->Σ* rewrite, so the three steps are
// pipelined with Compose, not Concat (which would split one input
// string into disjoint consecutive regions instead of running each
// rewrite over the whole text in turn).
func BuildPreprocessor(fullwidthPairs [][2]string) (*fst.Fst, error) {
	space, err := spacePolicy()
	if err != nil {
		return nil, err
	}
	return fst.ComposeAll(
		fullwidthToHalfwidth(fullwidthPairs),
		fullwidthSpaceToHalfwidth(),
		space,
	)
}
