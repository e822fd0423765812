package tnorm

import "github.com/cjktextnorm/textnorm/internal/fst"

func spaceIdentity() *fst.Fst { return fst.Accept(" ") }

// BuildClassify wraps the registry's weighted classification union in
// the `tokens { … }` envelope and repeats it across a full sentence,
// spaces passing straight through between tokens (spec §4.10: "a token
// wraps the classification... the full tagger is closure(token ∪
// space→space, ≥1)").
func BuildClassify(reg *Registry) *fst.Fst {
	token := fst.Concat(fst.Insert("tokens { "), reg.Classify(), fst.Insert(" }"))
	return fst.Closure(fst.Union(token, spaceIdentity()), 1, -1)
}

// BuildVerbalize mirrors BuildClassify on the way back out: strip one
// token's envelope and render its class body, or pass a literal space
// through unchanged, repeated across the tagged string (spec §4.12).
func BuildVerbalize(reg *Registry) *fst.Fst {
	token := fst.Concat(fst.Delete("tokens { "), reg.Verbalize(), fst.Delete(" }"))
	return fst.Closure(fst.Union(token, spaceIdentity()), 1, -1)
}
