package tnorm

import "github.com/cjktextnorm/textnorm/internal/fst"

// Grammar is the class-grammar contract shared by every class (spec
// §4.2): a pure value holding the built tagger and verbalizer FSTs. This
// replaces source-level subclassing (spec §9) — class grammars are data,
// collected into a Registry keyed by name rather than a type hierarchy.
type Grammar struct {
	Class      ClassName
	Tagger     *fst.Fst
	Verbalizer *fst.Fst
	Weight     fst.Weight
}

// Registry is the ordered collection of class grammars a language builds
// at Normalizer-construction time.
type Registry struct {
	Grammars []Grammar
}

// Classify returns the union of every grammar's tagger, each weighted per
// the WeightTable, per spec §4.10's `CLASSIFY = union(add_weight(C_i,
// w_i))`.
func (r *Registry) Classify() *fst.Fst {
	weighted := make([]*fst.Fst, len(r.Grammars))
	for i, g := range r.Grammars {
		weighted[i] = fst.AddWeight(g.Tagger, g.Weight)
	}
	return fst.Union(weighted...)
}

// Verbalize returns the union of every grammar's verbalizer.
func (r *Registry) Verbalize() *fst.Fst {
	vs := make([]*fst.Fst, len(r.Grammars))
	for i, g := range r.Grammars {
		vs[i] = g.Verbalizer
	}
	return fst.Union(vs...)
}
