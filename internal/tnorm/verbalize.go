package tnorm

import "github.com/cjktextnorm/textnorm/internal/fst"

// copyThrough returns a machine that copies every rune verbatim until it
// hits an unescaped `"`, which it consumes and discards. Built directly
// at the Arc level (the Any wildcard prioritizes the literal quote arc
// over the copy loop), the same technique rewrite.go uses internally.
// wildcardPenalty breaks the tie between "close the quote here" and "copy
// the quote rune as content" the same way internal/fst's own CDRewrite
// does: the literal arc stays at weight 0, the Any fallback pays a
// negligible penalty, so ShortestPath always prefers ending the field.
const wildcardPenalty = fst.Weight(1e-6)

func copyThrough() *fst.Fst {
	f := fst.New()
	loop := f.Start
	done := f.AddState()
	f.AddArc(loop, fst.Arc{In: fst.Any, Out: fst.Any, Weight: wildcardPenalty, To: loop})
	f.AddArc(loop, fst.Arc{In: '"', Out: fst.Epsilon, Weight: 0, To: done})
	f.SetFinal(done, 0)
	return f
}

// discardThrough is copyThrough but drops the value instead of passing it
// through, for verbalizing the non-primary fields of a multi-field token.
func discardThrough() *fst.Fst {
	f := fst.New()
	loop := f.Start
	done := f.AddState()
	f.AddArc(loop, fst.Arc{In: fst.Any, Out: fst.Epsilon, Weight: wildcardPenalty, To: loop})
	f.AddArc(loop, fst.Arc{In: '"', Out: fst.Epsilon, Weight: 0, To: done})
	f.SetFinal(done, 0)
	return f
}

// BuildVerbalizer builds `CLASS { f1: "v1" f2: "v2" ... }` -> the value of
// the primary field, discarding every other field's value. This matches
// how every class here renders its fully-spoken form into one field at
// tag time (spec §4.2's verbalizer_C ∘ tagger_C contract), auxiliary
// fields carrying structured detail that the spoken form doesn't need
// re-derived (e.g. telephone's country_code, date's year/month/day).
func BuildVerbalizer(class ClassName, primary string, fields []string) *fst.Fst {
	parts := []*fst.Fst{fst.Delete(string(class) + " { ")}
	for i, name := range fields {
		prefix := name + ": \""
		if i > 0 {
			prefix = " " + prefix
		}
		parts = append(parts, fst.Delete(prefix))
		if name == primary {
			parts = append(parts, copyThrough())
		} else {
			parts = append(parts, discardThrough())
		}
	}
	parts = append(parts, fst.Delete(" }"))
	return fst.Concat(parts...)
}

// BuildConcatVerbalizer builds `CLASS { f1: "v1" f2: "v2" ... }` -> v1v2...,
// copying every field's value through in order instead of keeping only one
// primary field. Used where the spoken form is an assembly of several
// fields rather than a single pre-rendered one (e.g. telephone's optional
// prompt-keyword context flanking its number reading).
func BuildConcatVerbalizer(class ClassName, fields []string) *fst.Fst {
	parts := []*fst.Fst{fst.Delete(string(class) + " { ")}
	for i, name := range fields {
		prefix := name + ": \""
		if i > 0 {
			prefix = " " + prefix
		}
		parts = append(parts, fst.Delete(prefix), copyThrough())
	}
	parts = append(parts, fst.Delete(" }"))
	return fst.Concat(parts...)
}
