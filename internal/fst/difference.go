package fst

// Difference returns the language of a minus the language of b. Per the
// spec this requires b to be determinizable; this kernel narrows that
// further to "a and b both enumerate a finite set of literal strings",
// which lets Difference stay a plain set subtraction instead of a general
// complement + intersect construction. Neither operand may contain a
// cycle or admit more paths than EnumeratePaths' limit — callers needing
// a bound check against an effectively unbounded language (e.g. "any
// cardinal reading above N") should build the bound directly as a small
// explicit shape automaton and Compose it instead; see DESIGN.md.
func Difference(a, b *Fst) (*Fst, error) {
	bPaths, ok := EnumeratePaths(b, 1_000_000)
	if !ok {
		return nil, ErrNotDeterminizable
	}
	aPaths, ok := EnumeratePaths(a, 1_000_000)
	if !ok {
		return nil, ErrNotDeterminizable
	}

	excluded := make(map[string]bool, len(bPaths))
	for _, p := range bPaths {
		excluded[p.Input] = true
	}

	var kept [][2]string
	for _, p := range aPaths {
		if excluded[p.Input] {
			continue
		}
		kept = append(kept, [2]string{p.Input, p.Output})
	}
	return StringMap(kept), nil
}
