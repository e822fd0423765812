package fst

// Accept builds the machine that accepts exactly the string s, mapping it
// to itself (identity transduction).
func Accept(s string) *Fst {
	return Cross(s, s)
}

// Cross builds the machine that consumes exactly a and emits exactly b.
// Internally it chains an epsilon-output run over a's runes followed by
// an epsilon-input run over b's runes, so every arc still consumes or
// emits at most one rune.
func Cross(a, b string) *Fst {
	f := New()
	cur := f.Start
	for _, r := range a {
		next := f.addState()
		f.addArc(cur, Arc{In: r, Out: Epsilon, Weight: 0, To: next})
		cur = next
	}
	for _, r := range b {
		next := f.addState()
		f.addArc(cur, Arc{In: Epsilon, Out: r, Weight: 0, To: next})
		cur = next
	}
	f.setFinal(cur, 0)
	return f
}

// Insert is shorthand for Cross("", s): emit s on an epsilon input.
func Insert(s string) *Fst { return Cross("", s) }

// Delete is shorthand for Cross(s, ""): consume s, emit nothing.
func Delete(s string) *Fst { return Cross(s, "") }

// Union returns the machine accepting the language of any operand.
func Union(fsts ...*Fst) *Fst {
	out := New()
	start := out.Start
	for _, sub := range fsts {
		base := len(out.States)
		appendStates(out, sub)
		out.addArc(start, Arc{In: Epsilon, Out: Epsilon, Weight: 0, To: base + sub.Start})
	}
	return out
}

// Concat returns the machine accepting A1 A2 ... An in sequence.
func Concat(fsts ...*Fst) *Fst {
	if len(fsts) == 0 {
		out := New()
		out.setFinal(out.Start, 0)
		return out
	}
	out := New()
	base0 := len(out.States)
	appendStates(out, fsts[0])
	out.addArc(out.Start, Arc{In: Epsilon, Out: Epsilon, Weight: 0, To: base0 + fsts[0].Start})
	prevFinals := finalStates(out, base0, fsts[0])

	for _, sub := range fsts[1:] {
		base := len(out.States)
		appendStates(out, sub)
		for _, pf := range prevFinals {
			out.addArc(pf.state, Arc{In: Epsilon, Out: Epsilon, Weight: pf.weight, To: base + sub.Start})
			out.States[pf.state].Final = false
		}
		prevFinals = finalStates(out, base, sub)
	}
	for _, pf := range prevFinals {
		out.setFinal(pf.state, pf.weight)
	}
	return out
}

// Closure returns the machine accepting n..m repetitions of a. m == -1
// means unbounded (m = ∞).
func Closure(a *Fst, n, m int) *Fst {
	if n < 0 {
		n = 0
	}
	if m >= 0 && m < n {
		m = n
	}

	out := New()
	cur := out.Start

	// appendCopy splices a fresh copy of a in after `cur`, fanning all of
	// the copy's (possibly many) final states into one new continuation
	// state, and returns that continuation state.
	appendCopy := func() int {
		base := len(out.States)
		appendStates(out, a)
		out.addArc(cur, Arc{In: Epsilon, Out: Epsilon, Weight: 0, To: base + a.Start})
		cont := out.addState()
		for _, f := range finalStates(out, base, a) {
			out.States[f.state].Final = false
			out.addArc(f.state, Arc{In: Epsilon, Out: Epsilon, Weight: f.weight, To: cont})
		}
		return cont
	}

	for i := 0; i < n; i++ {
		cur = appendCopy()
	}
	mandatoryEnd := cur
	out.States[mandatoryEnd].Final = false

	if m == -1 {
		// Unbounded: after the mandatory prefix, loop one more copy that
		// can repeat arbitrarily, plus a bypass straight to final.
		loopBase := len(out.States)
		appendStates(out, a)
		out.addArc(mandatoryEnd, Arc{In: Epsilon, Out: Epsilon, Weight: 0, To: loopBase + a.Start})
		endState := out.addState()
		out.setFinal(endState, 0)
		for _, f := range finalStates(out, loopBase, a) {
			out.States[f.state].Final = false
			out.addArc(f.state, Arc{In: Epsilon, Out: Epsilon, Weight: f.weight, To: loopBase + a.Start})
			out.addArc(f.state, Arc{In: Epsilon, Out: Epsilon, Weight: f.weight, To: endState})
		}
		out.addArc(mandatoryEnd, Arc{In: Epsilon, Out: Epsilon, Weight: 0, To: endState})
		return out
	}

	out.setFinal(mandatoryEnd, 0)
	for i := n; i < m; i++ {
		cur = appendCopy()
		out.setFinal(cur, 0)
	}
	return out
}

// AddWeight adds w to every accepting path of a (equivalently, to every
// final state's final weight, since a has a single start state and every
// accepting path ends at exactly one final state with a fixed suffix
// weight contribution already baked into the arcs).
func AddWeight(a *Fst, w Weight) *Fst {
	out := a.Clone()
	for i, st := range out.States {
		if st.Final {
			out.States[i].FinalWeight += w
		}
	}
	return out
}

// StringMap builds the compact union of Cross(k, v) for every pair. The
// spec calls for an alphabetically-keyed compact union (a trie); this
// kernel builds a plain Union, which is semantically identical and
// differs only in machine size, acceptable at the TSV sizes these
// grammars load.
func StringMap(pairs [][2]string) *Fst {
	subs := make([]*Fst, 0, len(pairs))
	for _, p := range pairs {
		subs = append(subs, Cross(p[0], p[1]))
	}
	return Union(subs...)
}

// appendStates copies all states/arcs of sub into out, offsetting every
// state reference by the position sub's states land at.
func appendStates(out *Fst, sub *Fst) {
	base := len(out.States)
	for _, st := range sub.States {
		arcs := make([]Arc, len(st.Arcs))
		for i, a := range st.Arcs {
			arcs[i] = Arc{In: a.In, Out: a.Out, Weight: a.Weight, To: a.To + base}
		}
		out.States = append(out.States, state{Arcs: arcs, Final: st.Final, FinalWeight: st.FinalWeight})
	}
}

type finalRef struct {
	state  int
	weight Weight
}

// finalStates returns the (offset) final states of sub as they now sit
// inside out, after appendStates placed them at base.
func finalStates(out *Fst, base int, sub *Fst) []finalRef {
	var refs []finalRef
	for i, st := range sub.States {
		if st.Final {
			refs = append(refs, finalRef{state: base + i, weight: st.FinalWeight})
		}
	}
	return refs
}
