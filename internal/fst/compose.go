package fst

// Compose pipelines a's output symbol stream into b's input symbol
// stream: compose(A, B) accepts x and produces z iff there is some y
// with A: x -> y and B: y -> z. Associative, as cascading multiple
// transducers in sequence requires.
//
// The implementation is the standard synchronized product over letter
// transducers: a product state (qa, qb) has an arc whenever A can step
// qa->qa' emitting r while B can step qb->qb' consuming r (for real r),
// plus "waiting" arcs whenever one side can step on epsilon alone. Since
// none of this kernel's grammars contain an epsilon cycle that is
// simultaneously epsilon-output in A and epsilon-input in B (every
// Kleene closure consumes at least one real symbol per iteration), a
// plain worklist/BFS construction terminates without needing Mohri's
// three-state epsilon filter.
func Compose(a, b *Fst) (*Fst, error) {
	if a.NumStates() == 0 || b.NumStates() == 0 {
		return nil, ErrComposeIncompatible
	}

	out := New()
	type pair struct{ qa, qb int }
	ids := map[pair]int{}
	// Replace out's default start state with the (a.Start,b.Start) pair.
	startPair := pair{a.Start, b.Start}
	ids[startPair] = out.Start

	var queue []pair
	queue = append(queue, startPair)

	getID := func(p pair) int {
		if id, ok := ids[p]; ok {
			return id
		}
		id := out.addState()
		ids[p] = id
		queue = append(queue, p)
		return id
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		from := ids[p]

		if fa, wa := a.IsFinal(p.qa); fa {
			if fb, wb := b.IsFinal(p.qb); fb {
				out.setFinal(from, wa+wb)
			}
		}

		for _, arcA := range a.ArcsFrom(p.qa) {
			if arcA.Out == Epsilon {
				// A advances without emitting; B stays put.
				to := getID(pair{arcA.To, p.qb})
				out.addArc(from, Arc{In: arcA.In, Out: Epsilon, Weight: arcA.Weight, To: to})
				continue
			}
			for _, arcB := range b.ArcsFrom(p.qb) {
				switch {
				case arcB.In == arcA.Out:
					to := getID(pair{arcA.To, arcB.To})
					out.addArc(from, Arc{In: arcA.In, Out: arcB.Out, Weight: arcA.Weight + arcB.Weight, To: to})
				case arcB.In == Any:
					// Wildcard fallback: matches any real symbol A
					// emits. Out == Any means "copy the matched
					// symbol through unchanged".
					outSym := arcB.Out
					if outSym == Any {
						outSym = arcA.Out
					}
					to := getID(pair{arcA.To, arcB.To})
					out.addArc(from, Arc{In: arcA.In, Out: outSym, Weight: arcA.Weight + arcB.Weight, To: to})
				case arcA.In == Any && arcA.Out == Any && arcB.In != Epsilon:
					// A copies whatever it reads; B's literal arc fixes
					// that symbol, so the product arc reads it directly.
					to := getID(pair{arcA.To, arcB.To})
					out.addArc(from, Arc{In: arcB.In, Out: arcB.Out, Weight: arcA.Weight + arcB.Weight, To: to})
				}
			}
		}
		// B advances on its own epsilon input while A waits.
		for _, arcB := range b.ArcsFrom(p.qb) {
			if arcB.In == Epsilon {
				to := getID(pair{p.qa, arcB.To})
				out.addArc(from, Arc{In: Epsilon, Out: arcB.Out, Weight: arcB.Weight, To: to})
			}
		}
	}

	return out, nil
}

// ComposeAll folds Compose left to right over more than two machines.
func ComposeAll(fsts ...*Fst) (*Fst, error) {
	if len(fsts) == 0 {
		return nil, ErrComposeIncompatible
	}
	acc := fsts[0]
	for _, next := range fsts[1:] {
		var err error
		acc, err = Compose(acc, next)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
