package fst

// CDRewrite compiles a context-dependent rewrite rule: replace whatever
// `rule` maps wherever the immediately preceding text matches the
// language of `left` and the immediately following text matches the
// language of `right`, leaving the input unchanged everywhere else. This
// is a single left-to-right, non-overlapping, committing pass, per the
// classical Mohri–Sproat context-dependent rewrite construction.
//
// left == nil (equivalently right == nil) means an unconstrained (Σ*)
// context on that side. This kernel resolves non-nil contexts by
// enumerating them as a finite set of single-rune classes (EnumeratePaths
// on left/right must yield only length-1 strings) — sufficient for every
// rewrite this system needs (the full-width/half-width table rewrite
// uses no context at all; the space-grouping rule uses a "preceding/
// following rune is a digit" class on both sides). A rule whose domain
// covers more than single runes, or a context that isn't a finite rune
// class, is out of scope for this practical construction.
func CDRewrite(rule, left, right *Fst) *Fst {
	ruleMap := extractSingleRuneCross(rule)
	leftSet, leftConstrained := extractRuneClass(left)
	rightSet, rightConstrained := extractRuneClass(right)

	const wildcardPenalty = Weight(1e-6)

	out := New()
	normal := out.Start
	out.setFinal(normal, 0)

	leftMatch := -1
	if leftConstrained {
		leftMatch = out.addState()
		out.setFinal(leftMatch, 0)
		for r := range leftSet {
			out.addArc(normal, Arc{In: r, Out: r, Weight: 0, To: leftMatch})
			out.addArc(leftMatch, Arc{In: r, Out: r, Weight: 0, To: leftMatch})
		}
	}
	out.addArc(normal, Arc{In: Any, Out: Any, Weight: wildcardPenalty, To: normal})
	if leftConstrained {
		out.addArc(leftMatch, Arc{In: Any, Out: Any, Weight: wildcardPenalty, To: normal})
	}

	triggerSource := normal
	if leftConstrained {
		triggerSource = leftMatch
	}

	for trigger, output := range ruleMap {
		if !rightConstrained {
			chainConsumeEmit(out, triggerSource, trigger, output, normal, 0)
			continue
		}

		pending := out.addState()
		out.addArc(triggerSource, Arc{In: trigger, Out: Epsilon, Weight: 0, To: pending})

		for r3 := range rightSet {
			dest := normal
			if leftConstrained {
				if _, ok := leftSet[r3]; ok {
					dest = leftMatch
				}
			}
			chainConsumeEmit(out, pending, r3, output+string(r3), dest, 0)
		}

		// Right context failed: the trigger passes through unchanged,
		// and whatever follows (if anything) is copied verbatim.
		mid := out.addState()
		chainInsert(out, pending, string(trigger), mid)
		out.setFinal(mid, 0) // input ended right after the trigger rune
		out.addArc(mid, Arc{In: Any, Out: Any, Weight: wildcardPenalty, To: normal})
	}

	return out
}

// chainConsumeEmit adds a path from->to that consumes one rune `in` and
// emits the (possibly multi-rune) string `output`.
func chainConsumeEmit(out *Fst, from int, in rune, output string, to int, weight Weight) {
	mid := out.addState()
	out.addArc(from, Arc{In: in, Out: Epsilon, Weight: weight, To: mid})
	chainInsert(out, mid, output, to)
}

// chainInsert adds an epsilon-input path from->to emitting `s`.
func chainInsert(out *Fst, from int, s string, to int) {
	cur := from
	runes := []rune(s)
	if len(runes) == 0 {
		out.addArc(cur, Arc{In: Epsilon, Out: Epsilon, Weight: 0, To: to})
		return
	}
	for i, r := range runes {
		dest := to
		if i < len(runes)-1 {
			dest = out.addState()
		}
		out.addArc(cur, Arc{In: Epsilon, Out: r, Weight: 0, To: dest})
		cur = dest
	}
}

// extractSingleRuneCross reads rule as a union of Cross(singleRune,
// output) branches and returns the rune->output map it encodes.
func extractSingleRuneCross(rule *Fst) map[rune]string {
	paths, _ := EnumeratePaths(rule, 10_000)
	m := make(map[rune]string, len(paths))
	for _, p := range paths {
		rs := []rune(p.Input)
		if len(rs) != 1 {
			continue
		}
		m[rs[0]] = p.Output
	}
	return m
}

// extractRuneClass reads ctx (nil meaning unconstrained) as a finite set
// of single-rune acceptor strings.
func extractRuneClass(ctx *Fst) (map[rune]bool, bool) {
	if ctx == nil {
		return nil, false
	}
	paths, ok := EnumeratePaths(ctx, 10_000)
	set := make(map[rune]bool)
	if !ok {
		return set, true
	}
	for _, p := range paths {
		rs := []rune(p.Input)
		if len(rs) == 1 {
			set[rs[0]] = true
		}
	}
	return set, true
}
