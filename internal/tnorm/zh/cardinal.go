package zh

import (
	"github.com/cjktextnorm/textnorm/internal/fst"
	"github.com/cjktextnorm/textnorm/internal/tnorm"
)

// maxCardinalDigits matches spec §4.3's "handles up to 12 digits" (and
// the 3 group suffixes zh needs for that range: 万 at 10^4, 亿 at 10^8).
const maxCardinalDigits = 12

var groupName = map[int]rune{0: 0, 1: '万', 2: '亿'}

// digitReadingFst consumes a plain digit string with no leading zero (or
// exactly "0") and emits its zh cardinal reading. It is the shared core
// that money, decimal, fraction and ordinal compose onto for their
// integer parts (via signedlessCardinal); date reads its year, month and
// day from its own tables instead.
//
// Built as an explicit per-length state machine rather than a generic
// combinator pipeline: place value (十/百/千/万/亿) depends on a digit's
// distance from the *end* of the string, which isn't expressible as a
// fixed composition of Concat/Closure without first fixing the length,
// so each length 1..maxCardinalDigits gets its own chain and the chains
// are unioned. Two pieces of state ride along each chain: pendingZero
// (an internal zero run not yet collapsed to a single 零) and
// groupNonzero (whether the current 万/亿 group has had a nonzero digit
// yet, since the group suffix attaches after a group's last nonzero
// digit, not mechanically at every 万/亿-position digit — see example
// 12300000 -> 一千二百三十万, where the group's own ones-of-万 digit is
// 0 but 万 still needs to be said).
func digitReadingFst() *fst.Fst {
	chains := make([]*fst.Fst, 0, maxCardinalDigits+1)
	for l := 1; l <= maxCardinalDigits; l++ {
		chains = append(chains, buildLengthChain(l))
	}
	chains = append(chains, fst.Cross("0", digitWords[0]))
	return fst.Union(chains...)
}

type carry struct {
	pendingZero  bool
	groupNonzero bool
}

func buildLengthChain(l int) *fst.Fst {
	f := fst.New()

	// Position 0: the leading digit, 1-9, with the "drop 一 before bare
	// 十" and "两 before 千/万/亿" special cases that only ever apply to
	// the number's most significant digit (spec §4.3). Every leading
	// digit lands on the same single post-position-0 state: the carry is
	// always {pendingZero: false, groupNonzero: true} regardless of d.
	e0 := l - 1
	lp0, grp0 := e0%4, e0/4
	afterFirst := f.AddState()
	for d := 1; d <= 9; d++ {
		out := leadingRunes(d, lp0, grp0)
		emitChain(f, f.Start, rune('0'+d), out, afterFirst)
	}

	if l == 1 {
		f.SetFinal(afterFirst, 0)
		return f
	}

	// Positions 1..l-1: full (non-leading) reading with zero-collapse
	// and per-group suffix tracking. prevState maps a carry value to the
	// state reached with that carry after processing position p-1;
	// finalStates (keyed separately so it never aliases an intermediate
	// state) collects the accepting states reached after position l-1.
	prevState := map[carry]int{{false, true}: afterFirst}
	finalStates := map[carry]int{}
	for p := 1; p < l; p++ {
		e := l - 1 - p
		lp, grp := e%4, e/4
		next := map[carry]int{}
		isLast := p == l-1
		for c, from := range prevState {
			groupIn := c.groupNonzero
			if lp == 3 {
				groupIn = false // entering a new 万/亿 group resets it
			}
			for d := 0; d <= 9; d++ {
				out, pzOut, gzOut := innerDigit(d, lp, grp, c.pendingZero, groupIn)
				nc := carry{pzOut, gzOut}
				dest := finalStates
				if !isLast {
					dest = next
				}
				to, ok := dest[nc]
				if !ok {
					to = f.AddState()
					dest[nc] = to
				}
				emitChain(f, from, rune('0'+d), out, to)
			}
		}
		if !isLast {
			prevState = next
		}
	}

	// Every reachable end-of-chain state accepts regardless of carry: a
	// pending zero run at the very end is a trailing zero group and is
	// never spoken.
	for _, s := range finalStates {
		f.SetFinal(s, 0)
	}
	return f
}

// leadingRunes computes the output runes for the number's first digit.
func leadingRunes(d, lp, grp int) []rune {
	switch lp {
	case 1: // tens
		if d == 1 {
			return []rune{'十'}
		}
		return []rune{[]rune(digitWords[d])[0], '十'}
	case 3: // thousands
		dw := digitWords[d]
		if d == 2 {
			dw = "两"
		}
		return []rune{[]rune(dw)[0], '千'}
	case 2: // hundreds
		return []rune{[]rune(digitWords[d])[0], '百'}
	default: // lp == 0: ones-of-group
		dw := digitWords[d]
		if grp > 0 {
			if d == 2 {
				dw = "两"
			}
			return []rune{[]rune(dw)[0], groupName[grp]}
		}
		return []rune{[]rune(dw)[0]}
	}
}

// innerDigit computes the output runes and carried state for a non-leading
// digit at local place lp within group grp.
func innerDigit(d, lp, grp int, pendingIn, groupIn bool) ([]rune, bool, bool) {
	if d == 0 {
		if lp == 0 && grp > 0 && groupIn {
			// The group ends on a zero: its suffix is still said, and
			// the zero run just before it is not.
			return []rune{groupName[grp]}, false, groupIn
		}
		return nil, true, groupIn
	}
	var out []rune
	if pendingIn {
		out = append(out, '零')
	}
	dw := []rune(digitWords[d])[0]
	switch lp {
	case 3:
		out = append(out, dw, '千')
	case 2:
		out = append(out, dw, '百')
	case 1:
		out = append(out, dw, '十')
	default: // 0
		out = append(out, dw)
		if grp > 0 {
			out = append(out, groupName[grp])
		}
	}
	return out, false, true
}

// emitChain wires from->to, consuming input rune in and emitting the
// (possibly multi-rune) out slice via a chain of epsilon-output arcs —
// every arc in this kernel carries at most one output rune.
func emitChain(f *fst.Fst, from int, in rune, out []rune, to int) {
	if len(out) == 0 {
		f.AddArc(from, fst.Arc{In: in, Out: fst.Epsilon, Weight: 0, To: to})
		return
	}
	cur := from
	for i, r := range out {
		useIn := fst.Epsilon
		if i == 0 {
			useIn = in
		}
		dest := to
		if i < len(out)-1 {
			dest = f.AddState()
		}
		f.AddArc(cur, fst.Arc{In: useIn, Out: r, Weight: 0, To: dest})
		cur = dest
	}
}

// stripCommas deletes comma grouping before the digits reach
// digitReadingFst (spec §4.3, "comma grouping is stripped before
// conversion").
func stripCommas() *fst.Fst {
	idents := make([]*fst.Fst, 0, 11)
	for d := '0'; d <= '9'; d++ {
		idents = append(idents, fst.Cross(string(d), string(d)))
	}
	idents = append(idents, fst.Delete(","))
	return fst.Closure(fst.Union(idents...), 1, -1)
}

// signedCardinalReading composes the optional sign, comma-stripping and
// the core digit reading into one surface->spoken transducer.
func signedCardinalReading() (*fst.Fst, error) {
	sign := fst.Union(fst.Accept(""), fst.Cross("-", "负"), fst.Cross("负", "负"))
	commaFree, err := fst.Compose(stripCommas(), digitReadingFst())
	if err != nil {
		return nil, err
	}
	return fst.Concat(sign, commaFree), nil
}

// leadingZeroDigits bounds how many digits a leading-zero cardinal may
// have (spec §4.3: "only when input begins with 0 and is shorter than 4
// digits, otherwise reject and let telephone/serial grammars catch").
const leadingZeroDigits = 3

// leadingZeroCardinal reads "0"-prefixed digit strings of length 1..
// leadingZeroDigits one digit at a time ("007" -> "零零七"). This is a
// separate branch rather than part of digitReadingFst's shared chains:
// digitReadingFst is also composed onto by money's and fraction's
// unsigned-integer reading (via signedlessCardinal), where a leading zero
// has no digit-by-digit meaning, so the carve-out stays local to the
// standalone cardinal class.
func leadingZeroCardinal() *fst.Fst {
	branches := make([]*fst.Fst, 0, leadingZeroDigits)
	for l := 1; l <= leadingZeroDigits; l++ {
		digits := make([]*fst.Fst, l)
		digits[0] = fst.Cross("0", digitWords[0])
		for i := 1; i < l; i++ {
			digits[i] = fst.StringMap(singleDigitMap())
		}
		branches = append(branches, fst.Concat(digits...))
	}
	return fst.Union(branches...)
}

// CardinalTagger builds the zh cardinal class tagger: surface integer
// (optionally signed, optionally comma-grouped) -> `cardinal { integer:
// "<spoken>" }`.
func CardinalTagger() (*fst.Fst, error) {
	reading, err := signedCardinalReading()
	if err != nil {
		return nil, err
	}
	tagged := func(r *fst.Fst) *fst.Fst {
		return fst.Concat(fst.Insert(`cardinal { integer: "`), r, fst.Insert(`" }`))
	}
	return fst.Union(tagged(reading), tagged(leadingZeroCardinal())), nil
}

// CardinalVerbalizer extracts the spoken reading from a tagged cardinal
// token.
func CardinalVerbalizer() *fst.Fst {
	return tnorm.BuildVerbalizer(tnorm.ClassCardinal, "integer", []string{"integer"})
}

// CardinalReadingFor composes only the signed digit-reading core (no tag
// envelope). No class grammar in this package calls it; the classes that
// need a bare integer reading use signedlessCardinal.
func CardinalReadingFor() (*fst.Fst, error) {
	return signedCardinalReading()
}
