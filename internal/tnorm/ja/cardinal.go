package ja

import (
	"github.com/cjktextnorm/textnorm/internal/fst"
	"github.com/cjktextnorm/textnorm/internal/tnorm"
)

const maxCardinalDigits = 12

var groupName = map[int]rune{0: 0, 1: '万', 2: '億'}

// digitReadingFst is ja's analogue of zh's digitReadingFst (zh/cardinal.go):
// same per-length, per-position state machine, without the zh-specific
// 两-before-千/万/亿 substitution, which ja's cardinal morphology has no
// equivalent of.
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
				groupIn = false
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
	for _, s := range finalStates {
		f.SetFinal(s, 0)
	}
	return f
}

func leadingRunes(d, lp, grp int) []rune {
	switch lp {
	case 1: // 十
		if d == 1 {
			return []rune{'十'}
		}
		return []rune{[]rune(digitWords[d])[0], '十'}
	case 3: // 千
		return []rune{[]rune(digitWords[d])[0], '千'}
	case 2: // 百
		return []rune{[]rune(digitWords[d])[0], '百'}
	default: // ones-of-group
		if grp > 0 {
			return []rune{[]rune(digitWords[d])[0], groupName[grp]}
		}
		return []rune{[]rune(digitWords[d])[0]}
	}
}

func innerDigit(d, lp, grp int, pendingIn, groupIn bool) ([]rune, bool, bool) {
	if d == 0 {
		if lp == 0 && grp > 0 && groupIn {
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
	default:
		out = append(out, dw)
		if grp > 0 {
			out = append(out, groupName[grp])
		}
	}
	return out, false, true
}

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

func stripCommas() *fst.Fst {
	idents := make([]*fst.Fst, 0, 11)
	for d := '0'; d <= '9'; d++ {
		idents = append(idents, fst.Cross(string(d), string(d)))
	}
	idents = append(idents, fst.Delete(","))
	return fst.Closure(fst.Union(idents...), 1, -1)
}

// CardinalTagger builds the ja cardinal class tagger.
func CardinalTagger() (*fst.Fst, error) {
	sign := fst.Union(fst.Accept(""), fst.Cross("-", "マイナス"))
	commaFree, err := fst.Compose(stripCommas(), digitReadingFst())
	if err != nil {
		return nil, err
	}
	reading := fst.Concat(sign, commaFree)
	return fst.Concat(
		fst.Insert(`cardinal { integer: "`),
		reading,
		fst.Insert(`" }`),
	), nil
}

// CardinalVerbalizer extracts the spoken reading from a tagged ja
// cardinal token.
func CardinalVerbalizer() *fst.Fst {
	return tnorm.BuildVerbalizer(tnorm.ClassCardinal, "integer", []string{"integer"})
}

// DigitByDigitFst reads each digit individually in the phone-digit
// vocabulary (ゼロ/イチ/ニー/...). No grammar in this package calls it:
// address_number uses digitByDigitWithMaru, and telephone/credit_card
// build their own digit readings.
func DigitByDigitFst() *fst.Fst {
	pairs := make([][2]string, 0, 10)
	for d := 0; d <= 9; d++ {
		pairs = append(pairs, [2]string{string(rune('0' + d)), phoneDigitWords[d]})
	}
	return fst.Closure(fst.StringMap(pairs), 1, -1)
}

// KanjiStyle reads s as a plain ja cardinal (digit-grouped, no sign/comma
// handling), used by address_number's non-final segments.
func KanjiStyle() (*fst.Fst, error) {
	return digitReadingFst(), nil
}
