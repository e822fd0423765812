package zh

import (
	"github.com/cjktextnorm/textnorm/internal/fst"
	"github.com/cjktextnorm/textnorm/internal/tnorm/data"
)

// wildcardPenalty mirrors internal/fst's own CDRewrite tie-break: the
// literal closing-quote arc stays at weight 0 so ShortestPath always
// prefers it over treating the quote as copyable content.
const wildcardPenalty = fst.Weight(1e-6)

// copyThroughZh copies every rune verbatim until an unescaped `"`, which
// it consumes and discards — the generic "extract a quoted field value"
// primitive every class verbalizer here builds on.
func copyThroughZh() *fst.Fst {
	f := fst.New()
	loop := f.Start
	done := f.AddState()
	f.AddArc(loop, fst.Arc{In: fst.Any, Out: fst.Any, Weight: wildcardPenalty, To: loop})
	f.AddArc(loop, fst.Arc{In: '"', Out: fst.Epsilon, Weight: 0, To: done})
	f.SetFinal(done, 0)
	return f
}

func mapPairs(pairs []data.Pair) [][2]string {
	out := make([][2]string, len(pairs))
	for i, p := range pairs {
		out[i] = [2]string{p.In, p.Out}
	}
	return out
}

func loadMap(relPath string) [][2]string {
	return mapPairs(data.MustLoad(relPath))
}

// singleDigitMap maps each ASCII digit to its zh cardinal digit word,
// used for digit-by-digit readings (year, telephone, credit card).
func singleDigitMap() [][2]string {
	pairs := make([][2]string, 10)
	for d := 0; d <= 9; d++ {
		pairs[d] = [2]string{string(rune('0' + d)), digitWords[d]}
	}
	return pairs
}
