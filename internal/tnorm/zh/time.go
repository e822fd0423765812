package zh

import "github.com/cjktextnorm/textnorm/internal/fst"

func hourReading() *fst.Fst   { return fst.StringMap(loadMap("zh/time/hour.tsv")) }
func minuteReading() *fst.Fst { return fst.StringMap(loadMap("zh/time/minute.tsv")) }
func secondReading() *fst.Fst { return fst.StringMap(loadMap("zh/time/second.tsv")) }
func division() *fst.Fst      { return fst.StringMap(loadMap("zh/time/division.tsv")) }

// elidedMinute matches a literal "00" or "0" minute count and produces no
// output at all (spec §4.5, "00分 / 0分 is elided").
func elidedMinute() *fst.Fst {
	return fst.Union(fst.Delete("00"), fst.Delete("0"))
}

// TimeTagger builds the zh time class tagger (spec §4.5): colon form
// (H:MM[:SS]) and kanji form ([division]H时/点MM分[SS秒]), each tagged
// and verbalized as its own branch since the two surface shapes carry
// different field sets.
func TimeTagger() (*fst.Fst, error) {
	colonNoSec := fst.Concat(
		fst.Insert(`time { hour: "`), hourReading(), fst.Delete(":"),
		fst.Insert(`" minute: "`), minuteReading(),
		fst.Insert(`" }`),
	)
	colonWithSec := fst.Concat(
		fst.Insert(`time { hour: "`), hourReading(), fst.Delete(":"),
		fst.Insert(`" minute: "`), minuteReading(), fst.Delete(":"),
		fst.Insert(`" second: "`), secondReading(),
		fst.Insert(`" }`),
	)

	// connectorReading keeps whichever of 时/点 appeared on the surface as
	// its own field, instead of collapsing both to one hardcoded
	// morpheme — 3时 and 3点 are genuinely different surface forms and
	// must round-trip back to the one the input used (spec §8).
	connectorReading := fst.Union(fst.Cross("时", "时"), fst.Cross("点", "点"))
	kanjiElided := fst.Concat(
		fst.Insert(`time { division: "`), fst.Union(fst.Accept(""), division()),
		fst.Insert(`" hour: "`), hourReading(),
		fst.Insert(`" connector: "`), connectorReading,
		elidedMinute(), fst.Delete("分"),
		fst.Insert(`" }`),
	)
	// Without seconds, a 0/00 minute is left to kanjiElided alone, so the
	// two kanji branches never tie on it.
	var nonZeroMinutes [][2]string
	for _, p := range loadMap("zh/time/minute.tsv") {
		if p[0] != "0" && p[0] != "00" {
			nonZeroMinutes = append(nonZeroMinutes, p)
		}
	}
	kanjiFull := fst.Concat(
		fst.Insert(`time { division: "`), fst.Union(fst.Accept(""), division()),
		fst.Insert(`" hour: "`), hourReading(),
		fst.Insert(`" connector: "`), connectorReading,
		fst.Insert(`" minute: "`),
		fst.Union(
			fst.Concat(fst.StringMap(nonZeroMinutes), fst.Delete("分")),
			fst.Concat(minuteReading(), fst.Delete("分"), fst.Insert(`" second: "`), secondReading(), fst.Delete("秒")),
		),
		fst.Insert(`" }`),
	)

	return fst.Union(colonNoSec, colonWithSec, kanjiElided, kanjiFull), nil
}

// TimeVerbalizer renders each of the four tagged shapes back to spoken
// form: colon form always reads 点...分(...秒); kanji form preserves
// whichever connector/division/second the tag captured.
func TimeVerbalizer() *fst.Fst {
	colonNoSec := fst.Concat(
		fst.Delete(`time { hour: "`), copyThroughZh(), fst.Insert("点"),
		fst.Delete(` minute: "`), copyThroughZh(), fst.Insert("分"),
		fst.Delete(` }`),
	)
	colonWithSec := fst.Concat(
		fst.Delete(`time { hour: "`), copyThroughZh(), fst.Insert("点"),
		fst.Delete(` minute: "`), copyThroughZh(), fst.Insert("分"),
		fst.Delete(` second: "`), copyThroughZh(), fst.Insert("秒"),
		fst.Delete(` }`),
	)
	kanjiElided := fst.Concat(
		fst.Delete(`time { division: "`), copyThroughZh(),
		fst.Delete(` hour: "`), copyThroughZh(),
		fst.Delete(` connector: "`), copyThroughZh(),
		fst.Delete(` }`),
	)
	kanjiFull := fst.Concat(
		fst.Delete(`time { division: "`), copyThroughZh(),
		fst.Delete(` hour: "`), copyThroughZh(),
		fst.Delete(` connector: "`), copyThroughZh(),
		fst.Delete(` minute: "`), copyThroughZh(), fst.Insert("分"),
		fst.Union(
			fst.Delete(` }`),
			fst.Concat(fst.Delete(` second: "`), copyThroughZh(), fst.Insert("秒"), fst.Delete(` }`)),
		),
	)
	return fst.Union(colonNoSec, colonWithSec, kanjiElided, kanjiFull)
}
