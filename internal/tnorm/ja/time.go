package ja

import "github.com/cjktextnorm/textnorm/internal/fst"

func hourReading() *fst.Fst   { return fst.StringMap(loadMap("ja/time/hour.tsv")) }
func minuteReading() *fst.Fst { return fst.StringMap(loadMap("ja/time/minute.tsv")) }
func secondReading() *fst.Fst { return fst.StringMap(loadMap("ja/time/second.tsv")) }
func division() *fst.Fst      { return fst.StringMap(loadMap("ja/time/division.tsv")) }

// elidedMinute matches a literal "00" or "0" minute count and produces
// no output (spec scenario 16, `3時00分` -> `三時`).
func elidedMinute() *fst.Fst {
	return fst.Union(fst.Delete("00"), fst.Delete("0"))
}

// TimeTagger builds the ja time class tagger (spec scenarios 15-16):
// [division]H時MM分[SS秒], minute elided when 00.
func TimeTagger() (*fst.Fst, error) {
	elided := fst.Concat(
		fst.Insert(`time { division: "`), fst.Union(fst.Accept(""), division()),
		fst.Insert(`" hour: "`), hourReading(), fst.Delete("時"),
		elidedMinute(), fst.Delete("分"),
		fst.Insert(`" }`),
	)
	// Without seconds, a 0/00 minute is left to elided alone, so the two
	// branches never tie on it.
	var nonZeroMinutes [][2]string
	for _, p := range loadMap("ja/time/minute.tsv") {
		if p[0] != "0" && p[0] != "00" {
			nonZeroMinutes = append(nonZeroMinutes, p)
		}
	}
	full := fst.Concat(
		fst.Insert(`time { division: "`), fst.Union(fst.Accept(""), division()),
		fst.Insert(`" hour: "`), hourReading(), fst.Delete("時"),
		fst.Insert(`" minute: "`),
		fst.Union(
			fst.Concat(fst.StringMap(nonZeroMinutes), fst.Delete("分")),
			fst.Concat(minuteReading(), fst.Delete("分"), fst.Insert(`" second: "`), secondReading(), fst.Delete("秒")),
		),
		fst.Insert(`" }`),
	)
	return fst.Union(elided, full), nil
}

// TimeVerbalizer renders each tagged shape back to spoken form.
func TimeVerbalizer() *fst.Fst {
	elided := fst.Concat(
		fst.Delete(`time { division: "`), copyThroughJa(),
		fst.Delete(` hour: "`), copyThroughJa(), fst.Insert("時"),
		fst.Delete(` }`),
	)
	full := fst.Concat(
		fst.Delete(`time { division: "`), copyThroughJa(),
		fst.Delete(` hour: "`), copyThroughJa(), fst.Insert("時"),
		fst.Delete(` minute: "`), copyThroughJa(), fst.Insert("分"),
		fst.Union(
			fst.Delete(` }`),
			fst.Concat(fst.Delete(` second: "`), copyThroughJa(), fst.Insert("秒"), fst.Delete(` }`)),
		),
	)
	return fst.Union(elided, full)
}
