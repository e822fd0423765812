package zh

import (
	"github.com/cjktextnorm/textnorm/internal/fst"
	"github.com/cjktextnorm/textnorm/internal/tnorm"
)

// yearReading reads exactly 4 digits one at a time (spec §4.4, "year
// digits are read digit-by-digit").
func yearReading() *fst.Fst {
	return fst.Closure(fst.StringMap(singleDigitMap()), 4, 4)
}

func monthReading() *fst.Fst  { return fst.StringMap(loadMap("zh/date/months.tsv")) }
func dayReading() *fst.Fst    { return fst.StringMap(loadMap("zh/date/day.tsv")) }
func eraSuffixes() *fst.Fst   { return fst.StringMap(loadMap("zh/date/suffixes.tsv")) }

// DateTagger builds the zh date class tagger (spec §4.4). It deliberately
// has no branch for a bare number followed by 号/日 — that ambiguity is
// resolved by leaving such input untouched here so the cardinal grammar
// (weighted lower) wins the shortest-path arbitration instead.
func DateTagger() (*fst.Fst, error) {
	era := fst.Union(fst.Accept(""), fst.Concat(eraSuffixes(), fst.Union(fst.Accept(""), fst.Accept("前"))))

	yearOnly := fst.Concat(era, yearReading(), fst.Accept("年"))
	yearOnlyTagged := fst.Concat(
		fst.Insert(`date { year: "`), yearOnly, fst.Insert(`" }`),
	)

	monthOnly := fst.Concat(monthReading(), fst.Accept("月"))
	monthOnlyTagged := fst.Concat(
		fst.Insert(`date { month: "`), monthOnly, fst.Insert(`" }`),
	)

	daySuffix := fst.Union(fst.Delete("日"), fst.Delete("号"), fst.Delete("號"))
	full := fst.Concat(
		fst.Insert(`date { year: "`), era, yearReading(), fst.Delete("年"),
		fst.Insert(`" month: "`), monthReading(), fst.Delete("月"),
		fst.Insert(`" day: "`), dayReading(), daySuffix,
		fst.Insert(`" }`),
	)

	sep := fst.Union(fst.Delete("-"), fst.Delete("/"), fst.Delete("."), fst.Delete("·"))
	separatorFull := fst.Concat(
		fst.Insert(`date { year: "`), yearReading(), sep,
		fst.Insert(`" month: "`), monthReading(), sep,
		fst.Insert(`" day: "`), dayReading(),
		fst.Insert(`" }`),
	)

	return fst.Union(yearOnlyTagged, monthOnlyTagged, full, separatorFull), nil
}

// DateVerbalizer renders the year-only and month-only shapes, whose
// 年/月 particle is baked into the field at tag time, as a straight
// field copy-through (spec §4.2); the full shape goes through
// dateFullVerbalizer, which inserts 年/月/日 itself.
func DateVerbalizer() *fst.Fst {
	return fst.Union(
		tnorm.BuildVerbalizer(tnorm.ClassDate, "year", []string{"year"}),
		tnorm.BuildVerbalizer(tnorm.ClassDate, "month", []string{"month"}),
		dateFullVerbalizer(),
	)
}

// dateFullVerbalizer renders `date { year: "Y" month: "M" day: "D" }` as
// Y年M月D日, the canonical spoken form regardless of which surface
// separator style produced the tag.
func dateFullVerbalizer() *fst.Fst {
	return fst.Concat(
		fst.Delete("date { year: \""),
		copyThroughZh(),
		fst.Insert("年"),
		fst.Delete(" month: \""),
		copyThroughZh(),
		fst.Insert("月"),
		fst.Delete(" day: \""),
		copyThroughZh(),
		fst.Insert("日"),
		fst.Delete(" }"),
	)
}
