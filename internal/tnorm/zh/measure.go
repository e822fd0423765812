package zh

import "github.com/cjktextnorm/textnorm/internal/fst"

// measureUnit unions the length/weight/area/temperature unit whitelists
// (spec §4.8, "unit is drawn from a length/weight/area/temperature
// whitelist").
func measureUnit() *fst.Fst {
	return fst.Union(
		fst.StringMap(loadMap("zh/measure/length.tsv")),
		fst.StringMap(loadMap("zh/measure/weight.tsv")),
		fst.StringMap(loadMap("zh/measure/area.tsv")),
		fst.StringMap(loadMap("zh/measure/temperature.tsv")),
	)
}

// MeasureTagger builds the zh measure class tagger (spec §4.8):
// `<number><unit>` -> <cardinal(number)><spoken unit>.
func MeasureTagger() (*fst.Fst, error) {
	value, err := signedlessCardinal()
	if err != nil {
		return nil, err
	}
	return fst.Concat(
		fst.Insert(`measure { value: "`), value, fst.Insert(`" unit: "`),
		measureUnit(), fst.Insert(`" }`),
	), nil
}

// MeasureVerbalizer renders `measure { value unit }` as <value><unit>.
func MeasureVerbalizer() *fst.Fst {
	return fst.Concat(
		fst.Delete(`measure { value: "`), copyThroughZh(),
		fst.Delete(` unit: "`), copyThroughZh(), fst.Delete(` }`),
	)
}
