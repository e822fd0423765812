package zh

import "github.com/cjktextnorm/textnorm/internal/fst"

func ordinalSuffix() *fst.Fst {
	return fst.Union(fst.Accept(""), fst.Accept("名"), fst.Accept("位"), fst.Accept("个"))
}

// OrdinalTagger builds the zh ordinal class tagger (spec §4.8): `第N` ->
// 第<cardinal(N)>, with the optional 名/位/个 classifier suffix preserved.
func OrdinalTagger() (*fst.Fst, error) {
	value, err := signedlessCardinal()
	if err != nil {
		return nil, err
	}
	return fst.Concat(
		fst.Delete("第"), fst.Insert(`ordinal { value: "`), value,
		fst.Insert(`" suffix: "`), ordinalSuffix(), fst.Insert(`" }`),
	), nil
}

// OrdinalVerbalizer renders `ordinal { value suffix }` as 第<value><suffix>.
func OrdinalVerbalizer() *fst.Fst {
	return fst.Concat(
		fst.Delete(`ordinal { value: "`), fst.Insert("第"), copyThroughZh(),
		fst.Delete(` suffix: "`), copyThroughZh(), fst.Delete(` }`),
	)
}
