package ja

import "github.com/cjktextnorm/textnorm/internal/fst"

// WhitelistTagger builds the whitelist class tagger from a caller-supplied
// surface->spoken override table (spec §6's `whitelist_path`); see
// package zh's WhitelistTagger for the runtime-configurability rationale.
func WhitelistTagger(entries [][2]string) *fst.Fst {
	return fst.Concat(
		fst.Insert(`whitelist { value: "`), fst.StringMap(entries), fst.Insert(`" }`),
	)
}

// WhitelistVerbalizer renders `whitelist { value }` unchanged.
func WhitelistVerbalizer() *fst.Fst {
	return fst.Concat(
		fst.Delete(`whitelist { value: "`), copyThroughJa(), fst.Delete(` }`),
	)
}
