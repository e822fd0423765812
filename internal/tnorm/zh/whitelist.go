package zh

import "github.com/cjktextnorm/textnorm/internal/fst"

// WhitelistTagger builds the whitelist class tagger from a caller-supplied
// surface->spoken override table (spec §6's `whitelist_path`): unlike
// every other class grammar, its vocabulary is runtime-configurable, not
// compiled in from a fixed embedded TSV (internal/search.WhitelistSearcher
// is the companion runtime-management surface for this same table).
// If entries is empty the tagger accepts nothing (StringMap of no pairs
// is the empty language; no error is returned), so callers skip
// registering this grammar rather than union in a no-op.
func WhitelistTagger(entries [][2]string) *fst.Fst {
	return fst.Concat(
		fst.Insert(`whitelist { value: "`), fst.StringMap(entries), fst.Insert(`" }`),
	)
}

// WhitelistVerbalizer renders `whitelist { value }` as the already
// spoken override text.
func WhitelistVerbalizer() *fst.Fst {
	return fst.Concat(
		fst.Delete(`whitelist { value: "`), copyThroughZh(), fst.Delete(` }`),
	)
}
