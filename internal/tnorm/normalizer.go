package tnorm

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cjktextnorm/textnorm/internal/fst"
	"github.com/cjktextnorm/textnorm/internal/tnorm/data"
)

// Lang selects which class-grammar registry a Normalizer compiles
// against (spec §6).
type Lang string

const (
	LangZh Lang = "zh"
	LangJa Lang = "ja"
)

// InputCase mirrors spec §6's input_case knob. Neither value currently
// changes grammar construction (no class here is case-sensitive — all
// classes operate on digits and CJK text), so it is carried through
// purely as part of the public constructor contract (it is not part of
// the grammar cache key); see
// DESIGN.md for why no grammar branches on it today.
type InputCase string

const (
	InputCased      InputCase = "cased"
	InputLowerCased InputCase = "lower_cased"
)

// CompiledGrammar is the cacheable unit a Normalizer builds once and
// reuses across every Normalize call (spec §5: "compiled classify and
// verbalize FSTs are immutable after construction and may be shared
// read-only across any number of concurrent normalize calls").
type CompiledGrammar struct {
	Classify  *fst.Fst
	Verbalize *fst.Fst
}

// GrammarBuilder constructs the registry a language contributes; package
// zh and package ja each expose a function with this signature, kept
// decoupled from this package to avoid an import cycle (tnorm is the
// shared kernel zh/ja both depend on).
type GrammarBuilder func(whitelistEntries [][2]string) (*Registry, error)

// Normalizer is the spec §6 programmatic surface: build once from a
// language's grammar builder, then call Normalize concurrently from any
// number of goroutines.
type Normalizer struct {
	lang          Lang
	inputCase     InputCase
	deterministic bool
	grammar       CompiledGrammar
	logger        *zap.Logger
}

// Option configures NewNormalizer beyond its required positional
// arguments, matching functional-option style for
// optional constructor knobs.
type Option func(*normalizerConfig)

type normalizerConfig struct {
	logger          *zap.Logger
	whitelistPairs  [][2]string
	cacheLoader     func(key string) (*CompiledGrammar, bool)
	cacheSaver      func(key string, g *CompiledGrammar)
	overwriteCache  bool
}

// WithLogger attaches a *zap.Logger; library code defaults to a no-op
// logger when omitted, since internal/tnorm is also usable standalone
// (spec AMBIENT STACK "Logging").
func WithLogger(l *zap.Logger) Option {
	return func(c *normalizerConfig) { c.logger = l }
}

// WithWhitelist loads literal surface->spoken overrides (spec §6's
// whitelist_path) into the whitelist class grammar.
func WithWhitelist(pairs [][2]string) Option {
	return func(c *normalizerConfig) { c.whitelistPairs = pairs }
}

// WithCache wires a compiled-grammar cache (internal/tnorm/cachestore
// implements load/save against this narrow interface, not a concrete
// type, so this package never imports the cache backends directly).
// overwrite forces a rebuild even on a cache hit (spec §6
// overwrite_cache).
func WithCache(load func(key string) (*CompiledGrammar, bool), save func(key string, g *CompiledGrammar), overwrite bool) Option {
	return func(c *normalizerConfig) {
		c.cacheLoader = load
		c.cacheSaver = save
		c.overwriteCache = overwrite
	}
}

// NewNormalizer builds a Normalizer for lang (spec §6). build is the
// language's grammar constructor (zh.BuildRegistry or ja.BuildRegistry).
// A BuildError (malformed TSV, a non-determinizable difference, etc.)
// from the underlying grammar construction surfaces here, since
// constructors are the only layer the spec allows to fail loudly (§7).
func NewNormalizer(lang Lang, inputCase InputCase, deterministic bool, build GrammarBuilder, opts ...Option) (*Normalizer, error) {
	cfg := &normalizerConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}

	cacheKey := fmt.Sprintf("%s|%v|%d", lang, deterministic, len(cfg.whitelistPairs))
	if cfg.cacheLoader != nil && !cfg.overwriteCache {
		if g, ok := cfg.cacheLoader(cacheKey); ok {
			cfg.logger.Debug("normalizer: grammar cache hit", zap.String("key", cacheKey))
			return &Normalizer{lang: lang, inputCase: inputCase, deterministic: deterministic, grammar: *g, logger: cfg.logger}, nil
		}
	}

	reg, err := build(cfg.whitelistPairs)
	if err != nil {
		return nil, fmt.Errorf("tnorm: build %s grammar: %w", lang, err)
	}

	fullwidth, err := data.Load("char/fullwidth_to_halfwidth.tsv")
	if err != nil {
		return nil, fmt.Errorf("tnorm: load fullwidth table: %w", err)
	}
	pre, err := BuildPreprocessor(mapPairSlice(fullwidth))
	if err != nil {
		return nil, fmt.Errorf("tnorm: build preprocessor: %w", err)
	}
	tagger := BuildClassify(reg)
	classify, err := fst.Compose(pre, tagger)
	if err != nil {
		return nil, fmt.Errorf("tnorm: compose preprocessor onto classifier: %w", err)
	}

	grammar := CompiledGrammar{Classify: classify, Verbalize: BuildVerbalize(reg)}
	if cfg.cacheSaver != nil {
		cfg.cacheSaver(cacheKey, &grammar)
	}

	return &Normalizer{lang: lang, inputCase: inputCase, deterministic: deterministic, grammar: grammar, logger: cfg.logger}, nil
}

func mapPairSlice(pairs []data.Pair) [][2]string {
	out := make([][2]string, len(pairs))
	for i, p := range pairs {
		out[i] = [2]string{p.In, p.Out}
	}
	return out
}

// Result is what Normalize returns in verbose mode (spec §6): the final
// spoken text plus the intermediate tagged form that produced it.
type Result struct {
	Text   string
	Tokens string
}

// Normalize implements the spec §4.13 driver: tag, then verbalize, then
// post-process. NormalizeFallthrough (spec §7) is handled here by
// returning the input unchanged whenever either shortest-path search
// comes back empty — the runtime path never raises.
func (n *Normalizer) Normalize(text string, verbose bool, punctPostProcess bool) Result {
	acceptor := fst.Accept(text)
	tagged, err := fst.Compose(acceptor, n.grammar.Classify)
	if err != nil {
		n.logger.Debug("normalize: classify compose failed, falling through", zap.Error(err))
		return Result{Text: text}
	}
	taggedPaths, err := fst.ShortestPath(tagged, 1)
	if err != nil || len(taggedPaths) == 0 {
		n.logger.Debug("normalize: no classify path, falling through")
		return Result{Text: text}
	}
	taggedText := taggedPaths[0].Output

	spokenFst, err := fst.Compose(fst.Accept(taggedText), n.grammar.Verbalize)
	if err != nil {
		n.logger.Debug("normalize: verbalize compose failed, falling through", zap.Error(err))
		return Result{Text: text}
	}
	spokenPaths, err := fst.ShortestPath(spokenFst, 1)
	if err != nil || len(spokenPaths) == 0 {
		n.logger.Debug("normalize: no verbalize path, falling through")
		return Result{Text: text}
	}

	out := spokenPaths[0].Output
	if punctPostProcess {
		out = PostProcess(out)
	} else {
		out = restoreSpaceMarker(out)
	}

	result := Result{Text: out}
	if verbose {
		result.Tokens = taggedText
	}
	return result
}

func restoreSpaceMarker(s string) string {
	return strings.ReplaceAll(s, SpaceMarker, " ")
}
