// Package data embeds the TSV lookup tables consumed by the zh and ja
// grammar packages and exposes them as string-pair slices ready for
// fst.StringMap.
package data

import (
	"bufio"
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed tsvdata
var tsvFS embed.FS

// Pair is a single (input, output) mapping row loaded from a TSV table.
type Pair struct {
	In  string
	Out string
}

// Load reads a two-or-three-column TSV table under tsvdata/<relPath> and
// returns its rows as Pairs. A third column, when present, is ignored by
// Load and must be read with LoadTagged instead.
func Load(relPath string) ([]Pair, error) {
	rows, err := readRows(relPath)
	if err != nil {
		return nil, err
	}
	pairs := make([]Pair, 0, len(rows))
	for _, r := range rows {
		if len(r) < 2 {
			continue
		}
		pairs = append(pairs, Pair{In: r[0], Out: r[1]})
	}
	return pairs, nil
}

// TaggedPair is a row from a three-column TSV table, where the third
// column carries a caller-defined tag (e.g. "prefix"/"suffix" for
// telephone context keywords).
type TaggedPair struct {
	In  string
	Out string
	Tag string
}

// LoadTagged reads a three-column TSV table and returns its rows.
func LoadTagged(relPath string) ([]TaggedPair, error) {
	rows, err := readRows(relPath)
	if err != nil {
		return nil, err
	}
	pairs := make([]TaggedPair, 0, len(rows))
	for _, r := range rows {
		if len(r) < 3 {
			continue
		}
		pairs = append(pairs, TaggedPair{In: r[0], Out: r[1], Tag: r[2]})
	}
	return pairs, nil
}

// MustLoad is Load but panics on error; intended for package-level var
// initialization where a missing embedded table is a build-time defect.
func MustLoad(relPath string) []Pair {
	p, err := Load(relPath)
	if err != nil {
		panic(fmt.Sprintf("tnorm/data: %v", err))
	}
	return p
}

// MustLoadTagged is LoadTagged but panics on error.
func MustLoadTagged(relPath string) []TaggedPair {
	p, err := LoadTagged(relPath)
	if err != nil {
		panic(fmt.Sprintf("tnorm/data: %v", err))
	}
	return p
}

func readRows(relPath string) ([][]string, error) {
	full := "tsvdata/" + strings.TrimPrefix(relPath, "/")
	f, err := tsvFS.Open(full)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", full, err)
	}
	defer f.Close()

	var rows [][]string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, "\t"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", full, err)
	}
	return rows, nil
}

// Longest sorts pairs by descending input rune length, which callers use
// to make StringMap prefer the longest literal match (e.g. zero-padded
// "09" before single-digit "9") when weights alone would otherwise tie.
func Longest(pairs []Pair) []Pair {
	out := make([]Pair, len(pairs))
	copy(out, pairs)
	sort.SliceStable(out, func(i, j int) bool {
		return len([]rune(out[i].In)) > len([]rune(out[j].In))
	})
	return out
}
