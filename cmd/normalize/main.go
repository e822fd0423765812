package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/cjktextnorm/textnorm/app/services"
)

// cmd/normalize is a one-shot flag-based CLI (stdlib flag, matching the
// earlier lack of a CLI framework dependency — it has none), for use
// outside the HTTP service and in scripts/tests, per spec.md §6's
// Normalizer call surface.
func main() {
	lang := flag.String("lang", "zh", "language: zh or ja")
	text := flag.String("text", "", "text to normalize; reads stdin line by line if omitted")
	deterministic := flag.Bool("deterministic", true, "use deterministic weight assignment")
	verbose := flag.Bool("verbose", false, "also print the intermediate tagged form")
	punctPostProcess := flag.Bool("punct-post-process", true, "run punctuation post-processing")
	whitelistPath := flag.String("whitelist", "", "optional whitelist TSV path")
	flag.Parse()

	logger := zap.NewNop()

	cfg := services.NormalizeServiceConfig{
		Deterministic:  *deterministic,
		WhitelistPairs: loadWhitelist(*whitelistPath),
	}
	cache := services.NewNormalizeCacheService(0)
	svc, err := services.NewNormalizeService(cfg, cache, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "normalize: build error:", err)
		os.Exit(1)
	}

	if *text != "" {
		printResult(svc, *lang, *deterministic, *text, *verbose, *punctPostProcess)
		return
	}

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		printResult(svc, *lang, *deterministic, line, *verbose, *punctPostProcess)
	}
}

func printResult(svc *services.NormalizeService, lang string, deterministic bool, text string, verbose, punctPostProcess bool) {
	res, err := svc.Normalize(lang, deterministic, text, verbose, punctPostProcess)
	if err != nil {
		fmt.Fprintln(os.Stderr, "normalize: error:", err)
		return
	}
	if verbose && res.Tokens != "" {
		fmt.Printf("%s\t%s\n", res.Text, res.Tokens)
		return
	}
	fmt.Println(res.Text)
}

func loadWhitelist(path string) [][2]string {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "normalize: cannot open whitelist:", err)
		return nil
	}
	defer f.Close()

	var pairs [][2]string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		cols := strings.SplitN(sc.Text(), "\t", 2)
		if len(cols) != 2 {
			continue
		}
		pairs = append(pairs, [2]string{cols[0], cols[1]})
	}
	return pairs
}
