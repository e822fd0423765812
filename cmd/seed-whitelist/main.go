package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cjktextnorm/textnorm/internal/search"
)

// cmd/seed-whitelist reads a surface\treading TSV and indexes it into
// Meilisearch for the admin-facing fuzzy whitelist search, adapted
// from the earlier seed_meilisearch.go (there: MongoDB admin_units
// into Meilisearch; here: a flat TSV file, since the whitelist has no
// hierarchy and no database of record — the grammar's StringMap is
// built from the whitelist TSV, never from this index).
func main() {
	path := flag.String("file", "", "whitelist TSV path (surface<TAB>reading per line)")
	host := flag.String("host", "http://localhost:7700", "Meilisearch host")
	apiKey := flag.String("api-key", "", "Meilisearch API key")
	index := flag.String("index", "whitelist", "Meilisearch index name")
	flag.Parse()

	if *path == "" {
		log.Fatal("seed-whitelist: -file is required")
	}

	entries, err := readEntries(*path)
	if err != nil {
		log.Fatalf("seed-whitelist: %v", err)
	}
	fmt.Printf("Loaded %d whitelist entries from %s\n", len(entries), *path)

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	searcher, err := search.NewWhitelistSearcher(search.Config{
		Host:      *host,
		APIKey:    *apiKey,
		IndexName: *index,
		Timeout:   30 * time.Second,
	}, logger)
	if err != nil {
		log.Fatalf("seed-whitelist: connect meilisearch: %v", err)
	}

	if err := searcher.Configure(); err != nil {
		log.Fatalf("seed-whitelist: configure index: %v", err)
	}
	if err := searcher.Seed(entries); err != nil {
		log.Fatalf("seed-whitelist: seed: %v", err)
	}

	fmt.Printf("Seeded %d entries into Meilisearch index %q\n", len(entries), *index)
}

func readEntries(path string) ([]search.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []search.Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		cols := strings.SplitN(line, "\t", 2)
		if len(cols) != 2 {
			continue
		}
		entries = append(entries, search.Entry{Surface: cols[0], Reading: cols[1]})
	}
	return entries, sc.Err()
}
