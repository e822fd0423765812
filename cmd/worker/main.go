package main

import (
	"bufio"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cjktextnorm/textnorm/app/config"
	"github.com/cjktextnorm/textnorm/app/services"
)

// job is one line of NDJSON read from stdin.
type job struct {
	Lang             string `json:"lang"`
	Deterministic    bool   `json:"deterministic"`
	Text             string `json:"text"`
	Verbose          bool   `json:"verbose"`
	PunctPostProcess bool   `json:"punct_post_process"`
}

type jobResult struct {
	Text   string `json:"text"`
	Tokens string `json:"tokens,omitempty"`
	Error  string `json:"error,omitempty"`
}

// cmd/worker reads NDJSON normalize jobs from stdin and writes NDJSON
// results to stdout, fanning out across config.Worker.Concurrency
// goroutines. Normalize calls are pure CPU work with no shared mutable
// state across calls (spec.md §5), so a worker pool purely adds
// throughput on very large batches rather than fixing a correctness
// problem — replacing the earlier stub, which kept the process alive
// without doing any work.
func main() {
	if err := config.Load("config/app.yaml"); err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	logger.Info("starting normalize worker", zap.Int("concurrency", config.C.Worker.Concurrency))

	requestCache := services.NewNormalizeCacheService(time.Hour)
	normalizeService, err := services.NewNormalizeService(
		services.NormalizeServiceConfig{Deterministic: config.C.Normalize.Deterministic},
		requestCache, logger,
	)
	if err != nil {
		logger.Fatal("failed to build normalize service", zap.Error(err))
	}

	done := make(chan struct{})
	go func() {
		runPipeline(normalizeService, config.C.Worker.Concurrency, logger)
		close(done)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-done:
		logger.Info("worker finished processing stdin")
	case <-quit:
		logger.Info("worker interrupted, exiting")
	}
}

func runPipeline(svc *services.NormalizeService, concurrency int, logger *zap.Logger) {
	if concurrency < 1 {
		concurrency = 1
	}

	lines := make(chan string, concurrency*4)
	results := make(chan string, concurrency*4)

	var workers sync.WaitGroup
	workers.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func() {
			defer workers.Done()
			for line := range lines {
				results <- processLine(svc, line, logger)
			}
		}()
	}

	var writer sync.WaitGroup
	writer.Add(1)
	go func() {
		defer writer.Done()
		out := bufio.NewWriter(os.Stdout)
		defer out.Flush()
		for r := range results {
			out.WriteString(r)
			out.WriteByte('\n')
		}
	}()

	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		lines <- line
	}
	if err := sc.Err(); err != nil {
		log.Printf("worker: stdin read error: %v", err)
	}
	close(lines)
	workers.Wait()
	close(results)
	writer.Wait()
}

func processLine(svc *services.NormalizeService, line string, logger *zap.Logger) string {
	var j job
	if err := json.Unmarshal([]byte(line), &j); err != nil {
		logger.Warn("worker: malformed job line", zap.Error(err))
		b, _ := json.Marshal(jobResult{Error: "malformed job: " + err.Error()})
		return string(b)
	}

	res, err := svc.Normalize(j.Lang, j.Deterministic, j.Text, j.Verbose, j.PunctPostProcess)
	if err != nil {
		b, _ := json.Marshal(jobResult{Error: err.Error()})
		return string(b)
	}

	b, _ := json.Marshal(jobResult{Text: res.Text, Tokens: res.Tokens})
	return string(b)
}
