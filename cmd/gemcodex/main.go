package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"github.com/gostonefire/gemindex"
	"github.com/gostonefire/gemindex/internal/conf"
	"github.com/gostonefire/gemindex/internal/console"
	"github.com/gostonefire/gemindex/internal/jsonl"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"os"
)

func main() {
	configPath := flag.String("config", "", "YAML config file, defaults to configs/gemindex.yaml or gemindex.yaml if present")
	dataFile := flag.String("data", "", "line delimited JSON file with gems, overrides data_file in the config")
	flag.Parse()

	if err := run(*configPath, *dataFile); err != nil {
		fmt.Fprintf(os.Stderr, "gemcodex: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, dataFile string) (err error) {
	cfg, err := conf.Load(configPath)
	if err != nil {
		return
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}

	teardown, err := cfg.SetupTracing("go", gologadapter.GetAdapter())
	if err != nil {
		return
	}
	defer teardown()

	placement, err := cfg.PlacementValue()
	if err != nil {
		return
	}

	hashAlgorithm, err := cfg.HashAlgorithm()
	if err != nil {
		return
	}

	catalog, err := gemindex.NewCatalog(gemindex.CatalogConf{
		InitialCapacity: cfg.InitialCapacity,
		Placement:       placement,
		BTreeDegree:     cfg.BTreeDegree,
		HashAlgorithm:   hashAlgorithm,
	})
	if err != nil {
		return
	}

	fmt.Println("=== GEM CODEX ===")
	fmt.Printf("Loading gems from %s...\n", cfg.DataFile)

	f, err := os.Open(cfg.DataFile)
	if err != nil {
		err = fmt.Errorf("error while opening data file, make sure %s exists: %w", cfg.DataFile, err)
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	reader := jsonl.NewReader(f)
	reader.OnError = func(lineNo int, raw string, err error) {
		fmt.Printf("Error on line %d: %v\nOffending line: %s\n", lineNo, err, raw)
	}

	n, err := catalog.Ingest(reader)
	if err != nil {
		return
	}
	fmt.Printf("Loaded %d gems (%d lines skipped), placement by %s\n", n, reader.Skipped(), placement)

	c := console.New(catalog, os.Stdin, os.Stdout, rand.Reader)
	c.SetShowLimit(cfg.ShowLimit)

	err = c.Run()

	return
}
