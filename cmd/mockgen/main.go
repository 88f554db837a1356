package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rwsch/cmd/mockgen/engine"
	"rwsch/internal/itemlog"
)

func main() {
	scenario := flag.String("scenario", "medium", "Scenario to generate: "+strings.Join(engine.Scenarios(), ", "))
	bias := flag.String("bias", "neutral", "Rating bias: neutral, positive, negative")
	outDir := flag.String("out", "./items", "Output directory for item logs")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Scenario: *scenario,
		Bias:     *bias,
		Seed:     *seed,
		Now:      time.Now().UTC(),
	}

	fmt.Printf("Generating scenario '%s' (Bias: %s) to %s...\n", cfg.Scenario, cfg.Bias, *outDir)

	items, err := engine.Generate(cfg)
	if err != nil {
		fmt.Printf("Failed to generate items: %v\n", err)
		os.Exit(1)
	}

	path := filepath.Join(*outDir, fmt.Sprintf("MOCK_%s.jsonl", cfg.Scenario))
	if err := itemlog.Save(path, items); err != nil {
		fmt.Printf("Failed to save mock data: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}
