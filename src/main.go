package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"rbvstudio/src/config"
	"rbvstudio/src/favicon"
	"rbvstudio/src/optimizer"
)

func main() {
	fmt.Println("RB-Ventures - Site Asset Pipeline")
	fmt.Println("=================================")

	cfg, err := config.Load("assets.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Loaded config: repository root %s", cfg.Root)

	os.Exit(run(cfg, os.Stdout, os.Stderr))
}

// run executes both steps in order and returns the first non-zero status.
// The optimizer still runs when favicon generation fails.
func run(cfg *config.Config, stdout, stderr io.Writer) int {
	logger := log.New(stdout, "", 0)

	err := favicon.NewGenerator(logger).Generate(cfg.DefaultLogoPath(), cfg.AssetsPath())
	if err != nil && !errors.Is(err, favicon.ErrSourceNotFound) {
		fmt.Fprintf(stderr, "Favicon generation failed: %v\n", err)
	}
	status := favicon.ExitCode(err)

	_, err = optimizer.NewOptimizer(cfg.Root, logger).Run()
	if err != nil && !errors.Is(err, optimizer.ErrNoCollections) {
		fmt.Fprintf(stderr, "Optimization failed: %v\n", err)
	}
	if status == 0 {
		status = optimizer.ExitCode(err)
	}
	return status
}
