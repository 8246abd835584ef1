// Command optimize-collections converts the PNG and JPEG files in
// assets/collections to resized WebP copies under assets/collections/optimized.
//
// Usage: go run ./src/cmd/optimize-collections
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"rbvstudio/src/config"
	"rbvstudio/src/optimizer"
)

const configFile = "assets.yaml"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("optimize-collections", flag.ContinueOnError)
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}

	report, err := optimizer.NewOptimizer(cfg.Root, log.New(stdout, "", 0)).Run()
	if err != nil && !errors.Is(err, optimizer.ErrNoCollections) {
		fmt.Fprintf(stderr, "Optimization failed: %v\n", err)
	}
	if report != nil && len(report.Failed) > 0 {
		fmt.Fprintf(stderr, "%d of %d images failed\n", len(report.Failed), len(report.Failed)+len(report.Optimized))
	}
	return optimizer.ExitCode(err)
}
