// Command generate-favicons renders the favicon set and web manifest from a
// source logo.
//
// Usage: go run ./src/cmd/generate-favicons [--src PATH] [--outdir PATH]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"rbvstudio/src/config"
	"rbvstudio/src/favicon"
)

const configFile = "assets.yaml"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return favicon.ExitError
	}

	var src, outDir string
	flags := flag.NewFlagSet("generate-favicons", flag.ContinueOnError)
	flags.StringVar(&src, "src", cfg.DefaultLogoPath(), "Source logo path")
	flags.StringVar(&outDir, "outdir", cfg.AssetsPath(), "Output directory for favicons")
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return favicon.ExitOK
		}
		return 2 // same status flag.ExitOnError uses
	}

	gen := favicon.NewGenerator(log.New(stdout, "", 0))
	err = gen.Generate(src, outDir)
	if err != nil && !errors.Is(err, favicon.ErrSourceNotFound) {
		fmt.Fprintf(stderr, "Favicon generation failed: %v\n", err)
	}
	return favicon.ExitCode(err)
}
