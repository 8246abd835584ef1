package favicon

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"rbvstudio/src/common"
)

// ErrSourceNotFound is returned when the source logo does not exist
var ErrSourceNotFound = errors.New("source logo not found")

// Output is one generated file. Multi-frame containers list several sizes.
type Output struct {
	Name  string
	Sizes []Size
}

// IsContainer reports whether the output is a multi-resolution icon file
func (o Output) IsContainer() bool {
	return strings.EqualFold(filepath.Ext(o.Name), ".ico")
}

func square(n int) Size {
	return Size{Width: n, Height: n}
}

// Outputs is the fixed set of files written for every run, in write order
var Outputs = []Output{
	{Name: "favicon.ico", Sizes: []Size{square(16), square(32), square(48), square(64)}},
	{Name: "favicon-16.png", Sizes: []Size{square(16)}},
	{Name: "favicon-32.png", Sizes: []Size{square(32)}},
	{Name: "favicon-48.png", Sizes: []Size{square(48)}},
	{Name: "favicon-96.png", Sizes: []Size{square(96)}},
	{Name: "favicon-192.png", Sizes: []Size{square(192)}},
	{Name: "favicon-512.png", Sizes: []Size{square(512)}},
	{Name: "apple-touch-icon.png", Sizes: []Size{square(180)}},
}

// Generator writes the favicon set derived from a single logo
type Generator struct {
	logger *log.Logger
}

// NewGenerator creates a generator that reports written files to logger
func NewGenerator(logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{logger: logger}
}

// Generate renders every entry of Outputs plus the web manifest into outDir.
func (g *Generator) Generate(src, outDir string) error {
	if !common.FileExists(src) {
		g.logger.Printf("Source logo not found at %s", src)
		return fmt.Errorf("%w: %s", ErrSourceNotFound, src)
	}

	img, err := common.Open(src)
	if err != nil {
		return fmt.Errorf("failed to load source logo: %w", err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, out := range Outputs {
		path := filepath.Join(outDir, out.Name)
		if err := writeOutput(img, out, path); err != nil {
			return err
		}
		g.logger.Printf("Written %s", path)
	}

	manifestPath := filepath.Join(outDir, ManifestName)
	if err := WriteManifest(SiteManifest(), manifestPath); err != nil {
		return err
	}
	g.logger.Printf("Written %s", manifestPath)

	return nil
}

// writeOutput composes one icon per size and saves them to path
func writeOutput(img image.Image, out Output, path string) error {
	frames := make([]image.Image, 0, len(out.Sizes))
	for _, size := range out.Sizes {
		frames = append(frames, SquareIcon(img, size))
	}

	if len(frames) == 0 {
		return fmt.Errorf("no sizes listed for %s", out.Name)
	}

	if out.IsContainer() {
		if err := common.SaveICO(frames, path); err != nil {
			return fmt.Errorf("failed to write %s: %w", out.Name, err)
		}
		return nil
	}

	if err := common.Save(frames[0], path); err != nil {
		return fmt.Errorf("failed to write %s: %w", out.Name, err)
	}
	return nil
}

// Exit statuses of the favicon generator
const (
	ExitOK            = 0
	ExitError         = 1
	ExitSourceMissing = 2
)

// ExitCode maps a Generate result to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrSourceNotFound):
		return ExitSourceMissing
	default:
		return ExitError
	}
}
