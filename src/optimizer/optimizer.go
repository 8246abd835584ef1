package optimizer

import (
	"errors"
	"fmt"
	"image"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"rbvstudio/src/common"
)

const (
	// MaxWidth is the widest image written; wider sources are scaled down.
	MaxWidth = 1600
	// Quality is the lossy WebP quality (0-100).
	Quality = 78
	// Method is the WebP compression effort, 6 being the slowest and smallest.
	Method = 6
	// OutputExt replaces the source extension.
	OutputExt = ".webp"
)

var (
	// SourceDir is the collections folder relative to the repository root
	SourceDir = filepath.Join("assets", "collections")
	// OutputDirName is the folder inside SourceDir that receives the WebP files
	OutputDirName = "optimized"
)

// ErrNoCollections is returned when the collections folder is missing
var ErrNoCollections = errors.New("no collections folder")

var recognizedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// IsRecognized reports whether name has one of the raster extensions the
// optimizer converts. The check is case-insensitive.
func IsRecognized(name string) bool {
	return recognizedExts[strings.ToLower(filepath.Ext(name))]
}

// TargetSize returns the output dimensions for a width x height source and
// whether a resize is needed.
func TargetSize(width, height int) (int, int, bool) {
	if width <= MaxWidth {
		return width, height, false
	}
	scale := float64(MaxWidth) / float64(width)
	newH := int(math.Round(float64(height) * scale))
	return MaxWidth, max(newH, 1), true
}

// Report summarizes one run
type Report struct {
	Optimized []string         // written files
	Failed    map[string]error // source path -> cause
}

// Optimizer converts the collections folder of a repository to WebP
type Optimizer struct {
	root   string
	logger *log.Logger
}

// NewOptimizer creates an optimizer for the repository at root
func NewOptimizer(root string, logger *log.Logger) *Optimizer {
	if logger == nil {
		logger = log.Default()
	}
	return &Optimizer{root: root, logger: logger}
}

// SourcePath returns the scanned collections folder
func (o *Optimizer) SourcePath() string {
	return filepath.Join(o.root, SourceDir)
}

// OutputPath returns the folder WebP files are written to
func (o *Optimizer) OutputPath() string {
	return filepath.Join(o.SourcePath(), OutputDirName)
}

// Run converts every recognized image directly inside the collections
// folder. A file that fails to convert is logged and skipped; only a
// missing or unreadable collections folder fails the run.
func (o *Optimizer) Run() (*Report, error) {
	src := o.SourcePath()
	if !common.DirExists(src) {
		o.logger.Printf("No collections folder at %s", src)
		return nil, fmt.Errorf("%w: %s", ErrNoCollections, src)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	report := &Report{Failed: make(map[string]error)}
	for _, entry := range entries {
		if entry.IsDir() || !IsRecognized(entry.Name()) {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(o.OutputPath(), common.ReplaceExt(entry.Name(), OutputExt))

		if err := o.OptimizeImage(srcPath, dstPath); err != nil {
			o.logger.Printf("Failed for %s: %v", srcPath, err)
			report.Failed[srcPath] = err
			continue
		}
		report.Optimized = append(report.Optimized, dstPath)
	}

	return report, nil
}

// OptimizeImage decodes srcPath, scales it down to MaxWidth if wider, and
// writes it to dstPath as lossy WebP.
func (o *Optimizer) OptimizeImage(srcPath, dstPath string) error {
	img, err := common.Open(srcPath)
	if err != nil {
		return err
	}

	var out image.Image = img
	b := img.Bounds()
	if w, h, resize := TargetSize(b.Dx(), b.Dy()); resize {
		out = common.Resize(img, w, h)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := common.SaveWebP(out, dstPath, common.WebPOptions{Quality: Quality, Method: Method}); err != nil {
		return err
	}

	o.logger.Printf("Optimized %s -> %s", o.rel(srcPath), o.rel(dstPath))
	return nil
}

// rel shortens path to be relative to the repository root for log output
func (o *Optimizer) rel(path string) string {
	r, err := filepath.Rel(o.root, path)
	if err != nil {
		return path
	}
	return r
}

// ExitCode maps a Run result to the process exit status. Per-file failures
// never reach here, so any error is fatal.
func ExitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
