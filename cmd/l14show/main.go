// Command l14show renders a JSON-encoded node tree (spec.md §3, §9) to a
// still image file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"rasterkit/pkg/css"
	"rasterkit/pkg/engine"
	"rasterkit/pkg/images"
	"rasterkit/pkg/inline/ggshaper"
	"rasterkit/pkg/layout/flexsolver"
	"rasterkit/pkg/node"
	"rasterkit/pkg/output"
	"rasterkit/pkg/text"
)

func main() {
	width := flag.Int("w", 800, "viewport width in pixels")
	height := flag.Int("h", 600, "viewport height in pixels")
	out := flag.String("o", "output.png", "output file path")
	quality := flag.Int("q", output.DefaultJPEGQuality, "JPEG quality (1-100), ignored for other formats")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: l14show [flags] <tree.json>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath := flag.Arg(0)

	data, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", inputPath, err)
		os.Exit(1)
	}

	var root node.Node
	if err := json.Unmarshal(data, &root); err != nil {
		fmt.Fprintf(os.Stderr, "error parsing node tree: %v\n", err)
		os.Exit(1)
	}

	log, _ := zap.NewDevelopment()
	defer log.Sync()

	imageStore := images.NewStore()
	fontRegistry := text.NewRegistry()
	fontSnapshot := fontRegistry.Snapshot()
	imageSnapshot := imageStore.Snapshot()

	ctx := engine.Context{
		Viewport: css.DefaultViewport(float64(*width), float64(*height)),
		Images:   &imageSnapshot,
		Fonts:    fontSnapshot,
		Shaper:   ggshaper.New(fontSnapshot),
		Solver:   flexsolver.New(),
		Log:      log,
	}

	canvas, err := engine.Render(&root, ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error rendering: %v\n", err)
		os.Exit(1)
	}

	format := formatFromExt(*out)
	encoded, err := output.Encode(canvas, format, *quality)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error encoding output: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, encoded, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "saved to %s\n", *out)
}

func formatFromExt(path string) output.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return output.FormatJPEG
	case ".webp":
		return output.FormatWebP
	case ".raw", ".rgba":
		return output.FormatRaw
	default:
		return output.FormatPNG
	}
}
