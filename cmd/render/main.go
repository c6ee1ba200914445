// Command render calculates a region of the Mandelbrot set in parallel and
// writes it to a PNG or BMP file.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/image/bmp"

	mandel "github.com/cjhall/mandelbrot"
	"github.com/cjhall/mandelbrot/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		preset       = flag.String("region", "default", "named region to render, one of: "+presetNames())
		minReal      = flag.Float64("min-real", math.NaN(), "left edge of a custom region (overrides -region with the other three bounds)")
		maxReal      = flag.Float64("max-real", math.NaN(), "right edge of a custom region")
		minImag      = flag.Float64("min-imag", math.NaN(), "bottom edge of a custom region")
		maxImag      = flag.Float64("max-imag", math.NaN(), "top edge of a custom region")
		width        = flag.Int("width", 1200, "output image width in pixels (height follows from the region's aspect ratio)")
		oversampling = flag.Int("oversampling", 2, "sub-samples per pixel in each direction")
		iterations   = flag.Int("iterations", 400, "maximum escape iterations per sample")
		escapeRadius = flag.Float64("escape-radius", 10.0, "magnitude at which a point counts as escaped")
		workers      = flag.Int("workers", runtime.NumCPU(), "number of concurrent strip workers")
		stripFactor  = flag.Int("strip-factor", 0, "strips per worker, 0 for the default")
		out          = flag.String("out", "mandel.png", "output file, .png or .bmp")
	)
	flag.Parse()

	region, err := pickRegion(*preset, *minReal, *maxReal, *minImag, *maxImag)
	if err != nil {
		return err
	}

	def, err := mandel.NewSetDefinition(region, *width, *oversampling, *iterations, *escapeRadius)
	if err != nil {
		return fmt.Errorf("set definition: %w", err)
	}
	log.Printf("definition: %dx%d px, oversampling %d, %d iterations", def.WidthPx, def.HeightPx, def.Oversampling, def.MaxIterations)

	calc := mandel.Calculator{
		Workers:     *workers,
		StripFactor: *stripFactor,
		OnStripDone: func(done, total int) {
			log.Printf("strips done: %d/%d", done, total)
		},
	}

	start := time.Now()
	set, err := calc.Calc(def)
	if err != nil {
		return fmt.Errorf("calculate set: %w", err)
	}
	log.Printf("set calculated in %s (%d samples)", time.Since(start), len(set.Data))

	renderer := render.Renderer{
		OnPaletteBuilt: func(size int) { log.Printf("palette built with %d colours", size) },
	}
	start = time.Now()
	img, err := renderer.Image(set)
	if err != nil {
		return fmt.Errorf("render image: %w", err)
	}
	log.Printf("image rendered in %s", time.Since(start))

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext := filepath.Ext(*out); ext {
	case ".png":
		err = png.Encode(f, img)
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		return fmt.Errorf("unsupported output extension %q, want .png or .bmp", ext)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", *out, err)
	}

	log.Printf("rendered image saved to %q", *out)
	return nil
}

// pickRegion returns the custom bounds when all four are given, the named
// preset otherwise.
func pickRegion(preset string, minReal, maxReal, minImag, maxImag float64) (mandel.Region, error) {
	custom := 0
	for _, v := range []float64{minReal, maxReal, minImag, maxImag} {
		if !math.IsNaN(v) {
			custom++
		}
	}
	switch custom {
	case 4:
		return mandel.Region{MinReal: minReal, MaxReal: maxReal, MinImag: minImag, MaxImag: maxImag}, nil
	case 0:
		r, ok := mandel.Presets[preset]
		if !ok {
			return mandel.Region{}, fmt.Errorf("unknown region %q, want one of: %s", preset, presetNames())
		}
		return r, nil
	default:
		return mandel.Region{}, fmt.Errorf("custom regions need all four bounds, got %d of 4", custom)
	}
}

func presetNames() string {
	names := make([]string, 0, len(mandel.Presets))
	for name := range mandel.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
