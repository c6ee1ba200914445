// Command server renders a region of the Mandelbrot set and serves it over
// HTTP. While the render runs, strip progress events are broadcast to
// websocket subscribers; the finished image is available as PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

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
		addr         = flag.String("addr", ":8080", "listen address")
		preset       = flag.String("region", "seahorse", "named region to render")
		width        = flag.Int("width", 1920, "output image width in pixels")
		oversampling = flag.Int("oversampling", 2, "sub-samples per pixel in each direction")
		iterations   = flag.Int("iterations", 400, "maximum escape iterations per sample")
		escapeRadius = flag.Float64("escape-radius", 10.0, "magnitude at which a point counts as escaped")
		workers      = flag.Int("workers", runtime.NumCPU(), "number of concurrent strip workers")
	)
	flag.Parse()

	region, ok := mandel.Presets[*preset]
	if !ok {
		return fmt.Errorf("unknown region %q", *preset)
	}
	def, err := mandel.NewSetDefinition(region, *width, *oversampling, *iterations, *escapeRadius)
	if err != nil {
		return fmt.Errorf("set definition: %w", err)
	}

	state := newRenderState()

	// Render in the background; the HTTP handlers report on it.
	go func() {
		calc := mandel.Calculator{
			Workers:     *workers,
			OnStripDone: state.stripDone,
		}
		start := time.Now()
		set, err := calc.Calc(def)
		if err != nil {
			log.Fatalf("calculate set: %v", err)
		}
		log.Printf("set calculated in %s", time.Since(start))

		renderer := render.Renderer{OnPaletteBuilt: state.paletteBuilt}
		img, err := renderer.Image(set)
		if err != nil {
			log.Fatalf("render image: %v", err)
		}
		state.complete(img)
		log.Printf("render complete after %s", time.Since(start))
	}()

	srv := webServer(*addr, state)
	log.Printf("listening on http://localhost%s", *addr)
	return srv.ListenAndServe()
}
