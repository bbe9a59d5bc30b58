// Command rampdemo drives a rampcache.Cache through a sequence of frames
// and writes the resulting ramp buffer as a PNG.
package main

import (
	"errors"
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/rampcache"
)

func main() {
	var (
		frames    = flag.Int("frames", 120, "number of frames to simulate")
		gradients = flag.Int("gradients", 48, "gradients drawn per frame")
		slide     = flag.Int("slide", 4, "new gradients entering the set each frame")
		rowHeight = flag.Int("row-height", 8, "preview height of one ramp in pixels")
		linear    = flag.Bool("linear", false, "interpolate in linear sRGB")
		output    = flag.String("output", "ramps.png", "output file")
		verbose   = flag.Bool("v", false, "log cache events to stderr")
	)
	flag.Parse()

	if *verbose {
		rampcache.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var opts []rampcache.Option
	if *linear {
		opts = append(opts, rampcache.WithInterpolation(rampcache.InterpolateLinearSRGB))
	}
	cache := rampcache.New(opts...)

	for f := 0; f < *frames; f++ {
		first := f * *slide
		for i := first; i < first+*gradients; i++ {
			cache.Add(rainbow(i))
		}
		cache.Maintain()
	}

	printStats(cache.Stats())

	err := savePreview(cache.Ramps(), *rowHeight, *output)
	switch {
	case errors.Is(err, errNoRamps):
		log.Printf("No ramps to save, %s not written\n", *output)
	case err != nil:
		log.Fatalf("Failed to save: %v", err)
	default:
		log.Printf("Ramps saved to %s\n", *output)
	}
}

// errNoRamps is returned by savePreview for an empty ramp buffer, which
// PNG cannot encode.
var errNoRamps = errors.New("no ramps")

// rainbow returns a three-stop gradient whose hues are derived from n.
func rainbow(n int) rampcache.Stops {
	h := float64(n) * 0.618033988749895
	return rampcache.Stops{
		{Offset: 0, Color: hue(h)},
		{Offset: 0.5, Color: hue(h + 0.33).Lerp(rampcache.White, 0.3)},
		{Offset: 1, Color: rampcache.RGBA2(0, 0, 0, 0.25).Lerp(hue(h+0.66), 0.5)},
	}
}

func hue(h float64) rampcache.RGBA {
	h = (h - math.Floor(h)) * 6
	ch := func(k float64) float64 {
		v := math.Abs(math.Mod(h+k, 6)-3) - 1
		return math.Max(0, math.Min(1, v))
	}
	return rampcache.RGB(ch(0), ch(4), ch(2))
}

func savePreview(r rampcache.Ramps, rowHeight int, path string) error {
	if r.Height == 0 {
		return errNoRamps
	}
	src := r.Image()
	dst := image.NewRGBA(image.Rect(0, 0, int(r.Width), int(r.Height)*max(rowHeight, 1)))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func printStats(s rampcache.Stats) {
	p := message.NewPrinter(language.English)
	p.Printf("epoch:     %d\n", s.Epoch)
	p.Printf("entries:   %d (retained %d, rows %d)\n", s.Entries, s.Retained, s.Height)
	p.Printf("adds:      %d hits, %d misses (%.1f%% hit rate)\n", s.Hits, s.Misses, s.HitRate()*100)
	p.Printf("reclaims:  %d\n", s.Reclaims)
	p.Printf("overruns:  %d\n", s.Overruns)
	p.Printf("trimmed:   %d\n", s.Trimmed)
}
