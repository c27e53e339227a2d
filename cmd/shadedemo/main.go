// Command shadedemo renders a signed-distance scene to PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"maps"
	"math"
	"os"
	"os/signal"
	"slices"
	"strings"

	sdfx "github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/shade"
	"github.com/gogpu/shade/color"
	"github.com/gogpu/shade/sdf"
	"github.com/gogpu/shade/shape"
)

func main() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	flag.IntVar(&cfg.Width, "width", cfg.Width, "image width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "image height")
	flag.Float64Var(&cfg.PixelRatio, "pixel-ratio", cfg.PixelRatio, "device pixels per scene unit")
	flag.Float64Var(&cfg.Zoom, "zoom", cfg.Zoom, "antialiasing zoom")
	flag.StringVar(&cfg.Mode, "mode", cfg.Mode, "display mode: coverage or distance")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "color format: srgb or linear")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker goroutines (0 = GOMAXPROCS)")
	flag.StringVar(&cfg.Output, "output", cfg.Output, "color output file")
	flag.StringVar(&cfg.IDOutput, "id-output", cfg.IDOutput, "id buffer output file (empty to skip)")
	palette := flag.String("palette", strings.Join(cfg.Palette, ","), "comma separated hex colors")
	flag.StringVar(&cfg.PaletteFile, "palette-file", cfg.PaletteFile, "read the palette from a file")
	flag.BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-render whenever the palette file changes")
	flag.BoolVar(&cfg.Preview, "preview", cfg.Preview, "show the result in the terminal")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	flag.Parse()
	cfg.Palette = strings.Split(*palette, ",")

	if cfg.Debug {
		shade.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}

// errNoPaletteFile is returned when watch mode has nothing to watch.
var errNoPaletteFile = errors.New("watch mode needs a palette file")

func run(ctx context.Context, cfg *Config) error {
	if cfg.PaletteFile != "" {
		p, err := loadPaletteFile(cfg.PaletteFile)
		if err != nil {
			return err
		}
		cfg.Palette = p
	}

	out, err := render(cfg, cfg.Palette)
	if err != nil {
		return err
	}

	if cfg.Watch {
		if cfg.PaletteFile == "" {
			return errNoPaletteFile
		}
		log.Printf("Watching %s\n", cfg.PaletteFile)
		return watchPalette(ctx, cfg.PaletteFile, func(p []string) error {
			_, err := render(cfg, p)
			return err
		})
	}
	if cfg.Preview {
		return preview(out.Color)
	}
	return nil
}

// render draws the demo scene with the given palette and saves the images.
func render(cfg *Config, hexes []string) (*shade.Output, error) {
	mode, err := shape.ParseDisplayMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	format, err := cfg.TextureFormat()
	if err != nil {
		return nil, err
	}
	colors, err := parsePalette(hexes)
	if err != nil {
		return nil, err
	}
	scene, err := demoScene(colors)
	if err != nil {
		return nil, err
	}

	frame, err := shade.NewFrame(cfg.Width, cfg.Height,
		shade.WithPixelRatio(cfg.PixelRatio),
		shade.WithZoom(cfg.Zoom),
		shade.WithDisplayMode(mode),
		shade.WithColorFormat(format),
		shade.WithWorkers(cfg.Workers),
	)
	if err != nil {
		return nil, err
	}
	defer frame.Close()

	out := frame.Render(scene)

	var g errgroup.Group
	g.Go(func() error { return savePNG(cfg.Output, out.Color) })
	if cfg.IDOutput != "" {
		g.Go(func() error { return savePNG(cfg.IDOutput, out.ID) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Printf("Scene saved to %s (%dx%d, %s)\n",
		cfg.Output, cfg.Width, cfg.Height, summary(out.Coverage()))
	return out, nil
}

// summary formats the mean coverage and the pixel count of every picked id.
func summary(cov shade.Coverage) string {
	p := message.NewPrinter(language.English)
	var b strings.Builder
	p.Fprintf(&b, "%.1f%% covered", cov.Mean*100)
	for _, id := range slices.Sorted(maps.Keys(cov.Pixels)) {
		p.Fprintf(&b, ", id %d: %d px", int(id), cov.Pixels[id])
	}
	return b.String()
}

func parsePalette(hexes []string) ([]color.Rgba, error) {
	if len(hexes) < 4 {
		return nil, fmt.Errorf("palette needs 4 colors, got %d", len(hexes))
	}
	out := make([]color.Rgba, len(hexes))
	for i, h := range hexes {
		c, err := color.ParseHex(strings.TrimSpace(h))
		if err != nil {
			return nil, fmt.Errorf("palette color %d: %w", i, err)
		}
		out[i] = color.ToRgba(c)
	}
	return out, nil
}

// demoScene lays out a gradient backdrop, a ring, a rotated rounded
// rectangle and an sdfx box with a hole, each with its own id.
func demoScene(palette []color.Rgba) (shape.Source, error) {
	// Backdrop: a vertical gradient in Lch, sampled per pixel.
	stops := color.NewStops(
		color.ControlPoint[color.LCH]{Offset: -256, Color: color.ToLch(palette[3].Color())},
		color.ControlPoint[color.LCH]{Offset: 256, Color: color.ToLch(color.Mix(palette[3].Color(), palette[1].Color(), 0.5))},
	)
	backdrop := func(inv shape.Invocation) shape.Shape {
		c := color.ToRgb(stops.Sample(inv.Position[1])).WithAlpha(palette[3].A())
		return shape.New(inv, shape.Background, sdf.Plane().Eval(inv.Position), c)
	}

	ring := shape.Fill(
		sdf.Translate(sdf.Difference(sdf.Circle(90), sdf.Circle(60)), -100, 60),
		1, palette[0],
	)

	card := shape.Fill(
		sdf.Rotate(sdf.RoundedRect(160, 90, 24, 8, 8, 24), math.Pi/8),
		2, palette[1].WithAlpha(palette[1].A()*0.85),
	)

	hole, err := sdfx.Circle2D(30)
	if err != nil {
		return nil, fmt.Errorf("hole: %w", err)
	}
	outline := sdfx.Difference2D(sdfx.Box2D(v2.Vec{X: 140, Y: 100}, 16), hole)
	plate := shape.Fill(sdf.Translate(sdf.FromSDF2(outline), 110, -110), 3, palette[2])

	return shape.UnionOf(backdrop, ring, card, plate), nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
