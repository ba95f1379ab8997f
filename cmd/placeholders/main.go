// Command placeholders writes stand-in sprites for the game so it can run
// without the original artwork.
package main

import (
	"embed"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"spaceinvaders/game"
)

//go:embed assets/*.svg
var svgFS embed.FS

type sprite struct {
	svg    string
	width  int
	height int
}

func main() {
	paths := game.DefaultAssetPaths()

	outDir := flag.String("out", paths.Dir, "output directory")
	seed := flag.Int64("seed", 1, "starfield seed")
	force := flag.Bool("force", false, "overwrite existing files")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "placeholders"})

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Fatal("create output dir", "dir", *outDir, "err", err)
	}

	sprites := map[string]sprite{
		paths.Ship:   {svg: "assets/ship.svg", width: 64, height: 64},
		paths.Bullet: {svg: "assets/bullet.svg", width: 32, height: 32},
		paths.Enemy:  {svg: "assets/enemy.svg", width: 64, height: 64},
	}
	cfg := game.DefaultConfig()

	var g errgroup.Group
	for name, s := range sprites {
		g.Go(func() error {
			data, err := svgFS.ReadFile(s.svg)
			if err != nil {
				return err
			}
			img, err := game.RasterizeSVG(data, s.width, s.height)
			if err != nil {
				return fmt.Errorf("%s: %w", s.svg, err)
			}
			return writePNG(logger, filepath.Join(*outDir, name), img, *force)
		})
	}
	g.Go(func() error {
		img := starfield(cfg.World.ScreenWidth, cfg.World.ScreenHeight, rand.New(rand.NewSource(*seed)))
		return writePNG(logger, filepath.Join(*outDir, paths.Background), img, *force)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("generate placeholders", "err", err)
	}
}

func writePNG(logger *log.Logger, path string, img image.Image, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			logger.Info("skip existing", "file", path)
			return nil
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	b := img.Bounds()
	logger.Info("wrote", "file", path, "size", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()))
	return nil
}

// starfield paints a dark gradient sky with scattered stars
func starfield(width, height int, rng *rand.Rand) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		shade := uint8(8 + 24*y/height)
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{shade / 2, shade / 2, shade, 255})
		}
	}

	stars := width * height / 900
	for i := 0; i < stars; i++ {
		x, y := rng.Intn(width), rng.Intn(height)
		v := uint8(120 + rng.Intn(136))
		img.SetRGBA(x, y, color.RGBA{v, v, v, 255})
		// a few bright ones get a cross
		if v > 240 && x > 0 && y > 0 && x < width-1 && y < height-1 {
			dim := color.RGBA{v / 2, v / 2, v / 2, 255}
			img.SetRGBA(x-1, y, dim)
			img.SetRGBA(x+1, y, dim)
			img.SetRGBA(x, y-1, dim)
			img.SetRGBA(x, y+1, dim)
		}
	}
	return img
}
