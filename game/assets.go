package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // sprites may be .jpg
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/sync/errgroup"
)

// AssetPaths names the files the game loads at startup.
// Relative names are resolved against Dir.
type AssetPaths struct {
	Dir        string
	Background string
	Ship       string
	Bullet     string
	Enemy      string

	// Font is a TTF/OTF file; empty selects the embedded Go Bold font
	Font string
}

// DefaultAssetPaths returns the classic sprite names in the working directory
func DefaultAssetPaths() AssetPaths {
	return AssetPaths{
		Dir:        ".",
		Background: "spr_space_himmel.png",
		Ship:       "spr_spaceship.png",
		Bullet:     "spr_patrone.png",
		Enemy:      "spr_space_enemy.png",
	}
}

func (p AssetPaths) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.Dir, name)
}

// Assets holds the images and font shared by every entity of a kind
type Assets struct {
	Background *ebiten.Image
	Ship       *ebiten.Image
	Bullet     *ebiten.Image
	Enemy      *ebiten.Image
	Font       *text.GoTextFaceSource
}

// LoadAssets reads and decodes every asset, failing on the first error.
// Files are decoded in parallel; GPU images are created on the caller's goroutine.
func LoadAssets(paths AssetPaths) (*Assets, error) {
	sprites := []struct {
		name string
		file string
		img  image.Image
	}{
		{name: "background", file: paths.Background},
		{name: "ship", file: paths.Ship},
		{name: "bullet", file: paths.Bullet},
		{name: "enemy", file: paths.Enemy},
	}

	var (
		g       errgroup.Group
		fontSrc *text.GoTextFaceSource
	)
	for i := range sprites {
		s := &sprites[i]
		g.Go(func() error {
			img, err := decodeImage(paths.resolve(s.file))
			if err != nil {
				return fmt.Errorf("load %s sprite: %w", s.name, err)
			}
			s.img = img
			return nil
		})
	}
	g.Go(func() error {
		src, err := loadFont(paths)
		if err != nil {
			return fmt.Errorf("load font: %w", err)
		}
		fontSrc = src
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Assets{
		Background: ebiten.NewImageFromImage(sprites[0].img),
		Ship:       ebiten.NewImageFromImage(sprites[1].img),
		Bullet:     ebiten.NewImageFromImage(sprites[2].img),
		Enemy:      ebiten.NewImageFromImage(sprites[3].img),
		Font:       fontSrc,
	}, nil
}

// decodeImage decodes a PNG, JPEG or SVG file
func decodeImage(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return RasterizeSVG(data, 0, 0)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func loadFont(paths AssetPaths) (*text.GoTextFaceSource, error) {
	data := gobold.TTF
	if paths.Font != "" {
		var err error
		data, err = os.ReadFile(paths.resolve(paths.Font))
		if err != nil {
			return nil, err
		}
	}
	return text.NewGoTextFaceSource(bytes.NewReader(data))
}
