package game

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spaceinvaders/world"
)

// Fallback shapes when a sprite is missing
const (
	fallbackShipSize   = 64
	fallbackBulletSize = 6
	fallbackEnemySize  = 48
)

var (
	colorShip    = color.RGBA{0, 255, 0, 255}   // Green
	colorBullet  = color.RGBA{255, 255, 0, 255} // Yellow
	colorEnemy   = color.RGBA{255, 0, 0, 255}   // Red
	colorHitbox  = color.RGBA{0, 200, 255, 180}
	colorOverlay = color.RGBA{0, 0, 0, 120}
)

// Renderer draws the world onto the screen
type Renderer struct {
	assets      *Assets
	config      Config
	scoreFace   *text.GoTextFace
	overlayFace *text.GoTextFace
}

// NewRenderer creates a renderer. assets may be nil, in which case entities are
// drawn as plain shapes and text uses the debug font.
func NewRenderer(config Config, assets *Assets) *Renderer {
	r := &Renderer{assets: assets, config: config}
	if assets != nil && assets.Font != nil {
		r.scoreFace = &text.GoTextFace{Source: assets.Font, Size: config.ScoreFontSize}
		r.overlayFace = &text.GoTextFace{Source: assets.Font, Size: config.OverlayFontSize}
	}
	return r
}

// Render draws one frame: background, entities, explosions, score and overlays.
// explosions may be nil.
func (r *Renderer) Render(screen *ebiten.Image, w *world.World, explosions *Explosions, debug *DebugState) {
	r.drawBackground(screen)

	for _, e := range w.Entities() {
		if !e.Active() {
			continue
		}
		r.RenderEntity(screen, e)
	}
	if explosions != nil {
		explosions.Draw(screen)
	}

	r.drawText(screen, r.config.ScoreLabel+strconv.Itoa(w.Score()), r.scoreFace, r.config.ScoreX, r.config.ScoreY)
	if w.State() == world.StateGameOver {
		r.drawText(screen, "GAME OVER", r.overlayFace, r.config.OverlayX, r.config.OverlayY)
	}

	if debug.ShowHitboxes {
		r.drawDebug(screen, w)
	}
}

// RenderEntity draws a single entity at its top-left position
func (r *Renderer) RenderEntity(screen *ebiten.Image, e world.Entity) {
	x, y := e.Position()
	img, size, clr := r.look(e.Type())

	if img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		screen.DrawImage(img, op)
		return
	}

	if e.Type() == world.EntityTypeBullet {
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(size)/2, clr, true)
		return
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(size), float32(size), clr, true)
}

func (r *Renderer) look(t world.EntityType) (*ebiten.Image, float64, color.Color) {
	var a Assets
	if r.assets != nil {
		a = *r.assets
	}
	switch t {
	case world.EntityTypeShip:
		return a.Ship, fallbackShipSize, colorShip
	case world.EntityTypeBullet:
		return a.Bullet, fallbackBulletSize, colorBullet
	default:
		return a.Enemy, fallbackEnemySize, colorEnemy
	}
}

// EnemyHalfSize is the offset from an enemy's position to its visual centre
func (r *Renderer) EnemyHalfSize() float64 {
	if r.assets != nil && r.assets.Enemy != nil {
		return float64(r.assets.Enemy.Bounds().Dx()) / 2
	}
	return fallbackEnemySize / 2
}

func (r *Renderer) drawBackground(screen *ebiten.Image) {
	if r.assets != nil && r.assets.Background != nil {
		screen.DrawImage(r.assets.Background, &ebiten.DrawImageOptions{})
		return
	}
	screen.Fill(r.config.BackgroundColor)
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64) {
	if face == nil {
		ebitenutil.DebugPrintAt(screen, s, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(r.config.TextColor)
	text.Draw(screen, s, face, op)
}

// drawDebug outlines every collision radius and prints loop statistics
func (r *Renderer) drawDebug(screen *ebiten.Image, w *world.World) {
	radius := float32(w.Config().HitRadius)
	for _, e := range w.Enemies().Enemies() {
		vector.StrokeCircle(screen, float32(e.X), float32(e.Y), radius, 1, colorHitbox, true)
	}

	ship := w.Ship()
	stats := fmt.Sprintf("TPS %.1f  FPS %.1f\nframe %d  bullets %d/%d  dx %+.0f",
		ebiten.ActualTPS(), ebiten.ActualFPS(), w.Frame(),
		ship.ActiveBullets(), len(ship.Bullets), ship.ChangeX)

	sw := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, float32(sw-250), 4, 246, 36, colorOverlay, false)
	ebitenutil.DebugPrintAt(screen, stats, sw-246, 6)
}
