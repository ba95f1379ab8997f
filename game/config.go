package game

import (
	"image/color"

	"spaceinvaders/world"
)

// Config holds the window, rendering and input settings around the simulation
type Config struct {
	// World is the gameplay configuration
	World world.Config

	// Title is the window title
	Title string

	// TPS is the fixed update rate; entity speeds are per tick
	TPS int

	// Assets locates sprites, font and sound files
	Assets AssetPaths

	// Seed seeds enemy placement; 0 picks one from the clock
	Seed int64

	// Mute disables sound effects
	Mute bool

	// KeyRepeat makes a held fire key shoot repeatedly
	KeyRepeat bool

	// RepeatDelay is the number of ticks before a held key starts repeating
	RepeatDelay int

	// RepeatInterval is the number of ticks between repeats
	RepeatInterval int

	// ScoreFontSize and OverlayFontSize are text sizes in pixels
	ScoreFontSize   float64
	OverlayFontSize float64

	// ScoreX, ScoreY position the score line
	ScoreX, ScoreY float64

	// OverlayX, OverlayY position the game over banner
	OverlayX, OverlayY float64

	// ScoreLabel prefixes the score
	ScoreLabel string

	// TextColor is used for the score and the banner
	TextColor color.Color

	// BackgroundColor fills the screen when no background sprite is loaded
	BackgroundColor color.Color
}

// DefaultConfig returns the classic configuration
func DefaultConfig() Config {
	return Config{
		World:           world.DefaultConfig(),
		Title:           "Space Invaders",
		TPS:             60,
		Assets:          DefaultAssetPaths(),
		RepeatDelay:     30,
		RepeatInterval:  6,
		ScoreFontSize:   24,
		OverlayFontSize: 64,
		ScoreX:          8,
		ScoreY:          8,
		OverlayX:        200,
		OverlayY:        250,
		ScoreLabel:      "Score: ",
		TextColor:       color.White,
		BackgroundColor: color.RGBA{3, 5, 16, 255},
	}
}
