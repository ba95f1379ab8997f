package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spaceinvaders/world"
)

// Input is everything gathered from the player during one tick
type Input struct {
	// Events are delivered to the world in order
	Events []world.Event

	// ToggleDebug flips the hitbox overlay (F1)
	ToggleDebug bool

	// ToggleFullscreen flips fullscreen mode (Alt+Enter)
	ToggleFullscreen bool

	// FocusLost is set on the tick the window loses focus
	FocusLost bool
}

// InputSource provides the player's input once per tick
type InputSource interface {
	Poll() Input
}

// keyBinding maps a physical key to a logical game key
type keyBinding struct {
	key  ebiten.Key
	game world.Key
}

var defaultBindings = []keyBinding{
	{ebiten.KeyArrowLeft, world.KeyLeft},
	{ebiten.KeyArrowRight, world.KeyRight},
	{ebiten.KeySpace, world.KeyFire},
	{ebiten.KeyR, world.KeyRestart},
}

// KeyboardInput reads the keyboard and window state through ebiten
type KeyboardInput struct {
	bindings       []keyBinding
	keyRepeat      bool
	repeatDelay    int
	repeatInterval int
	wasFocused     bool
	events         []world.Event
}

// NewKeyboardInput creates a keyboard source with the default bindings
func NewKeyboardInput(config Config) *KeyboardInput {
	return &KeyboardInput{
		bindings:       defaultBindings,
		keyRepeat:      config.KeyRepeat,
		repeatDelay:    config.RepeatDelay,
		repeatInterval: config.RepeatInterval,
		wasFocused:     true,
		events:         make([]world.Event, 0, 8),
	}
}

// Poll implements InputSource. Key releases are reported before presses so a
// swap from one direction key to the other in a single tick nets out.
func (k *KeyboardInput) Poll() Input {
	k.events = k.events[:0]

	if ebiten.IsWindowBeingClosed() {
		k.events = append(k.events, world.Quit())
	}

	for _, b := range k.bindings {
		if inpututil.IsKeyJustReleased(b.key) {
			k.events = append(k.events, world.KeyUp(b.game))
		}
	}
	for _, b := range k.bindings {
		if k.pressed(b) {
			k.events = append(k.events, world.KeyDown(b.game))
		}
	}

	focused := ebiten.IsFocused()
	in := Input{
		Events:      k.events,
		ToggleDebug: inpututil.IsKeyJustPressed(ebiten.KeyF1),
		FocusLost:   k.wasFocused && !focused,
	}
	k.wasFocused = focused

	alt := ebiten.IsKeyPressed(ebiten.KeyAlt)
	if alt && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		in.ToggleFullscreen = true
	}
	return in
}

// pressed reports a key-down for this tick, including emulated repeats of the fire key
func (k *KeyboardInput) pressed(b keyBinding) bool {
	if inpututil.IsKeyJustPressed(b.key) {
		return true
	}
	if !k.keyRepeat || b.game != world.KeyFire || k.repeatInterval <= 0 {
		return false
	}
	d := inpututil.KeyPressDuration(b.key)
	return d >= k.repeatDelay && (d-k.repeatDelay)%k.repeatInterval == 0
}
