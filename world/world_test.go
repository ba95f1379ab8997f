package world

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestWorld(t *testing.T, mutate ...func(*Config)) *World {
	t.Helper()
	cfg := DefaultConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	w, err := New(cfg, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

// moveEnemiesAway parks every enemy in a quiet corner, heading right,
// so only the enemies a test positions explicitly can interact
func moveEnemiesAway(w *World) {
	for _, e := range w.Enemies().Enemies() {
		e.X, e.Y, e.ChangeX = 600, 30, 5
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnemyCount = 0
	if _, err := New(cfg, rand.New(rand.NewSource(1))); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
	if _, err := New(DefaultConfig(), nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for nil rng, got %v", err)
	}
}

func TestNew_InitialState(t *testing.T) {
	w := newTestWorld(t)
	if w.State() != StateRunning || !w.Running() || w.Score() != 0 {
		t.Fatalf("unexpected initial state %v running=%v score=%d", w.State(), w.Running(), w.Score())
	}
	if w.Enemies().Len() != 12 {
		t.Errorf("Expected 12 enemies, got %d", w.Enemies().Len())
	}
	for _, e := range w.Enemies().Enemies() {
		assertInSpawnBand(t, e)
	}
	if x, y := w.Ship().Position(); x != 370 || y != 515 {
		t.Errorf("Expected ship at (370, 515), got (%v, %v)", x, y)
	}
}

// TestStep_DirectHit fires a bullet straight at an enemy's coordinates
func TestStep_DirectHit(t *testing.T) {
	w := newTestWorld(t)
	moveEnemiesAway(w)
	target := w.Enemies().Enemies()[0]

	b := w.Ship().FireBullet()
	// Place the bullet where the enemy will be once both have moved this frame
	target.X, target.Y, target.ChangeX = 300, 200, 5
	b.X, b.Y = 305, 210

	report := w.Step(nil)

	if w.Score() != 1 || report.Hits != 1 {
		t.Errorf("Expected score 1 and 1 hit, got score %d hits %d", w.Score(), report.Hits)
	}
	if b.Fired {
		t.Error("Expected bullet to be inactive after the hit")
	}
	if len(report.HitAt) != 1 || report.HitAt[0] != (Point{305, 200}) {
		t.Errorf("Expected hit at (305, 200), got %v", report.HitAt)
	}
	assertInSpawnBand(t, target)
}

func TestStep_NearMissKeepsState(t *testing.T) {
	w := newTestWorld(t)
	moveEnemiesAway(w)
	target := w.Enemies().Enemies()[0]

	b := w.Ship().FireBullet()
	target.X, target.Y, target.ChangeX = 300, 200, 5
	// 35px to the right of the enemy after both moves
	b.X, b.Y = 340, 210

	w.Step(nil)

	if w.Score() != 0 || !b.Fired {
		t.Errorf("Expected no hit, got score %d fired %v", w.Score(), b.Fired)
	}
	if target.X != 305 || target.Y != 200 {
		t.Errorf("Expected enemy at (305, 200), got (%v, %v)", target.X, target.Y)
	}
}

// TestStep_GameOver forces an enemy past the threshold with a bounce
func TestStep_GameOver(t *testing.T) {
	w := newTestWorld(t)
	moveEnemiesAway(w)
	e := w.Enemies().Enemies()[3]
	e.X, e.Y, e.ChangeX = 734, 455, 5

	report := w.Step(nil)

	if !report.GameOver || w.State() != StateGameOver {
		t.Fatalf("Expected game over, state %v report %+v", w.State(), report)
	}
	for i, e := range w.Enemies().Enemies() {
		if e.Y != 1000 {
			t.Errorf("enemy %d at y=%v, want 1000", i, e.Y)
		}
	}

	// Later frames keep the enemies parked and do not report the transition again
	for i := 0; i < 10; i++ {
		if r := w.Step(nil); r.GameOver {
			t.Fatalf("frame %d reported a second transition", i)
		}
	}
	for i, e := range w.Enemies().Enemies() {
		if e.Y != 1000 {
			t.Errorf("enemy %d moved to y=%v after game over", i, e.Y)
		}
	}
}

// TestStep_GameOverByMarching lets the enemies descend on their own
func TestStep_GameOverByMarching(t *testing.T) {
	w := newTestWorld(t)
	for frame := 0; frame < 10000; frame++ {
		if w.Step(nil).GameOver {
			for i, e := range w.Enemies().Enemies() {
				if e.Y != 1000 {
					t.Errorf("enemy %d at y=%v, want 1000", i, e.Y)
				}
			}
			return
		}
	}
	t.Fatal("enemies never reached the threshold")
}

func TestStep_ShipStillMovesAfterGameOver(t *testing.T) {
	w := newTestWorld(t)
	moveEnemiesAway(w)
	e := w.Enemies().Enemies()[0]
	e.X, e.Y, e.ChangeX = 734, 455, 5
	w.Step(nil)

	w.Step([]Event{KeyDown(KeyLeft)})
	if w.Ship().X != 360 {
		t.Errorf("Expected ship at 360, got %v", w.Ship().X)
	}
	if r := w.Step([]Event{KeyDown(KeyFire)}); r.Shots != 1 {
		t.Errorf("Expected firing to work after game over, got %d shots", r.Shots)
	}
}

func TestStep_FireN(t *testing.T) {
	w := newTestWorld(t)
	moveEnemiesAway(w)
	events := []Event{KeyDown(KeyFire), KeyDown(KeyFire), KeyDown(KeyFire), KeyDown(KeyFire)}

	report := w.Step(events)

	if report.Shots != 4 {
		t.Errorf("Expected 4 shots, got %d", report.Shots)
	}
	if len(w.Ship().Bullets) != 4 || w.Ship().ActiveBullets() != 4 {
		t.Errorf("Expected 4 bullets in flight, got %d/%d", w.Ship().ActiveBullets(), len(w.Ship().Bullets))
	}
	for _, b := range w.Ship().Bullets {
		if b.Y != 505 {
			t.Errorf("Expected bullet at y=505 after one frame, got %v", b.Y)
		}
	}
}

// TestStep_SpentBulletsArePruned tests that bullets leave the collection in the
// frame they pass the top edge
func TestStep_SpentBulletsArePruned(t *testing.T) {
	w := newTestWorld(t)
	moveEnemiesAway(w)
	w.Step([]Event{KeyDown(KeyFire)})
	w.Ship().Bullets[0].X = 10

	pruned := 0
	for i := 0; i < 60 && len(w.Ship().Bullets) > 0; i++ {
		moveEnemiesAway(w)
		pruned += w.Step(nil).Pruned
	}
	if pruned != 1 || len(w.Ship().Bullets) != 0 {
		t.Errorf("Expected the bullet to be pruned once, pruned=%d left=%d", pruned, len(w.Ship().Bullets))
	}
}

func TestStep_SingleShipUpdatePerFrame(t *testing.T) {
	w := newTestWorld(t)
	w.Step([]Event{KeyDown(KeyRight)})
	if w.Ship().X != 380 {
		t.Errorf("Expected one 10px move per frame, ship at %v", w.Ship().X)
	}
}

func TestStep_Quit(t *testing.T) {
	w := newTestWorld(t)
	report := w.Step([]Event{Quit()})
	if !report.Quit || w.Running() {
		t.Errorf("Expected quit, report %+v running %v", report, w.Running())
	}
	if w.Frame() != 0 {
		t.Errorf("Expected no simulation after quit, frame %d", w.Frame())
	}
}

func TestStep_Restart(t *testing.T) {
	w := newTestWorld(t)

	// Restart is ignored while running
	if r := w.Step([]Event{KeyDown(KeyRestart)}); r.Restarted {
		t.Fatal("restart honoured while running")
	}

	moveEnemiesAway(w)
	e := w.Enemies().Enemies()[0]
	e.X, e.Y, e.ChangeX = 734, 455, 5
	w.Step([]Event{KeyDown(KeyFire), KeyDown(KeyLeft)})
	if w.State() != StateGameOver {
		t.Fatal("setup: expected game over")
	}

	r := w.Step([]Event{KeyDown(KeyRestart)})

	if !r.Restarted || w.State() != StateRunning || w.Score() != 0 {
		t.Fatalf("Expected a fresh running session, report %+v state %v score %d", r, w.State(), w.Score())
	}
	if len(w.Ship().Bullets) != 0 || w.Ship().X != 360 {
		t.Errorf("Expected ship reset, bullets %d x %v", len(w.Ship().Bullets), w.Ship().X)
	}
	// Left is still held
	if w.Ship().ChangeX != -10 {
		t.Errorf("Expected held key to keep velocity -10, got %v", w.Ship().ChangeX)
	}
	for _, e := range w.Enemies().Enemies() {
		if e.Y > 180 {
			t.Errorf("enemy still parked at y=%v", e.Y)
		}
	}
}

// TestStep_RestartWithKeyHeld releases a direction key after a restart and
// expects the ship to stop in both steering models
func TestStep_RestartWithKeyHeld(t *testing.T) {
	for _, mode := range []SteeringMode{SteeringAdditive, SteeringHeld} {
		t.Run(mode.String(), func(t *testing.T) {
			w := newTestWorld(t, func(c *Config) { c.Steering = mode })
			moveEnemiesAway(w)
			e := w.Enemies().Enemies()[0]
			e.X, e.Y, e.ChangeX = 734, 455, 5

			w.Step([]Event{KeyDown(KeyLeft)})
			if w.State() != StateGameOver {
				t.Fatal("setup: expected game over")
			}
			w.Step([]Event{KeyDown(KeyRestart)})
			w.Step([]Event{KeyUp(KeyLeft)})

			if w.Ship().ChangeX != 0 {
				t.Fatalf("Expected velocity 0 after release, got %v", w.Ship().ChangeX)
			}
			x := w.Ship().X
			for i := 0; i < 10; i++ {
				w.Step(nil)
			}
			if w.Ship().X != x {
				t.Errorf("Expected ship to stay at %v with no key held, got %v", x, w.Ship().X)
			}
		})
	}
}

func TestEntities(t *testing.T) {
	w := newTestWorld(t)
	w.Ship().FireBullet()
	spent := w.Ship().FireBullet()
	spent.Fired = false

	counts := map[EntityType]int{}
	for _, e := range w.Entities() {
		counts[e.Type()]++
	}
	if counts[EntityTypeEnemy] != 12 || counts[EntityTypeBullet] != 1 || counts[EntityTypeShip] != 1 {
		t.Errorf("unexpected entity counts %v", counts)
	}
}
