package game

// DebugState holds debug flags that persist across restarts
type DebugState struct {
	ShowHitboxes bool // Show collision radii and loop statistics
}

// Toggle flips the hitbox overlay
func (d *DebugState) Toggle() {
	d.ShowHitboxes = !d.ShowHitboxes
}
