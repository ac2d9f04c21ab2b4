package game

import (
	"math"

	"github.com/vovakirdan/tui-rewind/internal/core"
	"github.com/vovakirdan/tui-rewind/internal/level"
	"github.com/vovakirdan/tui-rewind/internal/rewind"
)

// Coin is a static pickup. Collection is part of its rewind state, so
// rewinding past a pickup puts the coin back on the map.
type Coin struct {
	x, y      float64
	collected bool
}

// NewCoin places a coin at the given point.
func NewCoin(p level.Point) *Coin {
	return &Coin{x: p.X, y: p.Y}
}

// Collected reports whether the coin has been picked up.
func (c *Coin) Collected() bool {
	return c.collected
}

// Collect marks the coin picked up.
func (c *Coin) Collect() {
	c.collected = true
}

// Rect returns the coin's pickup rectangle.
func (c *Coin) Rect() core.Rect {
	return core.NewRect(int(math.Floor(c.x)), int(math.Floor(c.y)), 1, 1)
}

// CaptureState implements rewind.Rewindable.
func (c *Coin) CaptureState() rewind.State {
	return rewind.State{
		X:       c.x,
		Y:       c.y,
		Alive:   !c.collected,
		Visible: !c.collected,
	}
}

// ApplyState implements rewind.Rewindable.
func (c *Coin) ApplyState(st rewind.State) {
	c.x = st.X
	c.y = st.Y
	c.collected = !st.Alive
}
