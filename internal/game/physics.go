package game

import (
	"math"

	"github.com/vovakirdan/tui-rewind/internal/core"
)

// TileMap is the collision surface entities move against.
// Satisfied by *level.Level.
type TileMap interface {
	SolidAt(x, y int) bool
	Width() int
	Height() int
}

// Body is an axis-aligned physics body. Positions are float64 screen cells,
// velocities cells per second. The rewind engine reads and writes these
// fields through each entity's state contract, never directly.
type Body struct {
	X, Y     float64
	W, H     int
	VX, VY   float64
	OnGround bool
}

// Rect returns the body's collision rectangle in whole cells.
func (b *Body) Rect() core.Rect {
	return core.NewRect(int(math.Floor(b.X)), int(math.Floor(b.Y)), b.W, b.H)
}

// collides reports whether the body overlaps any solid tile.
func (b *Body) collides(m TileMap) bool {
	minX := int(math.Floor(b.X))
	maxX := int(math.Ceil(b.X+float64(b.W))) - 1
	minY := int(math.Floor(b.Y))
	maxY := int(math.Ceil(b.Y+float64(b.H))) - 1
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if m.SolidAt(x, y) {
				return true
			}
		}
	}
	return false
}

// ApplyGravity accelerates the body downward, capped at terminal velocity.
func (b *Body) ApplyGravity(dt, gravity, maxFall float64) {
	b.VY += gravity * dt
	if b.VY > maxFall {
		b.VY = maxFall
	}
}

// Move advances the body by its velocity over dt seconds with axis-separated
// tile collision. Landing on a tile sets OnGround and zeroes VY.
func (b *Body) Move(m TileMap, dt float64) {
	// Horizontal
	b.X += b.VX * dt
	if b.collides(m) {
		if b.VX > 0 {
			b.X = math.Floor(b.X+float64(b.W)) - float64(b.W)
		} else if b.VX < 0 {
			b.X = math.Floor(b.X) + 1
		}
		b.VX = 0
	}

	// Vertical
	b.OnGround = false
	b.Y += b.VY * dt
	if b.collides(m) {
		if b.VY > 0 {
			b.Y = math.Floor(b.Y+float64(b.H)) - float64(b.H)
			b.OnGround = true
		} else if b.VY < 0 {
			b.Y = math.Floor(b.Y) + 1
		}
		b.VY = 0
	}

	// Standing flush on a tile produces no overlap, so probe one step down.
	if !b.OnGround && b.VY >= 0 {
		probe := *b
		probe.Y += 0.05
		if probe.collides(m) {
			b.OnGround = true
		}
	}
}
