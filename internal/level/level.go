// Package level defines the YAML level schema and the registry of built-in
// levels. Levels are pure data: the tile grid plus spawn definitions for
// every dynamic entity. The game package turns a Level into live entities.
package level

import (
	"fmt"
)

// Solid is the tile rune marking an impassable cell in Rows.
const Solid = '#'

// Point is a position in screen cells. Entity spawns allow fractional
// positions; the tile grid itself is integral.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// EnemySpec describes one patrol enemy spawn.
type EnemySpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	MinX  float64 `yaml:"min_x"` // patrol bounds, inclusive
	MaxX  float64 `yaml:"max_x"`
	Speed float64 `yaml:"speed"` // cells per second
}

// Platform movement types.
const (
	PlatformPath     = "path"
	PlatformCircular = "circular"
)

// PlatformSpec describes one moving platform. Path platforms cycle through
// Waypoints; circular platforms orbit Center at Radius. Segments > 1 makes
// the platform a composite: one master segment plus derived segments laid out
// to its right, SegmentWidth cells apart.
type PlatformSpec struct {
	Type         string  `yaml:"type"`
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Segments     int     `yaml:"segments"`
	SegmentWidth int     `yaml:"segment_width"`
	Speed        float64 `yaml:"speed"` // cells per second (path type)

	Waypoints []Point `yaml:"waypoints,omitempty"`

	Center       Point   `yaml:"center,omitempty"`
	Radius       float64 `yaml:"radius,omitempty"`
	AngularSpeed float64 `yaml:"angular_speed,omitempty"` // radians per second
}

// Level is one playable level definition.
type Level struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	// Rows is the tile grid, top row first. '#' is solid, anything else air.
	Rows []string `yaml:"rows"`

	Player Point   `yaml:"player"`
	Exit   Point   `yaml:"exit"`
	Coins  []Point `yaml:"coins"`

	Enemies   []EnemySpec    `yaml:"enemies"`
	Platforms []PlatformSpec `yaml:"platforms"`
}

// Width returns the grid width in cells.
func (l *Level) Width() int {
	if len(l.Rows) == 0 {
		return 0
	}
	return len(l.Rows[0])
}

// Height returns the grid height in cells.
func (l *Level) Height() int {
	return len(l.Rows)
}

// SolidAt reports whether the tile at (x, y) is solid.
// Out-of-bounds horizontally counts as solid wall; out-of-bounds vertically
// is open (entities can fall out of the world).
func (l *Level) SolidAt(x, y int) bool {
	if y < 0 || y >= len(l.Rows) {
		return false
	}
	if x < 0 || x >= len(l.Rows[y]) {
		return true
	}
	return l.Rows[y][x] == Solid
}

// Validate checks the level for structural problems.
func (l *Level) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("level: missing id")
	}
	if len(l.Rows) == 0 {
		return fmt.Errorf("level %s: no rows", l.ID)
	}
	w := len(l.Rows[0])
	if w == 0 {
		return fmt.Errorf("level %s: empty rows", l.ID)
	}
	for i, row := range l.Rows {
		if len(row) != w {
			return fmt.Errorf("level %s: row %d has width %d, expected %d", l.ID, i, len(row), w)
		}
	}

	if !l.inBounds(l.Player) {
		return fmt.Errorf("level %s: player spawn (%v, %v) out of bounds", l.ID, l.Player.X, l.Player.Y)
	}
	if !l.inBounds(l.Exit) {
		return fmt.Errorf("level %s: exit (%v, %v) out of bounds", l.ID, l.Exit.X, l.Exit.Y)
	}

	for i, e := range l.Enemies {
		if e.MinX > e.MaxX {
			return fmt.Errorf("level %s: enemy %d has min_x > max_x", l.ID, i)
		}
		if e.Speed < 0 {
			return fmt.Errorf("level %s: enemy %d has negative speed", l.ID, i)
		}
	}

	for i, p := range l.Platforms {
		switch p.Type {
		case PlatformPath:
			if len(p.Waypoints) < 2 {
				return fmt.Errorf("level %s: path platform %d needs at least 2 waypoints", l.ID, i)
			}
		case PlatformCircular:
			if p.Radius <= 0 {
				return fmt.Errorf("level %s: circular platform %d needs a positive radius", l.ID, i)
			}
		default:
			return fmt.Errorf("level %s: platform %d has unknown type %q", l.ID, i, p.Type)
		}
		if p.Segments < 1 {
			return fmt.Errorf("level %s: platform %d needs at least 1 segment", l.ID, i)
		}
		if p.Segments > 1 && p.SegmentWidth <= 0 {
			return fmt.Errorf("level %s: composite platform %d needs a positive segment_width", l.ID, i)
		}
	}

	return nil
}

func (l *Level) inBounds(p Point) bool {
	return p.X >= 0 && p.X < float64(l.Width()) && p.Y >= 0 && p.Y < float64(l.Height())
}
