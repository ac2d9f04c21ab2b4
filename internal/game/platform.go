package game

import (
	"math"

	"github.com/vovakirdan/tui-rewind/internal/core"
	"github.com/vovakirdan/tui-rewind/internal/level"
	"github.com/vovakirdan/tui-rewind/internal/rewind"
)

// Extra state keys for the moving platform.
const (
	stateKeyPathIndex = "pathIndex"
	stateKeyTargetX   = "targetX"
	stateKeyTargetY   = "targetY"
	stateKeyAngle     = "angle"
	stateFlagToTarget = "movingToTarget"
)

// Segment is one drawable slab of a platform.
type Segment struct {
	X, Y float64
	W    int
}

// MovingPlatform is a platform following either a waypoint path or a
// circular orbit. A composite platform has several segments laid out to the
// right of the master position; only the master is captured into rewind
// state, the segments are re-derived from it after every move and every
// restore, so they can never drift apart across a rewind.
type MovingPlatform struct {
	kind string // level.PlatformPath or level.PlatformCircular

	x, y   float64 // master segment position
	vx, vy float64

	segments int
	segWidth int
	segs     []Segment

	// Path movement.
	waypoints      []level.Point
	pathIndex      int
	target         level.Point
	movingToTarget bool
	speed          float64

	// Circular movement.
	center       level.Point
	radius       float64
	angularSpeed float64
	angle        float64

	// Carry coupling: riders move by the delta of the last forward step.
	prevX, prevY   float64
	deltaX, deltaY float64
}

// NewMovingPlatform creates a platform from its level spec.
func NewMovingPlatform(spec level.PlatformSpec) *MovingPlatform {
	p := &MovingPlatform{
		kind:     spec.Type,
		x:        spec.X,
		y:        spec.Y,
		segments: spec.Segments,
		segWidth: spec.SegmentWidth,
		speed:    spec.Speed,
	}
	if p.segments < 1 {
		p.segments = 1
	}
	if p.segments > 1 && p.segWidth < 1 {
		p.segWidth = 1
	}
	if p.segWidth < 1 {
		p.segWidth = 3
	}

	switch p.kind {
	case level.PlatformPath:
		p.waypoints = append(p.waypoints, spec.Waypoints...)
		if len(p.waypoints) > 0 {
			p.pathIndex = 0
			p.target = p.waypoints[0]
			p.movingToTarget = true
		}
	case level.PlatformCircular:
		p.center = spec.Center
		p.radius = spec.Radius
		p.angularSpeed = spec.AngularSpeed
		// Derive the starting angle from the spawn position so the orbit
		// passes through it.
		p.angle = math.Atan2(spec.Y-spec.Center.Y, spec.X-spec.Center.X)
		p.x = p.center.X + p.radius*math.Cos(p.angle)
		p.y = p.center.Y + p.radius*math.Sin(p.angle)
	}

	p.prevX, p.prevY = p.x, p.y
	p.segs = make([]Segment, p.segments)
	p.syncSegments()
	return p
}

// Step advances the platform by dt seconds.
func (p *MovingPlatform) Step(dt float64) {
	switch p.kind {
	case level.PlatformPath:
		p.stepPath(dt)
	case level.PlatformCircular:
		p.stepCircular(dt)
	}

	p.deltaX = p.x - p.prevX
	p.deltaY = p.y - p.prevY
	p.prevX, p.prevY = p.x, p.y
	p.syncSegments()
}

func (p *MovingPlatform) stepPath(dt float64) {
	if !p.movingToTarget || len(p.waypoints) == 0 {
		p.vx, p.vy = 0, 0
		return
	}

	dx := p.target.X - p.x
	dy := p.target.Y - p.y
	dist := math.Hypot(dx, dy)
	step := p.speed * dt

	if dist <= step || dist == 0 {
		p.x, p.y = p.target.X, p.target.Y
		p.pathIndex = (p.pathIndex + 1) % len(p.waypoints)
		p.target = p.waypoints[p.pathIndex]
		return
	}

	p.vx = dx / dist * p.speed
	p.vy = dy / dist * p.speed
	p.x += p.vx * dt
	p.y += p.vy * dt
}

func (p *MovingPlatform) stepCircular(dt float64) {
	p.angle += p.angularSpeed * dt
	nx := p.center.X + p.radius*math.Cos(p.angle)
	ny := p.center.Y + p.radius*math.Sin(p.angle)
	if dt > 0 {
		p.vx = (nx - p.x) / dt
		p.vy = (ny - p.y) / dt
	}
	p.x, p.y = nx, ny
}

// syncSegments re-derives every segment from the master position. Segment i
// sits i*segWidth cells to the master's right.
func (p *MovingPlatform) syncSegments() {
	for i := range p.segs {
		p.segs[i] = Segment{
			X: p.x + float64(i*p.segWidth),
			Y: p.y,
			W: p.segWidth,
		}
	}
}

// Segments returns the platform's drawable segments.
func (p *MovingPlatform) Segments() []Segment {
	return p.segs
}

// Delta returns the movement of the last forward step, for carrying riders.
func (p *MovingPlatform) Delta() (dx, dy float64) {
	return p.deltaX, p.deltaY
}

// Top returns the y coordinate of the platform surface.
func (p *MovingPlatform) Top() float64 {
	return p.y
}

// SurfaceRects returns one collision rectangle per segment.
func (p *MovingPlatform) SurfaceRects() []core.Rect {
	rects := make([]core.Rect, len(p.segs))
	for i, s := range p.segs {
		rects[i] = core.NewRect(int(math.Floor(s.X)), int(math.Floor(s.Y)), s.W, 1)
	}
	return rects
}

// CaptureState implements rewind.Rewindable. Only the master position enters
// the snapshot; segment positions are derived on restore.
func (p *MovingPlatform) CaptureState() rewind.State {
	return rewind.State{
		X:       p.x,
		Y:       p.y,
		VX:      p.vx,
		VY:      p.vy,
		Alive:   true,
		Visible: true,
		Extra: map[string]float64{
			stateKeyPathIndex: float64(p.pathIndex),
			stateKeyTargetX:   p.target.X,
			stateKeyTargetY:   p.target.Y,
			stateKeyAngle:     p.angle,
		},
		Flags: map[string]bool{
			stateFlagToTarget: p.movingToTarget,
		},
	}
}

// ApplyState implements rewind.Rewindable.
func (p *MovingPlatform) ApplyState(st rewind.State) {
	p.x = st.X
	p.y = st.Y
	p.vx = st.VX
	p.vy = st.VY

	if v, ok := st.Extra[stateKeyPathIndex]; ok {
		idx := int(math.Round(v))
		if idx >= 0 && idx < len(p.waypoints) {
			p.pathIndex = idx
		}
	}
	if v, ok := st.Extra[stateKeyTargetX]; ok {
		p.target.X = v
	}
	if v, ok := st.Extra[stateKeyTargetY]; ok {
		p.target.Y = v
	}
	if v, ok := st.Extra[stateKeyAngle]; ok {
		p.angle = v
	}
	p.movingToTarget = st.FlagOr(stateFlagToTarget, p.movingToTarget)

	// Reset the carry baseline so the first forward step after a restore
	// produces a zero rider delta instead of a teleport.
	p.prevX, p.prevY = p.x, p.y
	p.deltaX, p.deltaY = 0, 0

	p.syncSegments()
}
