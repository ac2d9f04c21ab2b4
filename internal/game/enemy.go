package game

import (
	"github.com/vovakirdan/tui-rewind/internal/core"
	"github.com/vovakirdan/tui-rewind/internal/level"
	"github.com/vovakirdan/tui-rewind/internal/rewind"
)

// Enemy animation keys.
const (
	AnimEnemyWalk   = "walk"
	AnimEnemyFrozen = "frozen"
)

// Extra state keys for the patrol enemy.
const (
	stateKeyDir        = "dir"
	stateKeyFreezeLeft = "freezeLeft"
	stateKeyPatrolMin  = "patrolMin"
	stateKeyPatrolMax  = "patrolMax"
	stateFlagFrozen    = "frozen"
)

// Enemy is a patrol enemy walking between two x bounds. A freeze pulse stops
// it for a fixed duration; the remaining duration is part of its rewind
// state, so restoring a snapshot also restores the countdown exactly.
type Enemy struct {
	body Body
	anim *Animator

	dir        float64 // +1 right, -1 left
	speed      float64 // cells per second
	minX, maxX float64

	frozen     bool
	freezeLeft float64 // ms remaining on the freeze countdown

	alive   bool
	visible bool
}

// NewEnemy creates a patrol enemy from its level spec.
func NewEnemy(spec level.EnemySpec, speedScale float64) *Enemy {
	anim := NewAnimator()
	anim.Add(AnimEnemyWalk, []rune{'x', '+'}, 10)
	anim.Add(AnimEnemyFrozen, []rune{'*'}, 1)
	//nolint:errcheck // key registered above
	anim.Set(AnimEnemyWalk)

	if speedScale <= 0 {
		speedScale = 1
	}

	return &Enemy{
		body:    Body{X: spec.X, Y: spec.Y, W: 2, H: 2},
		anim:    anim,
		dir:     1,
		speed:   spec.Speed * speedScale,
		minX:    spec.MinX,
		maxX:    spec.MaxX,
		alive:   true,
		visible: true,
	}
}

// Step advances the enemy by one forward tick. dtMS is the frame delta in
// milliseconds.
func (e *Enemy) Step(dtMS float64) {
	if !e.alive {
		return
	}

	if e.frozen {
		e.freezeLeft -= dtMS
		if e.freezeLeft <= 0 {
			e.frozen = false
			e.freezeLeft = 0
			//nolint:errcheck // key registered in NewEnemy
			e.anim.Set(AnimEnemyWalk)
		}
		return
	}

	dt := dtMS / 1000
	e.body.X += e.dir * e.speed * dt
	if e.body.X < e.minX {
		e.body.X = e.minX
		e.dir = 1
	}
	if e.body.X > e.maxX {
		e.body.X = e.maxX
		e.dir = -1
	}

	e.anim.Advance()
}

// Freeze stops the enemy for durMS milliseconds.
func (e *Enemy) Freeze(durMS float64) {
	if !e.alive {
		return
	}
	e.frozen = true
	e.freezeLeft = durMS
	//nolint:errcheck // key registered in NewEnemy
	e.anim.Set(AnimEnemyFrozen)
}

// Frozen reports whether the enemy is currently frozen.
func (e *Enemy) Frozen() bool {
	return e.frozen
}

// Alive reports whether the enemy is active.
func (e *Enemy) Alive() bool {
	return e.alive
}

// Rect returns the enemy's collision rectangle.
func (e *Enemy) Rect() core.Rect {
	return e.body.Rect()
}

// CaptureState implements rewind.Rewindable.
func (e *Enemy) CaptureState() rewind.State {
	animKey := ""
	if e.anim != nil {
		animKey = e.anim.Current()
	}
	return rewind.State{
		X:         e.body.X,
		Y:         e.body.Y,
		VX:        e.dir * e.speed,
		VY:        0,
		Animation: animKey,
		Alive:     e.alive,
		Visible:   e.visible,
		Extra: map[string]float64{
			stateKeyDir:        e.dir,
			stateKeyFreezeLeft: e.freezeLeft,
			stateKeyPatrolMin:  e.minX,
			stateKeyPatrolMax:  e.maxX,
		},
		Flags: map[string]bool{
			stateFlagFrozen: e.frozen,
		},
	}
}

// ApplyState implements rewind.Rewindable. Every type-specific field uses a
// per-key existence check so a state captured by an older, narrower version
// of the enemy still applies cleanly.
func (e *Enemy) ApplyState(st rewind.State) {
	e.body.X = st.X
	e.body.Y = st.Y
	e.alive = st.Alive
	e.visible = st.Visible

	if v, ok := st.Extra[stateKeyDir]; ok {
		// Interpolation can blend a direction flip into a fraction; patrol
		// direction is a sign, so snap it.
		if v < 0 {
			e.dir = -1
		} else {
			e.dir = 1
		}
	}
	if v, ok := st.Extra[stateKeyPatrolMin]; ok {
		e.minX = v
	}
	if v, ok := st.Extra[stateKeyPatrolMax]; ok {
		e.maxX = v
	}

	// The freeze countdown is the freezeLeft value itself; restoring both
	// fields together cancels any stale timer so the next forward tick
	// resumes from exactly the restored point.
	if v, ok := st.Extra[stateKeyFreezeLeft]; ok {
		e.freezeLeft = v
	}
	e.frozen = st.FlagOr(stateFlagFrozen, e.frozen)
	if !e.frozen {
		e.freezeLeft = 0
	}

	if e.anim != nil && st.Animation != "" {
		//nolint:errcheck // unknown animation key must not block the restore
		e.anim.Set(st.Animation)
	}
}
