package game

import (
	"github.com/vovakirdan/tui-rewind/internal/config"
	"github.com/vovakirdan/tui-rewind/internal/core"
	"github.com/vovakirdan/tui-rewind/internal/level"
	"github.com/vovakirdan/tui-rewind/internal/rewind"
)

// Player animation keys.
const (
	AnimPlayerIdle = "idle"
	AnimPlayerRun  = "run"
	AnimPlayerJump = "jump"
	AnimPlayerFall = "fall"
)

// Player is the controllable character. Health is deliberately not part of
// its rewind state: rewinding moves the player through time, it does not
// undo damage.
type Player struct {
	body    Body
	anim    *Animator
	alive   bool
	visible bool

	moveSpeed   float64
	jumpImpulse float64
}

// NewPlayer creates a player at the given spawn point.
func NewPlayer(spawn level.Point, cfg config.PlayerConfig) *Player {
	anim := NewAnimator()
	anim.Add(AnimPlayerIdle, []rune{'@'}, 1)
	anim.Add(AnimPlayerRun, []rune{'@', '&'}, 8)
	anim.Add(AnimPlayerJump, []rune{'^'}, 1)
	anim.Add(AnimPlayerFall, []rune{'v'}, 1)
	//nolint:errcheck // key registered above
	anim.Set(AnimPlayerIdle)

	w, h := cfg.Width, cfg.Height
	if w < 1 {
		w = 2
	}
	if h < 1 {
		h = 2
	}

	return &Player{
		body:        Body{X: spawn.X, Y: spawn.Y, W: w, H: h},
		anim:        anim,
		alive:       true,
		visible:     true,
		moveSpeed:   cfg.MoveSpeed,
		jumpImpulse: cfg.JumpImpulse,
	}
}

// Step advances the player by one forward simulation tick.
func (p *Player) Step(in core.InputFrame, m TileMap, dt float64, phys config.PhysicsConfig) {
	if !p.alive {
		return
	}

	p.body.VX = 0
	if in.Has(core.ActionLeft) {
		p.body.VX = -p.moveSpeed
	}
	if in.Has(core.ActionRight) {
		p.body.VX = p.moveSpeed
	}
	if in.Has(core.ActionJump) && p.body.OnGround {
		p.body.VY = p.jumpImpulse
	}

	p.body.ApplyGravity(dt, phys.Gravity, phys.MaxFallSpeed)
	p.body.Move(m, dt)

	p.selectAnimation()
	p.anim.Advance()
}

// selectAnimation picks the animation key from the current motion.
func (p *Player) selectAnimation() {
	key := AnimPlayerIdle
	switch {
	case !p.body.OnGround && p.body.VY < 0:
		key = AnimPlayerJump
	case !p.body.OnGround:
		key = AnimPlayerFall
	case p.body.VX != 0:
		key = AnimPlayerRun
	}
	//nolint:errcheck // keys registered in NewPlayer
	p.anim.Set(key)
}

// Rect returns the player's collision rectangle.
func (p *Player) Rect() core.Rect {
	return p.body.Rect()
}

// Alive reports whether the player is alive.
func (p *Player) Alive() bool {
	return p.alive
}

// Kill marks the player dead. Undoable by rewinding past the moment of death.
func (p *Player) Kill() {
	p.alive = false
	p.visible = false
}

// CaptureState implements rewind.Rewindable.
func (p *Player) CaptureState() rewind.State {
	animKey := ""
	if p.anim != nil {
		animKey = p.anim.Current()
	}
	return rewind.State{
		X:         p.body.X,
		Y:         p.body.Y,
		VX:        p.body.VX,
		VY:        p.body.VY,
		Animation: animKey,
		Alive:     p.alive,
		Visible:   p.visible,
	}
}

// ApplyState implements rewind.Rewindable. Restores position, velocity and
// flags; the animation restore is best-effort and an unknown key is ignored.
func (p *Player) ApplyState(st rewind.State) {
	p.body.X = st.X
	p.body.Y = st.Y
	p.body.VX = st.VX
	p.body.VY = st.VY
	p.alive = st.Alive
	p.visible = st.Visible

	// OnGround is derived; the next forward tick recomputes it.
	p.body.OnGround = false

	if p.anim != nil && st.Animation != "" {
		//nolint:errcheck // unknown animation key must not block the restore
		p.anim.Set(st.Animation)
	}
}
