package game

import "fmt"

// Animation is a looping sequence of frame runes.
type Animation struct {
	Frames        []rune
	TicksPerFrame int
}

// Animator selects and advances the current animation for an entity.
// Animations are keyed by plain strings so the key can travel inside a
// rewind state snapshot.
type Animator struct {
	clips   map[string]Animation
	current string
	tick    int
}

// NewAnimator creates an empty animator.
func NewAnimator() *Animator {
	return &Animator{clips: make(map[string]Animation)}
}

// Add registers an animation clip under the given key.
func (a *Animator) Add(key string, frames []rune, ticksPerFrame int) {
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	a.clips[key] = Animation{Frames: frames, TicksPerFrame: ticksPerFrame}
}

// Set switches to the named animation, restarting it if it differs from the
// current one. Unknown keys return an error; callers restoring recorded
// state swallow it so position restore still succeeds.
func (a *Animator) Set(key string) error {
	if _, ok := a.clips[key]; !ok {
		return fmt.Errorf("animation: unknown key %q", key)
	}
	if a.current != key {
		a.current = key
		a.tick = 0
	}
	return nil
}

// Current returns the active animation key, or "" if none was set.
func (a *Animator) Current() string {
	return a.current
}

// Advance moves the animation forward by one tick.
func (a *Animator) Advance() {
	a.tick++
}

// Frame returns the rune to draw for the current animation state.
// Returns a space if no animation is active.
func (a *Animator) Frame() rune {
	clip, ok := a.clips[a.current]
	if !ok || len(clip.Frames) == 0 {
		return ' '
	}
	idx := (a.tick / clip.TicksPerFrame) % len(clip.Frames)
	return clip.Frames[idx]
}
