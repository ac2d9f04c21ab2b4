// Package rewind implements the temporal recording and playback engine behind
// the time-rewind mechanic. A Manager records a bounded, time-indexed history
// of every registered object's state each frame; while rewinding it plays that
// history backwards, interpolating between recorded snapshots and pushing the
// result back into the objects.
//
// The package contains pure logic with no external dependencies, following the
// same rule as the game packages: everything terminal- or storage-related
// lives in the outer platform layers.
package rewind

// State is a plain snapshot of one object's rewind-relevant fields at one
// instant. It must stay trivially copyable: no pointers back into live engine
// objects, only values.
//
// Common fields cover every entity type. Type-specific fields go into Extra
// (numeric, interpolated) and Flags (boolean, taken from the nearer snapshot).
// Missing keys are tolerated on apply, so a state captured by a narrower
// version of an entity can still be partially applied.
type State struct {
	X, Y      float64 // world position (screen cells)
	VX, VY    float64 // velocity (cells per second)
	Animation string  // current animation key, "" if none
	Alive     bool
	Visible   bool

	Extra map[string]float64
	Flags map[string]bool
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := s
	if s.Extra != nil {
		out.Extra = make(map[string]float64, len(s.Extra))
		for k, v := range s.Extra {
			out.Extra[k] = v
		}
	}
	if s.Flags != nil {
		out.Flags = make(map[string]bool, len(s.Flags))
		for k, v := range s.Flags {
			out.Flags[k] = v
		}
	}
	return out
}

// ExtraOr returns the named extra field, or fallback if absent.
func (s State) ExtraOr(key string, fallback float64) float64 {
	if v, ok := s.Extra[key]; ok {
		return v
	}
	return fallback
}

// FlagOr returns the named flag, or fallback if absent.
func (s State) FlagOr(key string, fallback bool) bool {
	if v, ok := s.Flags[key]; ok {
		return v
	}
	return fallback
}

// lerp linearly interpolates between a and b.
func lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}

// Interpolate blends two states captured at bracketing timestamps.
// f is the normalized position between a (f=0) and b (f=1).
//
// Numeric fields interpolate linearly. Non-numeric fields (animation, flags)
// take the value from the nearer snapshot, ties favoring b. Extra keys present
// in only one snapshot are carried over unblended rather than dropped.
func Interpolate(a, b State, f float64) State {
	if f <= 0 {
		return a.Clone()
	}
	if f >= 1 {
		return b.Clone()
	}

	nearer := b
	if f < 0.5 {
		nearer = a
	}

	out := State{
		X:         lerp(a.X, b.X, f),
		Y:         lerp(a.Y, b.Y, f),
		VX:        lerp(a.VX, b.VX, f),
		VY:        lerp(a.VY, b.VY, f),
		Animation: nearer.Animation,
		Alive:     nearer.Alive,
		Visible:   nearer.Visible,
	}

	if len(a.Extra) > 0 || len(b.Extra) > 0 {
		out.Extra = make(map[string]float64, len(b.Extra))
		for k, av := range a.Extra {
			if bv, ok := b.Extra[k]; ok {
				out.Extra[k] = lerp(av, bv, f)
			} else {
				out.Extra[k] = av
			}
		}
		for k, bv := range b.Extra {
			if _, ok := a.Extra[k]; !ok {
				out.Extra[k] = bv
			}
		}
	}

	if len(nearer.Flags) > 0 {
		out.Flags = make(map[string]bool, len(nearer.Flags))
		for k, v := range nearer.Flags {
			out.Flags[k] = v
		}
	}

	return out
}
