package rewind

import "testing"

func TestCloneIsIndependent(t *testing.T) {
	a := State{
		X:     1,
		Extra: map[string]float64{"angle": 0.5},
		Flags: map[string]bool{"frozen": true},
	}

	b := a.Clone()
	b.Extra["angle"] = 9
	b.Flags["frozen"] = false

	if a.Extra["angle"] != 0.5 || !a.Flags["frozen"] {
		t.Error("Clone shares map storage with the original")
	}
}

func TestInterpolateNumericFields(t *testing.T) {
	a := State{X: 0, Y: 10, VX: -4, VY: 0}
	b := State{X: 100, Y: 20, VX: 4, VY: 8}

	got := Interpolate(a, b, 0.25)

	if got.X != 25 || got.Y != 12.5 || got.VX != -2 || got.VY != 2 {
		t.Errorf("unexpected interpolation: %+v", got)
	}
}

func TestInterpolateNonNumericTakesNearer(t *testing.T) {
	a := State{Animation: "run", Alive: true, Flags: map[string]bool{"frozen": false}}
	b := State{Animation: "jump", Alive: false, Flags: map[string]bool{"frozen": true}}

	early := Interpolate(a, b, 0.25)
	if early.Animation != "run" || !early.Alive || early.FlagOr("frozen", true) {
		t.Errorf("f=0.25 should favor the earlier snapshot: %+v", early)
	}

	late := Interpolate(a, b, 0.75)
	if late.Animation != "jump" || late.Alive || !late.FlagOr("frozen", false) {
		t.Errorf("f=0.75 should favor the later snapshot: %+v", late)
	}

	// Ties favor the later snapshot.
	tie := Interpolate(a, b, 0.5)
	if tie.Animation != "jump" {
		t.Errorf("tie should favor the later snapshot, got %q", tie.Animation)
	}
}

func TestInterpolateExtraKeyUnion(t *testing.T) {
	a := State{Extra: map[string]float64{"angle": 0, "legacy": 7}}
	b := State{Extra: map[string]float64{"angle": 10, "pathIndex": 2}}

	got := Interpolate(a, b, 0.5)

	if got.ExtraOr("angle", -1) != 5 {
		t.Errorf("shared key should interpolate, got %v", got.ExtraOr("angle", -1))
	}
	if got.ExtraOr("legacy", -1) != 7 {
		t.Errorf("earlier-only key should carry over, got %v", got.ExtraOr("legacy", -1))
	}
	if got.ExtraOr("pathIndex", -1) != 2 {
		t.Errorf("later-only key should carry over, got %v", got.ExtraOr("pathIndex", -1))
	}
}

func TestInterpolateEndpointsReturnCopies(t *testing.T) {
	a := State{X: 1, Extra: map[string]float64{"k": 1}}
	b := State{X: 2, Extra: map[string]float64{"k": 2}}

	got := Interpolate(a, b, 0)
	got.Extra["k"] = 99
	if a.Extra["k"] != 1 {
		t.Error("f=0 result aliases the input state")
	}

	got = Interpolate(a, b, 1)
	if got.X != 2 {
		t.Errorf("f=1 should return the later state, got %+v", got)
	}
}

func TestExtraAndFlagFallbacks(t *testing.T) {
	s := State{}
	if s.ExtraOr("missing", 3.5) != 3.5 {
		t.Error("ExtraOr fallback failed on nil map")
	}
	if !s.FlagOr("missing", true) {
		t.Error("FlagOr fallback failed on nil map")
	}
}
