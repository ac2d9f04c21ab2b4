package rewind

import (
	"math"
	"testing"
)

// probe is a minimal rewindable object for exercising the manager.
type probe struct {
	st      State
	applied int
}

func newProbe(x, y float64) *probe {
	return &probe{st: State{X: x, Y: y, Alive: true, Visible: true}}
}

func (p *probe) CaptureState() State {
	return p.st.Clone()
}

func (p *probe) ApplyState(s State) {
	p.st = s.Clone()
	p.applied++
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRegisterIsIdempotent(t *testing.T) {
	m := NewManager(0, 0)
	p := newProbe(0, 0)

	m.Register(p)
	m.Register(p)

	if m.ObjectCount() != 1 {
		t.Fatalf("expected 1 registered object, got %d", m.ObjectCount())
	}

	m.Unregister(p)
	m.Unregister(p)

	if m.ObjectCount() != 0 {
		t.Fatalf("expected empty registry, got %d", m.ObjectCount())
	}
}

func TestRecordAppendsSnapshots(t *testing.T) {
	m := NewManager(0, 0)
	p := newProbe(10, 20)
	m.Register(p)

	m.Update(0, 16)
	m.Update(16, 16)

	if m.HistoryLen() != 2 {
		t.Fatalf("expected 2 snapshots, got %d", m.HistoryLen())
	}
	if m.OldestTimestamp() != 0 || m.LatestTimestamp() != 16 {
		t.Fatalf("unexpected timestamps: oldest=%v latest=%v", m.OldestTimestamp(), m.LatestTimestamp())
	}
}

func TestHistoryBound(t *testing.T) {
	const maxHistory = 1000.0
	const step = 100.0

	m := NewManager(maxHistory, 1)
	p := newProbe(0, 0)
	m.Register(p)

	var now float64
	for now = 0; now <= 3000; now += step {
		m.Update(now, step)
	}
	now -= step

	oldest := m.OldestTimestamp()
	if oldest < now-maxHistory-step {
		t.Errorf("oldest snapshot %v older than bound %v", oldest, now-maxHistory-step)
	}
	if oldest > now-maxHistory+step {
		t.Errorf("oldest snapshot %v trimmed too aggressively (bound %v)", oldest, now-maxHistory)
	}
}

func TestInterpolationIsLinear(t *testing.T) {
	m := NewManager(10000, 1)
	p := newProbe(0, 0)
	m.Register(p)

	m.Update(0, 0)
	p.st.X = 100
	m.Update(100, 100)

	m.ToggleRewind(true)
	m.Update(200, 75) // cursor: 100 -> 25

	if !approx(m.Cursor(), 25) {
		t.Fatalf("expected cursor 25, got %v", m.Cursor())
	}
	if !approx(p.st.X, 25) {
		t.Errorf("expected interpolated x=25, got %v", p.st.X)
	}
}

func TestRewindMonotonicAndClampsAtHorizon(t *testing.T) {
	m := NewManager(10000, 1)
	p := newProbe(0, 0)
	m.Register(p)

	for i := range 5 {
		p.st.X = float64(i * 10)
		m.Update(float64(i)*100, 100)
	}

	m.ToggleRewind(true)

	prev := math.Inf(1)
	for range 10 {
		m.Update(500, 150)
		c := m.Cursor()
		if c > prev {
			t.Fatalf("cursor went forward: %v -> %v", prev, c)
		}
		if c < m.OldestTimestamp() {
			t.Fatalf("cursor %v passed the horizon %v", c, m.OldestTimestamp())
		}
		prev = c
	}

	// Clamped: idles at the oldest snapshot's exact state, no extrapolation.
	if !approx(m.Cursor(), 0) {
		t.Errorf("expected cursor clamped at 0, got %v", m.Cursor())
	}
	if !approx(p.st.X, 0) {
		t.Errorf("expected earliest state x=0, got %v", p.st.X)
	}
}

func TestResumeAfterRewindTruncates(t *testing.T) {
	m := NewManager(100000, 1)
	p := newProbe(0, 0)
	m.Register(p)

	for i := range 5 {
		m.Update(float64(i)*1000, 1000) // t = 0..4000
	}

	m.ToggleRewind(true)
	m.Update(5000, 2000) // cursor: 4000 -> 2000
	if !approx(m.Cursor(), 2000) {
		t.Fatalf("expected cursor 2000, got %v", m.Cursor())
	}

	m.ToggleRewind(false)

	// The t=3000 and t=4000 snapshots must be gone.
	if m.HistoryLen() != 3 {
		t.Fatalf("expected 3 snapshots after truncation, got %d", m.HistoryLen())
	}
	if !approx(m.LatestTimestamp(), 2000) {
		t.Fatalf("expected latest 2000 after truncation, got %v", m.LatestTimestamp())
	}

	m.Update(2500, 500)
	if !approx(m.LatestTimestamp(), 2500) {
		t.Fatalf("expected resumed recording at 2500, got %v", m.LatestTimestamp())
	}
	if m.HistoryLen() != 4 {
		t.Fatalf("expected 4 snapshots after resume, got %d", m.HistoryLen())
	}
}

func TestToggleRewindIsIdempotent(t *testing.T) {
	m := NewManager(10000, 1)
	p := newProbe(0, 0)
	m.Register(p)

	m.Update(0, 100)
	m.Update(100, 100)

	m.ToggleRewind(true)
	m.Update(200, 50) // cursor 100 -> 50

	// A second enable must not reset the cursor to the latest timestamp.
	m.ToggleRewind(true)
	if !approx(m.Cursor(), 50) {
		t.Errorf("repeated enable moved the cursor: %v", m.Cursor())
	}

	m.ToggleRewind(false)
	m.ToggleRewind(false)
	if m.Rewinding() {
		t.Error("expected rewinding off")
	}
}

func TestRewindWithEmptyHistoryIsNoop(t *testing.T) {
	m := NewManager(10000, 1)
	p := newProbe(42, 0)
	m.Register(p)

	m.ToggleRewind(true)
	m.Update(100, 16)
	m.Update(116, 16)

	if p.applied != 0 {
		t.Errorf("expected no ApplyState calls on empty history, got %d", p.applied)
	}
	if !approx(p.st.X, 42) {
		t.Errorf("state mutated during empty rewind: %v", p.st.X)
	}

	m.ToggleRewind(false)
	if m.HistoryLen() != 0 {
		t.Errorf("expected history still empty, got %d", m.HistoryLen())
	}
}

func TestZeroTimeDeltaBracketUsesLater(t *testing.T) {
	m := NewManager(10000, 1)
	p := newProbe(0, 0)
	m.Register(p)

	p.st.X = 5
	m.Update(100, 16)
	p.st.X = 9
	m.Update(100, 0) // duplicate timestamp

	m.ToggleRewind(true)
	m.Update(200, 0) // cursor stays at 100, tA == tB

	if math.IsNaN(p.st.X) {
		t.Fatal("interpolation produced NaN on zero time delta")
	}
	if !approx(p.st.X, 9) {
		t.Errorf("expected later snapshot's value 9, got %v", p.st.X)
	}
}

func TestUnregisteredObjectSkippedDuringPlayback(t *testing.T) {
	m := NewManager(10000, 1)
	a := newProbe(1, 0)
	b := newProbe(2, 0)
	m.Register(a)
	m.Register(b)

	m.Update(0, 100)
	a.st.X = 11
	b.st.X = 22
	m.Update(100, 100)

	m.Unregister(b)
	bX := b.st.X

	m.ToggleRewind(true)
	m.Update(200, 50)

	if b.applied != 0 || !approx(b.st.X, bX) {
		t.Errorf("unregistered object was mutated during playback")
	}
	if a.applied == 0 {
		t.Errorf("registered object was not driven during playback")
	}
}

func TestObjectAppearingMidHistorySnapsToFirstState(t *testing.T) {
	m := NewManager(10000, 1)
	a := newProbe(0, 0)
	m.Register(a)
	m.Update(0, 100)

	late := newProbe(77, 0)
	m.Register(late)
	m.Update(100, 100)

	m.ToggleRewind(true)
	late.st.X = 0 // corrupt live state; playback must restore it
	m.Update(200, 50)

	if !approx(late.st.X, 77) {
		t.Errorf("expected late object snapped to first recorded state 77, got %v", late.st.X)
	}
}

// togglingProbe tries to re-enter the manager from inside ApplyState.
type togglingProbe struct {
	probe
	mgr *Manager
}

func (p *togglingProbe) ApplyState(s State) {
	p.probe.ApplyState(s)
	p.mgr.ToggleRewind(false)
	p.mgr.Update(9999, 16)
}

func TestReentrantCallsAreIgnored(t *testing.T) {
	m := NewManager(10000, 1)
	p := &togglingProbe{mgr: m}
	p.st = State{X: 1, Alive: true, Visible: true}
	m.Register(p)

	m.Update(0, 100)
	p.st.X = 2
	m.Update(100, 100)

	m.ToggleRewind(true)
	m.Update(200, 50)

	if !m.Rewinding() {
		t.Error("reentrant ToggleRewind was not ignored")
	}
	if m.HistoryLen() != 2 {
		t.Errorf("reentrant Update mutated history: %d snapshots", m.HistoryLen())
	}
}

func TestEndToEndRewindScenario(t *testing.T) {
	// An object at x=100 moving at +80 units/s, sampled at t=0, 1000, 2000 ms.
	m := NewManager(10000, 1)
	p := newProbe(100, 0)
	p.st.VX = 80
	m.Register(p)

	for _, now := range []float64{0, 1000, 2000} {
		p.st.X = 100 + 0.08*now
		m.Update(now, 1000)
	}

	if !approx(p.st.X, 260) {
		t.Fatalf("expected x=260 at t=2000, got %v", p.st.X)
	}

	m.ToggleRewind(true)
	m.Update(3000, 1000) // playback cursor: 2000 -> 1000

	if !approx(p.st.X, 180) {
		t.Errorf("expected x=180 after rewinding 1000ms, got %v", p.st.X)
	}
}

func TestResetClearsHistoryKeepsRegistry(t *testing.T) {
	m := NewManager(10000, 1)
	p := newProbe(0, 0)
	m.Register(p)
	m.Update(0, 16)
	m.ToggleRewind(true)

	m.Reset()

	if m.HistoryLen() != 0 || m.Rewinding() {
		t.Error("Reset did not clear playback state")
	}
	if m.ObjectCount() != 1 {
		t.Error("Reset dropped the registry")
	}
}

func TestRewindSpeedMultiplier(t *testing.T) {
	m := NewManager(10000, 2)
	p := newProbe(0, 0)
	m.Register(p)

	m.Update(0, 100)
	m.Update(1000, 100)

	m.ToggleRewind(true)
	m.Update(1100, 100) // cursor moves back 200 at 2x

	if !approx(m.Cursor(), 800) {
		t.Errorf("expected cursor 800 with 2x speed, got %v", m.Cursor())
	}
}
