package rewind

import "sort"

// Rewindable is the temporal state contract. Every dynamic entity that should
// participate in time rewind implements it.
//
// CaptureState must be a pure read with no side effects and must not fail; if
// a sub-component is absent the entity substitutes a default (for example an
// empty animation key). ApplyState writes the state back best-effort: unknown
// animation keys are swallowed, missing optional fields are left untouched,
// and restoring position must always succeed.
type Rewindable interface {
	CaptureState() State
	ApplyState(State)
}

// Entry pairs an object with the state it held when a snapshot was taken.
type Entry struct {
	Object Rewindable
	State  State
}

// Snapshot is one timestamped set of per-object states captured during a
// single frame. Entries preserve registration order; the order carries no
// meaning but keeps iteration deterministic.
type Snapshot struct {
	Timestamp float64 // milliseconds
	Entries   []Entry
}

// Default tuning. MaxHistory bounds the buffer by duration rather than by
// snapshot count, since the frame delta varies.
const (
	DefaultMaxHistory = 6000.0 // ms of recorded history
	DefaultSpeed      = 1.0    // rewind speed multiplier
)

// Manager owns the registry of rewindable objects, the rolling history
// buffer, and the record/playback state machine. It is driven once per frame
// through Update and is strictly single-threaded: the registry and buffer are
// never touched from outside Register, Unregister, ToggleRewind and Update.
type Manager struct {
	objects    []Rewindable
	registered map[Rewindable]struct{}

	history    []Snapshot
	maxHistory float64
	speed      float64

	rewinding bool
	cursor    float64
	cursorSet bool

	// Reentrancy guard: ApplyState/CaptureState must not call back into
	// Update or ToggleRewind.
	updating bool

	rewindCount int
}

// NewManager creates an empty manager. maxHistoryMS bounds the history buffer
// duration; speed multiplies the playback cursor's backward movement.
// Non-positive arguments fall back to the defaults.
func NewManager(maxHistoryMS, speed float64) *Manager {
	if maxHistoryMS <= 0 {
		maxHistoryMS = DefaultMaxHistory
	}
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return &Manager{
		registered: make(map[Rewindable]struct{}),
		maxHistory: maxHistoryMS,
		speed:      speed,
	}
}

// Register adds an object to the registry. No-op if already registered.
// The next Update call takes the object's first snapshot.
func (m *Manager) Register(obj Rewindable) {
	if obj == nil {
		return
	}
	if _, ok := m.registered[obj]; ok {
		return
	}
	m.registered[obj] = struct{}{}
	m.objects = append(m.objects, obj)
}

// Unregister removes an object from the registry. States already embedded in
// historical snapshots remain but are skipped during playback; restoring a
// removed object's state is a no-op.
func (m *Manager) Unregister(obj Rewindable) {
	if _, ok := m.registered[obj]; !ok {
		return
	}
	delete(m.registered, obj)
	for i, o := range m.objects {
		if o == obj {
			m.objects = append(m.objects[:i], m.objects[i+1:]...)
			break
		}
	}
}

// Registered reports whether obj is currently in the registry.
func (m *Manager) Registered(obj Rewindable) bool {
	_, ok := m.registered[obj]
	return ok
}

// ObjectCount returns the number of registered objects.
func (m *Manager) ObjectCount() int {
	return len(m.objects)
}

// ToggleRewind switches between normal recording and rewind playback.
// Repeated calls with the same value are no-ops.
//
// Entering rewind places the playback cursor at the latest buffered timestamp
// without mutating the buffer. Leaving rewind truncates every snapshot newer
// than the cursor, so resumed forward recording cannot overlap the discarded
// future.
func (m *Manager) ToggleRewind(enable bool) {
	if m.updating {
		return
	}
	if enable == m.rewinding {
		return
	}

	if enable {
		m.rewinding = true
		m.cursorSet = false
		if n := len(m.history); n > 0 {
			m.cursor = m.history[n-1].Timestamp
			m.cursorSet = true
		}
		m.rewindCount++
		return
	}

	if m.cursorSet {
		idx := sort.Search(len(m.history), func(i int) bool {
			return m.history[i].Timestamp > m.cursor
		})
		m.history = m.history[:idx]
	}
	m.rewinding = false
	m.cursorSet = false
}

// Rewinding reports whether the manager is in playback mode.
func (m *Manager) Rewinding() bool {
	return m.rewinding
}

// Update is the single per-frame entry point. now and delta are in
// milliseconds; now must be non-decreasing across calls.
//
// In normal mode it records one snapshot and trims expired history. In rewind
// mode it moves the playback cursor back by delta times the rewind speed,
// clamping at the oldest snapshot, and applies the interpolated state to every
// registered object.
func (m *Manager) Update(now, delta float64) {
	if m.updating {
		return
	}
	m.updating = true
	defer func() { m.updating = false }()

	if m.rewinding {
		m.playback(delta)
		return
	}
	m.record(now)
}

// record captures one snapshot of every registered object and trims snapshots
// older than the history window.
func (m *Manager) record(now float64) {
	// Iterate over a copy so an object unregistering a peer mid-capture
	// cannot skip or duplicate entries.
	targets := make([]Rewindable, len(m.objects))
	copy(targets, m.objects)

	entries := make([]Entry, 0, len(targets))
	for _, obj := range targets {
		if _, ok := m.registered[obj]; !ok {
			continue
		}
		entries = append(entries, Entry{Object: obj, State: obj.CaptureState()})
	}

	m.history = append(m.history, Snapshot{Timestamp: now, Entries: entries})

	cutoff := now - m.maxHistory
	drop := 0
	for drop < len(m.history)-1 && m.history[drop].Timestamp < cutoff {
		drop++
	}
	if drop > 0 {
		m.history = m.history[drop:]
	}
}

// playback moves the cursor back and applies the bracketing interpolation.
func (m *Manager) playback(delta float64) {
	if len(m.history) == 0 {
		return
	}
	if !m.cursorSet {
		m.cursor = m.history[len(m.history)-1].Timestamp
		m.cursorSet = true
	}

	m.cursor -= delta * m.speed
	if oldest := m.history[0].Timestamp; m.cursor < oldest {
		// Past the recorded horizon: idle at the oldest state.
		m.cursor = oldest
	}

	// First snapshot strictly after the cursor. If several snapshots share a
	// timestamp the latest one wins, matching the tie rule.
	i := sort.Search(len(m.history), func(i int) bool {
		return m.history[i].Timestamp > m.cursor
	})

	var earlier, later Snapshot
	if i == len(m.history) {
		// Cursor sits at or past the newest timestamp.
		later = m.history[len(m.history)-1]
		earlier = later
	} else {
		later = m.history[i]
		earlier = m.history[i-1] // i > 0: cursor is clamped to >= oldest
	}

	var f float64 = 1
	if span := later.Timestamp - earlier.Timestamp; span > 0 {
		f = (m.cursor - earlier.Timestamp) / span
	}

	earlierStates := make(map[Rewindable]State, len(earlier.Entries))
	for _, e := range earlier.Entries {
		earlierStates[e.Object] = e.State
	}

	for _, e := range later.Entries {
		if _, ok := m.registered[e.Object]; !ok {
			continue
		}
		st := e.State
		if prev, ok := earlierStates[e.Object]; ok {
			st = Interpolate(prev, e.State, f)
		}
		// Objects missing from the earlier snapshot appeared during the
		// interval; they snap to their first recorded state.
		e.Object.ApplyState(st)
	}
}

// Cursor returns the current playback timestamp. Only meaningful while
// rewinding with a non-empty buffer.
func (m *Manager) Cursor() float64 {
	return m.cursor
}

// HistoryLen returns the number of buffered snapshots.
func (m *Manager) HistoryLen() int {
	return len(m.history)
}

// OldestTimestamp returns the earliest buffered timestamp, or 0 if empty.
func (m *Manager) OldestTimestamp() float64 {
	if len(m.history) == 0 {
		return 0
	}
	return m.history[0].Timestamp
}

// LatestTimestamp returns the newest buffered timestamp, or 0 if empty.
func (m *Manager) LatestTimestamp() float64 {
	if len(m.history) == 0 {
		return 0
	}
	return m.history[len(m.history)-1].Timestamp
}

// HistoryFill returns how full the history window is, in [0, 1]. While
// rewinding it reports how much recorded past remains ahead of the cursor,
// which the HUD renders as the rewind gauge.
func (m *Manager) HistoryFill() float64 {
	if len(m.history) == 0 {
		return 0
	}
	var span float64
	if m.rewinding && m.cursorSet {
		span = m.cursor - m.history[0].Timestamp
	} else {
		span = m.history[len(m.history)-1].Timestamp - m.history[0].Timestamp
	}
	if span < 0 {
		span = 0
	}
	fill := span / m.maxHistory
	if fill > 1 {
		fill = 1
	}
	return fill
}

// RewindCount returns how many times rewind has been engaged since Reset.
func (m *Manager) RewindCount() int {
	return m.rewindCount
}

// Reset clears the history buffer and playback state but keeps the registry.
// Used on scene teardown and restart; history is never persisted.
func (m *Manager) Reset() {
	m.history = nil
	m.rewinding = false
	m.cursorSet = false
	m.cursor = 0
	m.rewindCount = 0
}

// Clear removes every registered object and all history.
func (m *Manager) Clear() {
	m.Reset()
	m.objects = nil
	m.registered = make(map[Rewindable]struct{})
}
