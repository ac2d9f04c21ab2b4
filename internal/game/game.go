// Package game implements the platformer simulation: the player, patrol
// enemies, moving platforms and coins, wired into the rewind engine through
// the per-entity state contract. The package is pure logic with no external
// dependencies; the platform layer drives it through Reset/Step/Render.
package game

import (
	"math"

	"github.com/vovakirdan/tui-rewind/internal/config"
	"github.com/vovakirdan/tui-rewind/internal/core"
	"github.com/vovakirdan/tui-rewind/internal/level"
	"github.com/vovakirdan/tui-rewind/internal/rewind"
)

// DefaultLevelID is played when no level was selected.
const DefaultLevelID = "rooftop"

// Package-level selection set by the CLI before the game is constructed.
var (
	configPath       string
	difficultyPreset string
	selectedLevel    string
	selectedFile     string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLevel selects a built-in level by id.
func SetLevel(id string) {
	selectedLevel = id
	selectedFile = ""
}

// SetLevelFile selects a custom level loaded from a YAML file.
func SetLevelFile(path string) {
	selectedFile = path
	selectedLevel = ""
}

// Game is the platformer simulation.
type Game struct {
	conf config.ChronoConfig
	rt   core.RuntimeConfig
	lvl  *level.Level
	tm   *rewind.Manager

	player    *Player
	enemies   []*Enemy
	platforms []*MovingPlatform
	coins     []*Coin

	tick    uint64
	paused  bool
	won     bool
	loadErr error

	screenW, screenH int
	tooSmall         bool
}

// New creates an uninitialized game; Reset prepares it for play.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "chrono"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Chrono Runner"
}

// Reset loads config and level and rebuilds every entity. The rewind manager
// is recreated, so restart always begins with an empty history buffer.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH
	g.tick = 0
	g.paused = false
	g.won = false
	g.loadErr = nil

	conf, err := config.Load(configPath)
	if err != nil {
		g.loadErr = err
		return
	}
	config.ApplyPreset(&conf, config.DifficultyPreset(difficultyPreset))
	g.conf = conf

	lvl, err := g.loadLevel()
	if err != nil {
		g.loadErr = err
		return
	}
	g.lvl = lvl

	g.tooSmall = g.screenW < lvl.Width() || g.screenH < lvl.Height()+hudHeight

	g.player = NewPlayer(lvl.Player, conf.Player)

	g.enemies = g.enemies[:0]
	for _, spec := range lvl.Enemies {
		g.enemies = append(g.enemies, NewEnemy(spec, conf.Enemy.SpeedScale))
	}

	g.platforms = g.platforms[:0]
	for _, spec := range lvl.Platforms {
		g.platforms = append(g.platforms, NewMovingPlatform(spec))
	}

	g.coins = g.coins[:0]
	for _, p := range lvl.Coins {
		g.coins = append(g.coins, NewCoin(p))
	}

	g.tm = rewind.NewManager(conf.Rewind.MaxHistoryMS, conf.Rewind.Speed)
	g.tm.Register(g.player)
	for _, e := range g.enemies {
		g.tm.Register(e)
	}
	for _, p := range g.platforms {
		g.tm.Register(p)
	}
	for _, c := range g.coins {
		g.tm.Register(c)
	}
}

func (g *Game) loadLevel() (*level.Level, error) {
	if selectedFile != "" {
		return level.LoadFile(selectedFile)
	}
	id := selectedLevel
	if id == "" {
		id = DefaultLevelID
	}
	return level.Load(id)
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.loadErr != nil {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) && (g.won || !g.player.Alive()) {
		g.Reset(g.rt)
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.won || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	msPerTick := g.rt.MillisPerTick()
	now := float64(g.tick) * msPerTick
	dt := msPerTick / 1000

	// The rewind key is a toggle: terminals deliver key presses, not
	// press/release pairs, so "holding" rewind is modeled as on/off.
	if input.Has(core.ActionRewind) {
		g.tm.ToggleRewind(!g.tm.Rewinding())
	}

	if g.tm.Rewinding() {
		g.tm.Update(now, msPerTick)
		g.tick++
		return core.StepResult{State: g.State()}
	}

	if g.player.Alive() {
		g.simulate(input, dt, msPerTick)
	}

	g.tm.Update(now, msPerTick)
	g.tick++
	return core.StepResult{State: g.State()}
}

// simulate runs one forward frame in a fixed order: platforms move first and
// carry their rider, then the player, then enemies and interactions.
func (g *Game) simulate(input core.InputFrame, dt, dtMS float64) {
	riding := g.platformUnderPlayer()

	for _, p := range g.platforms {
		p.Step(dt)
	}

	// Carry the rider by the platform's own movement before the player's
	// step, so standing still on a moving platform keeps the player on it.
	if riding != nil {
		dx, dy := riding.Delta()
		g.player.body.X += dx
		g.player.body.Y += dy
	}

	g.player.Step(input, g.lvl, dt, g.conf.Physics)
	g.resolvePlatformLanding()

	if input.Has(core.ActionFreeze) {
		g.firePulse()
	}

	for _, e := range g.enemies {
		e.Step(dtMS)
	}

	g.resolveContacts()

	if g.player.body.Y > float64(g.lvl.Height()) {
		g.player.Kill()
	}

	g.checkWin()
}

// platformUnderPlayer returns the platform the player is standing on, if any.
func (g *Game) platformUnderPlayer() *MovingPlatform {
	bottom := g.player.body.Y + float64(g.player.body.H)
	left := g.player.body.X
	right := g.player.body.X + float64(g.player.body.W)

	for _, p := range g.platforms {
		for _, s := range p.Segments() {
			if right <= s.X || left >= s.X+float64(s.W) {
				continue
			}
			if math.Abs(bottom-s.Y) <= 0.3 {
				return p
			}
		}
	}
	return nil
}

// resolvePlatformLanding snaps a falling player onto a platform surface
// crossed this frame. Platforms are one-way: the player passes through from
// below.
func (g *Game) resolvePlatformLanding() {
	if g.player.body.VY < 0 {
		return
	}
	bottom := g.player.body.Y + float64(g.player.body.H)
	left := g.player.body.X
	right := g.player.body.X + float64(g.player.body.W)

	for _, p := range g.platforms {
		for _, s := range p.Segments() {
			if right <= s.X || left >= s.X+float64(s.W) {
				continue
			}
			if bottom >= s.Y && bottom <= s.Y+1 {
				g.player.body.Y = s.Y - float64(g.player.body.H)
				g.player.body.VY = 0
				g.player.body.OnGround = true
				return
			}
		}
	}
}

// firePulse freezes every enemy within the pulse radius of the player.
func (g *Game) firePulse() {
	px, py := g.player.Rect().Center()
	for _, e := range g.enemies {
		ex, ey := e.Rect().Center()
		dx := float64(px - ex)
		dy := float64(py - ey)
		if math.Hypot(dx, dy) <= g.conf.Enemy.FreezeRadius {
			e.Freeze(g.conf.Enemy.FreezeMS)
		}
	}
}

// resolveContacts handles enemy touches and coin pickups.
func (g *Game) resolveContacts() {
	pr := g.player.Rect()

	for _, e := range g.enemies {
		if !e.Alive() || e.Frozen() {
			continue
		}
		if pr.Intersects(e.Rect()) {
			g.player.Kill()
			return
		}
	}

	for _, c := range g.coins {
		if !c.Collected() && pr.Intersects(c.Rect()) {
			c.Collect()
		}
	}
}

// checkWin marks the level won when every coin is collected and the player
// reaches the exit.
func (g *Game) checkWin() {
	if g.Score() < len(g.coins) {
		return
	}
	exit := core.NewRect(int(g.lvl.Exit.X), int(g.lvl.Exit.Y), 1, 2)
	if g.player.Rect().Intersects(exit) {
		g.won = true
	}
}

// LevelID returns the id of the loaded level, or "" before a successful Reset.
func (g *Game) LevelID() string {
	if g.lvl == nil {
		return ""
	}
	return g.lvl.ID
}

// Score returns the number of collected coins. Computed from the coins
// themselves, so rewinding a pickup also rewinds the score.
func (g *Game) Score() int {
	n := 0
	for _, c := range g.coins {
		if c.Collected() {
			n++
		}
	}
	return n
}

// RewindCount reports how many times rewind was engaged this run.
func (g *Game) RewindCount() int {
	if g.tm == nil {
		return 0
	}
	return g.tm.RewindCount()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:     g.Score(),
		Won:       g.won,
		Paused:    g.paused,
		ElapsedMS: int(float64(g.tick) * g.rt.MillisPerTick()),
	}
	if g.player != nil {
		st.GameOver = !g.player.Alive()
	}
	if g.tm != nil {
		st.Rewinding = g.tm.Rewinding()
	}
	return st
}
