package game

import (
	"fmt"

	"github.com/vovakirdan/tui-rewind/internal/core"
)

// hudHeight is the number of screen rows reserved above the level.
const hudHeight = 2

// rewindGaugeCells is the width of the HUD history gauge.
const rewindGaugeCells = 10

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		g.renderOverlay(dst, "Failed to start", g.loadErr.Error())
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", g.lvl.Width(), g.lvl.Height()+hudHeight))
		return
	}

	offX := (g.screenW - g.lvl.Width()) / 2
	offY := hudHeight

	g.renderTiles(dst, offX, offY)
	g.renderExit(dst, offX, offY)
	g.renderCoins(dst, offX, offY)
	g.renderPlatforms(dst, offX, offY)
	g.renderEnemies(dst, offX, offY)
	g.renderPlayer(dst, offX, offY)

	st := g.State()
	switch {
	case st.Won:
		g.renderOverlay(dst, "Level complete!", fmt.Sprintf("Coins: %d  Rewinds: %d", g.Score(), g.RewindCount()))
	case st.GameOver:
		g.renderOverlay(dst, "You died", "Rewind (T) to undo, or R to restart")
	case st.Paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status bar and the rewind gauge.
func (g *Game) renderHUD(dst *core.Screen) {
	name := ""
	if g.lvl != nil {
		name = g.lvl.Name
		if name == "" {
			name = g.lvl.ID
		}
	}

	hud := fmt.Sprintf(" %s - Coins: %d/%d  Time: %ds", name, g.Score(), len(g.coins), g.State().ElapsedMS/1000)
	dst.DrawText(0, 0, hud)

	g.renderGauge(dst)

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderGauge draws the history-fill gauge on the right edge of the HUD.
// While rewinding it drains, showing how much recorded past remains.
func (g *Game) renderGauge(dst *core.Screen) {
	if g.tm == nil {
		return
	}

	label := "REW "
	color := core.ColorGray
	if g.tm.Rewinding() {
		label = "<<< "
		color = core.ColorBrightMagenta
	}

	x := dst.Width() - rewindGaugeCells - len(label) - 1
	if x < 0 {
		return
	}
	dst.DrawTextColored(x, 0, label, color)

	filled := int(g.tm.HistoryFill() * rewindGaugeCells)
	for i := 0; i < rewindGaugeCells; i++ {
		r := '░'
		if i < filled {
			r = '▓'
		}
		dst.SetCell(x+len(label)+i, 0, r, color)
	}
}

func (g *Game) renderTiles(dst *core.Screen, offX, offY int) {
	for y := 0; y < g.lvl.Height(); y++ {
		for x := 0; x < g.lvl.Width(); x++ {
			if g.lvl.SolidAt(x, y) {
				dst.SetCell(offX+x, offY+y, '█', core.ColorGray)
			}
		}
	}
}

func (g *Game) renderExit(dst *core.Screen, offX, offY int) {
	x := offX + int(g.lvl.Exit.X)
	y := offY + int(g.lvl.Exit.Y)
	dst.SetCell(x, y, '⚑', core.ColorBrightGreen)
	dst.SetCell(x, y+1, '│', core.ColorBrightGreen)
}

func (g *Game) renderCoins(dst *core.Screen, offX, offY int) {
	for _, c := range g.coins {
		if c.Collected() {
			continue
		}
		r := c.Rect()
		dst.SetCell(offX+r.X, offY+r.Y, '●', core.ColorBrightYellow)
	}
}

func (g *Game) renderPlatforms(dst *core.Screen, offX, offY int) {
	for _, p := range g.platforms {
		for _, r := range p.SurfaceRects() {
			for i := 0; i < r.W; i++ {
				dst.SetCell(offX+r.X+i, offY+r.Y, '═', core.ColorCyan)
			}
		}
	}
}

func (g *Game) renderEnemies(dst *core.Screen, offX, offY int) {
	for _, e := range g.enemies {
		if !e.Alive() {
			continue
		}
		color := core.ColorBrightRed
		if e.Frozen() {
			color = core.ColorBrightCyan
		}
		r := e.Rect()
		frame := e.anim.Frame()
		for dy := 0; dy < r.H; dy++ {
			for dx := 0; dx < r.W; dx++ {
				dst.SetCell(offX+r.X+dx, offY+r.Y+dy, frame, color)
			}
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen, offX, offY int) {
	if !g.player.visible {
		return
	}
	color := core.ColorBrightWhite
	if g.tm != nil && g.tm.Rewinding() {
		color = core.ColorBrightMagenta
	}
	r := g.player.Rect()
	frame := g.player.anim.Frame()
	for dy := 0; dy < r.H; dy++ {
		for dx := 0; dx < r.W; dx++ {
			dst.SetCell(offX+r.X+dx, offY+r.Y+dy, frame, color)
		}
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
