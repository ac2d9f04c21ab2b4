package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rewind/internal/core"
	"github.com/vovakirdan/tui-rewind/internal/level"
	"github.com/vovakirdan/tui-rewind/internal/storage"
)

// levelItem is one entry in the level picker list.
type levelItem struct {
	info level.Info
	best int // fastest run in ms, 0 if none
}

func (i levelItem) Title() string {
	if i.info.Name != "" {
		return i.info.Name
	}
	return i.info.ID
}

func (i levelItem) Description() string {
	if i.best <= 0 {
		return "no runs yet"
	}
	d := time.Duration(i.best) * time.Millisecond
	return fmt.Sprintf("best %s", d.Round(100*time.Millisecond))
}

func (i levelItem) FilterValue() string {
	return i.info.Name + " " + i.info.ID
}

// PickerModel is the Bubble Tea model for the level picker.
type PickerModel struct {
	list     list.Model
	config   core.RuntimeConfig
	quitting bool
	selected string
}

// NewPickerModel builds the picker from the registered levels, annotated with
// best times from the store when available.
func NewPickerModel(store *storage.Store, cfg core.RuntimeConfig) PickerModel {
	infos := level.List()
	items := make([]list.Item, 0, len(infos))
	for _, info := range infos {
		item := levelItem{info: info}
		if store != nil {
			if best, err := store.BestTime(info.ID); err == nil {
				item.best = best
			}
		}
		items = append(items, item)
	}

	l := list.New(items, list.NewDefaultDelegate(), cfg.ScreenW, cfg.ScreenH)
	l.Title = "Chrono Runner - select a level"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return PickerModel{
		list:   l,
		config: cfg,
	}
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(levelItem); ok {
				m.selected = item.info.ID
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.list.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View()
}

// Selected returns the chosen level id, or "" if none was chosen.
func (m PickerModel) Selected() string {
	return m.selected
}

// IsQuitting reports whether the user asked to exit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the runtime config, possibly updated by a resize.
func (m PickerModel) Config() core.RuntimeConfig {
	return m.config
}

// PickerResult holds the outcome of running the picker.
type PickerResult struct {
	LevelID string
	Config  core.RuntimeConfig
	Quit    bool
}

// RunPicker runs the level picker and returns the selection.
func RunPicker(store *storage.Store, cfg core.RuntimeConfig) (PickerResult, error) {
	model := NewPickerModel(store, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{Config: cfg}, err
	}

	m, ok := finalModel.(PickerModel)
	if !ok {
		return PickerResult{Config: cfg, Quit: true}, nil
	}

	result := PickerResult{Config: m.Config()}
	if m.IsQuitting() || m.Selected() == "" {
		result.Quit = true
		return result, nil
	}

	result.LevelID = m.Selected()
	return result, nil
}
