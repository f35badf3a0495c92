package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0dc2ff"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffe138"))
	menuHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// difficultyOption is one row of the picker. An empty preset keeps the
// configured gravity.
type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
}

func difficultyOptions() []difficultyOption {
	opts := []difficultyOption{{preset: "", label: "As configured"}}
	for _, p := range config.Presets() {
		label := strings.ToUpper(string(p[:1])) + string(p[1:])
		opts = append(opts, difficultyOption{preset: p, label: label})
	}
	return opts
}

// DifficultyModel lets users choose a difficulty preset before playing.
type DifficultyModel struct {
	options  []difficultyOption
	cursor   int
	width    int
	height   int
	choosing bool
	quitting bool
}

// NewDifficultyModel creates a picker with the cursor on current.
func NewDifficultyModel(width, height int, current config.DifficultyPreset) DifficultyModel {
	m := DifficultyModel{
		options:  difficultyOptions(),
		width:    width,
		height:   height,
		choosing: true,
	}
	for i, opt := range m.options {
		if opt.preset == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B L O C K S"), "B L O C K S", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", "", m.width))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		line := fmt.Sprintf("  %-14s %s", opt.label, opt.preset.Description())
		if i == m.cursor {
			line = "> " + line[2:]
			b.WriteString(centerText(menuSelectedStyle.Render(line), line, m.width))
		} else {
			b.WriteString(centerText(line, "", m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hint := "Enter: Play  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(menuHintStyle.Render(hint), hint, m.width))

	return b.String()
}

// Selected returns the chosen preset, or nil if still choosing or cancelled.
func (m DifficultyModel) Selected() *config.DifficultyPreset {
	if m.choosing || m.quitting {
		return nil
	}
	p := m.options[m.cursor].preset
	return &p
}

// centerText pads text so that plain, its unstyled form, is centered in
// width. An empty plain means text has no styling.
func centerText(text, plain string, width int) string {
	if plain == "" {
		plain = text
	}
	n := len([]rune(plain))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RunDifficultySelector shows the picker and returns the chosen preset,
// or nil when the user backed out.
func RunDifficultySelector(cfg core.RuntimeConfig, current config.DifficultyPreset) (*config.DifficultyPreset, error) {
	p := tea.NewProgram(
		NewDifficultyModel(cfg.ScreenW, cfg.ScreenH, current),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
