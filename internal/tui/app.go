package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dwrenn/ctlkit/slider"
)

// inputMode says what the text input, when visible, is collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputValue
	inputRange
)

// keyMap defines key bindings for the TUI.
type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Coarse   key.Binding
	Value    key.Binding
	Range    key.Binding
	NudgeMin key.Binding
	NudgeMax key.Binding
	Reset    key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "step down")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "step up")),
		Coarse:   key.NewBinding(key.WithKeys("shift+left", "shift+right", "H", "L"), key.WithHelp("shift+←/→", "coarse step")),
		Value:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "type a value")),
		Range:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "type a range")),
		NudgeMin: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "widen min")),
		NudgeMax: key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "widen max")),
		Reset:    key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset position")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Value, k.Range, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Coarse, k.Reset},
		{k.Value, k.Range, k.NudgeMin, k.NudgeMax},
		{k.Quit, k.Help},
	}
}

// Model is the Bubble Tea model for the ctlkit playground.
type Model struct {
	version  string
	keys     keyMap
	help     help.Model
	width    int
	height   int
	s        *slider.Slider
	input    textinput.Model
	mode     inputMode
	showHelp bool
	errMsg   string
}

// New creates a new TUI model around a default slider.
func New(version string) Model {
	input := textinput.New()
	input.CharLimit = 40
	input.Width = 24

	return Model{
		version: version,
		keys:    newKeyMap(),
		help:    help.New(),
		s:       slider.New(),
		input:   input,
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.showHelp = false
		return m, nil
	}

	if m.mode != inputNone {
		return m.handleInputKey(msg)
	}

	fine := m.s.Resolution() / 100
	if fine < 1 {
		fine = 1
	}
	coarse := m.s.Resolution() / 10
	if coarse < 1 {
		coarse = 1
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Coarse):
		m.errMsg = ""
		if msg.String() == "shift+left" || msg.String() == "H" {
			m.s.SetPos(m.s.Pos() - coarse)
		} else {
			m.s.SetPos(m.s.Pos() + coarse)
		}

	case key.Matches(msg, m.keys.Left):
		m.errMsg = ""
		m.s.SetPos(m.s.Pos() - fine)

	case key.Matches(msg, m.keys.Right):
		m.errMsg = ""
		m.s.SetPos(m.s.Pos() + fine)

	case key.Matches(msg, m.keys.Reset):
		m.errMsg = ""
		m.s.SetPos(0)

	case key.Matches(msg, m.keys.NudgeMin):
		m.errMsg = ""
		if err := m.s.SetMin(m.s.Min() - m.nudge()); err != nil {
			m.errMsg = err.Error()
		}

	case key.Matches(msg, m.keys.NudgeMax):
		m.errMsg = ""
		if err := m.s.SetMax(m.s.Max() + m.nudge()); err != nil {
			m.errMsg = err.Error()
		}

	case key.Matches(msg, m.keys.Value):
		m.mode = inputValue
		m.errMsg = ""
		m.input.Placeholder = "target value"
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Range):
		m.mode = inputRange
		m.errMsg = ""
		m.input.Placeholder = "min, max"
		m.input.SetValue("")
		return m, m.input.Focus()
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = inputNone
		m.input.Blur()
		return m, nil

	case "enter":
		text := strings.TrimSpace(m.input.Value())
		switch m.mode {
		case inputValue:
			m.errMsg = m.applyValue(text)
		case inputRange:
			m.errMsg = m.applyRange(text)
		}
		m.mode = inputNone
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// nudge is the amount m/M widen a bound by: 5% of the current span. It is
// never zero while the range invariant holds, so widening cannot produce a
// degenerate range.
func (m Model) nudge() float64 {
	return (m.s.Max() - m.s.Min()) * 0.05
}

func (m Model) applyValue(text string) string {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Sprintf("not a number: %s", text)
	}
	if err := m.s.SetValue(v); err != nil {
		return err.Error()
	}
	return ""
}

func (m Model) applyRange(text string) string {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return "range must be two numbers: min, max"
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return fmt.Sprintf("invalid min: %s", parts[0])
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return fmt.Sprintf("invalid max: %s", parts[1])
	}
	if err := m.s.SetRange(min, max); err != nil {
		return err.Error()
	}
	return ""
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	// Title.
	b.WriteString(titleStyle.Render(fmt.Sprintf("ctlkit %s", m.version)))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("range-mapped control playground"))
	b.WriteString("\n\n")

	// Help view.
	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("Press any key to return"))
		return b.String()
	}

	// Control section.
	b.WriteString(sectionStyle.Render("Control"))
	b.WriteString("\n")
	b.WriteString(renderGauge(m.s))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s [%g, %g]\n", labelStyle.Render("Range:"), m.s.Min(), m.s.Max()))
	b.WriteString(fmt.Sprintf("  %s %d / %d\n", labelStyle.Render("Position:"), m.s.Pos(), m.s.Resolution()))
	b.WriteString(fmt.Sprintf("  %s %g\n", labelStyle.Render("Value:"), m.s.Value()))
	b.WriteString(fmt.Sprintf("  %s %.4f\n", labelStyle.Render("Proportion:"), m.s.Proportion()))
	b.WriteString(fmt.Sprintf("  %s %g\n", labelStyle.Render("Step:"), m.s.Step()))
	b.WriteString("\n")

	// Input line.
	if m.mode != inputNone {
		label := "Value"
		if m.mode == inputRange {
			label = "Range"
		}
		b.WriteString(fmt.Sprintf("  %s %s\n\n", labelStyle.Render(label+":"), m.input.View()))
	}

	// Error.
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(fmt.Sprintf("  Error: %s", m.errMsg)))
		b.WriteString("\n\n")
	}

	// Help.
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func renderGauge(s *slider.Slider) string {
	var b strings.Builder
	barLen := 40
	filled := int(s.Proportion() * float64(barLen))

	b.WriteString("  [")
	for i := 0; i < barLen; i++ {
		if i < filled {
			switch {
			case s.Proportion() >= 0.9:
				b.WriteString(warnStyle.Render(string(gaugeChars[3])))
			default:
				b.WriteString(goodStyle.Render(string(gaugeChars[3])))
			}
		} else {
			b.WriteString(dimStyle.Render(string(gaugeChars[0])))
		}
	}
	b.WriteString("] ")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%.1f%%", s.Proportion()*100)))

	return b.String()
}
