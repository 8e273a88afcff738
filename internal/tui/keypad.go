package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calcit.dev/calcit/internal/engine"
)

// Button is one keypad button: the label shown and the action it sends
type Button struct {
	Label  string
	Action string // action wire name, e.g. "append" or "calculateResult"
	Value  string // payload for append
}

func digit(d string) Button {
	return Button{Label: d, Action: "append", Value: d}
}

func operator(label, op string) Button {
	return Button{Label: label, Action: "append", Value: op}
}

// KeypadLayout is the button grid, row by row
var KeypadLayout = [][]Button{
	{{"sin", "calculateSin", ""}, {"cos", "calculateCos", ""}, {"tan", "calculateTan", ""}, {"log", "calculateLog", ""}},
	{{"C", "clear", ""}, {"DEL", "delete", ""}, {"√", "calculateSquareRoot", ""}, {"xʸ", "calculatePower", ""}},
	{digit("7"), digit("8"), digit("9"), operator("÷", "/")},
	{digit("4"), digit("5"), digit("6"), operator("×", "*")},
	{digit("1"), digit("2"), digit("3"), operator("−", "-")},
	{digit("0"), digit("."), {"=", "calculateResult", ""}, operator("+", "+")},
}

const (
	buttonWidth = 7
	buttonGap   = 1
)

// PressFunc delivers a button press to the calculator
type PressFunc func(b Button) error

type keypadKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Press key.Binding
	Quit  key.Binding
}

func (k keypadKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Press, k.Quit}
}

func (k keypadKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Press, k.Quit},
	}
}

var defaultKeypadKeys = keypadKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Press: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/click", "press"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q", "esc"),
		key.WithHelp("q/esc", "quit"),
	),
}

type keypadStyles struct {
	title    lipgloss.Style
	display  lipgloss.Style
	pending  lipgloss.Style
	result   lipgloss.Style
	error    lipgloss.Style
	digit    lipgloss.Style
	operator lipgloss.Style
	function lipgloss.Style
	clear    lipgloss.Style
	focused  lipgloss.Style
	status   lipgloss.Style
}

func newKeypadStyles(accent string) keypadStyles {
	accentColor := lipgloss.Color(accent)
	cell := lipgloss.NewStyle().Width(buttonWidth).Align(lipgloss.Center)
	return keypadStyles{
		title: lipgloss.NewStyle().Bold(true).Foreground(accentColor),
		display: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Width(gridWidth() - 2).
			Align(lipgloss.Right),
		pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		result:   lipgloss.NewStyle().Bold(true),
		error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		digit:    cell.Foreground(lipgloss.Color("252")),
		operator: cell.Foreground(accentColor).Bold(true),
		function: cell.Foreground(lipgloss.Color("39")),
		clear:    cell.Foreground(lipgloss.Color("196")),
		focused:  cell.Background(accentColor).Foreground(lipgloss.Color("0")).Bold(true),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

func gridWidth() int {
	return len(KeypadLayout[0])*(buttonWidth+buttonGap) - buttonGap
}

// KeypadOptions configures the keypad's appearance
type KeypadOptions struct {
	Accent    string // lipgloss colour for the display border, operators and focus
	AltScreen bool
}

// MouseEnabled reports whether clicks are captured and mapped onto the grid.
// Mouse positions are terminal coordinates, which only line up with the
// grid when the keypad owns the whole screen.
func (o KeypadOptions) MouseEnabled() bool {
	return o.AltScreen
}

// KeypadModel is the bubbletea model for the calculator keypad.
// It renders the engine's display after every press.
type KeypadModel struct {
	display engine.DisplayReader
	press   PressFunc
	mouse   bool
	row     int
	col     int
	status  string
	keys    keypadKeyMap
	help    help.Model
	styles  keypadStyles
}

// NewKeypadModel creates a keypad showing display and sending presses to press
func NewKeypadModel(display engine.DisplayReader, press PressFunc, opts KeypadOptions) KeypadModel {
	accent := opts.Accent
	if accent == "" {
		accent = "205"
	}
	keys := defaultKeypadKeys
	if !opts.MouseEnabled() {
		keys.Press.SetHelp("enter", "press")
	}
	return KeypadModel{
		display: display,
		press:   press,
		mouse:   opts.MouseEnabled(),
		row:     len(KeypadLayout) - 1,
		keys:    keys,
		help:    help.New(),
		styles:  newKeypadStyles(accent),
	}
}

// Focused returns the button under the cursor
func (m KeypadModel) Focused() Button {
	return KeypadLayout[m.row][m.col]
}

func (m KeypadModel) Init() tea.Cmd {
	return nil
}

func (m KeypadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.moveTo(m.row-1, m.col)
		case key.Matches(msg, m.keys.Down):
			m.moveTo(m.row+1, m.col)
		case key.Matches(msg, m.keys.Left):
			m.moveTo(m.row, m.col-1)
		case key.Matches(msg, m.keys.Right):
			m.moveTo(m.row, m.col+1)
		case key.Matches(msg, m.keys.Press):
			m.pressFocused()
		}

	case tea.MouseMsg:
		if !m.mouse || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if row, col, ok := m.buttonAt(msg.X, msg.Y); ok {
			m.row, m.col = row, col
			m.pressFocused()
		}
	}

	return m, nil
}

func (m *KeypadModel) moveTo(row, col int) {
	if row < 0 || row >= len(KeypadLayout) {
		return
	}
	if col < 0 || col >= len(KeypadLayout[row]) {
		return
	}
	m.row, m.col = row, col
}

func (m *KeypadModel) pressFocused() {
	m.status = ""
	if err := m.press(m.Focused()); err != nil {
		m.status = err.Error()
	}
}

// buttonAt maps a screen cell to the button drawn there
func (m KeypadModel) buttonAt(x, y int) (int, int, bool) {
	row := y - strings.Count(m.header(), "\n")
	if row < 0 || row >= len(KeypadLayout) || x < 0 {
		return 0, 0, false
	}
	col := x / (buttonWidth + buttonGap)
	if x%(buttonWidth+buttonGap) >= buttonWidth || col >= len(KeypadLayout[row]) {
		return 0, 0, false
	}
	return row, col, true
}

// header renders everything above the button grid, ending with a newline
func (m KeypadModel) header() string {
	state := m.display.Snapshot()

	pending := ""
	if state.Current != "" && state.HasPending() {
		pending = state.Previous + string(state.Operator)
	}

	text := m.styles.result.Render(state.Display())
	if state.IsError() {
		text = m.styles.error.Render(state.Display())
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("calcit"))
	b.WriteString("\n")
	b.WriteString(m.styles.display.Render(m.styles.pending.Render(pending) + "\n" + text))
	b.WriteString("\n\n")
	return b.String()
}

func (m KeypadModel) buttonStyle(b Button) lipgloss.Style {
	switch {
	case b.Action == "clear" || b.Action == "delete":
		return m.styles.clear
	case b.Action == "append" && strings.ContainsAny(b.Value, "+-*/"):
		return m.styles.operator
	case b.Action == "append" || b.Action == "calculateResult":
		return m.styles.digit
	default:
		return m.styles.function
	}
}

func (m KeypadModel) View() string {
	var b strings.Builder
	b.WriteString(m.header())

	gap := strings.Repeat(" ", buttonGap)
	for r, row := range KeypadLayout {
		cells := make([]string, len(row))
		for c, btn := range row {
			style := m.buttonStyle(btn)
			if r == m.row && c == m.col {
				style = m.styles.focused
			}
			cells[c] = style.Render(btn.Label)
		}
		b.WriteString(strings.Join(cells, gap))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.styles.status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// RunKeypad runs the interactive keypad until the user quits
func RunKeypad(display engine.DisplayReader, press PressFunc, opts KeypadOptions) error {
	var programOpts []tea.ProgramOption
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if opts.MouseEnabled() {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(NewKeypadModel(display, press, opts), programOpts...)
	_, err := p.Run()
	return err
}
