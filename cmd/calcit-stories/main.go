// Package main is the entry point for the calcit keypad storyboard.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calcit.dev/calcit/internal/actions"
	"calcit.dev/calcit/internal/engine"
	"calcit.dev/calcit/internal/tui"
)

type state int

const (
	stateList state = iota
	stateStory
)

type model struct {
	state       state
	cursor      int
	stories     []tui.Story
	activeStory *tui.Story
	storyModel  tea.Model
}

func main() {
	m := model{
		state:   stateList,
		stories: tui.Stories,
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running storyboard: %v\n", err)
		os.Exit(1)
	}
}

// newStoryModel builds a live keypad starting from the story's state
func newStoryModel(story tui.Story) tea.Model {
	calc := engine.Restore(story.State)
	return tui.NewKeypadModel(calc, actions.PressButton(calc), tui.KeypadOptions{AltScreen: true})
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateStory {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "q", "esc", "ctrl+c":
				m.state = stateList
				m.activeStory = nil
				m.storyModel = nil
				return m, nil
			}
		}

		var cmd tea.Cmd
		m.storyModel, cmd = m.storyModel.Update(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.stories)-1 {
				m.cursor++
			}
		case "enter":
			m.state = stateStory
			m.activeStory = &m.stories[m.cursor]
			m.storyModel = newStoryModel(*m.activeStory)
			return m, m.storyModel.Init()
		}
	}

	return m, nil
}

func (m model) View() string {
	if m.state == stateStory {
		return m.storyModel.View()
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render("calcit keypad stories"))
	b.WriteString("\n\n")

	for i, story := range m.stories {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Foreground(lipgloss.Color("205")).Bold(true)
		}

		b.WriteString(cursor)
		b.WriteString(style.Render(fmt.Sprintf("[%s] %s", story.Category, story.Name)))
		b.WriteString("\n")
		if i == m.cursor {
			descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginLeft(4)
			b.WriteString(descStyle.Render(story.Description))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("↑/↓: navigate | enter: open | q: back/quit"))

	return b.String()
}
