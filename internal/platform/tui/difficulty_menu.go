package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// DifficultyChoice is one row of the difficulty picker.
type DifficultyChoice struct {
	Name        string
	Start       time.Duration // Interval at the start of a game
	SpeedsUp    bool
	Description string
}

// PickerKeyMap defines the key bindings for the difficulty picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DifficultyModel lets users choose a difficulty before the game starts.
type DifficultyModel struct {
	choices  []DifficultyChoice
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	width    int
	height   int
	chosen   bool
	quitting bool
}

// NewDifficultyModel creates a picker with the cursor on the initial choice.
func NewDifficultyModel(choices []DifficultyChoice, initial, width, height int) DifficultyModel {
	m := DifficultyModel{
		choices: choices,
		help:    help.New(),
		keys:    DefaultPickerKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.table.SetCursor(core.Clamp(initial, 0, max(len(choices)-1, 0)))
	return m
}

// createTable builds the preset table.
func (m *DifficultyModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Difficulty", Width: 10},
		{Title: "Start", Width: 7},
		{Title: "Speed-ups", Width: 9},
		{Title: "", Width: 20},
	}

	rows := make([]table.Row, len(m.choices))
	for i, c := range m.choices {
		speedUps := "no"
		if c.SpeedsUp {
			speedUps = "yes"
		}
		rows[i] = table.Row{c.Name, fmt.Sprintf("%dms", c.Start.Milliseconds()), speedUps, c.Description}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+3), // Rows plus the bordered header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.choices) > 0 {
				m.chosen = true
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m DifficultyModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("S N A K E", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.table.View())))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(centerText(m.help.View(m.keys), m.width)))

	return b.String()
}

// Selected returns the chosen entry, or nil if the user quit.
func (m DifficultyModel) Selected() *DifficultyChoice {
	if !m.chosen || len(m.choices) == 0 {
		return nil
	}
	c := m.choices[m.table.Cursor()]
	return &c
}

// RunDifficultyPicker shows the picker and returns the chosen entry,
// or nil if the user quit.
func RunDifficultyPicker(choices []DifficultyChoice, initial, width, height int) (*DifficultyChoice, error) {
	p := tea.NewProgram(
		NewDifficultyModel(choices, initial, width, height),
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
