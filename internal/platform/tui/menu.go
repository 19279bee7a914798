package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuSelection holds the user's choice from the main menu.
type MenuSelection struct {
	GameID     string // "pacman" or "pacman_pvp"; empty when ShowScores
	ShowScores bool
}

// menuEntries are the selectable rows, top to bottom.
var menuEntries = []struct {
	label  string
	gameID string
	scores bool
}{
	{label: "Classic", gameID: "pacman"},
	{label: "Versus (2nd player drives Blinky)", gameID: "pacman_pvp"},
	{label: "High Scores", scores: true},
	{label: "Quit"},
}

// MenuModel lets users pick a game mode or open the scoreboard.
type MenuModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection *MenuSelection
	quitting  bool
}

// NewMenuModel creates the main menu.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		entry := menuEntries[m.cursor]
		if entry.gameID == "" && !entry.scores {
			m.quitting = true
			return m, tea.Quit
		}
		m.selection = &MenuSelection{GameID: entry.gameID, ShowScores: entry.scores}
	}
	return m, nil
}

// Selected returns the pending selection, or nil.
func (m MenuModel) Selected() *MenuSelection {
	return m.selection
}

// IsQuitting reports whether the user chose to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerText(titleStyle.Render("P A C M A Z E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select mode:", m.width))
	b.WriteString("\n\n")

	for i, entry := range menuEntries {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		b.WriteString(centerText(style.Render(fmt.Sprintf("%s%s", cursor, entry.label)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(hintStyle.Render("up/down: move  enter: select  q: quit"), m.width))
	return b.String()
}

// centerText pads a line so its visible width is centered in the terminal.
func centerText(text string, width int) string {
	visible := lipgloss.Width(text)
	if visible >= width {
		return text
	}
	pad := (width - visible) / 2
	return strings.Repeat(" ", pad) + text
}
