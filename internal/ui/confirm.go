package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel asks a yes/no question and re-prompts until the answer is
// one of y/yes/n/no
type confirmModel struct {
	question  string
	textInput textinput.Model
	accepted  bool
	invalid   bool
}

func newConfirmModel(question string) confirmModel {
	ti := textinput.New()
	ti.Placeholder = "y/n"
	ti.Focus()
	ti.CharLimit = 3
	ti.Width = 10

	return confirmModel{
		question:  question,
		textInput: ti,
	}
}

// Init implements tea.Model
func (m confirmModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			switch strings.ToLower(strings.TrimSpace(m.textInput.Value())) {
			case "y", "yes":
				m.accepted = true
				return m, tea.Quit
			case "n", "no":
				return m, tea.Quit
			default:
				m.invalid = true
				m.textInput.SetValue("")
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m confirmModel) View() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render(m.question))
	b.WriteString("\n")
	if m.invalid {
		b.WriteString(hintStyle.Render(`Please type "y" or "n"`))
		b.WriteString("\n")
	}
	b.WriteString(m.textInput.View())
	b.WriteString("\n")
	return b.String()
}

// Confirm shows the question and blocks until the user answers. Esc and
// ctrl+c count as no.
func Confirm(question string) (bool, error) {
	final, err := tea.NewProgram(newConfirmModel(question)).Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return final.(confirmModel).accepted, nil
}
