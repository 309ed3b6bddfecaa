package prompt

import (
	"os"

	tea "charm.land/bubbletea/v2"
)

// ConfirmResult holds the result of a confirmation prompt.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type decision int

const (
	undecided decision = iota
	answeredYes
	answeredNo
	aborted
)

var confirmKeys = map[string]decision{
	"y":      answeredYes,
	"Y":      answeredYes,
	"n":      answeredNo,
	"N":      answeredNo,
	"enter":  answeredNo,
	"ctrl+c": aborted,
	"esc":    aborted,
	"q":      aborted,
}

type confirmModel struct {
	prompt   string
	decision decision
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	d, ok := confirmKeys[key.String()]
	if !ok {
		return m, nil
	}
	m.decision = d
	return m, tea.Quit
}

func (m confirmModel) render() string {
	if m.decision != undecided {
		return ""
	}
	return m.prompt + " [y/N] "
}

func (m confirmModel) View() tea.View {
	return tea.NewView(m.render())
}

// Confirm asks a yes/no question on stderr. Enter answers no.
func Confirm(prompt string) (ConfirmResult, error) {
	p := tea.NewProgram(confirmModel{prompt: prompt}, tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return ConfirmResult{}, err
	}
	d := final.(confirmModel).decision
	return ConfirmResult{
		Confirmed: d == answeredYes,
		Cancelled: d == aborted,
	}, nil
}
