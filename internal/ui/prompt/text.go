package prompt

import (
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/hookman/internal/ui/styles"
)

// TextInputResult holds the result of a text input prompt.
type TextInputResult struct {
	Value     string
	Cancelled bool
}

type textInputModel struct {
	input    textinput.Model
	prompt   string
	validate func(string) error
	err      error
	decision decision
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter":
			if m.validate != nil {
				if m.err = m.validate(strings.TrimSpace(m.input.Value())); m.err != nil {
					return m, nil
				}
			}
			m.decision = answeredYes
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.decision = aborted
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textInputModel) render() string {
	if m.decision != undecided {
		return ""
	}
	s := m.prompt + "\n" + m.input.View()
	if m.err != nil {
		s += "\n" + styles.ErrorStyle.Render(m.err.Error())
	}
	return s
}

func (m textInputModel) View() tea.View {
	return tea.NewView(m.render())
}

// TextInput reads one line on stderr. The value is trimmed; enter is
// refused until validate (if non-nil) accepts it.
func TextInput(prompt, placeholder string, validate func(string) error) (TextInputResult, error) {
	p := tea.NewProgram(newTextInputModel(prompt, placeholder, validate), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return TextInputResult{}, err
	}
	m := final.(textInputModel)
	return TextInputResult{
		Value:     strings.TrimSpace(m.input.Value()),
		Cancelled: m.decision == aborted,
	}, nil
}

func newTextInputModel(prompt, placeholder string, validate func(string) error) textInputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 156
	ti.SetWidth(50)

	return textInputModel{input: ti, prompt: prompt, validate: validate}
}
