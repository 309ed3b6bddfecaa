package prompt

import (
	"os"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/raphi011/hookman/internal/ui/styles"
)

// Option is one choice of a Select prompt. Detail is shown muted next to
// the value and is matched by the filter too.
type Option struct {
	Value  string
	Detail string
}

// SelectResult holds the result of a selection prompt.
type SelectResult struct {
	Value     string
	Index     int
	Cancelled bool
}

type optionItem struct {
	Option
	index int
}

func (i optionItem) Title() string       { return i.Value }
func (i optionItem) Description() string { return i.Detail }
func (i optionItem) FilterValue() string { return i.Value + " " + i.Detail }

type selectModel struct {
	list     list.Model
	decision decision
	selected int
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		// While filtering, keys edit the filter; esc is handled by the list.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(optionItem); ok {
				m.selected = item.index
			}
			m.decision = answeredYes
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.decision = aborted
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) render() string {
	if m.decision != undecided {
		return ""
	}
	return m.list.View()
}

func (m selectModel) View() tea.View {
	return tea.NewView(m.render())
}

// Select shows a filterable list on stderr and returns the chosen option.
// An empty option list yields a cancelled result without prompting.
func Select(prompt string, options []Option) (SelectResult, error) {
	if len(options) == 0 {
		return SelectResult{Cancelled: true}, nil
	}

	p := tea.NewProgram(newSelectModel(prompt, options), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return SelectResult{}, err
	}
	m := final.(selectModel)

	if m.decision != answeredYes || m.selected < 0 || m.selected >= len(options) {
		return SelectResult{Cancelled: true}, nil
	}
	return SelectResult{
		Value: options[m.selected].Value,
		Index: m.selected,
	}, nil
}

func newSelectModel(prompt string, options []Option) selectModel {
	items := make([]list.Item, len(options))
	hasDetail := false
	for i, opt := range options {
		items[i] = optionItem{Option: opt, index: i}
		hasDetail = hasDetail || opt.Detail != ""
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = hasDetail
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().Foreground(styles.Accent).Bold(true)
	delegate.Styles.NormalDesc = styles.MutedStyle
	delegate.Styles.SelectedDesc = styles.MutedStyle

	height := len(options) + 6
	if hasDetail {
		height = 2*len(options) + 6
	}

	l := list.New(items, delegate, 60, min(height, 20))
	l.Title = prompt
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	return selectModel{list: l, selected: -1}
}
