package prompt

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	default:
		return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
	}
}

func TestConfirmModel_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want decision
		quit bool
	}{
		{"y", answeredYes, true},
		{"Y", answeredYes, true},
		{"n", answeredNo, true},
		{"N", answeredNo, true},
		{"enter", answeredNo, true},
		{"ctrl+c", aborted, true},
		{"esc", aborted, true},
		{"q", aborted, true},
		{"x", undecided, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			updated, cmd := confirmModel{prompt: "Uninstall 2 hooks?"}.Update(keyPress(tt.key))
			if got := updated.(confirmModel).decision; got != tt.want {
				t.Errorf("decision = %v, want %v", got, tt.want)
			}
			if (cmd != nil) != tt.quit {
				t.Errorf("quit = %v, want %v", cmd != nil, tt.quit)
			}
		})
	}
}

func TestConfirmModel_IgnoresNonKeyMessages(t *testing.T) {
	t.Parallel()

	updated, cmd := confirmModel{prompt: "Uninstall?"}.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if updated.(confirmModel).decision != undecided || cmd != nil {
		t.Error("non-key message should leave the prompt open")
	}
	if (confirmModel{}).Init() != nil {
		t.Error("Init() should return nil cmd")
	}
}

func TestConfirmModel_Render(t *testing.T) {
	t.Parallel()

	m := confirmModel{prompt: "Uninstall 2 hooks?"}
	if got := m.render(); got != "Uninstall 2 hooks? [y/N] " {
		t.Errorf("render() = %q, want prompt with default hint", got)
	}
	if m.View().Content == nil {
		t.Error("View().Content should not be nil")
	}

	m.decision = answeredYes
	if got := m.render(); got != "" {
		t.Errorf("render() = %q, want empty once answered", got)
	}
}
