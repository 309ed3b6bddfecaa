// Package ui groups hookman's terminal presentation packages:
//
//   - styles: shared lipgloss colors, styles and status symbols
//   - static: non-interactive output such as tables
//   - prompt: interactive bubbletea prompts (confirm, select, text input)
package ui
