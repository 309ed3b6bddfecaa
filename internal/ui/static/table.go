// Package static renders the tables printed by 'hookman list' and
// 'hookman status'.
package static

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/hookman/internal/apply"
	"github.com/raphi011/hookman/internal/hook"
	"github.com/raphi011/hookman/internal/ui/styles"
)

// RenderTable lays rows out in padded, borderless columns under a bold
// header row. Column widths follow the widest cell. No rows renders nothing.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	cell := lipgloss.NewStyle().PaddingRight(2)
	header := cell.Bold(true)

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	return t.String() + "\n"
}

// CommandHeaders are the columns of CommandRows.
var CommandHeaders = []string{"HOOK", "ID", "COMMAND", "DESCRIPTION"}

// CommandRows returns one row per command, in execution order.
// Multi-line commands are shown by their first line.
func CommandRows(h *hook.Hook) [][]string {
	rows := make([][]string, 0, len(h.Commands))
	for _, c := range h.Commands {
		rows = append(rows, []string{
			h.Type.String(),
			c.ID,
			firstLine(c.Command),
			styles.MutedStyle.Render(c.Description),
		})
	}
	return rows
}

// StatusHeaders are the columns of StatusRows.
var StatusHeaders = []string{"HOOK", "COMMANDS", "STATE", "BACKUP"}

// StatusRows returns one row per hook status.
func StatusRows(statuses []apply.HookStatus) [][]string {
	rows := make([][]string, 0, len(statuses))
	for _, st := range statuses {
		backup := ""
		if st.HasBackup {
			backup = styles.MutedStyle.Render("yes")
		}
		rows = append(rows, []string{
			st.Type.String(),
			strconv.Itoa(st.Commands),
			styles.FormatState(st.State),
			backup,
		})
	}
	return rows
}

func firstLine(s string) string {
	line, rest, multi := strings.Cut(s, "\n")
	if multi && strings.TrimSpace(rest) != "" {
		return line + " …"
	}
	return line
}
