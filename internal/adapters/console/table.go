package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/theme"
)

// PrintSessions renders tracked sessions as an aligned table
func PrintSessions(w io.Writer, sessions []domain.Session) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, theme.MutedStyle.Render("No sessions recorded yet"))
		return
	}

	rows := [][]string{{"ID", "STATE", "STARTED", "DURATION", "EVENTS", "EXIT", "COMMAND"}}
	for _, s := range sessions {
		duration := "-"
		if !s.EndedAt.IsZero() {
			duration = s.EndedAt.Sub(s.StartedAt).Round(time.Millisecond).String()
		}
		rows = append(rows, []string{
			s.ID,
			string(s.State),
			s.StartedAt.Local().Format("2006-01-02 15:04:05"),
			duration,
			fmt.Sprint(s.EventCount),
			fmt.Sprint(s.ExitCode),
			s.Command,
		})
	}

	printTable(w, rows, func(row, col int, cell string) string {
		if row > 0 && col == 1 {
			return theme.StateStyle(domain.SessionState(cell)).Render(cell)
		}
		return cell
	})
}

// PrintRecordings renders catalog entries as an aligned table
func PrintRecordings(w io.Writer, recordings []domain.RecordingInfo) {
	if len(recordings) == 0 {
		fmt.Fprintln(w, theme.MutedStyle.Render("No recordings found"))
		return
	}

	rows := [][]string{{"NAME", "VERSION", "MODEL", "TASK", "CREATED", "SIZE"}}
	for _, r := range recordings {
		rows = append(rows, []string{
			r.Name,
			r.Header.ToolVersion,
			r.Header.Model,
			r.Header.Task,
			r.Header.CreatedAt,
			fmt.Sprintf("%d B", r.Size),
		})
	}

	printTable(w, rows, nil)
}

// printTable pads every column to its widest cell. Header cells are styled.
func printTable(w io.Writer, rows [][]string, style func(row, col int, cell string) string) {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	for r, row := range rows {
		cells := make([]string, len(row))
		for c, cell := range row {
			padded := cell + strings.Repeat(" ", widths[c]-lipgloss.Width(cell))
			switch {
			case r == 0:
				padded = theme.HeaderStyle.Render(padded)
			case style != nil:
				padded = style(r, c, cell) + strings.Repeat(" ", widths[c]-lipgloss.Width(cell))
			}
			cells[c] = padded
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}
