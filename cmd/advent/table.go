package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	tableTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableRowStyle    = lipgloss.NewStyle().Padding(0, 1)
	tableSepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// resultsTable renders static rows with per-column widths.
type resultsTable struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func newResultsTable(title string, headers ...string) *resultsTable {
	return &resultsTable{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

func (t *resultsTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// View renders the table.
func (t *resultsTable) View() string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(tableTitleStyle.Render(t.Title))
		sb.WriteString("\n")
	}

	// Calculate column widths
	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				if w := lipgloss.Width(cell); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}
	// Add padding to widths because lipgloss Width includes padding
	for i := range colWidths {
		colWidths[i] += 2
	}

	for i, h := range t.Headers {
		sb.WriteString(tableHeaderStyle.Width(colWidths[i]).Render(h))
		if i < len(t.Headers)-1 {
			sb.WriteString(tableSepStyle.Render("|"))
		}
	}
	sb.WriteString("\n")

	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(colWidths) {
				break
			}
			sb.WriteString(tableRowStyle.Width(colWidths[i]).Render(cell))
			if i < len(row)-1 && i < len(t.Headers)-1 {
				sb.WriteString(tableSepStyle.Render("|"))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
