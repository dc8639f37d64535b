// Package tui provides terminal rendering for marbles: the static list
// table and the roll animation.
package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dbmrq/marbles/internal/tui/styles"
)

// RenderTable renders headers and rows as a bordered table.
func RenderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.TableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeaderStyle
			}
			return styles.TableCellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	return t.String()
}

// RenderItemTable renders list items as the standard two-column
// (#, Title) table, 1-indexed.
func RenderItemTable(items []string) string {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = []string{strconv.Itoa(i + 1), item}
	}
	return RenderTable([]string{"#", "Title"}, rows)
}
