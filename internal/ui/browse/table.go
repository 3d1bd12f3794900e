package browse

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"quizcheck/internal/scan"
)

const (
	defaultWidth  = 100
	defaultHeight = 15

	statusWidth = 6
	kindWidth   = 6
)

// tableStyles returns table styles for the browser.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// columnsForWidth splits the remaining width between path and detail.
func columnsForWidth(width int) []table.Column {
	rest := max(width-statusWidth-kindWidth-8, 20)
	pathWidth := rest / 2
	return []table.Column{
		{Title: "Stato", Width: statusWidth},
		{Title: "File", Width: pathWidth},
		{Title: "Tipo", Width: kindWidth},
		{Title: "Dettaglio", Width: rest - pathWidth},
	}
}

// rowsFor converts file results into table rows.
func rowsFor(files []scan.FileResult) []table.Row {
	rows := make([]table.Row, 0, len(files))
	for _, file := range files {
		rows = append(rows, table.Row{
			statusCell(file),
			file.Path,
			string(file.Kind),
			detailCell(file),
		})
	}
	return rows
}

func statusCell(file scan.FileResult) string {
	if file.OK() {
		return "ok"
	}
	return "errore"
}

func detailCell(file scan.FileResult) string {
	if file.OK() {
		return fmt.Sprintf("%d domande", file.Result.Count())
	}
	return file.Err.Error()
}
