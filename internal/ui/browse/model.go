package browse

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizcheck/internal/report"
	"quizcheck/internal/scan"
)

// Model lists checked files and shows the diagnostics of the selected one.
type Model struct {
	summary scan.Summary
	files   []scan.FileResult
	table   table.Model
	detail  []string
	noColor bool
	width   int
}

// Options configures the browse model.
type Options struct {
	NoColor bool
}

// NewModel builds a browse model over a completed tree check.
func NewModel(summary scan.Summary, opts Options) Model {
	files := flatten(summary)
	t := table.New(
		table.WithColumns(columnsForWidth(defaultWidth)),
		table.WithRows(rowsFor(files)),
		table.WithFocused(true),
		table.WithHeight(defaultHeight),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		summary: summary,
		files:   files,
		table:   t,
		noColor: opts.NoColor,
		width:   defaultWidth,
	}
}

// Init has no startup work; the check already ran.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-4, 1))
		m.table.SetColumns(columnsForWidth(typed.Width))
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		if m.detail != nil {
			switch typed.String() {
			case "esc", "enter", "backspace":
				m.detail = nil
			}
			return m, nil
		}
		if typed.String() == "enter" {
			if file, ok := m.Selected(); ok {
				m.detail = report.Describe(file)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Selected returns the file under the cursor.
func (m Model) Selected() (scan.FileResult, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.files) {
		return scan.FileResult{}, false
	}
	return m.files[cursor], true
}

// Detail returns the diagnostics currently shown, or nil in list view.
func (m Model) Detail() []string {
	return m.detail
}

// View renders either the file table or the selected file's diagnostics.
func (m Model) View() string {
	header := stylize(report.SummaryLine(m.summary.Files(), m.summary.Failed()), m.noColor, lipgloss.Color("33"))
	if m.detail != nil {
		body := strings.Join(m.detail, "\n")
		footer := stylize("esc: indietro • q: esci", m.noColor, lipgloss.Color("244"))
		return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
	}
	if len(m.files) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, report.NoFilesLine, "", stylize("q: esci", m.noColor, lipgloss.Color("244")))
	}
	footer := stylize("invio: dettagli • ↑/↓: sposta • q: esci", m.noColor, lipgloss.Color("244"))
	return lipgloss.JoinVertical(lipgloss.Left, header, m.table.View(), footer)
}

func flatten(summary scan.Summary) []scan.FileResult {
	var files []scan.FileResult
	for _, root := range summary.Roots {
		files = append(files, root.Files...)
	}
	return files
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
