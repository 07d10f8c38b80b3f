// Package components holds reusable CLI output blocks.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/bnema/cronkeeper/internal/adapters/in/cli/ui/styles"
)

// Column is a table column. A zero Width leaves the column unbounded.
type Column struct {
	Title string
	Width int
}

// Table renders rows under styled headers.
type Table struct {
	columns     []Column
	rows        [][]string
	border      lipgloss.Border
	borderStyle lipgloss.Style
	headerStyle lipgloss.Style
	cellStyle   lipgloss.Style
}

// TableOption configures a Table.
type TableOption func(*Table)

// NewTable creates a table using the CLI theme.
func NewTable(opts ...TableOption) *Table {
	t := &Table{
		border:      lipgloss.RoundedBorder(),
		borderStyle: styles.Theme.TableBorder,
		headerStyle: styles.Theme.TableHeader,
		cellStyle:   styles.Theme.TableCell,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// WithColumns sets the columns.
func WithColumns(cols ...Column) TableOption {
	return func(t *Table) { t.columns = cols }
}

// WithRows sets the rows.
func WithRows(rows [][]string) TableOption {
	return func(t *Table) { t.rows = rows }
}

// WithPlainStyles drops colors and padding, mostly for tests.
func WithPlainStyles() TableOption {
	return func(t *Table) {
		t.headerStyle = lipgloss.NewStyle()
		t.cellStyle = lipgloss.NewStyle()
		t.borderStyle = lipgloss.NewStyle()
	}
}

// Render returns the table, or "" without columns.
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}

	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = truncateCell(col.Title, col.Width)
	}

	rows := make([][]string, len(t.rows))
	for r, row := range t.rows {
		rows[r] = make([]string, len(row))
		for c, cell := range row {
			rows[r][c] = truncateCell(cell, t.width(c))
		}
	}

	return table.New().
		Border(t.border).
		BorderStyle(t.borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := t.cellStyle
			if row == table.HeaderRow {
				style = t.headerStyle
			}
			if w := t.width(col); w > 0 {
				return style.Width(w).MaxWidth(w)
			}
			return style
		}).
		String()
}

func (t *Table) width(col int) int {
	if col < 0 || col >= len(t.columns) {
		return 0
	}
	return t.columns[col].Width
}

// truncateCell shortens value to maxWidth display cells, ending with "...".
// Styled values are left alone.
func truncateCell(value string, maxWidth int) string {
	if strings.Contains(value, "\x1b[") {
		return value
	}
	if maxWidth <= 0 || runewidth.StringWidth(value) <= maxWidth {
		return value
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	target := maxWidth - 3
	var b strings.Builder
	width := 0
	g := uniseg.NewGraphemes(value)
	for g.Next() {
		w := runewidth.StringWidth(g.Str())
		if width+w > target {
			break
		}
		b.WriteString(g.Str())
		width += w
	}

	if b.Len() == 0 {
		return strings.Repeat(".", maxWidth)
	}
	return b.String() + "..."
}

// SnapshotTable lists snapshots, one per row.
func SnapshotTable(rows [][]string, opts ...TableOption) string {
	opts = append([]TableOption{
		WithColumns(
			Column{Title: "ID"},
			Column{Title: "User"},
			Column{Title: "Reason"},
			Column{Title: "Taken"},
			Column{Title: "Lines"},
		),
		WithRows(rows),
	}, opts...)
	return NewTable(opts...).Render()
}

// FieldTable shows the schedule fields of a job. Long commands are cut.
func FieldTable(rows [][]string, opts ...TableOption) string {
	opts = append([]TableOption{
		WithColumns(
			Column{Title: "Field"},
			Column{Title: "Value", Width: 60},
		),
		WithRows(rows),
	}, opts...)
	return NewTable(opts...).Render()
}
