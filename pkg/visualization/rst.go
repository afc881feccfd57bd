package visualization

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/paramcomp/paramcomp/pkg/grid"
	"github.com/pkg/errors"
)

// DefaultIndent is the number of spaces grid tables are indented with in rst directives.
const DefaultIndent = 4

// cellWidth measures display columns. Ambiguous-width runes count as one column
// regardless of the process locale, matching how docutils lays out grid tables.
var cellWidth = &runewidth.Condition{EastAsianWidth: false}

const (
	rowHeaderPrefix = "Row: "
	colHeaderPrefix = "Col: "
	// Header row always reserves two lines for the row and column header strings.
	headerLines = 2
)

// RstWriter writes reStructuredText pages with grid tables.
type RstWriter struct {
	indent int
}

// NewRstWriter returns a writer which indents tables by indent spaces.
func NewRstWriter(indent int) (*RstWriter, error) {
	if indent < 0 {
		return nil, errors.Errorf("indent must not be negative, got %d", indent)
	}
	return &RstWriter{indent: indent}, nil
}

// FileName implements Writer.
func (w *RstWriter) FileName(dimension string) string {
	return dimension + ".rst"
}

// Title implements Writer.
func (w *RstWriter) Title(dimension string) string {
	return dimension + "\n" + strings.Repeat("=", cellWidth.StringWidth(dimension)) + "\n\n"
}

// Separator implements Writer.
func (w *RstWriter) Separator() string {
	return "\n----\n\n"
}

// Table implements Writer.
func (w *RstWriter) Table(s *grid.Slice) string {
	lines := []string{}
	if title := s.Title(); title != "" {
		lines = append(lines, ".. table:: "+title)
	} else {
		lines = append(lines, ".. table::")
	}
	lines = append(lines, "")

	indent := strings.Repeat(" ", w.indent)
	for _, l := range gridLines(s) {
		lines = append(lines, indent+l)
	}
	lines = append(lines, "", "")
	return strings.Join(lines, "\n")
}

// gridLines lays out the bordered table. Row 0 holds column labels, column 0 holds row labels.
func gridLines(s *grid.Slice) []string {
	header := [][]string{{rowHeaderPrefix + s.RowName(), colHeaderPrefix + s.ColName()}}
	for _, c := range s.ColValues {
		header = append(header, splitLines(c))
	}
	rows := [][][]string{header}
	for _, r := range s.RowValues {
		row := [][]string{splitLines(r)}
		for _, c := range s.ColValues {
			row = append(row, splitLines(s.Value(r, c)))
		}
		rows = append(rows, row)
	}

	widths := columnWidths(rows)
	heights := rowHeights(rows)

	border := borderLine(widths)
	out := []string{border}
	for i, row := range rows {
		for l := 0; l < heights[i]; l++ {
			var b strings.Builder
			b.WriteString("|")
			for j, cell := range row {
				line := ""
				if l < len(cell) {
					line = cell[l]
				}
				b.WriteString(pad(line, widths[j]))
				b.WriteString("|")
			}
			out = append(out, b.String())
		}
		out = append(out, border)
	}
	return out
}

func columnWidths(rows [][][]string) []int {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for j, cell := range row {
			for _, line := range cell {
				if w := cellWidth.StringWidth(line); w > widths[j] {
					widths[j] = w
				}
			}
		}
	}
	return widths
}

func rowHeights(rows [][][]string) []int {
	heights := make([]int, len(rows))
	for i, row := range rows {
		for _, cell := range row {
			if len(cell) > heights[i] {
				heights[i] = len(cell)
			}
		}
	}
	if heights[0] < headerLines {
		heights[0] = headerLines
	}
	return heights
}

func borderLine(widths []int) string {
	var b strings.Builder
	b.WriteString("+")
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w))
		b.WriteString("+")
	}
	return b.String()
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-cellWidth.StringWidth(s))
}
