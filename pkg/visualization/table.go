package visualization

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/paramcomp/paramcomp/pkg/grid"
)

// Table is a model for data.
type Table struct {
	headers []string
	data    [][]string
}

// NewTable creates new model of data representation.
func NewTable(headers []string, data [][]string) *Table {
	return &Table{
		headers,
		data,
	}
}

// NewTableFromSlice lays a slice out as rows: the first column holds row labels,
// the header holds column labels after a "row \ col" corner cell.
func NewTableFromSlice(s *grid.Slice) *Table {
	headers := append([]string{fmt.Sprintf(`%s \ %s`, s.RowName(), s.ColName())}, s.ColValues...)
	data := make([][]string, 0, len(s.RowValues))
	for _, r := range s.RowValues {
		row := []string{r}
		for _, c := range s.ColValues {
			row = append(row, s.Value(r, c))
		}
		data = append(data, row)
	}
	return NewTable(headers, data)
}

// Headers returns the header row.
func (t *Table) Headers() []string {
	return t.headers
}

// Data returns data rows.
func (t *Table) Data() [][]string {
	return t.data
}

// Draw draws a table with headers and data rows to the terminal style writer.
func (t *Table) Draw(w io.Writer) {
	output := tablewriter.NewWriter(w)
	output.SetHeader(t.headers)
	output.SetAutoFormatHeaders(false)
	for _, v := range t.data {
		output.Append(v)
	}
	output.Render()
}

// DrawTable previews a slice with its title.
func DrawTable(w io.Writer, s *grid.Slice) {
	if title := s.Title(); title != "" {
		fmt.Fprintln(w, title)
	}
	NewTableFromSlice(s).Draw(w)
}
