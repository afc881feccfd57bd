package visualization

import (
	"bytes"
	"encoding/csv"

	"github.com/paramcomp/paramcomp/pkg/grid"
)

// CSVWriter writes every table as a CSV block preceded by a comment line with its title.
type CSVWriter struct{}

// NewCSVWriter returns a CSV writer.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// FileName implements Writer.
func (w *CSVWriter) FileName(dimension string) string {
	return dimension + ".csv"
}

// Title implements Writer.
func (w *CSVWriter) Title(dimension string) string {
	return "# " + dimension + "\n"
}

// Separator implements Writer.
func (w *CSVWriter) Separator() string {
	return "\n"
}

// Table implements Writer.
func (w *CSVWriter) Table(s *grid.Slice) string {
	buffer := &bytes.Buffer{}
	if title := s.Title(); title != "" {
		buffer.WriteString("# " + title + "\n")
	}

	model := NewTableFromSlice(s)
	out := csv.NewWriter(buffer)
	// Writes to bytes.Buffer cannot fail.
	_ = out.Write(model.headers)
	_ = out.WriteAll(model.data)
	return buffer.String()
}
