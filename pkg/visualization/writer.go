package visualization

import (
	"strings"

	"github.com/paramcomp/paramcomp/pkg/grid"
	"github.com/pkg/errors"
)

// Writer defines how pages and tables are encoded in a specific output format.
type Writer interface {
	// FileName returns the file name for the page of given comparison dimension.
	FileName(dimension string) string
	// Title returns the page title for given comparison dimension.
	Title(dimension string) string
	// Table renders one 2-D slice of results.
	Table(slice *grid.Slice) string
	// Separator is placed between groups of tables in a page.
	Separator() string
}

// Supported output formats.
const (
	FormatRst      = "rst"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

// Formats lists all names accepted by NewWriter.
var Formats = []string{FormatRst, FormatMarkdown, FormatCSV}

// NewWriter returns the writer for a format name. Indent is used by the rst writer only.
func NewWriter(format string, indent int) (Writer, error) {
	switch strings.ToLower(format) {
	case FormatRst, "":
		w, err := NewRstWriter(indent)
		if err != nil {
			return nil, err
		}
		return w, nil
	case FormatMarkdown, "md":
		return NewMarkdownWriter(), nil
	case FormatCSV:
		return NewCSVWriter(), nil
	}
	return nil, errors.Errorf("unknown output format %q, supported formats: %s", format, strings.Join(Formats, ", "))
}

// splitLines splits cell content into physical lines. Empty content is one empty line.
func splitLines(s string) []string {
	return strings.Split(strings.Replace(s, "\r\n", "\n", -1), "\n")
}
