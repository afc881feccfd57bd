package visualization

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/paramcomp/paramcomp/pkg/grid"
)

// MarkdownWriter writes GitHub flavoured markdown pages with pipe tables.
type MarkdownWriter struct{}

// NewMarkdownWriter returns a markdown writer.
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{}
}

// FileName implements Writer.
func (w *MarkdownWriter) FileName(dimension string) string {
	return dimension + ".md"
}

// Title implements Writer.
func (w *MarkdownWriter) Title(dimension string) string {
	return "# " + dimension + "\n\n"
}

// Separator implements Writer.
func (w *MarkdownWriter) Separator() string {
	return "---\n\n"
}

// Table implements Writer.
func (w *MarkdownWriter) Table(s *grid.Slice) string {
	buffer := &bytes.Buffer{}
	if title := s.Title(); title != "" {
		fmt.Fprintf(buffer, "**%s**\n\n", title)
	}

	table := tablewriter.NewWriter(buffer)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	model := NewTableFromSlice(s)
	table.SetHeader(escapeMarkdown(model.headers))
	for _, row := range model.data {
		table.Append(escapeMarkdown(row))
	}
	table.Render()

	buffer.WriteString("\n")
	return buffer.String()
}

func escapeMarkdown(cells []string) []string {
	out := make([]string, len(cells))
	r := strings.NewReplacer("|", `\|`, "\r\n", "<br>", "\n", "<br>")
	for i, c := range cells {
		out[i] = r.Replace(c)
	}
	return out
}
