package comparison

import (
	"github.com/paramcomp/paramcomp/pkg/grid"
	"github.com/paramcomp/paramcomp/pkg/output"
	"github.com/paramcomp/paramcomp/pkg/visualization"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Render returns the fragments of a page: the title, then the tables with a separator
// between consecutive groups. No separator follows the last group.
func Render(writer visualization.Writer, page Page) []string {
	fragments := []string{writer.Title(page.Title)}
	for i, group := range page.Groups {
		for _, s := range group.Slices {
			fragments = append(fragments, writer.Table(s))
		}
		if i != len(page.Groups)-1 {
			fragments = append(fragments, writer.Separator())
		}
	}
	return fragments
}

// GeneratePages renders every page for row and col and hands them to sink.
// All pages are rendered before the first one is written, so invalid requests
// leave the sink untouched.
func (c *Comparison) GeneratePages(sink output.Sink, writer visualization.Writer, row, col string) error {
	if writer == nil {
		return &grid.InvalidCollaboratorError{Collaborator: "writer", Reason: "writer is nil"}
	}
	if sink == nil {
		return &grid.InvalidCollaboratorError{Collaborator: "sink", Reason: "sink is nil"}
	}

	pages, err := c.Pages(row, col)
	if err != nil {
		return err
	}

	rendered := make([][]string, len(pages))
	for i, page := range pages {
		rendered[i] = Render(writer, page)
	}

	for i, page := range pages {
		fileName := writer.FileName(page.Dimension)
		if err := sink.WritePage(fileName, rendered[i]); err != nil {
			return errors.Wrapf(err, "writing page %q failed", page.Dimension)
		}
	}
	logrus.Infof("Generated %d page(s) with rows %q and columns %q", len(pages), row, col)
	return nil
}
