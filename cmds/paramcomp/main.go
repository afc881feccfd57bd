package main

import (
	"fmt"
	"io"
	"os"

	"github.com/paramcomp/paramcomp/pkg/cassandra"
	"github.com/paramcomp/paramcomp/pkg/comparison"
	"github.com/paramcomp/paramcomp/pkg/executor"
	"github.com/paramcomp/paramcomp/pkg/grid"
	"github.com/paramcomp/paramcomp/pkg/output"
	"github.com/paramcomp/paramcomp/pkg/reader"
	"github.com/paramcomp/paramcomp/pkg/sweep"
	"github.com/paramcomp/paramcomp/pkg/utils/errutil"
	"github.com/paramcomp/paramcomp/pkg/visualization"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := &config{}
	configure(cfg)

	definition, err := sweep.Load(cfg.Sweep)
	errutil.CheckWithContext(err, "Cannot load sweep file")

	space, err := definition.Space()
	errutil.Check(err)

	row, col, err := definition.Axes(cfg.Row, cfg.Col)
	errutil.CheckWithContext(err, "Cannot choose table axes")

	writer, err := visualization.NewWriter(cfg.Format, cfg.Indent)
	errutil.CheckWithContext(err, "Cannot create page writer")

	resultReader, closeReader, err := newReader(definition)
	errutil.CheckWithContext(err, "Cannot prepare result reader")
	defer closeReader()

	logrus.Infof("Computing %d results of %s", space.Cardinality(), definition.Path)
	c, err := comparison.New(space, resultReader, definition.ReadableNames())
	errutil.CheckWithContext(err, "Cannot compute results")

	if cfg.Print {
		err = preview(os.Stdout, c, writer, definition.Path, row, col)
		errutil.CheckWithContext(err, "Cannot preview tables")
	}

	sink := output.NewDir(cfg.OutputDir)
	err = c.GeneratePages(sink, writer, row, col)
	errutil.CheckWithContext(err, fmt.Sprintf("Cannot generate pages in %q", sink.Path()))
}

// newReader builds the reader described by the sweep. Returned function releases its resources.
func newReader(definition *sweep.Definition) (grid.Reader, func(), error) {
	switch {
	case definition.Command != nil:
		command := definition.Command
		r, err := reader.NewCommand(executor.NewLocal(), command.Run, command.Repeat, command.Precision)
		return r, func() {}, err

	case definition.Metrics != nil:
		metrics := definition.Metrics
		connection, err := cassandra.CreateConfigWithSession(metrics.Address, metrics.Keyspace)
		if err != nil {
			return nil, nil, err
		}
		closeSession := func() {
			if err := connection.CloseSession(); err != nil {
				logrus.Warnf("Cannot close cassandra session: %v", err)
			}
		}
		r, err := reader.NewMetrics(connection, metrics.Experiment, metrics.Metric, metrics.Precision)
		if err != nil {
			closeSession()
			return nil, nil, err
		}
		r.SetMissing(metrics.Missing)
		return r, closeSession, nil
	}
	return nil, nil, errors.New("sweep has neither command nor metrics")
}

// preview draws every table of every page on w.
func preview(w io.Writer, c *comparison.Comparison, writer visualization.Writer, source, row, col string) error {
	pages, err := c.Pages(row, col)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, visualization.NewSweepMetadata(source, c.Grid().Space().Len(), c.Grid().Len()))
	fileNames := []string{}
	for _, page := range pages {
		fileNames = append(fileNames, writer.FileName(page.Dimension))
	}
	visualization.PrintList(w, visualization.NewList(fileNames, "Page: "))

	for _, page := range pages {
		fmt.Fprintf(w, "\n%s\n", page.Title)
		for _, s := range page.Slices() {
			visualization.DrawTable(w, s)
		}
	}
	return nil
}
