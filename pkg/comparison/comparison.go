package comparison

import (
	"github.com/paramcomp/paramcomp/pkg/grid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// MainDimension names the single page produced for a two parameter space.
const MainDimension = "main"

// Comparison computes results for a parameter space and generates comparison pages.
type Comparison struct {
	grid          *grid.Grid
	readableNames map[string]string
}

// New computes results for every assignment of space with reader.
// readableNames maps parameter names to human readable names used in page titles;
// parameters without an entry use their own name.
func New(space *grid.Space, reader grid.Reader, readableNames map[string]string) (*Comparison, error) {
	if space == nil {
		return nil, &grid.InvalidCollaboratorError{Collaborator: "space", Reason: "space is nil"}
	}

	names := make(map[string]string, space.Len())
	for _, name := range space.Names() {
		names[name] = name
	}
	for name, readable := range readableNames {
		if _, err := space.IndexOf(name); err != nil {
			return nil, errors.Wrap(err, "readable name given for unknown parameter")
		}
		if readable != "" {
			names[name] = readable
		}
	}

	g, err := grid.New(space, reader)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("Computed %d results", g.Len())

	return &Comparison{grid: g, readableNames: names}, nil
}

// Grid returns computed results.
func (c *Comparison) Grid() *grid.Grid {
	return c.grid
}

// ReadableName returns the human readable name of a parameter.
func (c *Comparison) ReadableName(name string) string {
	if readable, ok := c.readableNames[name]; ok {
		return readable
	}
	return name
}
