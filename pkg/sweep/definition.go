package sweep

import (
	"github.com/paramcomp/paramcomp/pkg/grid"
	"github.com/pkg/errors"
)

const (
	// DefaultRepeat is the number of command runs per assignment.
	DefaultRepeat = 1
	// DefaultPrecision leaves results untouched.
	DefaultPrecision = -1
	// DefaultAddress of cassandra holding snap metrics.
	DefaultAddress = "127.0.0.1"
	// DefaultKeyspace of snap metrics.
	DefaultKeyspace = "snap"
)

// Parameter is a swept parameter with its human readable label.
type Parameter struct {
	Name   string
	Label  string
	Values []string
}

// Command describes results computed by a shell command.
type Command struct {
	Run       string
	Repeat    int
	Precision int
}

// Metrics describes results read from snap metrics of a finished experiment.
type Metrics struct {
	Address    string
	Keyspace   string
	Experiment string
	Metric     string
	Precision  int
	Missing    string
}

// Definition is a decoded sweep file.
// Exactly one of Command and Metrics is set.
type Definition struct {
	Path       string
	Row        string
	Column     string
	Parameters []Parameter
	Command    *Command
	Metrics    *Metrics
}

// Space builds the parameter space in file order.
func (d *Definition) Space() (*grid.Space, error) {
	params := make([]grid.Parameter, 0, len(d.Parameters))
	for _, p := range d.Parameters {
		params = append(params, grid.Parameter{Name: p.Name, Values: append([]string(nil), p.Values...)})
	}
	space, err := grid.NewSpace(params...)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid parameters in %s", d.Path)
	}
	return space, nil
}

// ReadableNames maps parameter names to their labels. Unlabeled parameters are skipped.
func (d *Definition) ReadableNames() map[string]string {
	names := map[string]string{}
	for _, p := range d.Parameters {
		if p.Label != "" {
			names[p.Name] = p.Label
		}
	}
	return names
}

// Axes picks the row and column parameters.
// Non empty arguments win over the file, the first two parameters are used otherwise.
func (d *Definition) Axes(row, col string) (string, string, error) {
	if row == "" {
		row = d.Row
	}
	if col == "" {
		col = d.Column
	}
	if row == "" || col == "" {
		free := []string{}
		for _, p := range d.Parameters {
			if p.Name != row && p.Name != col {
				free = append(free, p.Name)
			}
		}
		if row == "" && len(free) > 0 {
			row, free = free[0], free[1:]
		}
		if col == "" && len(free) > 0 {
			col = free[0]
		}
	}
	if row == "" || col == "" {
		return "", "", errors.Errorf("could not pick row and column from %d parameters", len(d.Parameters))
	}
	return row, col, nil
}

func (d *Definition) validate() error {
	if len(d.Parameters) < 2 {
		return errors.Errorf("at least 2 parameters are required, got %d", len(d.Parameters))
	}
	if _, err := d.Space(); err != nil {
		return err
	}

	switch {
	case d.Command == nil && d.Metrics == nil:
		return errors.New("either command or metrics block is required")
	case d.Command != nil && d.Metrics != nil:
		return errors.New("only one of command and metrics blocks is allowed")
	case d.Command != nil:
		if d.Command.Run == "" {
			return errors.New("command run is empty")
		}
		if d.Command.Repeat < 1 {
			return errors.Errorf("command repeat has to be positive, got %d", d.Command.Repeat)
		}
		if d.Command.Precision < DefaultPrecision {
			return errors.Errorf("command precision has to be %d or more, got %d", DefaultPrecision, d.Command.Precision)
		}
	case d.Metrics != nil:
		if d.Metrics.Experiment == "" {
			return errors.New("metrics experiment is empty")
		}
		if d.Metrics.Precision < DefaultPrecision {
			return errors.Errorf("metrics precision has to be %d or more, got %d", DefaultPrecision, d.Metrics.Precision)
		}
	}
	return nil
}
