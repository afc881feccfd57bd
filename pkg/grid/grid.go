package grid

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Reader computes the result for one full assignment of parameters.
// It is called exactly once per assignment and has to be a pure function of params.
type Reader interface {
	Read(params Params) (interface{}, error)
}

// Grid stores results for every assignment of the parameter space.
// It is read-only once constructed and can be shared between goroutines.
type Grid struct {
	space   *Space
	results []string
}

// New computes results for the whole Cartesian product of the space.
func New(space *Space, reader Reader) (*Grid, error) {
	if space == nil {
		return nil, &InvalidCollaboratorError{Collaborator: "space", Reason: "space is nil"}
	}
	if reader == nil {
		return nil, &InvalidCollaboratorError{Collaborator: "reader", Reason: "reader is nil"}
	}

	g := &Grid{
		space:   space,
		results: make([]string, 0, space.Cardinality()),
	}

	logrus.Debugf("Computing %d results for parameters %s", space.Cardinality(), strings.Join(space.names, ", "))

	var readErr error
	Product(space.values, func(tuple []string) bool {
		a := Assignment(tuple)
		result, err := reader.Read(a.Params(space))
		if err != nil {
			readErr = errors.Wrapf(err, "reading result for (%s) failed", strings.Join(a, ", "))
			return false
		}
		g.results = append(g.results, toText(result))
		return true
	})
	if readErr != nil {
		return nil, readErr
	}

	return g, nil
}

// Space returns the parameter space of the grid.
func (g *Grid) Space() *Space {
	return g.space
}

// Len returns number of stored results.
func (g *Grid) Len() int {
	return len(g.results)
}

// Lookup returns the stored result for an exact assignment.
func (g *Grid) Lookup(a Assignment) (string, error) {
	offset, err := g.space.offset(a)
	if err != nil {
		return "", err
	}
	return g.results[offset], nil
}

// Slice fixes every parameter except rowIdx and colIdx to the values of fixed and
// returns the 2-D cross-section. Values of fixed at rowIdx and colIdx are ignored.
func (g *Grid) Slice(fixed Assignment, rowIdx, colIdx int) (*Slice, error) {
	n := g.space.Len()
	if rowIdx < 0 || rowIdx >= n || colIdx < 0 || colIdx >= n {
		return nil, errors.Errorf("row index %d or column index %d out of range [0, %d)", rowIdx, colIdx, n)
	}
	if rowIdx == colIdx {
		return nil, ErrSameField
	}
	if len(fixed) != n {
		return nil, &AssignmentOutOfDomainError{Assignment: fixed, Reason: "wrong number of values"}
	}

	s := &Slice{
		Names:     g.space.Names(),
		Fixed:     append(Assignment(nil), fixed...),
		RowIndex:  rowIdx,
		RowValues: g.space.ValuesAt(rowIdx),
		ColIndex:  colIdx,
		ColValues: g.space.ValuesAt(colIdx),
		Values:    make(map[Cell]string, len(g.space.values[rowIdx])*len(g.space.values[colIdx])),
	}
	s.Fixed[rowIdx] = ""
	s.Fixed[colIdx] = ""

	params := append(Assignment(nil), fixed...)
	for _, r := range s.RowValues {
		params[rowIdx] = r
		for _, c := range s.ColValues {
			params[colIdx] = c
			v, err := g.Lookup(params)
			if err != nil {
				return nil, err
			}
			s.Values[Cell{Row: r, Col: c}] = v
		}
	}
	return s, nil
}
