package grid

import (
	"fmt"

	"github.com/pkg/errors"
)

// Parameter is a named axis of the sweep with its ordered candidate values.
type Parameter struct {
	Name   string
	Values []string
}

// NewParameter converts arbitrary values to their text form and returns a Parameter.
func NewParameter(name string, values ...interface{}) Parameter {
	return Parameter{Name: name, Values: Stringify(values...)}
}

// Stringify converts values to text the same way results are converted.
func Stringify(values ...interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, toText(v))
	}
	return out
}

func toText(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Space is an ordered, immutable set of parameters.
type Space struct {
	names     []string
	values    [][]string
	index     map[string]int
	positions []map[string]int
}

// NewSpace validates parameters and returns the space in the given order.
func NewSpace(params ...Parameter) (*Space, error) {
	if len(params) == 0 {
		return nil, errors.New("parameter space needs at least one parameter")
	}

	s := &Space{
		names:     make([]string, 0, len(params)),
		values:    make([][]string, 0, len(params)),
		index:     make(map[string]int, len(params)),
		positions: make([]map[string]int, 0, len(params)),
	}

	for i, p := range params {
		if p.Name == "" {
			return nil, errors.Errorf("parameter #%d has an empty name", i)
		}
		if _, ok := s.index[p.Name]; ok {
			return nil, errors.Errorf("parameter %q is declared twice", p.Name)
		}
		if len(p.Values) == 0 {
			return nil, errors.Errorf("parameter %q has no values", p.Name)
		}

		positions := make(map[string]int, len(p.Values))
		values := make([]string, 0, len(p.Values))
		for j, v := range p.Values {
			if _, ok := positions[v]; ok {
				return nil, errors.Errorf("parameter %q has duplicated value %q", p.Name, v)
			}
			positions[v] = j
			values = append(values, v)
		}

		s.index[p.Name] = i
		s.names = append(s.names, p.Name)
		s.values = append(s.values, values)
		s.positions = append(s.positions, positions)
	}

	return s, nil
}

// Len returns the number of parameters.
func (s *Space) Len() int {
	return len(s.names)
}

// Names returns parameter names in declared order.
func (s *Space) Names() []string {
	return append([]string(nil), s.names...)
}

// IndexOf returns position of the parameter in declared order.
func (s *Space) IndexOf(name string) (int, error) {
	i, ok := s.index[name]
	if !ok {
		return -1, &FieldNotFoundError{Field: name}
	}
	return i, nil
}

// Values returns the candidate values of the named parameter.
func (s *Space) Values(name string) ([]string, error) {
	i, err := s.IndexOf(name)
	if err != nil {
		return nil, err
	}
	return s.ValuesAt(i), nil
}

// ValuesAt returns the candidate values of the i-th parameter.
func (s *Space) ValuesAt(i int) []string {
	return append([]string(nil), s.values[i]...)
}

// Cardinality is the number of assignments in the Cartesian product.
func (s *Space) Cardinality() int {
	n := 1
	for _, v := range s.values {
		n *= len(v)
	}
	return n
}

// offset returns the position of the assignment in the Cartesian product order.
func (s *Space) offset(a Assignment) (int, error) {
	if len(a) != len(s.names) {
		return 0, &AssignmentOutOfDomainError{
			Assignment: a,
			Reason:     fmt.Sprintf("expected %d values, got %d", len(s.names), len(a)),
		}
	}

	offset := 0
	for i, v := range a {
		pos, ok := s.positions[i][v]
		if !ok {
			return 0, &AssignmentOutOfDomainError{
				Assignment: a,
				Reason:     fmt.Sprintf("%q is not a value of %q", v, s.names[i]),
			}
		}
		offset = offset*len(s.values[i]) + pos
	}
	return offset, nil
}

// Contains reports whether the assignment is a member of the Cartesian product.
func (s *Space) Contains(a Assignment) bool {
	_, err := s.offset(a)
	return err == nil
}
