package grid

import (
	"fmt"
	"sort"
	"strings"
)

// Cell addresses a value in a Slice by its row and column labels.
type Cell struct {
	Row string
	Col string
}

// Slice is a 2-D cross-section of the grid: every parameter other than the row
// and column ones is fixed.
type Slice struct {
	// Names of all parameters in declared order.
	Names []string
	// Fixed values for all parameters; entries at RowIndex and ColIndex are empty.
	Fixed     Assignment
	RowIndex  int
	RowValues []string
	ColIndex  int
	ColValues []string
	Values    map[Cell]string
}

// RowName returns the name of the row parameter.
func (s *Slice) RowName() string {
	return s.Names[s.RowIndex]
}

// ColName returns the name of the column parameter.
func (s *Slice) ColName() string {
	return s.Names[s.ColIndex]
}

// Value returns the cell for given row and column labels.
func (s *Slice) Value(row, col string) string {
	return s.Values[Cell{Row: row, Col: col}]
}

// FixedPairs returns "name = value" for every fixed parameter, sorted by the whole pair.
// The order intentionally does not depend on declared order.
func (s *Slice) FixedPairs() []string {
	pairs := []string{}
	for i, name := range s.Names {
		if i == s.RowIndex || i == s.ColIndex {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s = %s", name, s.Fixed[i]))
	}
	sort.Strings(pairs)
	return pairs
}

// Title describes the fixed parameters of the slice. It is empty for 2 parameters.
func (s *Slice) Title() string {
	if len(s.Names) <= 2 {
		return ""
	}
	return strings.Join(s.FixedPairs(), ", ")
}
