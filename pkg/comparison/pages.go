package comparison

import (
	"github.com/paramcomp/paramcomp/pkg/grid"
	"github.com/sirupsen/logrus"
)

// Group holds the slices of one combination of the subgrid, one slice per value
// of the page dimension.
type Group struct {
	Slices []*grid.Slice
}

// Page is the set of slices for one comparison dimension.
type Page struct {
	// Dimension is the name of the compared parameter, MainDimension for two parameter spaces.
	Dimension string
	// Title is the readable name of the dimension.
	Title  string
	Groups []Group
}

// Slices returns all slices of the page in order.
func (p Page) Slices() []*grid.Slice {
	out := []*grid.Slice{}
	for _, g := range p.Groups {
		out = append(out, g.Slices...)
	}
	return out
}

// Pages slices the grid into pages of 2-D tables with row and col parameters as axes.
// Both names are validated before any slicing is done.
func (c *Comparison) Pages(row, col string) ([]Page, error) {
	space := c.grid.Space()
	rowIdx, err := space.IndexOf(row)
	if err != nil {
		return nil, err
	}
	colIdx, err := space.IndexOf(col)
	if err != nil {
		return nil, err
	}
	if rowIdx == colIdx {
		return nil, grid.ErrSameField
	}

	names := space.Names()
	if len(names) == 2 {
		s, err := c.grid.Slice(make(grid.Assignment, 2), rowIdx, colIdx)
		if err != nil {
			return nil, err
		}
		return []Page{{
			Dimension: MainDimension,
			Title:     MainDimension,
			Groups:    []Group{{Slices: []*grid.Slice{s}}},
		}}, nil
	}

	pages := []Page{}
	for i, name := range names {
		if i == rowIdx || i == colIdx {
			continue
		}
		page, err := c.page(i, rowIdx, colIdx)
		if err != nil {
			return nil, err
		}
		logrus.Debugf("Page %q: %d groups", name, len(page.Groups))
		pages = append(pages, page)
	}
	return pages, nil
}

// page iterates every combination of the subgrid (all parameters except page, row
// and column ones) and, inside it, every value of the page parameter.
func (c *Comparison) page(pageIdx, rowIdx, colIdx int) (Page, error) {
	space := c.grid.Space()
	name := space.Names()[pageIdx]

	var subgrid []int
	var lists [][]string
	for i := 0; i < space.Len(); i++ {
		if i == pageIdx || i == rowIdx || i == colIdx {
			continue
		}
		subgrid = append(subgrid, i)
		lists = append(lists, space.ValuesAt(i))
	}

	page := Page{Dimension: name, Title: c.ReadableName(name)}
	var sliceErr error
	grid.Product(lists, func(tuple []string) bool {
		fixed := make(grid.Assignment, space.Len())
		for j, idx := range subgrid {
			fixed[idx] = tuple[j]
		}

		group := Group{}
		for _, v := range space.ValuesAt(pageIdx) {
			fixed[pageIdx] = v
			s, err := c.grid.Slice(fixed, rowIdx, colIdx)
			if err != nil {
				sliceErr = err
				return false
			}
			group.Slices = append(group.Slices, s)
		}
		page.Groups = append(page.Groups, group)
		return true
	})
	if sliceErr != nil {
		return Page{}, sliceErr
	}
	return page, nil
}
