package visualization

import (
	"strings"

	"github.com/paramcomp/paramcomp/pkg/grid"
	"github.com/pkg/errors"
)

// ParsedTable is the content recovered from a rendered rst grid table.
type ParsedTable struct {
	Title     string
	RowName   string
	ColName   string
	RowValues []string
	ColValues []string
	Values    map[grid.Cell]string
}

// ParseRstTable reads back the first table rendered by RstWriter.Table.
// Trailing spaces of cell lines and trailing empty lines of cells are not recoverable.
func ParseRstTable(text string) (*ParsedTable, error) {
	t := &ParsedTable{Values: map[grid.Cell]string{}}

	var blocks [][]string
	var boundaries []int
	var current []string
	inGrid := false

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimLeft(raw, " ")
		if !inGrid {
			if strings.HasPrefix(line, ".. table::") {
				t.Title = strings.TrimSpace(strings.TrimPrefix(line, ".. table::"))
			} else if strings.HasPrefix(line, "+") {
				inGrid = true
				boundaries = columnBoundaries(line)
			}
			continue
		}
		if strings.HasPrefix(line, "+") {
			blocks = append(blocks, current)
			current = nil
			continue
		}
		if strings.HasPrefix(line, "|") {
			current = append(current, line)
			continue
		}
		break
	}

	if len(blocks) < 1 || len(boundaries) < 3 {
		return nil, errors.New("no grid table found")
	}

	header := splitBlock(blocks[0], boundaries)
	corner := splitLines(header[0])
	if len(corner) < 2 || !strings.HasPrefix(corner[0], rowHeaderPrefix) || !strings.HasPrefix(corner[1], colHeaderPrefix) {
		return nil, errors.Errorf("malformed header cell %q", header[0])
	}
	t.RowName = strings.TrimPrefix(corner[0], rowHeaderPrefix)
	t.ColName = strings.TrimPrefix(corner[1], colHeaderPrefix)
	t.ColValues = header[1:]

	for _, block := range blocks[1:] {
		cells := splitBlock(block, boundaries)
		row := cells[0]
		t.RowValues = append(t.RowValues, row)
		for j, c := range cells[1:] {
			t.Values[grid.Cell{Row: row, Col: t.ColValues[j]}] = c
		}
	}
	return t, nil
}

// columnBoundaries returns display columns of every '+' in a border line.
func columnBoundaries(border string) []int {
	var out []int
	for i, r := range border {
		if r == '+' {
			out = append(out, i)
		}
	}
	return out
}

// splitBlock cuts the physical lines of one table row into cell contents.
func splitBlock(lines []string, boundaries []int) []string {
	cells := make([][]string, len(boundaries)-1)
	for _, line := range lines {
		for j, part := range cutColumns(line, boundaries) {
			cells[j] = append(cells[j], strings.TrimRight(part, " "))
		}
	}

	out := make([]string, len(cells))
	for j, c := range cells {
		for len(c) > 1 && c[len(c)-1] == "" {
			c = c[:len(c)-1]
		}
		out[j] = strings.Join(c, "\n")
	}
	return out
}

// cutColumns splits a content line at display columns given by boundaries.
func cutColumns(line string, boundaries []int) []string {
	parts := make([]string, len(boundaries)-1)
	col := 0
	cell := -1
	var b strings.Builder
	for _, r := range line {
		if cell+1 < len(boundaries) && col == boundaries[cell+1] {
			if cell >= 0 {
				parts[cell] = b.String()
				b.Reset()
			}
			cell++
			col += cellWidth.RuneWidth(r)
			continue
		}
		b.WriteRune(r)
		col += cellWidth.RuneWidth(r)
	}
	return parts
}
