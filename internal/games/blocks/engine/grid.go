package engine

import "strings"

// Grid is the playfield: a fixed cols×rows matrix of kinds, stored as an
// ordered slice of rows with row 0 at the top. Only Merge and Sweep write
// to it once play starts.
type Grid struct {
	cols  int
	rows  int
	cells [][]Kind
}

// NewGrid creates an empty grid.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([][]Kind, rows),
	}
	for y := range g.cells {
		g.cells[y] = make([]Kind, cols)
	}
	return g
}

// Cols returns the grid width.
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the grid height.
func (g *Grid) Rows() int {
	return g.rows
}

// InBounds reports whether (col, row) is a real cell.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// At returns the cell at (col, row), or KindNone outside the grid.
func (g *Grid) At(col, row int) Kind {
	if !g.InBounds(col, row) {
		return KindNone
	}
	return g.cells[row][col]
}

// blocked reports whether a piece cell may not occupy (col, row).
// Side walls and the floor block; the space above row 0 is open.
func (g *Grid) blocked(col, row int) bool {
	if col < 0 || col >= g.cols || row >= g.rows {
		return true
	}
	if row < 0 {
		return false
	}
	return g.cells[row][col] != KindNone
}

// set writes one cell. Used by Merge and by test fixtures.
func (g *Grid) set(col, row int, k Kind) {
	if g.InBounds(col, row) {
		g.cells[row][col] = k
	}
}

// Merge writes the piece's occupied cells into the grid. It does not check
// for collisions; cells above the top edge are dropped.
func (g *Grid) Merge(p *Piece) {
	p.each(g.set)
}

// Sweep removes every full row and returns how many were removed.
// Rows are scanned bottom to top, row 0 included. After a removal the rows
// above shift down one and an empty row enters at the top, so the same
// index is checked again.
func (g *Grid) Sweep() int {
	cleared := 0
	for y := g.rows - 1; y >= 0; {
		if !g.rowFull(y) {
			y--
			continue
		}
		g.removeRow(y)
		cleared++
	}
	return cleared
}

// rowFull reports whether every cell in row y is occupied.
func (g *Grid) rowFull(y int) bool {
	for _, k := range g.cells[y] {
		if k == KindNone {
			return false
		}
	}
	return true
}

// removeRow deletes row y and inserts a cleared row at the front.
// The removed row's backing array is reused for the new top row.
func (g *Grid) removeRow(y int) {
	row := g.cells[y]
	copy(g.cells[1:y+1], g.cells[:y])
	clear(row)
	g.cells[0] = row
}

// Occupied returns the number of nonzero cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, row := range g.cells {
		for _, k := range row {
			if k != KindNone {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		cols:  g.cols,
		rows:  g.rows,
		cells: make([][]Kind, g.rows),
	}
	for y, row := range g.cells {
		out.cells[y] = make([]Kind, g.cols)
		copy(out.cells[y], row)
	}
	return out
}

// Matrix returns a copy of the cells as rows.
func (g *Grid) Matrix() [][]Kind {
	return g.Clone().cells
}

// String renders the grid one row per line, "." for empty cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.cols + 1) * g.rows)
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, k := range row {
			sb.WriteString(k.String())
		}
	}
	return sb.String()
}
