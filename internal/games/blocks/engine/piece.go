package engine

import "fmt"

// Point is a grid coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// Piece is the falling piece: a private shape copy placed on the grid.
// Pos is where the shape's top-left corner sits.
type Piece struct {
	Kind  Kind
	Shape Shape
	Pos   Point
}

// NewPiece creates a piece of kind k at the origin.
func NewPiece(k Kind) (*Piece, error) {
	shape, err := Template(k)
	if err != nil {
		return nil, fmt.Errorf("new piece: %w", err)
	}
	return &Piece{Kind: k, Shape: shape}, nil
}

// Clone returns a deep copy.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	return &Piece{
		Kind:  p.Kind,
		Shape: p.Shape.Clone(),
		Pos:   p.Pos,
	}
}

// Cells returns the grid coordinates of every occupied cell, row by row.
func (p *Piece) Cells() []Point {
	cells := make([]Point, 0, 4)
	p.each(func(col, row int, _ Kind) {
		cells = append(cells, Point{X: col, Y: row})
	})
	return cells
}

// each calls fn for every occupied cell with its grid coordinates.
func (p *Piece) each(fn func(col, row int, k Kind)) {
	for y, line := range p.Shape {
		for x, k := range line {
			if k != KindNone {
				fn(p.Pos.X+x, p.Pos.Y+y, k)
			}
		}
	}
}
