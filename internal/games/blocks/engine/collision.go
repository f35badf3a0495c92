package engine

import "fmt"

// DropResult is the outcome of moving a piece down one row.
type DropResult int

const (
	// DropIgnored means the command was not applied (paused or game over).
	DropIgnored DropResult = iota
	// DropMoved means the piece descended one row.
	DropMoved
	// DropLanded means the piece could not descend and must be merged.
	DropLanded
)

// String returns a lowercase name for logs.
func (r DropResult) String() string {
	switch r {
	case DropIgnored:
		return "ignored"
	case DropMoved:
		return "moved"
	case DropLanded:
		return "landed"
	default:
		return "unknown"
	}
}

// Collides reports whether any occupied cell of p lies outside the side
// walls, below the floor, or on an occupied grid cell. Cells above the top
// row never collide.
func Collides(g *Grid, p *Piece) bool {
	for y, line := range p.Shape {
		for x, k := range line {
			if k != KindNone && g.blocked(p.Pos.X+x, p.Pos.Y+y) {
				return true
			}
		}
	}
	return false
}

// Move shifts p horizontally by dx columns. If the result collides the
// shift is undone and Move returns false.
func Move(p *Piece, g *Grid, dx int) bool {
	p.Pos.X += dx
	if Collides(g, p) {
		p.Pos.X -= dx
		return false
	}
	return true
}

// SoftDrop moves p down one row, or reports DropLanded and leaves it where
// it was.
func SoftDrop(p *Piece, g *Grid) DropResult {
	p.Pos.Y++
	if Collides(g, p) {
		p.Pos.Y--
		return DropLanded
	}
	return DropMoved
}

// Rotate turns p a quarter in direction dir. When the turned shape collides,
// column offsets of +1, -2, +3, -4, ... are applied in turn (so the piece
// visits x+1, x-1, x+2, x-2, ...) while the offset does not exceed the
// rotated shape's width. If none fits, the rotation and column are undone
// and Rotate returns false.
func Rotate(p *Piece, g *Grid, dir Direction) (bool, error) {
	if !dir.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidDirection, dir)
	}

	origX := p.Pos.X
	p.Shape = p.Shape.Rotated(dir)
	if !Collides(g, p) {
		return true, nil
	}

	for offset := 1; offset <= p.Shape.Width(); offset++ {
		if offset%2 == 1 {
			p.Pos.X += offset
		} else {
			p.Pos.X -= offset
		}
		if !Collides(g, p) {
			return true, nil
		}
	}

	p.Shape = p.Shape.Rotated(-dir)
	p.Pos.X = origX
	return false, nil
}
