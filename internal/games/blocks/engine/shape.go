package engine

import "strings"

// Direction is a quarter-turn rotation sense.
type Direction int

const (
	CounterClockwise Direction = -1
	Clockwise        Direction = 1
)

// Valid reports whether d is one of the two rotation senses.
func (d Direction) Valid() bool {
	return d == Clockwise || d == CounterClockwise
}

// String returns "cw" or "ccw".
func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	default:
		return "invalid"
	}
}

// Shape is a row-major matrix of kind values. Nonzero cells are occupied.
type Shape [][]Kind

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for y, row := range s {
		out[y] = make([]Kind, len(row))
		copy(out[y], row)
	}
	return out
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Occupied returns the number of nonzero cells.
func (s Shape) Occupied() int {
	n := 0
	for _, row := range s {
		for _, k := range row {
			if k != KindNone {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both shapes have identical dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Rotated returns the shape turned a quarter in direction d.
// The matrix is transposed, then each row is reversed (clockwise) or the
// row order is reversed (counter-clockwise). Rectangular shapes swap
// width and height. Invalid directions return an unrotated copy.
func (s Shape) Rotated(d Direction) Shape {
	if !d.Valid() {
		return s.Clone()
	}

	h, w := s.Height(), s.Width()
	t := make(Shape, w)
	for x := range w {
		t[x] = make([]Kind, h)
		for y := range h {
			t[x][y] = s[y][x]
		}
	}

	if d == Clockwise {
		for _, row := range t {
			for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
	} else {
		for i, j := 0, len(t)-1; i < j; i, j = i+1, j-1 {
			t[i], t[j] = t[j], t[i]
		}
	}
	return t
}

// String renders the shape one row per line, "." for empty cells.
func (s Shape) String() string {
	var sb strings.Builder
	for y, row := range s {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, k := range row {
			sb.WriteString(k.String())
		}
	}
	return sb.String()
}
