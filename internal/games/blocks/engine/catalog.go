package engine

import "fmt"

// Kind identifies a piece shape and color class. Zero is an empty cell.
type Kind uint8

// Piece kinds, numbered as the grid stores them.
const (
	KindNone Kind = iota
	KindT
	KindO
	KindS
	KindZ
	KindL
	KindJ
	KindI
)

// KindCount is the number of playable kinds.
const KindCount = 7

// Valid reports whether k names a playable kind.
func (k Kind) Valid() bool {
	return k >= KindT && k <= KindI
}

// String returns the conventional single-letter name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "."
	case KindT:
		return "T"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindI:
		return "I"
	default:
		return "?"
	}
}

// templates is indexed by Kind. Entries are never handed out directly.
var templates = [KindCount + 1]Shape{
	KindT: {
		{0, 1, 0},
		{1, 1, 1},
		{0, 0, 0},
	},
	KindO: {
		{2, 2},
		{2, 2},
	},
	KindS: {
		{0, 3, 3},
		{3, 3, 0},
		{0, 0, 0},
	},
	KindZ: {
		{4, 4, 0},
		{0, 4, 4},
		{0, 0, 0},
	},
	KindL: {
		{0, 0, 5},
		{5, 5, 5},
		{0, 0, 0},
	},
	KindJ: {
		{6, 0, 0},
		{6, 6, 6},
		{0, 0, 0},
	},
	KindI: {
		{0, 0, 0, 0},
		{7, 7, 7, 7},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
}

// Template returns a private copy of the shape for kind k.
func Template(k Kind) (Shape, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, k)
	}
	return templates[k].Clone(), nil
}

// Kinds lists every playable kind in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, KindCount)
	for k := KindT; k <= KindI; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
