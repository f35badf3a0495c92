package engine

// Snapshot is a flat copy of a session's observable state for determinism
// checks and debugging. Uses primitive types only for stable comparison.
type Snapshot struct {
	Cols     int
	Rows     int
	Cells    []Kind // row-major, len Cols*Rows
	Kind     Kind
	Shape    []Kind // row-major piece matrix
	ShapeW   int
	PieceX   int
	PieceY   int
	Score    int
	Level    int
	Lines    int
	Interval int
	Accum    int
	Phase    Phase
	Paused   bool
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	cells := make([]Kind, 0, s.cols*s.rows)
	for _, row := range s.grid.cells {
		cells = append(cells, row...)
	}

	var shape []Kind
	for _, row := range s.piece.Shape {
		shape = append(shape, row...)
	}

	return Snapshot{
		Cols:     s.cols,
		Rows:     s.rows,
		Cells:    cells,
		Kind:     s.piece.Kind,
		Shape:    shape,
		ShapeW:   s.piece.Shape.Width(),
		PieceX:   s.piece.Pos.X,
		PieceY:   s.piece.Pos.Y,
		Score:    s.stats.Score,
		Level:    s.stats.Level,
		Lines:    s.stats.Lines,
		Interval: s.interval,
		Accum:    s.acc,
		Phase:    s.phase,
		Paused:   s.paused,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Cols)
	h = h*31 + uint64(snap.Rows)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kind)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShapeW)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PieceX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PieceY)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lines)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Interval) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Accum)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)    //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}

	for _, k := range snap.Cells {
		h = h*31 + uint64(k)
	}
	for _, k := range snap.Shape {
		h = h*31 + uint64(k)
	}

	return h
}
