package engine

import (
	"fmt"
	"time"
)

// Default playfield size.
const (
	DefaultCols = 10
	DefaultRows = 20
)

// Minimum playfield size: the I piece needs four columns to spawn.
const (
	MinCols = 4
	MinRows = 4
)

// Phase is the session's position in the spawn/fall/land cycle.
// Landing happens inside a single call and is never observed.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseGameOver
)

// String returns a lowercase name for logs.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome reports whether a player command took effect.
type Outcome int

const (
	Rejected Outcome = iota
	Accepted
)

// String returns "accepted" or "rejected".
func (o Outcome) String() string {
	if o == Accepted {
		return "accepted"
	}
	return "rejected"
}

func outcomeOf(ok bool) Outcome {
	if ok {
		return Accepted
	}
	return Rejected
}

// Options configure a new session. Zero values pick the defaults.
type Options struct {
	Cols    int
	Rows    int
	Gravity Gravity
	Source  KindSource
	OnEvent func(Event)
}

// Session owns one game: the grid, the falling piece, the totals and the
// drop timer. It is not safe for concurrent use.
type Session struct {
	cols    int
	rows    int
	gravity Gravity
	source  KindSource
	onEvent func(Event)

	grid     *Grid
	piece    *Piece
	stats    Stats
	interval int // current drop interval (ms)
	acc      int // time accumulated toward the next forced drop (ms)
	phase    Phase
	paused   bool
}

// NewSession validates opts, then starts a game with a first piece spawned.
func NewSession(opts Options) (*Session, error) {
	if opts.Cols == 0 {
		opts.Cols = DefaultCols
	}
	if opts.Rows == 0 {
		opts.Rows = DefaultRows
	}
	if opts.Gravity == (Gravity{}) {
		opts.Gravity = DefaultGravity()
	}
	if opts.Source == nil {
		opts.Source = NewUniformSource(time.Now().UnixNano())
	}

	if opts.Cols < MinCols || opts.Rows < MinRows {
		return nil, fmt.Errorf("%w: %dx%d playfield, need at least %dx%d",
			ErrInvalidBoard, opts.Cols, opts.Rows, MinCols, MinRows)
	}
	if err := opts.Gravity.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cols:    opts.Cols,
		rows:    opts.Rows,
		gravity: opts.Gravity,
		source:  opts.Source,
		onEvent: opts.OnEvent,
	}
	s.Reset()
	return s, nil
}

// Reset clears the grid and totals and spawns a fresh piece.
func (s *Session) Reset() {
	s.grid = NewGrid(s.cols, s.rows)
	s.stats = newStats()
	s.interval = s.gravity.Interval(s.stats.Level)
	s.acc = 0
	s.paused = false
	s.spawn()
}

// Tick advances the drop timer by elapsedMs. Once the accumulated time
// exceeds the drop interval the piece is forced down one row and the timer
// restarts. Time passed while paused or after game over is discarded.
// Tick reports whether the piece moved or locked.
func (s *Session) Tick(elapsedMs int) bool {
	if s.paused || s.phase != PhaseFalling {
		return false
	}
	if elapsedMs > 0 {
		s.acc += elapsedMs
	}
	if s.acc <= s.interval {
		return false
	}
	s.drop()
	return true
}

// MoveLeft shifts the piece one column left.
func (s *Session) MoveLeft() Outcome {
	if !s.controllable() {
		return Rejected
	}
	return outcomeOf(Move(s.piece, s.grid, -1))
}

// MoveRight shifts the piece one column right.
func (s *Session) MoveRight() Outcome {
	if !s.controllable() {
		return Rejected
	}
	return outcomeOf(Move(s.piece, s.grid, 1))
}

// SoftDropOnce moves the piece down one row, locking it if it cannot
// descend. The drop timer restarts either way.
func (s *Session) SoftDropOnce() DropResult {
	if !s.controllable() {
		return DropIgnored
	}
	return s.drop()
}

// HardDrop drops the piece until it locks and returns how many rows it fell.
func (s *Session) HardDrop() (int, Outcome) {
	if !s.controllable() {
		return 0, Rejected
	}
	fell := 0
	for SoftDrop(s.piece, s.grid) == DropMoved {
		fell++
	}
	s.acc = 0
	s.land()
	return fell, Accepted
}

// Rotate turns the piece a quarter with wall kicks. An invalid direction
// is an error whatever the session state.
func (s *Session) Rotate(dir Direction) (Outcome, error) {
	if !dir.Valid() {
		return Rejected, fmt.Errorf("rotate: %w: %d", ErrInvalidDirection, dir)
	}
	if !s.controllable() {
		return Rejected, nil
	}
	ok, err := Rotate(s.piece, s.grid, dir)
	if err != nil {
		return Rejected, fmt.Errorf("rotate: %w", err)
	}
	return outcomeOf(ok), nil
}

// TogglePause flips the pause flag and returns the new value.
// It has no effect once the game is over.
func (s *Session) TogglePause() bool {
	if s.phase == PhaseGameOver {
		return s.paused
	}
	s.paused = !s.paused
	return s.paused
}

// Grid returns a copy of the playfield.
func (s *Session) Grid() *Grid {
	return s.grid.Clone()
}

// Piece returns a copy of the falling piece. After game over it is the
// piece that failed to spawn.
func (s *Session) Piece() *Piece {
	return s.piece.Clone()
}

// Stats returns the running totals.
func (s *Session) Stats() Stats {
	return s.stats
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// GameOver reports whether the board is blocked.
func (s *Session) GameOver() bool {
	return s.phase == PhaseGameOver
}

// Paused reports whether ticks and commands are suspended.
func (s *Session) Paused() bool {
	return s.paused
}

// DropInterval returns the current forced drop interval in milliseconds.
func (s *Session) DropInterval() int {
	return s.interval
}

// Cols returns the playfield width.
func (s *Session) Cols() int {
	return s.cols
}

// Rows returns the playfield height.
func (s *Session) Rows() int {
	return s.rows
}

func (s *Session) controllable() bool {
	return !s.paused && s.phase == PhaseFalling
}

// drop performs one descent step and restarts the timer.
func (s *Session) drop() DropResult {
	s.acc = 0
	if SoftDrop(s.piece, s.grid) == DropMoved {
		return DropMoved
	}
	s.land()
	return DropLanded
}

// land merges the piece, sweeps, updates totals and spawns the next piece.
func (s *Session) land() {
	s.grid.Merge(s.piece)
	s.emit(Event{Type: EventLocked, Kind: s.piece.Kind, Stats: s.stats})

	if n := s.grid.Sweep(); n > 0 {
		levelUp := s.stats.apply(n)
		s.interval = s.gravity.Interval(s.stats.Level)
		s.emit(Event{Type: EventLinesCleared, Kind: s.piece.Kind, Lines: n, Stats: s.stats})
		if levelUp {
			s.emit(Event{Type: EventLevelUp, Stats: s.stats})
		}
	}

	s.spawn()
}

// spawn places a new piece centered on the top row. A piece that collides
// on arrival ends the game.
func (s *Session) spawn() {
	s.phase = PhaseSpawning

	k := s.source.NextKind()
	piece, err := NewPiece(k)
	if err != nil {
		panic(fmt.Sprintf("engine: kind source returned %d", k))
	}
	piece.Pos = Point{X: s.cols/2 - piece.Shape.Width()/2, Y: 0}
	s.piece = piece

	if Collides(s.grid, piece) {
		s.phase = PhaseGameOver
		s.emit(Event{Type: EventGameOver, Kind: k, Stats: s.stats})
		return
	}
	s.phase = PhaseFalling
	s.emit(Event{Type: EventSpawned, Kind: k, Stats: s.stats})
}

func (s *Session) emit(e Event) {
	if s.onEvent != nil {
		s.onEvent(e)
	}
}
