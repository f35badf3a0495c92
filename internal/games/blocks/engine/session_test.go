package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, log *eventLog, kinds ...Kind) *Session {
	t.Helper()
	opts := Options{Source: NewSequenceSource(kinds...)}
	if log != nil {
		opts.OnEvent = log.record
	}
	s, err := NewSession(opts)
	require.NoError(t, err)
	return s
}

func TestNewSessionDefaults(t *testing.T) {
	s := newTestSession(t, nil, KindT)

	assert.Equal(t, DefaultCols, s.Cols())
	assert.Equal(t, DefaultRows, s.Rows())
	assert.Equal(t, Stats{Score: 0, Level: 1, Lines: 0}, s.Stats())
	assert.Equal(t, 1000, s.DropInterval())
	assert.Equal(t, PhaseFalling, s.Phase())
	assert.False(t, s.Paused())
	assert.Zero(t, s.Grid().Occupied())
}

func TestNewSessionInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"too narrow", Options{Cols: 3, Rows: 20}},
		{"too short", Options{Cols: 10, Rows: 2}},
		{"negative width", Options{Cols: -10, Rows: 20}},
		{"zero base interval", Options{Gravity: Gravity{StepMs: 50, MinMs: 100}}},
		{"zero floor", Options{Gravity: Gravity{BaseMs: 1000, StepMs: 50}}},
		{"negative step", Options{Gravity: Gravity{BaseMs: 1000, StepMs: -1, MinMs: 100}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSession(tt.opts)
			assert.ErrorIs(t, err, ErrInvalidBoard)
		})
	}
}

func TestSpawnPosition(t *testing.T) {
	tests := []struct {
		kind Kind
		cols int
		want Point
	}{
		{KindO, 10, Point{X: 4, Y: 0}},
		{KindT, 10, Point{X: 4, Y: 0}},
		{KindI, 10, Point{X: 3, Y: 0}},
		{KindI, 4, Point{X: 0, Y: 0}},
		{KindT, 7, Point{X: 2, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			s, err := NewSession(Options{Cols: tt.cols, Rows: 20, Source: NewSequenceSource(tt.kind)})
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Piece().Pos)
			assert.Equal(t, tt.kind, s.Piece().Kind)
		})
	}
}

func TestSoftDropUntilLanded(t *testing.T) {
	log := &eventLog{}
	s := newTestSession(t, log, KindO)

	moved := 0
	for s.SoftDropOnce() == DropMoved {
		moved++
	}
	assert.Equal(t, 18, moved)

	g := s.Grid()
	for _, c := range []Point{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		assert.Equal(t, KindO, g.At(c.X, c.Y), "cell %v", c)
	}
	assert.Equal(t, 4, g.Occupied())
	assert.Equal(t, Stats{Score: 0, Level: 1, Lines: 0}, s.Stats())
	assert.Equal(t, []EventType{EventSpawned, EventLocked, EventSpawned}, log.types())
	assert.Equal(t, Point{X: 4, Y: 0}, s.Piece().Pos, "next piece spawned")
}

func TestMoveStopsAtWalls(t *testing.T) {
	s := newTestSession(t, nil, KindO)

	for range 4 {
		assert.Equal(t, Accepted, s.MoveLeft())
	}
	assert.Equal(t, Rejected, s.MoveLeft())
	assert.Equal(t, 0, s.Piece().Pos.X)

	for range 8 {
		assert.Equal(t, Accepted, s.MoveRight())
	}
	assert.Equal(t, Rejected, s.MoveRight())
	assert.Equal(t, 8, s.Piece().Pos.X)
}

func TestHardDropSingleLine(t *testing.T) {
	log := &eventLog{}
	s := newTestSession(t, log, KindI)
	fillRow(s.grid, 19, 3, 4, 5, 6)
	s.grid.set(0, 18, KindT)

	fell, out := s.HardDrop()
	assert.Equal(t, Accepted, out)
	assert.Equal(t, 18, fell)

	assert.Equal(t, Stats{Score: 10, Level: 1, Lines: 1}, s.Stats())
	g := s.Grid()
	assert.Equal(t, 1, g.Occupied())
	assert.Equal(t, KindT, g.At(0, 19), "rows above shift down")

	assert.Equal(t, []EventType{EventSpawned, EventLocked, EventLinesCleared, EventSpawned}, log.types())
	assert.Equal(t, 1, log.events[2].Lines)
	assert.Equal(t, 10, log.events[2].Stats.Score)
}

func TestHardDropFourLines(t *testing.T) {
	s := newTestSession(t, nil, KindI)
	for y := 16; y < 20; y++ {
		fillRow(s.grid, y, 9)
	}

	out, err := s.Rotate(Clockwise)
	require.NoError(t, err)
	require.Equal(t, Accepted, out)
	for range 4 {
		require.Equal(t, Accepted, s.MoveRight())
	}
	require.Equal(t, Rejected, s.MoveRight())

	_, out = s.HardDrop()
	assert.Equal(t, Accepted, out)
	assert.Equal(t, Stats{Score: 160, Level: 1, Lines: 4}, s.Stats())
	assert.Zero(t, s.Grid().Occupied())
}

func TestScoreIsQuadratic(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{0, 0},
		{1, 10},
		{2, 40},
		{3, 90},
		{4, 160},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreFor(tt.lines), "lines=%d", tt.lines)
	}
}

func TestLevelUp(t *testing.T) {
	log := &eventLog{}
	s := newTestSession(t, log, KindI)
	s.stats.Lines = 9
	fillRow(s.grid, 19, 3, 4, 5, 6)

	s.HardDrop()

	assert.Equal(t, Stats{Score: 10, Level: 2, Lines: 10}, s.Stats())
	assert.Equal(t, 900, s.DropInterval())
	assert.Equal(t,
		[]EventType{EventSpawned, EventLocked, EventLinesCleared, EventLevelUp, EventSpawned},
		log.types())
}

func TestGravityInterval(t *testing.T) {
	g := DefaultGravity()
	tests := []struct {
		level int
		want  int
	}{
		{0, 1000},
		{1, 1000},
		{2, 900},
		{5, 600},
		{10, 100},
		{11, 100},
		{30, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.Interval(tt.level), "level=%d", tt.level)
	}

	assert.Equal(t, 500, Gravity{BaseMs: 500, StepMs: 0, MinMs: 100}.Interval(9), "fixed curve")
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, 1, LevelFor(0))
	assert.Equal(t, 1, LevelFor(9))
	assert.Equal(t, 2, LevelFor(10))
	assert.Equal(t, 4, LevelFor(35))
	assert.Equal(t, 1, LevelFor(-3))
}

func TestGameOver(t *testing.T) {
	log := &eventLog{}
	s := newTestSession(t, log, KindO)
	for y := 2; y < 20; y++ {
		s.grid.set(4, y, KindJ)
	}

	fell, out := s.HardDrop()
	require.Equal(t, Accepted, out)
	assert.Zero(t, fell)

	assert.True(t, s.GameOver())
	assert.Equal(t, PhaseGameOver, s.Phase())
	assert.Equal(t, []EventType{EventSpawned, EventLocked, EventGameOver}, log.types())

	t.Run("commands are rejected", func(t *testing.T) {
		before := s.Snapshot()
		assert.Equal(t, Rejected, s.MoveLeft())
		assert.Equal(t, Rejected, s.MoveRight())
		assert.Equal(t, DropIgnored, s.SoftDropOnce())
		_, out := s.HardDrop()
		assert.Equal(t, Rejected, out)
		out, err := s.Rotate(Clockwise)
		assert.NoError(t, err)
		assert.Equal(t, Rejected, out)
		assert.False(t, s.Tick(5000))
		assert.Equal(t, before, s.Snapshot())
	})

	t.Run("pause has no effect", func(t *testing.T) {
		assert.False(t, s.TogglePause())
		assert.False(t, s.Paused())
	})

	t.Run("reset starts over", func(t *testing.T) {
		s.Reset()
		assert.Equal(t, PhaseFalling, s.Phase())
		assert.Zero(t, s.Grid().Occupied())
		assert.Equal(t, Stats{Score: 0, Level: 1, Lines: 0}, s.Stats())
	})
}

func TestTickForcesDropAfterInterval(t *testing.T) {
	s := newTestSession(t, nil, KindT)

	assert.False(t, s.Tick(1000), "interval must be exceeded")
	assert.Equal(t, 0, s.Piece().Pos.Y)

	assert.True(t, s.Tick(1))
	assert.Equal(t, 1, s.Piece().Pos.Y)

	assert.False(t, s.Tick(1000), "timer restarts after a drop")
	assert.True(t, s.Tick(1))
	assert.Equal(t, 2, s.Piece().Pos.Y)
}

func TestTickIgnoresNegativeElapsed(t *testing.T) {
	s := newTestSession(t, nil, KindT)

	assert.False(t, s.Tick(600))
	assert.False(t, s.Tick(-500))
	assert.True(t, s.Tick(401))
}

func TestManualDropRestartsTimer(t *testing.T) {
	s := newTestSession(t, nil, KindT)

	assert.False(t, s.Tick(900))
	assert.Equal(t, DropMoved, s.SoftDropOnce())
	assert.False(t, s.Tick(900))
	assert.True(t, s.Tick(101))
	assert.Equal(t, 2, s.Piece().Pos.Y)
}

func TestPauseDiscardsElapsedTime(t *testing.T) {
	s := newTestSession(t, nil, KindT)

	assert.False(t, s.Tick(600))
	assert.True(t, s.TogglePause())

	assert.False(t, s.Tick(5000))
	assert.Equal(t, 0, s.Piece().Pos.Y)

	assert.False(t, s.TogglePause())
	assert.False(t, s.Tick(300), "600 accumulated before the pause is kept")
	assert.True(t, s.Tick(101))
}

func TestPausedCommandsRejected(t *testing.T) {
	s := newTestSession(t, nil, KindT)
	s.TogglePause()
	before := s.Snapshot()

	assert.Equal(t, Rejected, s.MoveLeft())
	assert.Equal(t, Rejected, s.MoveRight())
	assert.Equal(t, DropIgnored, s.SoftDropOnce())
	_, out := s.HardDrop()
	assert.Equal(t, Rejected, out)
	out, err := s.Rotate(CounterClockwise)
	assert.NoError(t, err)
	assert.Equal(t, Rejected, out)

	assert.Equal(t, before, s.Snapshot())
}

func TestRotateInvalidDirectionAlwaysErrors(t *testing.T) {
	s := newTestSession(t, nil, KindT)

	_, err := s.Rotate(Direction(3))
	assert.ErrorIs(t, err, ErrInvalidDirection)

	s.TogglePause()
	_, err = s.Rotate(Direction(0))
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestStateAccessorsReturnCopies(t *testing.T) {
	s := newTestSession(t, nil, KindT)

	p := s.Piece()
	p.Pos.X = 99
	p.Shape[0][0] = KindI
	assert.Equal(t, 4, s.Piece().Pos.X)
	assert.Equal(t, KindNone, s.Piece().Shape[0][0])

	g := s.Grid()
	g.set(0, 0, KindI)
	assert.Zero(t, s.Grid().Occupied())
}

func TestSnapshotHashDeterministic(t *testing.T) {
	script := func(seed int64) *Session {
		s, err := NewSession(Options{Source: NewUniformSource(seed)})
		require.NoError(t, err)

		rng := rand.New(rand.NewSource(7))
		for range 500 {
			switch rng.Intn(6) {
			case 0:
				s.MoveLeft()
			case 1:
				s.MoveRight()
			case 2:
				_, _ = s.Rotate(Clockwise)
			case 3:
				s.SoftDropOnce()
			case 4:
				s.Tick(rng.Intn(400))
			case 5:
				s.HardDrop()
			}
		}
		return s
	}

	a, b := script(42), script(42)
	snapA, snapB := a.Snapshot(), b.Snapshot()
	assert.Equal(t, snapA, snapB)
	assert.Equal(t, snapA.Hash(), snapB.Hash())

	c := script(43)
	snapC := c.Snapshot()
	assert.NotEqual(t, snapA.Hash(), snapC.Hash())
}

// Every lock adds four cells and every cleared row removes a full row's
// worth; the grid never holds anything else.
func TestCellConservation(t *testing.T) {
	locked, cleared := 0, 0
	s, err := NewSession(Options{
		Source: NewUniformSource(99),
		OnEvent: func(e Event) {
			switch e.Type {
			case EventLocked:
				locked++
			case EventLinesCleared:
				cleared += e.Lines
			}
		},
	})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for range 2000 {
		if s.GameOver() {
			s.Reset()
			locked, cleared = 0, 0
		}
		switch rng.Intn(5) {
		case 0:
			s.MoveLeft()
		case 1:
			s.MoveRight()
		case 2:
			_, _ = s.Rotate(CounterClockwise)
		case 3:
			s.HardDrop()
		case 4:
			s.Tick(1001)
		}
		require.Equal(t, 4*locked-s.Cols()*cleared, s.Grid().Occupied())
		require.Equal(t, cleared, s.Stats().Lines)
	}
}
