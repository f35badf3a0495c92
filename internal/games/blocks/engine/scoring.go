package engine

import "fmt"

const (
	// PointsPerLine is the base award for one cleared row.
	PointsPerLine = 10
	// LinesPerLevel is how many cleared rows advance one level.
	LinesPerLevel = 10
)

// ScoreFor returns the points for clearing n rows in one sweep: n*10*n,
// so multi-row clears pay quadratically (10, 40, 90, 160).
func ScoreFor(n int) int {
	if n <= 0 {
		return 0
	}
	return n * PointsPerLine * n
}

// LevelFor returns the level reached after clearing lines rows in total.
func LevelFor(lines int) int {
	if lines < 0 {
		lines = 0
	}
	return lines/LinesPerLevel + 1
}

// Gravity describes how the drop interval shrinks with level.
// All values are milliseconds.
type Gravity struct {
	BaseMs int // interval at level 1
	StepMs int // reduction per level
	MinMs  int // floor
}

// DefaultGravity is 1000ms at level 1, 100ms faster per level, never
// below 100ms.
func DefaultGravity() Gravity {
	return Gravity{BaseMs: 1000, StepMs: 100, MinMs: 100}
}

// Interval returns the drop interval for level.
func (g Gravity) Interval(level int) int {
	if level < 1 {
		level = 1
	}
	return max(g.MinMs, g.BaseMs-(level-1)*g.StepMs)
}

// Validate checks that the curve is usable.
func (g Gravity) Validate() error {
	if g.BaseMs <= 0 || g.MinMs <= 0 || g.StepMs < 0 {
		return fmt.Errorf("%w: gravity %+v", ErrInvalidBoard, g)
	}
	return nil
}

// Stats are the running totals of a session.
type Stats struct {
	Score int
	Level int
	Lines int
}

// newStats returns the totals at the start of a game.
func newStats() Stats {
	return Stats{Score: 0, Level: 1, Lines: 0}
}

// apply records a sweep of n rows and reports whether the level went up.
func (s *Stats) apply(n int) bool {
	if n <= 0 {
		return false
	}
	prev := s.Level
	s.Score += ScoreFor(n)
	s.Lines += n
	s.Level = LevelFor(s.Lines)
	return s.Level > prev
}
