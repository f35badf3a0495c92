package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// parseGrid builds a grid from rows of kind letters, "." for empty.
func parseGrid(t *testing.T, rows ...string) *Grid {
	t.Helper()
	require.NotEmpty(t, rows)

	g := NewGrid(len(rows[0]), len(rows))
	for y, line := range rows {
		require.Len(t, line, g.Cols(), "row %d width", y)
		for x, r := range line {
			if r == '.' {
				continue
			}
			k := kindFromLetter(r)
			require.True(t, k.Valid(), "unknown letter %q", r)
			g.set(x, y, k)
		}
	}
	return g
}

func kindFromLetter(r rune) Kind {
	for _, k := range Kinds() {
		if k.String() == string(r) {
			return k
		}
	}
	return KindNone
}

// fillRow occupies every cell of row y except the listed columns.
func fillRow(g *Grid, y int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := range g.Cols() {
		if !skip[x] {
			g.set(x, y, KindJ)
		}
	}
}

// eventLog records session events for assertions.
type eventLog struct {
	events []Event
}

func (l *eventLog) record(e Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) types() []EventType {
	out := make([]EventType, len(l.events))
	for i, e := range l.events {
		out[i] = e.Type
	}
	return out
}

func (l *eventLog) count(t EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// shapeOf parses a shape literal such as "0700/0700".
func shapeOf(t *testing.T, layout string) Shape {
	t.Helper()
	var s Shape
	for _, line := range strings.Split(layout, "/") {
		row := make([]Kind, len(line))
		for i, r := range line {
			row[i] = Kind(r - '0')
		}
		s = append(s, row)
	}
	return s
}
