// Package engine implements the falling-block rules: the shape catalog, the
// playfield grid, collision and rotation with wall kicks, row sweeping,
// scoring and the session state machine.
//
// The package is single-threaded and self-contained. It never schedules
// itself; a driver calls Session.Tick with elapsed wall time and forwards
// player commands. Coordinates are (column, row) with row 0 at the top.
package engine
