package engine

// EventType classifies session events.
type EventType int

const (
	EventSpawned EventType = iota
	EventLocked
	EventLinesCleared
	EventLevelUp
	EventGameOver
)

// String returns a lowercase name for logs.
func (t EventType) String() string {
	switch t {
	case EventSpawned:
		return "spawned"
	case EventLocked:
		return "locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted synchronously from inside session commands.
// Handlers must not call back into the session.
type Event struct {
	Type  EventType
	Kind  Kind  // piece involved, if any
	Lines int   // rows cleared by this sweep (EventLinesCleared)
	Stats Stats // totals after the event
}
