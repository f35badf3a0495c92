// Package blocks adapts the falling-block engine to the arcade platform:
// it maps input actions to session commands, converts fixed ticks to
// elapsed milliseconds and renders the well with a score panel.
package blocks

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// ID is the registry key and CLI name.
const ID = "blocks"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI or the menu
var difficultyPreset config.DifficultyPreset

// logger receives gameplay events. Silent until SetLogger is called.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset overrides the preset named in the config file.
// An empty preset keeps the file's choice.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// DifficultyPreset returns the current override.
func DifficultyPreset() config.DifficultyPreset {
	return difficultyPreset
}

// SetLogger routes gameplay events to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// Game implements registry.Game on top of an engine session.
type Game struct {
	session *engine.Session
	cfg     config.BlocksConfig
	tickMs  int

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates an idle game. Reset must be called before Step or Render.
func New() *Game {
	return &Game{cfg: config.DefaultBlocksConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Blocks"
}

// Description returns the blurb shown by `list`.
func (g *Game) Description() string {
	return "Stack falling pieces and clear full rows"
}

// Reset loads configuration and starts a fresh session.
// Configuration problems are logged and the defaults are used instead.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.cfg = loadConfig()
	g.tickMs = runtime.TickMillis()

	session, err := engine.NewSession(engine.Options{
		Cols:    g.cfg.Board.Cols,
		Rows:    g.cfg.Board.Rows,
		Gravity: gravityOf(g.cfg),
		Source:  engine.NewUniformSource(runtime.Seed),
		OnEvent: logEvent,
	})
	if err != nil {
		logger.Error("session rejected config, using defaults", "err", err)
		g.cfg = config.DefaultBlocksConfig()
		session, _ = engine.NewSession(engine.Options{
			Source:  engine.NewUniformSource(runtime.Seed),
			OnEvent: logEvent,
		})
	}
	g.session = session

	g.Resize(runtime.ScreenW, runtime.ScreenH)
	logger.Info("game started",
		"board", g.cfg.Board, "gravity", g.cfg.Gravity,
		"preset", g.cfg.Difficulty.Preset, "seed", runtime.Seed)
}

// loadConfig returns the effective configuration.
func loadConfig() config.BlocksConfig {
	cfg, err := config.LoadBlocks(configPath)
	if err != nil {
		logger.Warn("config not loaded, using defaults", "err", err)
	}
	resolved, err := config.Resolve(cfg, difficultyPreset)
	if err != nil {
		logger.Warn("config invalid, using defaults", "err", err)
		resolved, _ = config.Resolve(config.DefaultBlocksConfig(), difficultyPreset)
	}
	return resolved
}

func gravityOf(cfg config.BlocksConfig) engine.Gravity {
	return engine.Gravity{
		BaseMs: cfg.Gravity.BaseIntervalMs,
		StepMs: cfg.Gravity.StepMs,
		MinMs:  cfg.Gravity.MinIntervalMs,
	}
}

// Resize records new screen dimensions without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minScreen()
	g.tooSmall = w < minW || h < minH
}

// Step applies the frame's actions in order, then advances the drop timer
// by one tick's worth of milliseconds.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Hold the game while the window is too small
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	changed := false
	for _, a := range in.Actions {
		if g.apply(a) {
			changed = true
		}
	}
	if g.session.Tick(g.tickMs) {
		changed = true
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// apply forwards one action to the session and reports whether anything
// visible changed.
func (g *Game) apply(a core.Action) bool {
	s := g.session
	switch a {
	case core.ActionLeft:
		return s.MoveLeft() == engine.Accepted
	case core.ActionRight:
		return s.MoveRight() == engine.Accepted
	case core.ActionDown:
		return s.SoftDropOnce() != engine.DropIgnored
	case core.ActionRotateCW:
		out, _ := s.Rotate(engine.Clockwise)
		return out == engine.Accepted
	case core.ActionRotateCCW:
		out, _ := s.Rotate(engine.CounterClockwise)
		return out == engine.Accepted
	case core.ActionDrop:
		_, out := s.HardDrop()
		return out == engine.Accepted
	case core.ActionPause:
		if s.GameOver() {
			return false
		}
		paused := s.TogglePause()
		logger.Debug("pause toggled", "paused", paused)
		return true
	default:
		return false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Level: 1}
	}
	st := g.session.Stats()
	return core.GameState{
		Score:    st.Score,
		Level:    st.Level,
		Lines:    st.Lines,
		GameOver: g.session.GameOver(),
		Paused:   g.session.Paused() || g.tooSmall,
	}
}

// Snapshot returns the session snapshot for determinism checks.
func (g *Game) Snapshot() engine.Snapshot {
	return g.session.Snapshot()
}

// Session exposes the underlying session for tests and tools.
func (g *Game) Session() *engine.Session {
	return g.session
}

// logEvent writes session events to the package logger.
func logEvent(e engine.Event) {
	switch e.Type {
	case engine.EventSpawned:
		logger.Debug("piece spawned", "kind", e.Kind)
	case engine.EventLocked:
		logger.Debug("piece locked", "kind", e.Kind)
	case engine.EventLinesCleared:
		logger.Info("lines cleared", "count", e.Lines, "score", e.Stats.Score, "lines", e.Stats.Lines)
	case engine.EventLevelUp:
		logger.Info("level up", "level", e.Stats.Level)
	case engine.EventGameOver:
		logger.Info("game over", "score", e.Stats.Score, "level", e.Stats.Level, "lines", e.Stats.Lines)
	}
}
