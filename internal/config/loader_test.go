package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// isolate points the user and local search locations at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decodeBlocks(defaultBlocksYAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultBlocksConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadBlocksFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadBlocks("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBlocksConfig(), cfg)
}

func TestLoadBlocksSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, LocalConfigPath), "board: {cols: 12}\n")
	cfg, err := LoadBlocks("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Board.Cols, "local file beats embedded")

	writeFile(t, filepath.Join(home, ".blocks", "configs", "blocks.yaml"), "board: {cols: 14}\n")
	cfg, err = LoadBlocks("")
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.Board.Cols, "user file beats local")

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "board: {cols: 16}\n")
	cfg, err = LoadBlocks(custom)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Board.Cols, "custom path beats everything")
}

func TestLoadBlocksSkipsBrokenUserFile(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(home, ".blocks", "configs", "blocks.yaml"), "board: [not a map\n")
	writeFile(t, filepath.Join(work, LocalConfigPath), "board: {rows: 30}\n")

	cfg, err := LoadBlocks("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Board.Rows)
}

func TestLoadBlocksPartialFileKeepsDefaults(t *testing.T) {
	isolate(t)
	custom := filepath.Join(t.TempDir(), "blocks.yaml")
	writeFile(t, custom, "gravity:\n  step_ms: 50\n")

	cfg, err := LoadBlocks(custom)
	require.NoError(t, err)

	want := DefaultBlocksConfig()
	want.Gravity.StepMs = 50
	assert.Equal(t, want, cfg)
}

func TestLoadBlocksCustomPathErrors(t *testing.T) {
	isolate(t)

	_, err := LoadBlocks(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read config")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "gravity: [1, 2\n")
	_, err = LoadBlocks(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BlocksConfig)
		wantErr bool
	}{
		{"defaults", func(*BlocksConfig) {}, false},
		{"smallest board", func(c *BlocksConfig) { c.Board = BoardConfig{Cols: 4, Rows: 4} }, false},
		{"narrow board", func(c *BlocksConfig) { c.Board.Cols = 3 }, true},
		{"short board", func(c *BlocksConfig) { c.Board.Rows = 0 }, true},
		{"zero base interval", func(c *BlocksConfig) { c.Gravity.BaseIntervalMs = 0 }, true},
		{"negative min interval", func(c *BlocksConfig) { c.Gravity.MinIntervalMs = -5 }, true},
		{"negative step", func(c *BlocksConfig) { c.Gravity.StepMs = -1 }, true},
		{"zero step", func(c *BlocksConfig) { c.Gravity.StepMs = 0 }, false},
		{"unknown preset", func(c *BlocksConfig) { c.Difficulty.Preset = "nightmare" }, true},
		{"known preset", func(c *BlocksConfig) { c.Difficulty.Preset = "hard" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBlocksConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{" Hard ", DifficultyHard, false},
		{"FIXED", DifficultyFixed, false},
		{"normal", DifficultyNormal, false},
		{"insane", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidConfig, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestApplyBlocksPreset(t *testing.T) {
	for _, p := range Presets() {
		t.Run(string(p), func(t *testing.T) {
			cfg := DefaultBlocksConfig()
			cfg.Board = BoardConfig{Cols: 8, Rows: 16}
			ApplyBlocksPreset(&cfg, p)

			assert.Equal(t, BoardConfig{Cols: 8, Rows: 16}, cfg.Board, "presets leave the board alone")
			assert.Equal(t, string(p), cfg.Difficulty.Preset)
			assert.NoError(t, cfg.Validate())
		})
	}

	cfg := DefaultBlocksConfig()
	ApplyBlocksPreset(&cfg, DifficultyFixed)
	assert.Zero(t, cfg.Gravity.StepMs)
	assert.Equal(t, 1000, cfg.Gravity.BaseIntervalMs)

	easy, hard := DefaultBlocksConfig(), DefaultBlocksConfig()
	ApplyBlocksPreset(&easy, DifficultyEasy)
	ApplyBlocksPreset(&hard, DifficultyHard)
	assert.Greater(t, easy.Gravity.BaseIntervalMs, hard.Gravity.BaseIntervalMs)

	unchanged := DefaultBlocksConfig()
	ApplyBlocksPreset(&unchanged, "")
	assert.Equal(t, DefaultBlocksConfig(), unchanged)
}

func TestResolve(t *testing.T) {
	cfg := DefaultBlocksConfig()
	cfg.Difficulty.Preset = "fixed"

	got, err := Resolve(cfg, "")
	require.NoError(t, err)
	assert.Zero(t, got.Gravity.StepMs, "file preset applies without override")

	got, err = Resolve(cfg, DifficultyHard)
	require.NoError(t, err)
	assert.Equal(t, "hard", got.Difficulty.Preset, "override wins")
	assert.Equal(t, 700, got.Gravity.BaseIntervalMs)

	cfg.Difficulty.Preset = "bogus"
	_, err = Resolve(cfg, "")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg = DefaultBlocksConfig()
	cfg.Board.Cols = 2
	_, err = Resolve(cfg, DifficultyEasy)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultBlocksConfig()
	ApplyBlocksPreset(&cfg, DifficultyEasy)

	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_interval_ms: 1200")
	assert.Contains(t, string(data), "preset: easy")

	back, err := decodeBlocks(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
