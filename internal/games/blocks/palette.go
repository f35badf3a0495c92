package blocks

import (
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
)

// Cell glyphs. Every grid cell is two characters wide so the well looks
// square in a terminal.
const (
	BlockGlyph = '█'
	GhostGlyph = '░'
	EmptyGlyph = '·'
)

// palette maps each kind to its terminal colour.
var palette = map[engine.Kind]core.Color{
	engine.KindT: core.ColorRed,
	engine.KindO: core.ColorCyan,
	engine.KindS: core.ColorGreen,
	engine.KindZ: core.ColorMagenta,
	engine.KindL: core.ColorOrange,
	engine.KindJ: core.ColorYellow,
	engine.KindI: core.ColorBlue,
}

// ColorOf returns the colour used to draw kind k.
func ColorOf(k engine.Kind) core.Color {
	if c, ok := palette[k]; ok {
		return c
	}
	return core.ColorDefault
}
