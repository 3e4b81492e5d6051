package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The terminal grid is mapped onto a world of CellW x CellH units per cell so
// that simulation constants keep their meaning at any terminal size.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Frames per second driven by the platform (default 60)
	Seed     int64   // RNG seed, 0 means use current time in platform layer
	CellW    float64 // World units per column
	CellH    float64 // World units per row
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		CellW:    8,
		CellH:    16,
	}
}

// HUDRows is the number of terminal rows reserved for the status bar.
const HUDRows = 1

// PlaySize returns the play-area size in world units. The status bar rows
// are excluded from the play area.
func (c RuntimeConfig) PlaySize() (w, h float64) {
	cw, ch := c.cellSize()
	rows := c.ScreenH - HUDRows
	if rows < 1 {
		rows = 1
	}
	cols := c.ScreenW
	if cols < 1 {
		cols = 1
	}
	return float64(cols) * cw, float64(rows) * ch
}

// WorldToCell converts a world point to a column/row in the play area.
// Row 0 is the top of the play area.
func (c RuntimeConfig) WorldToCell(p Vec2) (col, row int) {
	cw, ch := c.cellSize()
	_, h := c.PlaySize()
	col = int(p.X / cw)
	if p.X < 0 {
		col--
	}
	yFromTop := h - p.Y
	row = int(yFromTop / ch)
	if yFromTop < 0 {
		row--
	}
	return col, row
}

// CellToWorld returns the world point at the center of the given cell.
func (c RuntimeConfig) CellToWorld(col, row int) Vec2 {
	cw, ch := c.cellSize()
	_, h := c.PlaySize()
	return Vec2{
		X: (float64(col) + 0.5) * cw,
		Y: h - (float64(row)+0.5)*ch,
	}
}

// WorldToScreen converts a world point to a screen column/row. The status
// bar occupies the top HUDRows rows, above the play area.
func (c RuntimeConfig) WorldToScreen(p Vec2) (col, row int) {
	col, row = c.WorldToCell(p)
	return col, row + HUDRows
}

// ScreenToWorld converts a screen column/row (e.g. a mouse position) to the
// world point at the center of that cell, clamped to the play area.
func (c RuntimeConfig) ScreenToWorld(col, row int) Vec2 {
	p := c.CellToWorld(col, row-HUDRows)
	w, h := c.PlaySize()
	return Vec2{X: ClampF(p.X, 0, w), Y: ClampF(p.Y, 0, h)}
}

func (c RuntimeConfig) cellSize() (float64, float64) {
	cw, ch := c.CellW, c.CellH
	if cw <= 0 {
		cw = 8
	}
	if ch <= 0 {
		ch = 16
	}
	return cw, ch
}

// GameState is a read-only summary the platform uses for its own flow
// (score saving, restart prompts).
type GameState struct {
	Score    int     // Current score
	Health   int     // Ship health
	Elapsed  float64 // Survival time in seconds
	GameOver bool    // Whether the ship has been destroyed
}
