package core

// Color is a palette slot for a screen cell.
// Games pick slots; the platform theme decides what each slot looks like.
type Color uint8

// Palette slots.
const (
	ColorDefault Color = iota
	ColorGrid          // Board frame and cell separators
	ColorText          // HUD values
	ColorMuted         // Hints and labels
	ColorAccent        // Titles and overlays
	ColorTileEmpty     // Empty board cell
	ColorTile2         // First tile slot; slots continue by exponent up to 2048
)

// tileSlotCount is the number of exponent slots from 2 through 2048.
const tileSlotCount = 11

// ColorTileSuper is used for every tile above 2048.
const ColorTileSuper = ColorTile2 + tileSlotCount

// TileColor returns the palette slot for a tile value.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorTileEmpty
	}

	exp := 0
	for v := value; v > 1; v >>= 1 {
		exp++
	}
	if exp < 1 {
		exp = 1
	}
	if exp > tileSlotCount {
		return ColorTileSuper
	}
	return ColorTile2 + Color(exp-1)
}

// TileValue returns the tile value a slot represents, or 0 for non-tile slots.
// ColorTileSuper reports 0 since it covers every value above 2048.
func TileValue(c Color) int {
	if c < ColorTile2 || c >= ColorTileSuper {
		return 0
	}
	return 2 << int(c-ColorTile2)
}
