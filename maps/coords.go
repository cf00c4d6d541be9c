package maps

import "github.com/automoto/the-caverns/config"

// MapCoordToWorldCoord turns a TMX row (row 0 at the top) into a y-up world
// row (row 0 at the bottom). Applying it twice returns the input.
func MapCoordToWorldCoord(mapHeight, row int) int {
	return mapHeight - 1 - row
}

// TileWorldPosition returns the bottom-left corner of a cell in world pixels.
func TileWorldPosition(col, row, mapHeight int) (x, y float64) {
	x = float64(col) * config.PixelsPerMeter
	y = float64(MapCoordToWorldCoord(mapHeight, row)) * config.PixelsPerMeter
	return x, y
}
