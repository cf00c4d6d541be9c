package components

import "github.com/yohamta/donburi"

// TileData links a spawned tile back to its tileset and atlas frame.
type TileData struct {
	Tileset string
	Index   int
	Col     int
	Row     int
	Name    string
}

var Tile = donburi.NewComponentType[TileData]()
