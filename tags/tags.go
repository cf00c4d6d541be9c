package tags

import "github.com/yohamta/donburi"

var (
	Player          = donburi.NewTag().SetName("Player")
	Tile            = donburi.NewTag().SetName("Tile")
	PlayerSpawnTile = donburi.NewTag().SetName("PlayerSpawnTile")
	Wall            = donburi.NewTag().SetName("Wall")
	Obstacle        = donburi.NewTag().SetName("Obstacle")
	Backdrop        = donburi.NewTag().SetName("Backdrop")
	GameCamera      = donburi.NewTag().SetName("GameCamera")
	MenuRoot        = donburi.NewTag().SetName("MenuRoot")
	FPSText         = donburi.NewTag().SetName("FPSText")

	// MapEntity marks everything the map loader spawns; unloading removes it.
	MapEntity = donburi.NewTag().SetName("MapEntity")
	// LevelEntity marks everything the level loader spawns.
	LevelEntity = donburi.NewTag().SetName("LevelEntity")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlayer   = "Player"
	ResolvObstacle = "obstacle"
)
