package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// PixelsPerMeter is the world unit scale. One Tiled cell is one meter.
const PixelsPerMeter = 32.0

// Draw layers, back to front. LayerUI holds screen-space overlays.
const (
	LayerBase ecs.LayerID = iota
	LayerMap
	LayerEntities
	LayerEffects
	LayerUI
)

// Default is the layer for entities that are never drawn.
const Default = LayerBase

// Config holds general game configuration
type Config struct {
	Width      int
	Height     int
	Title      string
	ClearColor color.RGBA
	AppName    string
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	StartX, StartY float64
	Size           float64
	Color          color.RGBA
	Speed          float64 // pixels per second
	LinearDamping  float64
	ColliderHalf   float64
}

// MapConfig contains map loading configuration
type MapConfig struct {
	StartMap       string
	DefaultName    string
	ObstacleGroup  string
	SpawnTileName  string
	SpawnTileID    uint32
	BackdropColor  color.RGBA
	ObstacleColor  color.RGBA
	ReloadOnChange bool
}

// MenuConfig contains the start screen and storyline configuration values
type MenuConfig struct {
	Title             string
	TitleFontSize     float64
	ButtonFontSize    float64
	ButtonWidth       int
	ButtonHeight      int
	ContinueWidth     int
	ButtonColor       color.RGBA
	ButtonHoverColor  color.RGBA
	ButtonTextColor   color.RGBA
	TitleColor        color.RGBA
	StoryTextColor    color.RGBA
	StoryFadeSeconds  float32
	StoryBaseFontSize float64
}

// HUDConfig contains the FPS counter configuration
type HUDConfig struct {
	FPSX, FPSY     int
	FPSColor       color.RGBA
	FPSFontSize    float64
	FPSRefreshSecs float64
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Map MapConfig
var Menu MenuConfig
var HUD HUDConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu      bool // Skip menu and go directly to game
	DrawColliders bool
	Verbose       bool
	AssetsDir     string
	KeymapFile    string
	ResetProgress bool
}

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Green       = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow      = color.RGBA{R: 251, G: 213, B: 6, A: 255} // hsl(50.69, 96.84%, 50.39%)
	DarkYellow  = color.RGBA{R: 226, G: 191, B: 4, A: 255} // same hue, lightness 45%
	PlayerBlue  = color.RGBA{R: 64, G: 64, B: 191, A: 255}
	ColliderRed = color.RGBA{R: 255, G: 60, B: 60, A: 160}
)

func init() {
	C = &Config{
		Width:      1280,
		Height:     720,
		Title:      "The Caverns",
		ClearColor: Black,
		AppName:    "the_caverns",
	}

	Player = PlayerConfig{
		StartX:        64,
		StartY:        64,
		Size:          32,
		Color:         PlayerBlue,
		Speed:         200,
		LinearDamping: 0.5,
		ColliderHalf:  16,
	}

	Map = MapConfig{
		StartMap:       "levels/test.tmx",
		DefaultName:    "Not-Named",
		ObstacleGroup:  "Obstacles",
		SpawnTileName:  "player_spawn",
		SpawnTileID:    2,
		BackdropColor:  White,
		ObstacleColor:  color.RGBA{R: 96, G: 84, B: 72, A: 255},
		ReloadOnChange: true,
	}

	Menu = MenuConfig{
		Title:             "The Caverns",
		TitleFontSize:     80,
		ButtonFontSize:    30,
		ButtonWidth:       150,
		ButtonHeight:      65,
		ContinueWidth:     200,
		ButtonColor:       Yellow,
		ButtonHoverColor:  DarkYellow,
		ButtonTextColor:   Black,
		TitleColor:        Yellow,
		StoryTextColor:    Yellow,
		StoryFadeSeconds:  1.5,
		StoryBaseFontSize: 20,
	}

	HUD = HUDConfig{
		FPSX:           5,
		FPSY:           5,
		FPSColor:       Green,
		FPSFontSize:    25,
		FPSRefreshSecs: 0.5,
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}
}
