package config

// MapReadinessState tracks the lifecycle of the current map.
type MapReadinessState int

const (
	MapUnloaded MapReadinessState = iota
	MapLoading
	MapLoaded
	MapReady
	MapUnloading
)

func (s MapReadinessState) String() string {
	switch s {
	case MapUnloaded:
		return "Unloaded"
	case MapLoading:
		return "Loading"
	case MapLoaded:
		return "Loaded"
	case MapReady:
		return "Ready"
	case MapUnloading:
		return "Unloading"
	}
	return "Unknown"
}

// LevelReadinessState tracks the lifecycle of the current level.
type LevelReadinessState int

const (
	LevelUnloaded LevelReadinessState = iota
	LevelLoading
	LevelLoaded
	LevelReady
)

func (s LevelReadinessState) String() string {
	switch s {
	case LevelUnloaded:
		return "Unloaded"
	case LevelLoading:
		return "Loading"
	case LevelLoaded:
		return "Loaded"
	case LevelReady:
		return "Ready"
	}
	return "Unknown"
}

// GameMenuState selects which screen is shown.
type GameMenuState int

const (
	MenuStartScreen GameMenuState = iota
	MenuStorylineIntro
	MenuInGame
)

func (s GameMenuState) String() string {
	switch s {
	case MenuStartScreen:
		return "StartScreen"
	case MenuStorylineIntro:
		return "StorylineIntro"
	case MenuInGame:
		return "InGame"
	}
	return "Unknown"
}
