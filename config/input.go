package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionForward
	ActionBackward
	ActionLeft
	ActionRight
	ActionExit
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[ActionID]string{
	ActionForward:     "forward",
	ActionBackward:    "backward",
	ActionLeft:        "left",
	ActionRight:       "right",
	ActionExit:        "exit",
	ActionToggleDebug: "toggle_debug",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// InputBinding represents a single key binding for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

// DefaultBindings returns the WASD keymap.
func DefaultBindings() map[ActionID]InputBinding {
	return map[ActionID]InputBinding{
		ActionForward:     {Keys: []ebiten.Key{ebiten.KeyW}},
		ActionBackward:    {Keys: []ebiten.Key{ebiten.KeyS}},
		ActionLeft:        {Keys: []ebiten.Key{ebiten.KeyA}},
		ActionRight:       {Keys: []ebiten.Key{ebiten.KeyD}},
		ActionExit:        {Keys: []ebiten.Key{ebiten.KeyEscape}},
		ActionToggleDebug: {Keys: []ebiten.Key{ebiten.KeyF1}},
	}
}

func init() {
	Input = InputConfig{
		Bindings: DefaultBindings(),
	}
}
