package input

import (
	"github.com/automoto/pacdots/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuAction is a logical menu input
type MenuAction int

const (
	MenuUp MenuAction = iota
	MenuDown
	MenuSelect
	MenuActionCount // Must be last - used for array sizing
)

// Binding represents the keys and buttons that trigger one input
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// BindingConfig holds all input mappings
type BindingConfig struct {
	Directions [gamemath.DirectionCount]Binding
	Menu       [MenuActionCount]Binding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Bindings is the global input configuration
var Bindings BindingConfig

func init() {
	Bindings = BindingConfig{
		AnalogDeadzone: 0.25,
		Directions: [gamemath.DirectionCount]Binding{
			gamemath.DirectionUp: {
				Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			gamemath.DirectionDown: {
				Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			gamemath.DirectionLeft: {
				Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			gamemath.DirectionRight: {
				Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
		},
		Menu: [MenuActionCount]Binding{
			MenuUp: {
				Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			MenuDown: {
				Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			MenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
		},
	}
}
