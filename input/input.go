// Package input polls the keyboard and gamepads.
package input

import (
	"github.com/automoto/pacdots/components"
	"github.com/automoto/pacdots/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into every Input component.
// Must run BEFORE the actor system in the system order.
func UpdateInput(e *ecs.ECS) {
	held := Poll()
	components.Input.Each(e.World, func(entry *donburi.Entry) {
		components.Input.Get(entry).Held = held
	})
}

// Poll returns the directions held on any keyboard or gamepad this frame.
func Poll() [gamemath.DirectionCount]bool {
	var held [gamemath.DirectionCount]bool
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for d, binding := range Bindings.Directions {
		held[d] = isPressed(binding)
	}

	// Merge analog sticks into the d-pad
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		stick := gamemath.StickDirections(
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical),
			Bindings.AnalogDeadzone,
		)
		for d := range held {
			held[d] = held[d] || stick[d]
		}
	}
	return held
}

// MenuJustPressed reports whether a menu action was pressed this frame.
func MenuJustPressed(action MenuAction) bool {
	binding := Bindings.Menu[action]
	for _, key := range binding.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

func isPressed(binding Binding) bool {
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}
