package gamemath

// StickDirections turns an analog stick reading into held directions. Axis
// values run from -1 to 1 with negative vertical meaning up, as gamepads
// report it. Deflection must exceed deadzone to count.
func StickDirections(horizontal, vertical, deadzone float64) [DirectionCount]bool {
	var held [DirectionCount]bool
	held[DirectionLeft] = horizontal < -deadzone
	held[DirectionRight] = horizontal > deadzone
	held[DirectionUp] = vertical < -deadzone
	held[DirectionDown] = vertical > deadzone
	return held
}
