package gamemath

// Direction is one of the four facings an actor can take.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
	DirectionCount // Must be last - used for array sizing
)

// DirectionPriority is the order held inputs are evaluated in. The first
// held direction wins the tick; inputs are never combined.
var DirectionPriority = [DirectionCount]Direction{
	DirectionUp,
	DirectionDown,
	DirectionLeft,
	DirectionRight,
}

var directionYaw = [DirectionCount]float64{
	DirectionUp:    0,
	DirectionDown:  180,
	DirectionLeft:  270,
	DirectionRight: 90,
}

var directionNames = [DirectionCount]string{
	DirectionUp:    "up",
	DirectionDown:  "down",
	DirectionLeft:  "left",
	DirectionRight: "right",
}

func (d Direction) Valid() bool {
	return d >= 0 && d < DirectionCount
}

// Yaw returns the facing's rotation about Y in degrees.
func (d Direction) Yaw() float64 {
	if !d.Valid() {
		return 0
	}
	return directionYaw[d]
}

// Forward returns the unit vector an actor facing d moves along.
func (d Direction) Forward() Vec3 {
	return YawForward(d.Yaw())
}

func (d Direction) String() string {
	if !d.Valid() {
		return "none"
	}
	return directionNames[d]
}

// ParseDirection maps a lower-case direction name, as written in level
// properties, to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for d, name := range directionNames {
		if name == s {
			return Direction(d), true
		}
	}
	return 0, false
}
