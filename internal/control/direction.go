// Package control maps discrete key presses to continuous camera speeds.
package control

import "fmt"

// Direction is a logical movement direction bound to one or more keys.
type Direction int

const (
	DirectionNone Direction = iota
	Forward
	Back
	TurnLeft
	TurnRight
	StrafeLeft
	StrafeRight
)

var directionNames = map[Direction]string{
	Forward:     "forward",
	Back:        "back",
	TurnLeft:    "turn_left",
	TurnRight:   "turn_right",
	StrafeLeft:  "strafe_left",
	StrafeRight: "strafe_right",
}

// String returns the configuration name of the direction.
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "none"
}

// ParseDirection converts a configuration name to a Direction.
func ParseDirection(name string) (Direction, error) {
	for d, n := range directionNames {
		if n == name {
			return d, nil
		}
	}
	return DirectionNone, fmt.Errorf("unknown direction %q", name)
}

// Axis identifies one of the three camera speed axes.
type Axis int

const (
	AxisDolly Axis = iota
	AxisTruck
	AxisPan
)

// axisSign returns the axis a direction drives and its sign on that axis.
func (d Direction) axisSign() (Axis, float32, bool) {
	switch d {
	case Forward:
		return AxisDolly, 1, true
	case Back:
		return AxisDolly, -1, true
	case StrafeRight:
		return AxisTruck, 1, true
	case StrafeLeft:
		return AxisTruck, -1, true
	case TurnRight:
		return AxisPan, 1, true
	case TurnLeft:
		return AxisPan, -1, true
	}
	return 0, 0, false
}
