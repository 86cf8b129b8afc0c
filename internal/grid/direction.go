package grid

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Direction is one of the four grid facings.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Directions lists every valid direction.
var Directions = []Direction{Up, Down, Left, Right}

// Delta returns the unit offset for the direction. An invalid direction has
// a zero delta.
func (d Direction) Delta() Coord {
	switch d {
	case Up:
		return Coord{0, -1}
	case Down:
		return Coord{0, 1}
	case Left:
		return Coord{-1, 0}
	case Right:
		return Coord{1, 0}
	default:
		return Coord{}
	}
}

// Opposite returns the direction facing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	default:
		return false
	}
}

// ParseDirection converts a string such as "left" into a Direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.Valid() {
		return "", fmt.Errorf("invalid direction %q", s)
	}
	return d, nil
}

// UnmarshalJSON accepts an empty string (meaning "unset") or a valid direction.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return d.set(s)
}

// UnmarshalYAML accepts an empty string (meaning "unset") or a valid direction.
func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.set(s)
}

func (d *Direction) set(s string) error {
	if s == "" {
		*d = ""
		return nil
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
