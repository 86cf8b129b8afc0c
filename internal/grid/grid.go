// Package grid provides tile coordinates, facing directions and the tick
// units every overworld timing is expressed in.
package grid

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	// TicksPerSecond is the nominal update rate durations in map data assume.
	TicksPerSecond = 60

	// WalkTicks is how long a single tile step takes, for the hero and NPCs alike.
	WalkTicks = 16

	// RetryTicks is how long an idle walk waits before retrying a blocked tile.
	RetryTicks = 10
)

// Coord is a tile position. Positions never carry sub-tile state.
type Coord struct {
	X, Y int
}

// At is shorthand for Coord{X: x, Y: y}.
func At(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Next returns the tile one step away in the given direction.
func (c Coord) Next(dir Direction) Coord {
	return c.Add(dir.Delta())
}

// String formats the coordinate the way map data keys it ("x,y").
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// MarshalJSON encodes the coordinate as a two element array.
func (c Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.X, c.Y})
}

// UnmarshalJSON decodes a [x, y] pair.
func (c *Coord) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("coordinate must be an [x, y] pair: %w", err)
	}
	return c.setPair(pair)
}

// UnmarshalYAML decodes a [x, y] pair.
func (c *Coord) UnmarshalYAML(value *yaml.Node) error {
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return fmt.Errorf("line %d: coordinate must be an [x, y] pair: %w", value.Line, err)
	}
	return c.setPair(pair)
}

func (c *Coord) setPair(pair []int) error {
	if len(pair) != 2 {
		return fmt.Errorf("coordinate must have 2 components, got %d", len(pair))
	}
	c.X, c.Y = pair[0], pair[1]
	return nil
}
