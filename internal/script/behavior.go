package script

import "github.com/samdwyer/overworld/internal/grid"

// BehaviorType tags a step of an idle behavior loop.
type BehaviorType string

const (
	BehaviorStand BehaviorType = "stand"
	BehaviorWalk  BehaviorType = "walk"
)

// Behavior is one step of an entity's idle loop.
type Behavior struct {
	Type      BehaviorType   `json:"type" yaml:"type"`
	Direction grid.Direction `json:"direction" yaml:"direction"`
	Ticks     int            `json:"ticks,omitempty" yaml:"ticks,omitempty"` // stand only
}

// StandFor builds a stand step.
func StandFor(dir grid.Direction, ticks int) Behavior {
	return Behavior{Type: BehaviorStand, Direction: dir, Ticks: ticks}
}

// WalkTo builds a walk step.
func WalkTo(dir grid.Direction) Behavior {
	return Behavior{Type: BehaviorWalk, Direction: dir}
}
