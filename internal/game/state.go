// Package game provides the main game loop and the overworld controller that
// owns the current map.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is free movement: the hero takes input and triggers are live.
	StateExplore State = iota
	// StateCutscene means a script is running; movement is ignored and the
	// action key only dismisses dialogue.
	StateCutscene
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateCutscene:
		return "cutscene"
	default:
		return "unknown"
	}
}
