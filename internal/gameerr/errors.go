// Package gameerr defines the error taxonomy shared by the map registry,
// the map state and the cutscene interpreter.
//
// A ConfigError means map, entity or trigger data is malformed or missing; it
// aborts the cutscene in progress but the game can keep running. An
// InvariantError means the map cannot be driven at all (no hero) and is fatal.
package gameerr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMap is returned when a map name is not in the registry.
	ErrUnknownMap = errors.New("unknown map")
	// ErrUnknownEntity is returned when a script addresses an entity id the map does not hold.
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrInvalidData is returned for structurally malformed map data.
	ErrInvalidData = errors.New("invalid map data")
	// ErrMissingHero is returned when a hero-dependent operation finds no "hero" entity.
	ErrMissingHero = errors.New("no hero entity on map")
)

// ConfigError reports malformed or missing map, entity or trigger data.
type ConfigError struct {
	Op      string // operation that found the problem, e.g. "changeMap"
	Subject string // offending name or id
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("config error: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("config error: %s %q: %v", e.Op, e.Subject, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Config builds a ConfigError.
func Config(op, subject string, err error) error {
	return &ConfigError{Op: op, Subject: subject, Err: err}
}

// InvariantError reports a broken runtime invariant the map cannot recover from.
type InvariantError struct {
	Op  string
	Err error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated: %s: %v", e.Op, e.Err)
}

func (e *InvariantError) Unwrap() error { return e.Err }

// Invariant builds an InvariantError.
func Invariant(op string, err error) error {
	return &InvariantError{Op: op, Err: err}
}

// IsConfig reports whether err is, or wraps, a ConfigError.
func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsInvariant reports whether err is, or wraps, an InvariantError.
func IsInvariant(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}
