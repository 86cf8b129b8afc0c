package gameerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigErrorWrapping(t *testing.T) {
	err := fmt.Errorf("running cutscene: %w", Config("changeMap", "Atlantis", ErrUnknownMap))

	if !IsConfig(err) {
		t.Error("IsConfig() = false, want true")
	}
	if IsInvariant(err) {
		t.Error("IsInvariant() = true, want false")
	}
	if !errors.Is(err, ErrUnknownMap) {
		t.Error("errors.Is(err, ErrUnknownMap) = false, want true")
	}
	want := `running cutscene: config error: changeMap "Atlantis": unknown map`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestInvariantErrorWrapping(t *testing.T) {
	err := Invariant("checkForActionCutscene", ErrMissingHero)

	if !IsInvariant(err) {
		t.Error("IsInvariant() = false, want true")
	}
	if IsConfig(err) {
		t.Error("IsConfig() = true, want false")
	}
	if !errors.Is(err, ErrMissingHero) {
		t.Error("errors.Is(err, ErrMissingHero) = false, want true")
	}
}
