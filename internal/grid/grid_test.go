package grid

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Coord
	}{
		{Up, Coord{0, -1}},
		{Down, Coord{0, 1}},
		{Left, Coord{-1, 0}},
		{Right, Coord{1, 0}},
		{Direction("sideways"), Coord{}},
	}

	for _, tt := range tests {
		if got := tt.dir.Delta(); got != tt.want {
			t.Errorf("Direction(%q).Delta() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%q.Opposite().Opposite() = %q, want %q", d, got, d)
		}
		if sum := d.Delta().Add(d.Opposite().Delta()); sum != (Coord{}) {
			t.Errorf("delta of %q plus its opposite = %v, want zero", d, sum)
		}
	}
}

func TestCoordNext(t *testing.T) {
	start := At(7, 9)
	if got := start.Next(Right); got != At(8, 9) {
		t.Errorf("At(7,9).Next(Right) = %v, want 8,9", got)
	}
	if got := start.Next(Up); got != At(7, 8) {
		t.Errorf("At(7,9).Next(Up) = %v, want 7,8", got)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"up", true},
		{"down", true},
		{"left", true},
		{"right", true},
		{"Up", false},
		{"", false},
		{"north", false},
	}

	for _, tt := range tests {
		_, err := ParseDirection(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseDirection(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseDirection(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestCoordDecoding(t *testing.T) {
	var fromJSON []Coord
	if err := json.Unmarshal([]byte(`[[5,9],[7,4]]`), &fromJSON); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if len(fromJSON) != 2 || fromJSON[0] != At(5, 9) || fromJSON[1] != At(7, 4) {
		t.Errorf("json coords = %v, want [5,9 7,4]", fromJSON)
	}

	var fromYAML []Coord
	if err := yaml.Unmarshal([]byte("- [5, 9]\n- [7, 4]\n"), &fromYAML); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if len(fromYAML) != 2 || fromYAML[1] != At(7, 4) {
		t.Errorf("yaml coords = %v, want [5,9 7,4]", fromYAML)
	}

	var bad Coord
	if err := json.Unmarshal([]byte(`[1,2,3]`), &bad); err == nil {
		t.Error("three component coordinate should fail to decode")
	}
}

func TestDirectionDecoding(t *testing.T) {
	var d Direction
	if err := json.Unmarshal([]byte(`"left"`), &d); err != nil || d != Left {
		t.Errorf("decode \"left\" = %q, %v", d, err)
	}
	if err := json.Unmarshal([]byte(`"diagonal"`), &d); err == nil {
		t.Error("decode \"diagonal\" should fail")
	}
	if err := yaml.Unmarshal([]byte(`down`), &d); err != nil || d != Down {
		t.Errorf("yaml decode down = %q, %v", d, err)
	}
}
