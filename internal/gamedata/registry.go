package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/overworld/internal/gameerr"
)

// MapRegistry holds validated map records keyed by exact name. It is built
// once at startup and handed to whoever owns the current map.
type MapRegistry struct {
	maps  map[string]*MapDef
	names []string
}

// NewMapRegistry validates defs and indexes them by name.
func NewMapRegistry(defs []MapDef) (*MapRegistry, error) {
	registry := &MapRegistry{
		maps:  make(map[string]*MapDef, len(defs)),
		names: make([]string, 0, len(defs)),
	}
	for i := range defs {
		def := &defs[i]
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, dup := registry.maps[def.Name]; dup {
			return nil, gameerr.Config("register", def.Name, fmt.Errorf("%w: duplicate map name", gameerr.ErrInvalidData))
		}
		registry.maps[def.Name] = def
		registry.names = append(registry.names, def.Name)
	}
	return registry, nil
}

// LoadMapRegistry builds a registry from the embedded maps.json.
func LoadMapRegistry() (*MapRegistry, error) {
	defs, err := LoadMaps()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no maps loaded from maps.json")
	}
	return NewMapRegistry(defs)
}

// LoadMapRegistryFile builds a registry from a JSON or YAML file on disk.
func LoadMapRegistryFile(path string) (*MapRegistry, error) {
	file, err := LoadFile[MapsFile](path)
	if err != nil {
		return nil, err
	}
	if len(file.Maps) == 0 {
		return nil, fmt.Errorf("no maps loaded from %s", path)
	}
	return NewMapRegistry(file.Maps)
}

// MustLoadMapRegistry loads the embedded registry, panicking on error.
func MustLoadMapRegistry() *MapRegistry {
	registry, err := LoadMapRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Lookup returns the map with exactly this name, or a ConfigError wrapping
// gameerr.ErrUnknownMap.
func (r *MapRegistry) Lookup(name string) (*MapDef, error) {
	def, ok := r.maps[name]
	if !ok {
		return nil, gameerr.Config("lookup", name, gameerr.ErrUnknownMap)
	}
	return def, nil
}

// Names returns map names in registration order.
func (r *MapRegistry) Names() []string {
	return r.names
}

// Count returns the number of maps in the registry.
func (r *MapRegistry) Count() int {
	return len(r.names)
}
