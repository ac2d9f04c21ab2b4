package level

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Info contains metadata about a registered level.
type Info struct {
	ID   string
	Name string
}

var (
	sources = make(map[string][]byte)
	names   = make(map[string]string)
	mu      sync.RWMutex
)

// Register adds a level definition to the registry.
// Called from init() for the built-in levels. Panics on a duplicate ID or an
// invalid definition, since both are programmer errors in embedded data.
func Register(src []byte) {
	lvl, err := Parse(src)
	if err != nil {
		panic(fmt.Sprintf("level: invalid registered level: %v", err))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := sources[lvl.ID]; exists {
		panic(fmt.Sprintf("level: level %q already registered", lvl.ID))
	}
	sources[lvl.ID] = src
	names[lvl.ID] = lvl.Name
}

// List returns information about all registered levels, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(sources))
	for id := range sources {
		result = append(result, Info{ID: id, Name: names[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := sources[id]
	return ok
}

// Load parses a fresh copy of the registered level with the given ID.
func Load(id string) (*Level, error) {
	mu.RLock()
	src, ok := sources[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("level: unknown level %q", id)
	}
	return Parse(src)
}

// LoadFile parses a level definition from a YAML file on disk.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: cannot read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML level definition.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("level: cannot parse: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}
