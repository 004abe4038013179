// Package registry provides a global registry for output formatters.
// Formatters register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/vovakirdan/namedcolors/internal/colors"
)

// Options controls how a formatter renders colors.
type Options struct {
	Color       bool // Emit ANSI swatches where the format supports it
	ShowAliases bool
	SwatchWidth int
}

// Formatter writes a list of colors in one output format.
// Formatters are stateless; Format may be called any number of times.
type Formatter interface {
	// ID returns a unique identifier used by --format (e.g., "json").
	ID() string

	// Title returns a human-readable description for the formats command.
	Title() string

	// Format writes colors to w in order.
	Format(w io.Writer, cs []colors.Color, opts Options) error
}

// FormatterInfo contains metadata about a registered formatter.
type FormatterInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new formatter.
type Factory func() Formatter

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a formatter factory to the registry.
// Typically called from a formatter's init() function.
// Panics if a formatter with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: formatter %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered formatters, sorted by ID.
func List() []FormatterInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FormatterInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FormatterInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a formatter by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Formatter, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown format %q", id)
	}

	return f(), nil
}

// Exists checks if a formatter with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
