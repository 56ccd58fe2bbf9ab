package rigatoni

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// RouteTable is the on-disk description of an application's routes. Factories
// and preconditions are code, so the table refers to them by name and the
// application supplies the bindings when the table is built:
//
//	[[route]]
//	identifier = "/games"
//	factory = "game_list"
//	animated = true
//
//	[[route]]
//	identifier = "/games/detail"
//	factory = "game_detail"
//	preconditions = ["logged_in"]
//
//	[[route]]
//	identifier = "/settings/color"
//	factory = "color_picker"
//	modal = true
//	fullscreen = true
type RouteTable struct {
	Routes []RouteTableEntry `toml:"route"`
}

// RouteTableEntry declares a single route path.
type RouteTableEntry struct {
	Identifier    string   `toml:"identifier"`
	Factory       string   `toml:"factory"`
	Preconditions []string `toml:"preconditions"`
	Animated      bool     `toml:"animated"`
	Modal         bool     `toml:"modal"`
	Fullscreen    bool     `toml:"fullscreen"`
	Dimmed        bool     `toml:"dimmed"`
}

// LoadRouteTable reads and decodes a TOML route table from disk.
func LoadRouteTable(path string) (*RouteTable, error) {
	var table RouteTable
	if _, err := toml.DecodeFile(path, &table); err != nil {
		return nil, fmt.Errorf("route table %s: %w", path, err)
	}
	return &table, nil
}

// Build resolves the table's factory keys and precondition names and creates
// the route paths. Unknown keys, missing fields, and duplicate identifiers
// are configuration mistakes and fail the whole build - a half-loaded route
// table is worse than none.
func (t *RouteTable) Build(factories map[string]Factory, preconditions []Precondition) ([]*RoutePath, error) {
	gates := make(map[string]Precondition, len(preconditions))
	for _, gate := range preconditions {
		gates[gate.Name()] = gate
	}

	seen := make(map[string]bool, len(t.Routes))
	paths := make([]*RoutePath, 0, len(t.Routes))

	for _, entry := range t.Routes {
		if entry.Identifier == "" {
			return nil, fmt.Errorf("route table: entry with empty identifier")
		}
		if seen[entry.Identifier] {
			return nil, fmt.Errorf("route table: duplicate identifier %q", entry.Identifier)
		}
		seen[entry.Identifier] = true

		factory, ok := factories[entry.Factory]
		if !ok {
			return nil, fmt.Errorf("route %q: unknown factory %q", entry.Identifier, entry.Factory)
		}

		opts := RouteOptions{
			Animated: entry.Animated,
			Modal:    entry.Modal,
			Present: PresentConfig{
				Fullscreen: entry.Fullscreen,
				Dimmed:     entry.Dimmed,
			},
		}
		for _, name := range entry.Preconditions {
			gate, ok := gates[name]
			if !ok {
				return nil, fmt.Errorf("route %q: unknown precondition %q", entry.Identifier, name)
			}
			opts.Preconditions = append(opts.Preconditions, gate)
		}

		paths = append(paths, NewRoutePath(entry.Identifier, factory, opts))
	}
	return paths, nil
}

// RegisterRouteTable loads a TOML route table and registers every route path
// it declares. Nothing is registered if the table fails to load or build.
func RegisterRouteTable(registry *Registry, path string, factories map[string]Factory, preconditions []Precondition) error {
	table, err := LoadRouteTable(path)
	if err != nil {
		return err
	}
	paths, err := table.Build(factories, preconditions)
	if err != nil {
		return err
	}
	for _, rp := range paths {
		registry.Register(rp)
	}
	return nil
}
