package rigatoni

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/BrandonKowalski/rigatoni/pkg/rigatoni/internal"
)

// Registry holds the registered route paths, keyed by route identifier.
// At most one path exists per identifier: registering a path whose identifier
// matches an existing entry replaces it, and the replacement silently changes
// behavior for every future dispatch of that identifier. The replacement is
// logged at debug level so misconfigured duplicate registrations can be traced.
//
// Registration and lookup are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	log   *slog.Logger
	paths map[string]*RoutePath
}

// NewRegistry creates an empty registry. Diagnostics go to the package
// logger unless SetLogger overrides it.
func NewRegistry() *Registry {
	return &Registry{
		paths: make(map[string]*RoutePath),
	}
}

// SetLogger overrides the logger used for registration diagnostics.
// NewEngine calls this when its options carry a logger, so registry and
// engine diagnostics land on the same stream.
func (r *Registry) SetLogger(log *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.log = log
}

// logger returns the diagnostics logger; callers must hold mu.
func (r *Registry) logger() *slog.Logger {
	if r.log != nil {
		return r.log
	}
	return internal.GetLogger()
}

// Register inserts a route path, replacing any existing path with the same
// identifier. The latest registration wins.
func (r *Registry) Register(path *RoutePath) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.paths[path.identifier]; ok {
		r.logger().Debug("replacing registered route path",
			"identifier", path.identifier,
			"previous_id", existing.id,
			"id", path.id)
	}
	r.paths[path.identifier] = path
}

// Lookup returns the route path registered under identifier, or false if none.
func (r *Registry) Lookup(identifier string) (*RoutePath, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	path, ok := r.paths[identifier]
	return path, ok
}

// Len returns the number of registered route paths.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.paths)
}

// Identifiers returns the registered route identifiers in sorted order.
func (r *Registry) Identifiers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.paths))
	for identifier := range r.paths {
		out = append(out, identifier)
	}
	sort.Strings(out)
	return out
}
