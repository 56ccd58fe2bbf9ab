package rigatoni

import (
	"context"

	"github.com/google/uuid"
)

// Screen is whatever a ScreenHost can display. The engine never inspects it;
// it only carries screens from factories to the host.
type Screen any

// Factory produces the screen for a dispatched route. It receives the
// parameters parsed from the route string and may block while it assembles
// the screen (loading data, etc.). Returning an error aborts the dispatch
// before anything touches the host.
type Factory func(ctx context.Context, params Params) (Screen, error)

// PresentConfig carries modal presentation options for the host.
// The engine passes it through untouched.
type PresentConfig struct {
	Fullscreen bool // cover the full window instead of presenting as a sheet
	Dimmed     bool // dim the content behind the presented screen
}

// RouteOptions configures a route path at registration time.
type RouteOptions struct {
	Preconditions []Precondition // gates that must all pass before dispatch
	Animated      bool           // animate the stack mutation
	Modal         bool           // present modally instead of pushing
	Present       PresentConfig  // host presentation options, only used when Modal
}

// RoutePath binds a route identifier to a screen factory plus gating rules.
// Route paths are created at app-configuration time and are immutable
// thereafter. Two route paths with the same identifier are the same logical
// path regardless of their factories or preconditions.
type RoutePath struct {
	id            string
	identifier    string
	factory       Factory
	preconditions []Precondition
	animated      bool
	modal         bool
	present       PresentConfig
}

// NewRoutePath creates an immutable route path for the given identifier.
func NewRoutePath(identifier string, factory Factory, opts RouteOptions) *RoutePath {
	preconditions := make([]Precondition, len(opts.Preconditions))
	copy(preconditions, opts.Preconditions)

	return &RoutePath{
		id:            uuid.NewString(),
		identifier:    identifier,
		factory:       factory,
		preconditions: preconditions,
		animated:      opts.Animated,
		modal:         opts.Modal,
		present:       opts.Present,
	}
}

// ID returns the unique token assigned to this route path instance.
// Unlike the identifier, it distinguishes two registrations of the same route.
func (rp *RoutePath) ID() string { return rp.id }

// Identifier returns the route identifier this path is registered under.
func (rp *RoutePath) Identifier() string { return rp.identifier }

// Animated reports whether stack mutations for this path are animated.
func (rp *RoutePath) Animated() bool { return rp.animated }

// Modal reports whether this path presents modally instead of pushing.
func (rp *RoutePath) Modal() bool { return rp.modal }

// Preconditions returns a copy of the path's precondition gates.
func (rp *RoutePath) Preconditions() []Precondition {
	out := make([]Precondition, len(rp.preconditions))
	copy(out, rp.preconditions)
	return out
}

// Equal reports whether two route paths are the same logical path.
// Equality is defined by route identifier alone.
func (rp *RoutePath) Equal(other *RoutePath) bool {
	if other == nil {
		return false
	}
	return rp.identifier == other.identifier
}
