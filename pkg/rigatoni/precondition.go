package rigatoni

import (
	"context"
	"log/slog"
)

// Precondition is a named boolean gate evaluated before a route is dispatched.
// Evaluate receives the full original route string, query parameters included,
// and may block (network checks, entitlement lookups). Every precondition on a
// route path must pass for the dispatch to proceed.
//
// Preconditions never report errors: a gate whose internal computation fails
// must deny rather than propagate. Panics inside Evaluate are recovered by the
// engine and treated as a deny.
//
// Two preconditions with the same name are interchangeable.
type Precondition interface {
	Name() string
	Evaluate(ctx context.Context, route string) bool
}

type precondition struct {
	name string
	eval func(ctx context.Context, route string) bool
}

func (p *precondition) Name() string { return p.name }

func (p *precondition) Evaluate(ctx context.Context, route string) bool {
	return p.eval(ctx, route)
}

// NewPrecondition wraps a plain function as a named Precondition.
func NewPrecondition(name string, eval func(ctx context.Context, route string) bool) Precondition {
	return &precondition{name: name, eval: eval}
}

// evaluateGate runs a precondition, mapping panics to a deny.
func evaluateGate(ctx context.Context, gate Precondition, route string, log *slog.Logger) (pass bool) {
	defer func() {
		if r := recover(); r != nil {
			pass = false
			if log != nil {
				log.Warn("precondition panicked, denying route", "precondition", gate.Name(), "route", route, "panic", r)
			}
		}
	}()
	return gate.Evaluate(ctx, route)
}
