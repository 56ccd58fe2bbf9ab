package rigatoni

import (
	"context"
	"log/slog"
	"sync"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/rigatoni/pkg/rigatoni/internal"
)

const defaultQueueDepth = 16

// Delegate observes and optionally vetoes dispatches. It is a single
// subscriber; there is no broadcast fan-out. All methods are called from the
// engine's serialization domain, so implementations must not call back into
// the engine's mutating operations.
//
// ShouldDispatch is the only hook that affects control flow: returning false
// aborts the dispatch silently. WillDispatch fires immediately before the
// factory runs, DidDispatch immediately after the host mutation, and
// FailedToDispatch when the route string matches no registered identifier.
type Delegate interface {
	ShouldDispatch(path *RoutePath, route string) bool
	WillDispatch(path *RoutePath, route string)
	DidDispatch(path *RoutePath, route string)
	FailedToDispatch(route string)
}

// EngineOptions configures a dispatch engine.
type EngineOptions struct {
	// Delegate observes and vetoes dispatches. Optional.
	Delegate Delegate

	// HostRunner executes host mutations on whatever execution context the
	// host requires (e.g., a UI-owning thread). It must run the function to
	// completion before returning. Only the final host mutation hops through
	// it, never the whole dispatch. When nil, mutations run directly on the
	// engine's worker goroutine.
	HostRunner func(mutate func())

	// QueueDepth bounds the pending-operation buffer. Zero means the default.
	QueueDepth int

	// Logger overrides the package logger for the engine and for the
	// registry's registration diagnostics. Optional.
	Logger *slog.Logger
}

// Stats is a snapshot of the engine's dispatch counters.
type Stats struct {
	Dispatched uint64 // dispatches that reached the host
	Refused    uint64 // dispatches vetoed or denied by a precondition
	NotFound   uint64 // dispatches matching no registered identifier
	Failed     uint64 // dispatches whose factory returned an error
}

// Engine resolves route strings against a registry and applies the resulting
// screens to a ScreenHost. All mutating operations - Dispatch, Present,
// DismissPresented, RemoveAllMatching - funnel through a single worker
// goroutine and execute one at a time in submission order. While one dispatch
// is suspended in a factory or precondition, later operations queue behind it
// rather than running concurrently; two overlapping dispatches can never push
// in nondeterministic order.
//
// Operations are not cancellable mid-flight: the context passed to Dispatch
// reaches factories and preconditions, but a mutation that has begun always
// completes so the host is never left inconsistent. A stalled factory stalls
// the whole queue - a documented limitation, by contract there are no
// timeouts at this layer.
type Engine struct {
	registry *Registry
	host     ScreenHost
	delegate Delegate
	runner   func(mutate func())
	log      *slog.Logger

	jobs      chan job
	sendMu    sync.RWMutex
	closed    atomic.Bool
	closeOnce sync.Once

	dispatched atomic.Uint64
	refused    atomic.Uint64
	notFound   atomic.Uint64
	failed     atomic.Uint64
}

type job struct {
	ctx   context.Context
	apply func(ctx context.Context) error
	done  chan error
}

// NewEngine creates an engine over the given registry and host and starts its
// worker goroutine. The registry may keep receiving registrations after the
// engine starts; reads and writes are serialized inside the registry itself.
// Call Close when the engine is no longer needed.
func NewEngine(registry *Registry, host ScreenHost, opts EngineOptions) *Engine {
	depth := opts.QueueDepth
	if depth <= 0 {
		depth = defaultQueueDepth
	}

	log := opts.Logger
	if log == nil {
		log = internal.GetLogger()
	} else {
		registry.SetLogger(log)
	}

	e := &Engine{
		registry: registry,
		host:     host,
		delegate: opts.Delegate,
		runner:   opts.HostRunner,
		log:      log,
		jobs:     make(chan job, depth),
	}
	go e.loop()
	return e
}

func (e *Engine) loop() {
	for j := range e.jobs {
		j.done <- j.apply(j.ctx)
	}
}

// submit queues an operation and waits for it to complete.
func (e *Engine) submit(ctx context.Context, apply func(ctx context.Context) error) error {
	e.sendMu.RLock()
	if e.closed.Load() {
		e.sendMu.RUnlock()
		return ErrEngineClosed
	}
	j := job{ctx: ctx, apply: apply, done: make(chan error, 1)}
	e.jobs <- j
	e.sendMu.RUnlock()

	return <-j.done
}

// mutate applies a host mutation, hopping into the host's execution context
// when a HostRunner is configured.
func (e *Engine) mutate(fn func()) {
	if e.runner != nil {
		e.runner(fn)
		return
	}
	fn()
}

// Dispatch resolves a route string and applies the resulting screen to the
// host. A route that matches no registered identifier, is vetoed by the
// delegate, or fails a precondition is a silent no-op returning nil; install
// a Delegate to observe refusals. Only a screen production failure returns an
// error, always a *DispatchError, and in that case the host is untouched.
//
// Concurrent Dispatch calls execute one at a time in call order.
func (e *Engine) Dispatch(ctx context.Context, route string) error {
	return e.submit(ctx, func(ctx context.Context) error {
		return e.dispatch(ctx, route)
	})
}

func (e *Engine) dispatch(ctx context.Context, route string) error {
	identifier := PathOnly(route)

	path, ok := e.registry.Lookup(identifier)
	if !ok {
		e.notFound.Inc()
		e.log.Debug("no route path registered", "route", route, "identifier", identifier)
		if e.delegate != nil {
			e.delegate.FailedToDispatch(route)
		}
		return nil
	}

	if e.delegate != nil && !e.delegate.ShouldDispatch(path, route) {
		e.refused.Inc()
		e.log.Debug("delegate vetoed route", "route", route)
		return nil
	}

	// Gates see the full original route string, parameters included.
	for _, gate := range path.preconditions {
		if !evaluateGate(ctx, gate, route, e.log) {
			e.refused.Inc()
			e.log.Debug("precondition denied route", "route", route, "precondition", gate.Name())
			return nil
		}
	}

	params := Parameters(route)

	if e.delegate != nil {
		e.delegate.WillDispatch(path, route)
	}

	screen, err := path.factory(ctx, params)
	if err != nil {
		e.failed.Inc()
		e.log.Warn("screen production failed", "route", route, "error", err)
		return &DispatchError{Op: "dispatch", Route: route, Err: err}
	}

	e.mutate(func() {
		if path.modal {
			e.host.Present(screen, path.animated, path.present)
		} else {
			e.host.Push(screen, path.animated)
		}
	})
	e.dispatched.Inc()

	if e.delegate != nil {
		e.delegate.DidDispatch(path, route)
	}
	return nil
}

// DismissPresented dismisses the modally presented screen, if any.
// The operation queues behind any in-flight dispatch.
func (e *Engine) DismissPresented(ctx context.Context, animated bool) error {
	return e.submit(ctx, func(context.Context) error {
		e.mutate(func() {
			e.host.DismissPresented(animated)
		})
		return nil
	})
}

// RemoveAllMatching removes every screen in the stack matching the predicate,
// without animation, preserving the relative order of the remaining screens.
//
// This can remove the screen the user is currently looking at; use it only
// for screens that are truly disposable. The engine does not guard against
// emptying the stack.
func (e *Engine) RemoveAllMatching(ctx context.Context, match func(Screen) bool) error {
	return e.submit(ctx, func(context.Context) error {
		e.mutate(func() {
			e.host.RemoveAll(match)
		})
		return nil
	})
}

// CurrentStack returns the host's stack snapshot without queuing behind
// in-flight operations. The host guarantees the snapshot is consistent.
func (e *Engine) CurrentStack() []Screen {
	return e.host.CurrentStack()
}

// TopScreen returns the host's top screen without queuing behind in-flight
// operations.
func (e *Engine) TopScreen() (Screen, bool) {
	return e.host.TopScreen()
}

// Stats returns a snapshot of the dispatch counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Dispatched: e.dispatched.Load(),
		Refused:    e.refused.Load(),
		NotFound:   e.notFound.Load(),
		Failed:     e.failed.Load(),
	}
}

// Close stops accepting operations and shuts down the worker goroutine once
// queued operations finish. Close is idempotent. Operations submitted after
// Close return ErrEngineClosed.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		e.sendMu.Lock()
		defer e.sendMu.Unlock()

		e.closed.Store(true)
		close(e.jobs)
	})
}
