// Package rigatoni provides URL-style route dispatch for stack-based screen
// navigation.
//
// Applications register route paths - a route identifier bound to a factory
// that produces a screen, plus optional precondition gates - and then dispatch
// route strings. The engine resolves the route, evaluates its preconditions,
// invokes the factory, and applies the resulting screen to a ScreenHost. All
// host mutations are serialized through a single FIFO queue, so concurrent
// dispatch calls can never interleave pushes on the visible stack.
//
// # Basic Usage
//
//	reg := rigatoni.NewRegistry()
//
//	reg.Register(rigatoni.NewRoutePath("/games", func(ctx context.Context, params rigatoni.Params) (rigatoni.Screen, error) {
//	    return newGameListScreen(), nil
//	}, rigatoni.RouteOptions{Animated: true}))
//
//	reg.Register(rigatoni.NewRoutePath("/games/detail", func(ctx context.Context, params rigatoni.Params) (rigatoni.Screen, error) {
//	    return newGameDetailScreen(params.Get("id")), nil
//	}, rigatoni.RouteOptions{
//	    Preconditions: []rigatoni.Precondition{requireLoggedIn},
//	}))
//
//	host := rigatoni.NewStackHost()
//	engine := rigatoni.NewEngine(reg, host, rigatoni.EngineOptions{})
//	defer engine.Close()
//
//	engine.Dispatch(ctx, "/games")
//	engine.Dispatch(ctx, "/games/detail?id=45")
//
// # Route Strings
//
// A route string is a path with an optional query component:
//
//	/settings
//	/games/detail?id=45&tab=media
//
// The path part identifies the registered route; the query part carries
// parameters for the factory. Parameters never influence route resolution:
// PathOnly("/games/detail?id=45") is the lookup key.
//
// # Refusals
//
// A dispatch that matches no route, is vetoed by the delegate, or fails a
// precondition is a silent no-op; the optional Delegate is the only way to
// observe it. Only screen production failures are returned to the caller.
package rigatoni
