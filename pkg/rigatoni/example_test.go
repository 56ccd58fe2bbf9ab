package rigatoni_test

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/rigatoni/pkg/rigatoni"
)

// Domain screens - any value the host can display works
type gameListScreen struct {
	games []string
}

type gameDetailScreen struct {
	id string
}

// loggingDelegate reports refused routes; everything else passes through.
type loggingDelegate struct{}

func (loggingDelegate) ShouldDispatch(path *rigatoni.RoutePath, route string) bool { return true }
func (loggingDelegate) WillDispatch(path *rigatoni.RoutePath, route string)        {}
func (loggingDelegate) DidDispatch(path *rigatoni.RoutePath, route string)         {}
func (loggingDelegate) FailedToDispatch(route string) {
	fmt.Println("no route for", route)
}

// Example demonstrates route registration and serialized dispatch.
func Example() {
	ctx := context.Background()

	reg := rigatoni.NewRegistry()
	reg.Register(rigatoni.NewRoutePath("/games", func(ctx context.Context, params rigatoni.Params) (rigatoni.Screen, error) {
		return &gameListScreen{games: []string{"Super Mario World", "Chrono Trigger"}}, nil
	}, rigatoni.RouteOptions{Animated: true}))

	reg.Register(rigatoni.NewRoutePath("/games/detail", func(ctx context.Context, params rigatoni.Params) (rigatoni.Screen, error) {
		return &gameDetailScreen{id: params.Get("id")}, nil
	}, rigatoni.RouteOptions{Animated: true}))

	host := rigatoni.NewStackHost()
	engine := rigatoni.NewEngine(reg, host, rigatoni.EngineOptions{Delegate: loggingDelegate{}})
	defer engine.Close()

	engine.Dispatch(ctx, "/games")
	engine.Dispatch(ctx, "/games/detail?id=45")
	engine.Dispatch(ctx, "/multiplayer") // never registered

	top, _ := engine.TopScreen()
	fmt.Println("stack depth:", len(engine.CurrentStack()))
	fmt.Println("top screen id:", top.(*gameDetailScreen).id)

	// Output:
	// no route for /multiplayer
	// stack depth: 2
	// top screen id: 45
}
