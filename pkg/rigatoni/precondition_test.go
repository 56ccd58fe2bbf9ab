package rigatoni_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/rigatoni/pkg/rigatoni"
)

func TestNewPrecondition(t *testing.T) {
	gate := rigatoni.NewPrecondition("logged_in", func(ctx context.Context, route string) bool {
		return route == "/ok"
	})

	assert.Equal(t, "logged_in", gate.Name())
	assert.True(t, gate.Evaluate(context.Background(), "/ok"))
	assert.False(t, gate.Evaluate(context.Background(), "/other"))
}

func TestPanickingPreconditionDeniesRoute(t *testing.T) {
	reg := rigatoni.NewRegistry()
	host := rigatoni.NewStackHost()
	engine := rigatoni.NewEngine(reg, host, rigatoni.EngineOptions{})
	defer engine.Close()

	gate := rigatoni.NewPrecondition("flaky", func(ctx context.Context, route string) bool {
		panic("gate blew up")
	})
	reg.Register(rigatoni.NewRoutePath("/games", staticFactory("games"), rigatoni.RouteOptions{
		Preconditions: []rigatoni.Precondition{gate},
	}))

	// The panic is absorbed and mapped to a deny; dispatch stays predictable.
	require.NoError(t, engine.Dispatch(context.Background(), "/games"))
	assert.Empty(t, host.CurrentStack())
	assert.Equal(t, uint64(1), engine.Stats().Refused)
}

func TestAllPreconditionsMustPass(t *testing.T) {
	reg := rigatoni.NewRegistry()
	host := rigatoni.NewStackHost()
	engine := rigatoni.NewEngine(reg, host, rigatoni.EngineOptions{})
	defer engine.Close()

	allow := rigatoni.NewPrecondition("allow", func(ctx context.Context, route string) bool { return true })
	deny := rigatoni.NewPrecondition("deny", func(ctx context.Context, route string) bool { return false })

	reg.Register(rigatoni.NewRoutePath("/games", staticFactory("games"), rigatoni.RouteOptions{
		Preconditions: []rigatoni.Precondition{allow, deny},
	}))

	require.NoError(t, engine.Dispatch(context.Background(), "/games"))
	assert.Empty(t, host.CurrentStack())
}
