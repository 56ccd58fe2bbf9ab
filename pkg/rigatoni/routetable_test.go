package rigatoni_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/rigatoni/pkg/rigatoni"
)

func writeRouteTable(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routes.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestRegisterRouteTable(t *testing.T) {
	path := writeRouteTable(t, `
[[route]]
identifier = "/games"
factory = "game_list"
animated = true

[[route]]
identifier = "/games/detail"
factory = "game_detail"
preconditions = ["logged_in"]

[[route]]
identifier = "/settings/color"
factory = "color_picker"
modal = true
dimmed = true
`)

	factories := map[string]rigatoni.Factory{
		"game_list":    staticFactory("games"),
		"game_detail":  staticFactory("detail"),
		"color_picker": staticFactory("picker"),
	}
	loggedIn := rigatoni.NewPrecondition("logged_in", func(ctx context.Context, route string) bool { return true })

	reg := rigatoni.NewRegistry()
	require.NoError(t, rigatoni.RegisterRouteTable(reg, path, factories, []rigatoni.Precondition{loggedIn}))
	assert.Equal(t, 3, reg.Len())

	games, ok := reg.Lookup("/games")
	require.True(t, ok)
	assert.True(t, games.Animated())
	assert.False(t, games.Modal())

	detail, ok := reg.Lookup("/games/detail")
	require.True(t, ok)
	require.Len(t, detail.Preconditions(), 1)
	assert.Equal(t, "logged_in", detail.Preconditions()[0].Name())

	picker, ok := reg.Lookup("/settings/color")
	require.True(t, ok)
	assert.True(t, picker.Modal())

	// The loaded table dispatches end to end.
	host := rigatoni.NewStackHost()
	engine := rigatoni.NewEngine(reg, host, rigatoni.EngineOptions{})
	defer engine.Close()

	require.NoError(t, engine.Dispatch(context.Background(), "/games"))
	assert.Equal(t, []rigatoni.Screen{"games"}, host.CurrentStack())
}

func TestRouteTableUnknownFactory(t *testing.T) {
	path := writeRouteTable(t, `
[[route]]
identifier = "/games"
factory = "nope"
`)

	err := rigatoni.RegisterRouteTable(rigatoni.NewRegistry(), path, map[string]rigatoni.Factory{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown factory "nope"`)
}

func TestRouteTableUnknownPrecondition(t *testing.T) {
	path := writeRouteTable(t, `
[[route]]
identifier = "/games"
factory = "game_list"
preconditions = ["nope"]
`)

	factories := map[string]rigatoni.Factory{"game_list": staticFactory("games")}
	err := rigatoni.RegisterRouteTable(rigatoni.NewRegistry(), path, factories, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown precondition "nope"`)
}

func TestRouteTableDuplicateIdentifier(t *testing.T) {
	path := writeRouteTable(t, `
[[route]]
identifier = "/games"
factory = "game_list"

[[route]]
identifier = "/games"
factory = "game_list"
`)

	factories := map[string]rigatoni.Factory{"game_list": staticFactory("games")}
	reg := rigatoni.NewRegistry()
	err := rigatoni.RegisterRouteTable(reg, path, factories, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate identifier")

	// Nothing was registered from the bad table.
	assert.Equal(t, 0, reg.Len())
}

func TestRouteTableEmptyIdentifier(t *testing.T) {
	path := writeRouteTable(t, `
[[route]]
factory = "game_list"
`)

	factories := map[string]rigatoni.Factory{"game_list": staticFactory("games")}
	err := rigatoni.RegisterRouteTable(rigatoni.NewRegistry(), path, factories, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty identifier")
}

func TestLoadRouteTableMissingFile(t *testing.T) {
	_, err := rigatoni.LoadRouteTable(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
