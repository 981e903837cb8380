package typed_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/appstate/pkg/adapters/fs"
	"github.com/aretw0/appstate/pkg/core"
	"github.com/aretw0/appstate/pkg/typed"
)

type appEvent struct {
	Type    string `yaml:"type"`
	Date    string `yaml:"date"`
	Path    string `yaml:"path,omitempty"`
	Message string `yaml:"message,omitempty"`
}

type appState struct {
	Events             []appEvent                `yaml:"events"`
	ConfigFileContents map[string]map[string]any `yaml:"configFileContents"`
	UIState            struct {
		SettingsOpen bool `yaml:"settingsOpen"`
	} `yaml:"uiState"`
}

func newRepo(t *testing.T) (*typed.Repository[appState], *fs.Repository) {
	t.Helper()
	raw := fs.NewRepository(fs.Config{Path: filepath.Join(t.TempDir(), "appdata.yaml")})
	return typed.NewRepository[appState](raw), raw
}

func TestTypedRepository_DefaultState(t *testing.T) {
	repo, _ := newRepo(t)

	state, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state.Events)
	assert.Empty(t, state.ConfigFileContents)
	assert.True(t, state.UIState.SettingsOpen)
}

func TestTypedRepository_RoundTrip(t *testing.T) {
	repo, raw := newRepo(t)
	ctx := context.Background()

	in := &appState{
		Events: []appEvent{{Type: "file-missing", Date: "2024-05-01", Path: "/srv/appsettings.json"}},
		ConfigFileContents: map[string]map[string]any{
			"/srv/appsettings.json": {"IpFilteringOption": 2},
		},
	}

	msg, err := repo.Save(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, core.Confirmation, msg)

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// The untyped view sees the yaml field names.
	doc, err := raw.Load(ctx)
	require.NoError(t, err)
	ui := doc.(map[string]any)["uiState"].(map[string]any)
	assert.Equal(t, false, ui["settingsOpen"])
}

func TestTypedRepository_ShapeMismatch(t *testing.T) {
	repo, raw := newRepo(t)
	ctx := context.Background()

	_, err := raw.Save(ctx, map[string]any{"events": "not a list"})
	require.NoError(t, err)

	_, err = repo.Load(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrDeserialization), "got %v", err)
}

func TestTypedRepository_NilState(t *testing.T) {
	repo, _ := newRepo(t)

	_, err := repo.Save(context.Background(), nil)
	assert.Error(t, err)
}
