package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/attrbridge/internal/app"
)

func TestNewConfig_RequiresManifestPath(t *testing.T) {
	t.Parallel()
	_, err := app.NewConfig(app.Config{})
	require.Error(t, err)

	cfg, err := app.NewConfig(app.Config{ManifestPath: "manifests"})
	require.NoError(t, err)
	assert.Equal(t, "manifests", cfg.ManifestPath)
}

func TestApp_RunVerifiesAndDumpsRegistry(t *testing.T) {
	t.Parallel()
	cfg := &app.Config{
		ManifestPath: filepath.Join("..", "..", "manifests"),
		LogFormat:    "text",
		LogLevel:     "error",
	}
	var out, errOut bytes.Buffer

	a := app.NewApp(&out, &errOut, cfg)
	require.Equal(t, 9, a.Registry().Len())
	require.NoError(t, a.Run(context.Background(), cfg))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 9, "one signature line per builtin")
	assert.Equal(t,
		"attr_context.get_int(self: attr_context, attr_name: bytes, default_value: int) -> int",
		lines[0])
	assert.Contains(t, out.String(),
		"attr_context.get_item_attr_assigner(self: attr_context, index: int) -> attr_assigner")
}

func TestApp_RunFailsOnDriftedManifest(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	drifted := `
		object "attr_context" {
			method "get_item_count" {
				binds = "GetItemCount"
				input "self" { type = attr_context }
				returns = float
			}
		}
	`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "drift.hcl"), []byte(drifted), 0o644))

	cfg := &app.Config{ManifestPath: dir, LogFormat: "text", LogLevel: "error"}
	var out, errOut bytes.Buffer

	err := app.NewApp(&out, &errOut, cfg).Run(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest verification failed")
	assert.Empty(t, out.String(), "no table may be printed on failure")
}

func TestApp_RunFailsOnMissingManifests(t *testing.T) {
	t.Parallel()
	cfg := &app.Config{ManifestPath: t.TempDir(), LogFormat: "json", LogLevel: "error"}
	var out, errOut bytes.Buffer

	err := app.NewApp(&out, &errOut, cfg).Run(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load builtin manifests")
}
