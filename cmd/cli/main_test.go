package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_VerifiesShippedManifest(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"-log-level", "error", filepath.Join("..", "..", "manifests")}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 9, "expected one signature line per builtin")
	require.Contains(t, out.String(), "attr_context.get_int(")
}

func TestRun_VerificationFailure(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A manifest whose arity disagrees with the compiled-in registry.
	drifted := `
		object "attr_context" {
			method "get_item_count" {
				binds = "GetItemCount"
				input "self" { type = attr_context }
				input "extra" { type = int }
				returns = int
			}
		}
	`
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "drift.hcl"), []byte(drifted), 0o600))

	args := []string{"-log-level", "error", tempDir}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "manifest verification failed")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, errOut.String(), "Usage:", "Expected help text to be printed")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
