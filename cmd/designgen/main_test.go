package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_Generates(t *testing.T) {
	t.Parallel()

	src := `
param "Width" {
  type     = "integer"
  incl_min = 1
  incl_max = 4
}

param "Ratio" {
  type     = "double"
  range    = "[0, Width]"
}
`
	path := filepath.Join(t.TempDir(), "space.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(context.Background(), out, logs, []string{"-count", "2", "-seed", "1", path})

	require.NoError(t, err)
	require.Contains(t, out.String(), `design "design-1"`)
	require.Contains(t, out.String(), `design "design-2"`)
	require.Contains(t, out.String(), "Ratio")
}

func TestRun_LoadError(t *testing.T) {
	t.Parallel()

	invalidHCL := `
		param "A" {
			type = "integer"
		// Missing closing brace here
	`
	path := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(invalidHCL), 0o600))

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{path})

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load configuration")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
