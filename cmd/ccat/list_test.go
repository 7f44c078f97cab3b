package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemesCommand(t *testing.T) {
	cmd, out := newTestRoot(t)

	require.NoError(t, execute(cmd, "themes"))

	assert.Contains(t, out.String(), "base16-ocean.dark")
	assert.Contains(t, out.String(), "(default)")
}

func TestThemesCommandJSON(t *testing.T) {
	cmd, out := newTestRoot(t)

	require.NoError(t, execute(cmd, "themes", "--json"))

	var names []string
	require.NoError(t, json.Unmarshal(out.Bytes(), &names))
	assert.Contains(t, names, "base16-ocean.dark")
}

func TestSyntaxesCommand(t *testing.T) {
	cmd, out := newTestRoot(t)

	require.NoError(t, execute(cmd, "syntaxes"))

	assert.Contains(t, out.String(), "Python")
	assert.Contains(t, out.String(), "Go")
}

func TestSyntaxesCommandJSON(t *testing.T) {
	cmd, out := newTestRoot(t)

	require.NoError(t, execute(cmd, "syntaxes", "--json"))

	var names []string
	require.NoError(t, json.Unmarshal(out.Bytes(), &names))
	assert.Contains(t, names, "Python")
}
