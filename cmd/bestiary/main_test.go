package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI runs the command with defaults only and returns its output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("BESTIARY_STORAGE_DRIVER", "none")
	t.Setenv("BESTIARY_LOG_LEVEL", "error")
	t.Setenv("BESTIARY_SPOILER_WIDTH", "0")
	cfg := filepath.Join(t.TempDir(), "missing.toml")
	var out bytes.Buffer
	err := run(append([]string{"-config", cfg}, args...), &out)
	return out.String(), err
}

func TestRacesListsEveryRace(t *testing.T) {
	out, err := runCLI(t, "races")
	require.NoError(t, err)
	assert.Contains(t, out, "Kobold")
	assert.Contains(t, out, "Grip, Farmer Maggot's Dog")
}

func TestRecallUnknownRace(t *testing.T) {
	out, err := runCLI(t, "recall", "kobold")
	require.NoError(t, err)
	assert.Contains(t, out, "No battles to the death are recalled.")
	assert.Contains(t, out, "small, dog-headed")

	_, err = runCLI(t, "recall", "balrog of nowhere")
	assert.ErrorContains(t, err, "unknown race")
}

func TestSpoilersWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spoilers.txt")
	_, err := runCLI(t, "spoilers", path)
	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Monster Spoilers")
}

func TestSimulateRunsRounds(t *testing.T) {
	t.Setenv("BESTIARY_RULES_SEED", "7")
	out, err := runCLI(t, "simulate", "kobold", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "After 3 turns: you have")
	assert.Contains(t, out, "is normally found at depths of 100 feet")
}

func TestBadArguments(t *testing.T) {
	_, err := runCLI(t)
	assert.Error(t, err)
	_, err = runCLI(t, "dance")
	assert.ErrorContains(t, err, "unknown command")
	_, err = runCLI(t, "simulate", "kobold", "zero")
	assert.ErrorContains(t, err, "bad round count")
}
