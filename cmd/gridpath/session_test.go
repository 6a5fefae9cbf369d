package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const courtyard = "../../mapfile/testdata/courtyard.yaml"

func testSession(t *testing.T, path string) *session {
	t.Helper()
	s := newSession(path, time.Second, slog.New(slog.DiscardHandler))
	require.NoError(t, s.load(context.Background()))
	return s
}

func TestRunText_PrintsOnce(t *testing.T) {
	s := testSession(t, courtyard)

	var out bytes.Buffer
	require.NoError(t, runText(context.Background(), s, nil, &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 1+5+1, "title, five grid rows, caption")
	assert.Equal(t, "courtyard", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "S"), "start is the top-left cell")
	assert.Contains(t, lines[4], "G")
	assert.True(t, strings.HasPrefix(lines[6], "cost="), lines[6])
}

func TestRunText_ReloadsOnChange(t *testing.T) {
	data, err := os.ReadFile(courtyard)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "map.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	s := testSession(t, path)

	// rename the scenario so the second print is distinguishable
	edited := strings.Replace(string(data), "name: courtyard", "name: edited", 1)
	require.NoError(t, os.WriteFile(path, []byte(edited), 0o644))

	changes := make(chan string, 1)
	changes <- path
	close(changes)

	var out bytes.Buffer
	require.NoError(t, runText(context.Background(), s, changes, &out))
	assert.Equal(t, 1, strings.Count(out.String(), "courtyard\n"))
	assert.Equal(t, 1, strings.Count(out.String(), "edited\n"))
}

func TestRunText_BadReloadKeepsScenario(t *testing.T) {
	data, err := os.ReadFile(courtyard)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "map.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	s := testSession(t, path)

	require.NoError(t, os.WriteFile(path, []byte("rows: []\n"), 0o644))
	changes := make(chan string, 1)
	changes <- path
	close(changes)

	var out bytes.Buffer
	require.NoError(t, runText(context.Background(), s, changes, &out))
	assert.Equal(t, "courtyard", s.scn.Name)
	assert.Equal(t, 1, strings.Count(out.String(), "courtyard\n"), "nothing reprinted")
}

func TestMoveGoal_Clamps(t *testing.T) {
	s := testSession(t, courtyard)
	g := s.planner.Grid()

	s.moveGoal(context.Background(), 100, 100)
	c := g.WorldToCell(s.goal)
	assert.Equal(t, g.Width-1, c.X)
	assert.Equal(t, g.Height-1, c.Y)
	require.NoError(t, s.err)
	assert.Equal(t, c.Point(), s.res.Goal)

	s.moveGoal(context.Background(), -100, 0)
	assert.Equal(t, 0, g.WorldToCell(s.goal).X)
}
