package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/accounts"
)

func runTally(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestInit_CreatesLedger(t *testing.T) {
	dir := t.TempDir()
	out, err := runTally(t, "init", dir, "--name", "Acme Widgets")
	require.NoError(t, err)
	assert.Contains(t, out, "Acme Widgets")

	_, err = os.Stat(filepath.Join(dir, "tally.db"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "tally.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "business: Acme Widgets")
	assert.Contains(t, string(data), "base_currency: USD")
}

func TestInit_RequiresName(t *testing.T) {
	_, err := runTally(t, "init", t.TempDir())
	require.Error(t, err)
}

func TestInit_Rerun(t *testing.T) {
	dir := t.TempDir()
	_, err := runTally(t, "init", dir, "--name", "Acme Widgets")
	require.NoError(t, err)

	// A second run keeps the existing config and chart.
	out, err := runTally(t, "init", dir, "--name", "Renamed Later")
	require.NoError(t, err)
	assert.Contains(t, out, "Acme Widgets", "existing config wins over the flag")

	data, err := os.ReadFile(filepath.Join(dir, "tally.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "business: Acme Widgets")
}

func TestInit_TallyDBOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TALLY_DB", "books.db")

	_, err := runTally(t, "init", dir, "--name", "Acme Widgets")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "books.db"))
	require.NoError(t, err)
}

func TestChart_ListsReservedAccounts(t *testing.T) {
	dir := t.TempDir()
	_, err := runTally(t, "init", dir, "--name", "Acme Widgets")
	require.NoError(t, err)

	out, err := runTally(t, "chart", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Accounts receivable")
	assert.Contains(t, out, "Accounts payable")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(accounts.ReservedChart())+1, "header plus one line per account")
}
