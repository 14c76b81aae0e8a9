package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryEmpty(t *testing.T) {
	stdout, _, err := execute(t, "", "history")
	require.NoError(t, err)
	assert.Equal(t, "No fortunes served yet\n", stdout)
}

func TestRecordAndListHistory(t *testing.T) {
	home := t.TempDir()
	quotes := filepath.Join(fortunesDir, "quotes")

	_, _, err := executeIn(t, home, "", "--record", "-s", "1", quotes)
	require.NoError(t, err)
	_, _, err = executeIn(t, home, "", "--record", quotes)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(home, "history.db"))
	require.NoError(t, err, "history database is created in the fortuner home")

	stdout, _, err := executeIn(t, home, "", "history")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(stdout, "(quotes)"))
	assert.Equal(t, 1, strings.Count(stdout, "seed=1"))
	assert.Contains(t, stdout, "Neckties strangle clear thinking.\n%\n")

	stdout, _, err = executeIn(t, home, "", "history", "--limit", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(stdout, "(quotes)"))
}

func TestRecordLogsEntry(t *testing.T) {
	_, stderr, err := execute(t, "", "--record", "--log-level", "info", "-s", "1", filepath.Join(fortunesDir, "quotes"))
	require.NoError(t, err)
	assert.Regexp(t, `\[INFO\] Recorded fortune [0-9a-f-]{36} from quotes`, stderr)
}

func TestHistoryNotRecordedByDefault(t *testing.T) {
	home := t.TempDir()
	_, _, err := executeIn(t, home, "", filepath.Join(fortunesDir, "quotes"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(home, "history.db"))
	assert.True(t, os.IsNotExist(err))
}

func TestHistoryEnabledInConfig(t *testing.T) {
	home := t.TempDir()
	dbPath := filepath.Join(t.TempDir(), "served.db")
	config := "history:\n  enabled: true\n  db_path: " + dbPath + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(config), 0644))

	_, _, err := executeIn(t, home, "", "-s", "1", filepath.Join(fortunesDir, "quotes"))
	require.NoError(t, err)

	// The sentinel is never recorded
	_, _, err = executeIn(t, home, "", t.TempDir())
	require.NoError(t, err)

	stdout, _, err := executeIn(t, home, "", "history", "-n", "0")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(stdout, "%\n"))
	assert.NotContains(t, stdout, "No fortunes found")
}

func TestHistoryPatternModeNotRecorded(t *testing.T) {
	home := t.TempDir()
	_, _, err := executeIn(t, home, "", "--record", "-m", "Neckties", fortunesDir)
	require.NoError(t, err)

	stdout, _, err := executeIn(t, home, "", "history")
	require.NoError(t, err)
	assert.Equal(t, "No fortunes served yet\n", stdout)
}

func TestHistoryInvalidLimit(t *testing.T) {
	_, _, err := execute(t, "", "history", "--limit", "-2")
	assert.EqualError(t, err, "--limit must be >= 0, got -2")
}
