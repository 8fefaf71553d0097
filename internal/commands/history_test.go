package commands_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cameronfoundation/aba/internal/history"
)

func TestHistory_Empty(t *testing.T) {
	dir := initFoundation(t)

	out, err := runAba(t, dir, "history")
	require.NoError(t, err, out)
	assert.Contains(t, out, "No files generated yet.")
}

func TestHistory_RecordsGenerations(t *testing.T) {
	dir := initFoundation(t)
	writeFile(t, dir, "donations.csv", donationsCSV)

	for _, name := range []string{"first.aba", "second.aba"} {
		out, err := runAba(t, dir, "generate", "donations.csv", "-o", name, "--quiet")
		require.NoError(t, err, out)
	}

	entries, err := history.Read(filepath.Join(dir, "aba-history.csv"))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "first.aba", entries[0].Output)
	assert.Equal(t, int64(179550), entries[0].CreditTotal)
	assert.Equal(t, 3, entries[1].Records)
	assert.NotEqual(t, entries[0].RunID, entries[1].RunID)

	out, err := runAba(t, dir, "history")
	require.NoError(t, err, out)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "first.aba")
	assert.Contains(t, lines[2], "second.aba")
	assert.Contains(t, lines[2], "1795.50")
}

func TestHistory_Disabled(t *testing.T) {
	dir := initFoundation(t)
	writeFile(t, dir, "donations.csv", donationsCSV)

	path := filepath.Join(dir, "aba.yaml")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(string(data), "enabled: true", "enabled: false", 1)), 0o644))

	out, err := runAba(t, dir, "generate", "donations.csv", "-o", "x.aba", "--quiet")
	require.NoError(t, err, out)

	_, statErr := os.Stat(filepath.Join(dir, "aba-history.csv"))
	assert.True(t, os.IsNotExist(statErr))
}
