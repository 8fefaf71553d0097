package commands_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodes(t *testing.T) {
	out, err := runAba(t, t.TempDir(), "codes")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10, "header and nine codes")
	assert.Contains(t, lines[0], "CODE")
	assert.Regexp(t, `^13\s+debit\s+Externally initiated debit$`, lines[1])
	assert.Regexp(t, `^50\s+credit\s+Externally initiated credit$`, lines[2])
	assert.Contains(t, out, "Payroll payment")
}
