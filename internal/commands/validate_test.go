package commands_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Clean(t *testing.T) {
	dir := initFoundation(t)
	writeFile(t, dir, "donations.csv", donationsCSV)

	out, err := runAba(t, dir, "validate", "donations.csv", "--quiet")
	require.NoError(t, err, out)
	assert.Contains(t, out, "donations.csv: 3 transactions OK")
}

func TestValidate_ReportsEveryError(t *testing.T) {
	dir := initFoundation(t)
	bad := strings.Replace(donationsCSV, "123-456,123456", "12-3456,123456", 1)
	bad = strings.Replace(bad, "987654321,Donation Oct", "9876543210,Donation Oct", 1)
	writeFile(t, dir, "bad.csv", bad)

	out, err := runAba(t, dir, "validate", "bad.csv", "--quiet")
	require.Error(t, err)
	assert.Contains(t, out, "detail record 1: bsb")
	assert.Contains(t, out, "detail record 3: accountNumber")
	assert.Contains(t, out, "2 invalid record(s)")
}

func TestValidate_ParseError(t *testing.T) {
	dir := initFoundation(t)
	writeFile(t, dir, "broken.csv", "a,b,c\n")

	out, err := runAba(t, dir, "validate", "broken.csv")
	require.Error(t, err)
	assert.Contains(t, out, "reading donations CSV")
}
