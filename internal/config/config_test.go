package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cameronfoundation/aba/internal/aba"
	"github.com/cameronfoundation/aba/internal/model"
)

func foundation() OriginatorConfig {
	return OriginatorConfig{
		BSB:                  "063-142",
		AccountNumber:        "10419362",
		BankName:             "CBA",
		UserName:             "The Cameron Family Foundation",
		DirectEntryUserID:    "301500",
		Description:          "Donations",
		DefaultRemitter:      "CameronFoundation",
		IncludeAccountNumber: true,
	}
}

func TestRoundTrip(t *testing.T) {
	cfg := Default(foundation())
	cfg.History.Enabled = false

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default(foundation())

	assert.Equal(t, "063-142", cfg.Originator.BSB)
	assert.Equal(t, "donations", cfg.Import.Format)
	assert.Equal(t, "50", cfg.Import.TransactionCode)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "aba-history.csv", cfg.History.Path)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("originator: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadKeepsDefaultsForMissingSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("originator:\n  bsb: 123-456\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "123-456", cfg.Originator.BSB)
	assert.Equal(t, "donations", cfg.Import.Format)
	assert.True(t, cfg.History.Enabled)
}

func TestLoadIncludeAccountNumberDefaultsTrue(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("originator:\n  bsb: 123-456\n  bank_name: CBA\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Originator.IncludeAccountNumber)
	assert.True(t, cfg.Settings().IncludeAccountNumber)

	require.NoError(t, os.WriteFile(path, []byte("originator:\n  include_account_number: false\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Originator.IncludeAccountNumber, "explicit false is kept")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default(foundation())))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "user_name: The Cameron Family Foundation")
	assert.Contains(t, contents, `direct_entry_user_id: "301500"`)
	assert.Contains(t, contents, "include_account_number: true")
	assert.Contains(t, contents, "format: donations")
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default(foundation())))

	t.Setenv("ABA_BSB", "123-456")
	t.Setenv("ABA_DIRECT_ENTRY_USER_ID", "999999")
	t.Setenv("ABA_INCLUDE_ACCOUNT_NUMBER", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "123-456", cfg.Originator.BSB)
	assert.Equal(t, "999999", cfg.Originator.DirectEntryUserID)
	assert.False(t, cfg.Originator.IncludeAccountNumber)
	assert.Equal(t, "CBA", cfg.Originator.BankName, "unset variables leave the file value")
}

func TestEnvOverrideInvalidBool(t *testing.T) {
	t.Setenv("ABA_INCLUDE_ACCOUNT_NUMBER", "sometimes")
	cfg := Default(foundation())
	assert.Error(t, cfg.ApplyEnv())
}

func TestSettings(t *testing.T) {
	s := Default(foundation()).Settings()

	assert.Equal(t, aba.Settings{
		AccountNumber:        "10419362",
		BankName:             "CBA",
		BSB:                  "063-142",
		Description:          "Donations",
		DirectEntryUserID:    "301500",
		IncludeAccountNumber: true,
		DefaultRemitter:      "CameronFoundation",
		UserName:             "The Cameron Family Foundation",
	}, s)
	assert.True(t, s.ProcessingDate.IsZero())
	assert.NoError(t, aba.ValidateSettings(s, aba.NopWarner{}))
}

func TestTransactionCode(t *testing.T) {
	cfg := Default(foundation())
	code, err := cfg.TransactionCode()
	require.NoError(t, err)
	assert.Equal(t, model.CodeExternallyInitiatedCredit, code)

	cfg.Import.TransactionCode = "53"
	code, err = cfg.TransactionCode()
	require.NoError(t, err)
	assert.Equal(t, model.CodePayroll, code)

	cfg.Import.TransactionCode = ""
	code, err = cfg.TransactionCode()
	require.NoError(t, err)
	assert.Equal(t, model.CodeExternallyInitiatedCredit, code)

	cfg.Import.TransactionCode = "99"
	_, err = cfg.TransactionCode()
	var unknown *model.UnknownTransactionCodeError
	assert.ErrorAs(t, err, &unknown)
}
