package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/cameronfoundation/aba/internal/aba"
	"github.com/cameronfoundation/aba/internal/model"
)

// FileName is the config file written by `aba init`.
const FileName = "aba.yaml"

// EnvPrefix prefixes the environment variables that override the originator,
// e.g. ABA_BSB or ABA_DIRECT_ENTRY_USER_ID.
const EnvPrefix = "ABA"

// Config represents the top-level aba.yaml configuration.
type Config struct {
	Originator OriginatorConfig `yaml:"originator"`
	Import     ImportConfig     `yaml:"import"`
	History    HistoryConfig    `yaml:"history"`
}

// OriginatorConfig describes the account the file is sent from.
type OriginatorConfig struct {
	BSB                  string `yaml:"bsb" split_words:"true"`
	AccountNumber        string `yaml:"account_number" split_words:"true"`
	BankName             string `yaml:"bank_name" split_words:"true"`
	UserName             string `yaml:"user_name" split_words:"true"`
	DirectEntryUserID    string `yaml:"direct_entry_user_id" split_words:"true"`
	Description          string `yaml:"description" split_words:"true"`
	DefaultRemitter      string `yaml:"default_remitter" split_words:"true"`
	IncludeAccountNumber bool   `yaml:"include_account_number" split_words:"true"`
}

// ImportConfig picks the CSV parser.
type ImportConfig struct {
	Format          string `yaml:"format"`
	TransactionCode string `yaml:"transaction_code"` // for formats without a code column
}

// HistoryConfig controls the generation log.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads an aba.yaml file from disk and applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default(OriginatorConfig{IncludeAccountNumber: true})
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config for the given originator with sensible defaults.
func Default(o OriginatorConfig) *Config {
	return &Config{
		Originator: o,
		Import: ImportConfig{
			Format:          "donations",
			TransactionCode: string(model.CodeExternallyInitiatedCredit),
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "aba-history.csv",
		},
	}
}

// ApplyEnv overrides originator fields from ABA_* variables that are set.
func (c *Config) ApplyEnv() error {
	if err := envconfig.Process(EnvPrefix, &c.Originator); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	return nil
}

// Settings maps the originator to generator settings.
func (c *Config) Settings() aba.Settings {
	o := c.Originator
	return aba.Settings{
		AccountNumber:        o.AccountNumber,
		BankName:             o.BankName,
		BSB:                  o.BSB,
		Description:          o.Description,
		DirectEntryUserID:    o.DirectEntryUserID,
		IncludeAccountNumber: o.IncludeAccountNumber,
		DefaultRemitter:      o.DefaultRemitter,
		UserName:             o.UserName,
	}
}

// TransactionCode returns the configured import code, checked against the
// known codes.
func (c *Config) TransactionCode() (model.TransactionCode, error) {
	if c.Import.TransactionCode == "" {
		return model.CodeExternallyInitiatedCredit, nil
	}
	return model.LookupTransactionCode(c.Import.TransactionCode)
}
