package commands

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cameronfoundation/aba/internal/config"
	"github.com/cameronfoundation/aba/internal/importer"
	"github.com/cameronfoundation/aba/internal/model"
)

// importOptions are the flags shared by generate and validate.
type importOptions struct {
	configPath string
	format     string
	code       string
	quiet      bool
}

func newLogger(w io.Writer, quiet bool) *slog.Logger {
	if quiet {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// loadTransactions reads the config and parses input with the selected format.
func loadTransactions(opts importOptions, input string) (*config.Config, []model.Transaction, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}

	var code model.TransactionCode
	if opts.code != "" {
		code, err = model.LookupTransactionCode(opts.code)
	} else {
		code, err = cfg.TransactionCode()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("import transaction code: %w", err)
	}

	format := opts.format
	if format == "" {
		format = cfg.Import.Format
	}
	reg := importer.DefaultRegistry(code)
	p := reg.Get(format)
	if p == nil {
		formats := reg.Formats()
		slices.Sort(formats)
		return nil, nil, fmt.Errorf("unknown import format %q (available: %s)", format, strings.Join(formats, ", "))
	}

	txns, err := importer.ParseFile(p, input)
	if err != nil {
		return nil, nil, err
	}
	return cfg, txns, nil
}

// historyPath resolves a relative history path against the config file's directory.
func historyPath(configPath string, cfg *config.Config) string {
	if filepath.IsAbs(cfg.History.Path) {
		return cfg.History.Path
	}
	return filepath.Join(filepath.Dir(configPath), cfg.History.Path)
}

// dollars formats cents as "1234.50".
func dollars(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
