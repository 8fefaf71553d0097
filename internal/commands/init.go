package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cameronfoundation/aba/internal/aba"
	"github.com/cameronfoundation/aba/internal/config"
)

func newInitCommand() *cobra.Command {
	var o config.OriginatorConfig
	var noAccountNumber bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write an aba.yaml for the originating account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			o.IncludeAccountNumber = !noAccountNumber
			return runInit(cmd.OutOrStdout(), cmd.ErrOrStderr(), absDir, o)
		},
	}

	cmd.Flags().StringVar(&o.BSB, "bsb", "", "originating BSB, e.g. 063-142 (required)")
	cmd.Flags().StringVar(&o.AccountNumber, "account", "", "originating account number (required)")
	cmd.Flags().StringVar(&o.BankName, "bank", "", "three-letter bank code, e.g. CBA (required)")
	cmd.Flags().StringVar(&o.UserName, "user-name", "", "name of the user supplying the file (required)")
	cmd.Flags().StringVar(&o.DirectEntryUserID, "user-id", "", "six-digit direct entry user ID (required)")
	for _, name := range []string{"bsb", "account", "bank", "user-name", "user-id"} {
		_ = cmd.MarkFlagRequired(name)
	}
	cmd.Flags().StringVar(&o.Description, "description", "", "file description, up to 12 characters")
	cmd.Flags().StringVar(&o.DefaultRemitter, "remitter", "", "remitter name used when a row has none")
	cmd.Flags().BoolVar(&noAccountNumber, "no-account-number", false, "leave BSB and account out of the descriptive record")

	return cmd
}

func runInit(stdout, stderr io.Writer, dir string, o config.OriginatorConfig) error {
	cfg := config.Default(o)
	if err := aba.ValidateSettings(cfg.Settings(), newLogger(stderr, false)); err != nil {
		return err
	}

	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(stdout, "Initialized ABA config at %s\n", path)
	return nil
}
