package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cameronfoundation/aba/internal/aba"
)

func newValidateCommand() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "validate <input.csv>",
		Short: "Check a CSV export without writing an ABA file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "aba.yaml", "config file")
	cmd.Flags().StringVar(&opts.format, "format", "", "import format (default from config)")
	cmd.Flags().StringVar(&opts.code, "code", "", "transaction code for formats without one (default from config)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress truncation warnings")

	return cmd
}

func runValidate(stdout, stderr io.Writer, input string, opts importOptions) error {
	cfg, txns, err := loadTransactions(opts, input)
	if err != nil {
		return err
	}

	g := aba.New(cfg.Settings(), aba.WithWarner(newLogger(stderr, opts.quiet)))
	errs := g.Validate(txns)
	for _, err := range errs {
		fmt.Fprintln(stdout, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s: %d invalid record(s)", input, len(errs))
	}

	fmt.Fprintf(stdout, "%s: %d transactions OK\n", input, len(txns))
	return nil
}
