package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cameronfoundation/aba/internal/aba"
	"github.com/cameronfoundation/aba/internal/history"
)

const dateFlagLayout = "2006-01-02"

func newGenerateCommand() *cobra.Command {
	var opts importOptions
	var output, date string

	cmd := &cobra.Command{
		Use:   "generate <input.csv>",
		Short: "Generate an ABA file from a CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], output, date, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "aba.yaml", "config file")
	cmd.Flags().StringVar(&opts.format, "format", "", "import format (default from config)")
	cmd.Flags().StringVar(&opts.code, "code", "", "transaction code for formats without one (default from config)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress warnings and the summary")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&date, "date", "", "processing date as YYYY-MM-DD (default today)")

	return cmd
}

func runGenerate(stdout, stderr io.Writer, input, output, date string, opts importOptions) error {
	logger := newLogger(stderr, opts.quiet)

	cfg, txns, err := loadTransactions(opts, input)
	if err != nil {
		return err
	}

	settings := cfg.Settings()
	if date != "" {
		settings.ProcessingDate, err = time.ParseInLocation(dateFlagLayout, date, time.Local)
		if err != nil {
			return fmt.Errorf("parsing --date %q: %w", date, err)
		}
	}

	batch, err := aba.New(settings, aba.WithWarner(logger)).Build(txns)
	if err != nil {
		return err
	}

	summaryTo := stdout
	if output == "" || output == "-" {
		output = "-"
		summaryTo = stderr
		if _, err := io.WriteString(stdout, batch.Text); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	} else if err := os.WriteFile(output, []byte(batch.Text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	if !opts.quiet {
		t := batch.Totals
		fmt.Fprintf(summaryTo, "Generated %d records: credit %s, debit %s, net %s\n",
			t.Count, dollars(t.Credit), dollars(t.Debit), dollars(t.Net()))
	}

	if cfg.History.Enabled {
		entry := history.NewEntry(time.Now(), input, output, batch.Totals)
		if err := history.Append(historyPath(opts.configPath, cfg), []history.Entry{entry}); err != nil {
			logger.Warn("failed to write history", "error", err)
		}
	}

	return nil
}
