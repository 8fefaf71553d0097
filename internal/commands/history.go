package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cameronfoundation/aba/internal/config"
	"github.com/cameronfoundation/aba/internal/history"
)

func newHistoryCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show previously generated files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.OutOrStdout(), configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "aba.yaml", "config file")

	return cmd
}

func runHistory(w io.Writer, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	entries, err := history.Read(historyPath(configPath, cfg))
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "No files generated yet.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tRUN\tINPUT\tOUTPUT\tRECORDS\tCREDIT\tDEBIT\tNET")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			e.Timestamp.Local().Format(time.DateTime), e.RunID.String()[:8], e.Input, e.Output,
			e.Records, dollars(e.CreditTotal), dollars(e.DebitTotal), dollars(e.NetTotal))
	}
	return tw.Flush()
}
