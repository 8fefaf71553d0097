package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cameronfoundation/aba/internal/model"
)

func newCodesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List the supported transaction codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCodes(cmd.OutOrStdout())
		},
	}
}

func runCodes(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tTYPE\tNAME")
	for _, code := range model.TransactionCodes() {
		kind := "credit"
		if code.IsDebit() {
			kind = "debit"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", code, kind, code.Name())
	}
	return tw.Flush()
}
