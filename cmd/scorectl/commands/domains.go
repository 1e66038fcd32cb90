package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"stoik.com/emailscore/internal/core/refdata"
)

func domainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "List known disposable-mail domains",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range refdata.DisposableDomains() {
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}
}
