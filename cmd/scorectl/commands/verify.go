package commands

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"stoik.com/emailscore/internal/core/domain"
)

func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <email>...",
		Short: "Verify one or more email addresses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) == 1 {
				result, err := verificationService.Verify(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd, result)
			}

			opts := domain.BulkOptions{
				BatchSize: batchSize,
				Delay:     time.Duration(delayMs) * time.Millisecond,
			}
			result, err := verificationService.VerifyBulk(ctx, args, opts)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "addresses per chunk (default 10, max 20)")
	cmd.Flags().IntVar(&delayMs, "delay", 0, "delay between chunks in milliseconds (default 100, min 50)")

	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
