package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"stoik.com/emailscore/internal/core/service"
)

var (
	verificationService *service.VerificationService

	batchSize int
	delayMs   int
)

func Execute() error {
	root := &cobra.Command{
		Use:   "scorectl",
		Short: "Score email addresses from the command line",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLevel(log.WarnLevel)
			verificationService = service.NewVerificationService(nil)
		},
	}

	root.AddCommand(verifyCmd(), domainsCmd())
	return root.Execute()
}
