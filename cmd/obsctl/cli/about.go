package cli

import (
	"github.com/spf13/cobra"

	"github.com/obsbank/obsctl/pkg/logger"
)

func AboutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "about",
		Short:         "About this client",
		Long:          "",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewCLILogger(cmd.OutOrStdout())

			log.ActionWithoutSpinner("obsctl is the command-line client for the OBS online banking service.")
			log.ActionWithoutSpinner("Accounts, transfers, bill payments and recurring payments are all managed")
			log.ActionWithoutSpinner("through your bank's API; this client holds nothing but your session.")

			return nil
		},
	}

	return cmd
}
