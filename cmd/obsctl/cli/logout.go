package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/obsbank/obsctl/pkg/logger"
)

func LogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "logout",
		Short:         "Sign out and remove the stored session",
		Long:          `Notify the server and remove the stored session. The local session is removed even when the server cannot be reached.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewCLILogger(cmd.OutOrStdout())

			client, err := newAPIClient(log)
			if err != nil {
				return errors.Wrap(err, "failed to create api client")
			}

			if err := client.Logout(); err != nil {
				// best-effort signout: warn, but the local session is gone
				log.Warning("Server signout failed: %v", errors.Cause(err))
			}

			log.ActionWithoutSpinner("Signed out")

			return nil
		},
	}

	return cmd
}
