package cli

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/obsbank/obsctl/pkg/logger"
	"github.com/obsbank/obsctl/pkg/util"
)

func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "login USERNAME",
		Short:         "Sign in and store a session",
		Long:          `Sign in to the banking API. The returned session, including the bearer token, is stored on disk and used by every other command until you log out.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()

			log := logger.NewCLILogger(cmd.OutOrStdout())

			if len(args) != 1 {
				cmd.Help()
				return errors.New("a username is required")
			}
			username := args[0]

			password := v.GetString("password")
			if password == "" {
				prompted, err := util.PromptForPassword("Password:")
				if err != nil {
					return errors.Wrap(err, "failed to read password")
				}
				password = prompted
			}

			client, err := newAPIClient(log)
			if err != nil {
				return errors.Wrap(err, "failed to create api client")
			}

			log.ActionWithSpinner("Signing in as %s", username)
			sess, err := client.Login(username, password)
			if err != nil {
				log.FinishSpinnerWithError()
				return errors.Cause(err)
			}
			log.FinishSpinner()

			log.ActionWithoutSpinner("Signed in as %s (%s)", sess.Username, strings.Join(sess.Roles, ", "))

			return nil
		},
	}

	cmd.Flags().String("password", "", "password to sign in with. when omitted, you will be prompted")

	return cmd
}
