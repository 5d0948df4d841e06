package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/obsbank/obsctl/pkg/api"
	"github.com/obsbank/obsctl/pkg/logger"
	"github.com/obsbank/obsctl/pkg/util"
)

func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "register",
		Short:         "Create a new customer account",
		Long:          `Create a new customer account. Registration does not sign you in; run 'obsctl login' afterwards.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()

			log := logger.NewCLILogger(cmd.OutOrStdout())

			password := v.GetString("password")
			if password == "" {
				prompted, err := util.PromptForPassword("Choose a password (6+ characters):")
				if err != nil {
					return errors.Wrap(err, "failed to read password")
				}
				password = prompted
			}

			client, err := newAPIClient(log)
			if err != nil {
				return errors.Wrap(err, "failed to create api client")
			}

			log.ActionWithSpinner("Registering %s", v.GetString("username"))
			msg, err := client.Register(api.RegisterRequest{
				Username:    v.GetString("username"),
				Email:       v.GetString("email"),
				Password:    password,
				PhoneNumber: v.GetString("phone"),
			})
			if err != nil {
				log.FinishSpinnerWithError()
				return errors.Cause(err)
			}
			log.FinishSpinner()

			if msg != "" {
				log.ActionWithoutSpinner(msg)
			}
			log.ActionWithoutSpinner("Run 'obsctl login %s' to sign in.", v.GetString("username"))

			return nil
		},
	}

	cmd.Flags().String("username", "", "username for the new account")
	cmd.Flags().String("email", "", "email address")
	cmd.Flags().String("phone", "", "phone number")
	cmd.Flags().String("password", "", "password. when omitted, you will be prompted")

	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("phone")

	return cmd
}
