package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/obsbank/obsctl/pkg/api"
	"github.com/obsbank/obsctl/pkg/logger"
)

func ProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "profile",
		Short:         "Update your profile",
		Long:          `Update the editable profile fields. Roles and the session token are never changed by a profile update.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRunE:       protectedPreRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()

			log := logger.NewCLILogger(cmd.OutOrStdout())

			fullName := v.GetString("full-name")
			email := v.GetString("email")
			phone := v.GetString("phone")
			if fullName == "" && email == "" && phone == "" {
				return errors.New("nothing to update, pass at least one of --full-name, --email, --phone")
			}

			client, err := newAPIClient(log)
			if err != nil {
				return errors.Wrap(err, "failed to create api client")
			}

			log.ActionWithSpinner("Updating profile")
			sess, err := client.UpdateProfile(api.ProfileUpdateRequest{
				FullName:    fullName,
				Email:       email,
				PhoneNumber: phone,
			})
			if err != nil {
				log.FinishSpinnerWithError()
				return errors.Cause(err)
			}
			log.FinishSpinner()

			log.ActionWithoutSpinner("Profile updated for %s", sess.Username)

			return nil
		},
	}

	cmd.Flags().String("full-name", "", "full name to set")
	cmd.Flags().String("email", "", "email address to set")
	cmd.Flags().String("phone", "", "phone number to set")

	return cmd
}
