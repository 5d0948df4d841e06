package cli

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/obsbank/obsctl/pkg/api"
	"github.com/obsbank/obsctl/pkg/logger"
	"github.com/obsbank/obsctl/pkg/print"
	"github.com/obsbank/obsctl/pkg/util"
)

// The admin console. Visibility is role-gated like the banker console;
// authorization is the server's job.
func AdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "admin",
		Short:         "Admin console",
		Long:          "",
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlags(cmd.Flags())
		},
	}

	cmd.AddCommand(AdminUsersCmd())
	cmd.AddCommand(AdminCreateBankerCmd())
	cmd.AddCommand(AdminToggleActiveCmd())
	cmd.AddCommand(AdminDeleteUserCmd())

	return cmd
}

func AdminUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "users",
		Short:         "List all users",
		Long:          "",
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRunE:       protectedPreRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()

			log := logger.NewCLILogger(cmd.OutOrStdout())

			client, err := newAPIClient(log)
			if err != nil {
				return errors.Wrap(err, "failed to create api client")
			}

			users, err := client.AllUsers()
			if err != nil {
				return errors.Cause(err)
			}

			print.Users(users, v.GetString("output"))

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "output format. supported values: json")

	return cmd
}

func AdminCreateBankerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "create-banker",
		Short:         "Create a banker user",
		Long:          "",
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRunE:       protectedPreRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()

			log := logger.NewCLILogger(cmd.OutOrStdout())

			password := v.GetString("password")
			if password == "" {
				prompted, err := util.PromptForPassword("Password for the new banker (6+ characters):")
				if err != nil {
					return errors.Wrap(err, "failed to read password")
				}
				password = prompted
			}

			client, err := newAPIClient(log)
			if err != nil {
				return errors.Wrap(err, "failed to create api client")
			}

			log.ActionWithSpinner("Creating banker %s", v.GetString("username"))
			user, err := client.CreateBanker(api.CreateBankerRequest{
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

			log.ActionWithoutSpinner("Banker %s created with id %d", user.Username, user.ID)

			return nil
		},
	}

	cmd.Flags().String("username", "", "username for the new banker")
	cmd.Flags().String("email", "", "email address")
	cmd.Flags().String("phone", "", "phone number")
	cmd.Flags().String("password", "", "password. when omitted, you will be prompted")

	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("phone")

	return cmd
}

func AdminToggleActiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "toggle-active USER_ID",
		Short:         "Activate or deactivate a user",
		Long:          "",
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRunE:       protectedPreRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewCLILogger(cmd.OutOrStdout())

			if len(args) != 1 {
				cmd.Help()
				return errors.New("a user id is required")
			}

			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrap(err, "failed to parse user id")
			}

			client, err := newAPIClient(log)
			if err != nil {
				return errors.Wrap(err, "failed to create api client")
			}

			log.ActionWithSpinner("Toggling user %d", userID)
			user, err := client.ToggleUserActive(userID)
			if err != nil {
				log.FinishSpinnerWithError()
				return errors.Cause(err)
			}
			log.FinishSpinner()

			state := "inactive"
			if user.Active {
				state = "active"
			}
			log.ActionWithoutSpinner("User %s is now %s", user.Username, state)

			return nil
		},
	}

	return cmd
}

func AdminDeleteUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "delete USER_ID",
		Short:         "Delete a user",
		Long:          "",
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRunE:       protectedPreRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()

			log := logger.NewCLILogger(cmd.OutOrStdout())

			if len(args) != 1 {
				cmd.Help()
				return errors.New("a user id is required")
			}

			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrap(err, "failed to parse user id")
			}

			if !v.GetBool("yes") {
				idx, _, err := util.PromptForSelect("Deleting a user cannot be undone. Continue?", []string{"No", "Yes"})
				if err != nil || idx == 0 {
					log.ActionWithoutSpinner("Aborted")
					return nil
				}
			}

			client, err := newAPIClient(log)
			if err != nil {
				return errors.Wrap(err, "failed to create api client")
			}

			log.ActionWithSpinner("Deleting user %d", userID)
			if err := client.DeleteUser(userID); err != nil {
				log.FinishSpinnerWithError()
				return errors.Cause(err)
			}
			log.FinishSpinner()

			return nil
		},
	}

	cmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	return cmd
}
