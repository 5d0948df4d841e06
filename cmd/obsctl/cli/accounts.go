package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/obsbank/obsctl/pkg/api"
	"github.com/obsbank/obsctl/pkg/logger"
	"github.com/obsbank/obsctl/pkg/print"
)

func AccountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "accounts",
		Short:         "List your accounts",
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

			accounts, err := client.MyAccounts()
			if err != nil {
				return errors.Cause(err)
			}

			print.Accounts(accounts, v.GetString("output"))

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "output format. supported values: json")

	cmd.AddCommand(AccountsCreateCmd())

	return cmd
}

func AccountsCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "create",
		Short:         "Open a new account",
		Long:          `Open a new SAVINGS or CURRENT account. Business fields only apply to CURRENT accounts.`,
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

			log.ActionWithSpinner("Creating %s account", v.GetString("type"))
			account, err := client.CreateAccount(api.CreateAccountRequest{
				AccountType:  v.GetString("type"),
				BusinessName: v.GetString("business-name"),
				BusinessType: v.GetString("business-type"),
			})
			if err != nil {
				log.FinishSpinnerWithError()
				return errors.Cause(err)
			}
			log.FinishSpinner()

			log.ActionWithoutSpinner("Account %s created", account.AccountNumber)

			return nil
		},
	}

	cmd.Flags().String("type", "SAVINGS", "account type. supported values: SAVINGS, CURRENT")
	cmd.Flags().String("business-name", "", "business name for CURRENT accounts")
	cmd.Flags().String("business-type", "", "business type for CURRENT accounts")

	return cmd
}
