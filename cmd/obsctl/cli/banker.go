package cli

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/obsbank/obsctl/pkg/api"
	"github.com/obsbank/obsctl/pkg/logger"
	"github.com/obsbank/obsctl/pkg/print"
)

// The banker console. Command visibility follows the banker role, but
// nothing here blocks other authenticated users from trying; the server
// rejects them.
func BankerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "banker",
		Short:         "Banker console",
		Long:          "",
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlags(cmd.Flags())
		},
	}

	cmd.AddCommand(BankerPendingCmd())
	cmd.AddCommand(BankerApproveCmd())
	cmd.AddCommand(BankerRejectCmd())
	cmd.AddCommand(BankerSearchCmd())
	cmd.AddCommand(BankerToggleActiveCmd())
	cmd.AddCommand(BankerDepositCmd())
	cmd.AddCommand(BankerTransactionsCmd())
	cmd.AddCommand(BankerStatementCmd())

	return cmd
}

func BankerPendingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pending",
		Short:         "List transactions awaiting approval",
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

			transactions, err := client.PendingTransactions()
			if err != nil {
				return errors.Cause(err)
			}

			print.Transactions(transactions, v.GetString("output"))

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "output format. supported values: json")

	return cmd
}

func BankerApproveCmd() *cobra.Command {
	return bankerDecisionCmd("approve", "Approve a pending transaction", func(client *api.Client, id int64) error {
		return client.ApproveTransaction(id)
	})
}

func BankerRejectCmd() *cobra.Command {
	return bankerDecisionCmd("reject", "Reject a pending transaction", func(client *api.Client, id int64) error {
		return client.RejectTransaction(id)
	})
}

func bankerDecisionCmd(verb string, short string, decide func(*api.Client, int64) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           verb + " TRANSACTION_ID",
		Short:         short,
		Long:          "",
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRunE:       protectedPreRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewCLILogger(cmd.OutOrStdout())

			if len(args) != 1 {
				cmd.Help()
				return errors.New("a transaction id is required")
			}

			transactionID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrap(err, "failed to parse transaction id")
			}

			client, err := newAPIClient(log)
			if err != nil {
				return errors.Wrap(err, "failed to create api client")
			}

			log.ActionWithSpinner("Submitting %s for transaction %d", verb, transactionID)
			if err := decide(client, transactionID); err != nil {
				log.FinishSpinnerWithError()
				return errors.Cause(err)
			}
			log.FinishSpinner()

			return nil
		},
	}

	return cmd
}

func BankerSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "search ACCOUNT_NUMBER",
		Short:         "Look up an account",
		Long:          "",
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRunE:       protectedPreRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()

			log := logger.NewCLILogger(cmd.OutOrStdout())

			if len(args) != 1 {
				cmd.Help()
				return errors.New("an account number is required")
			}

			client, err := newAPIClient(log)
			if err != nil {
				return errors.Wrap(err, "failed to create api client")
			}

			account, err := client.SearchAccount(args[0])
			if err != nil {
				return errors.Cause(err)
			}

			print.Accounts([]api.Account{*account}, v.GetString("output"))

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "output format. supported values: json")

	return cmd
}

func BankerToggleActiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "toggle-active ACCOUNT_NUMBER",
		Short:         "Freeze or unfreeze an account",
		Long:          "",
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRunE:       protectedPreRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewCLILogger(cmd.OutOrStdout())

			if len(args) != 1 {
				cmd.Help()
				return errors.New("an account number is required")
			}

			client, err := newAPIClient(log)
			if err != nil {
				return errors.Wrap(err, "failed to create api client")
			}

			log.ActionWithSpinner("Toggling account %s", args[0])
			account, err := client.ToggleAccountActive(args[0])
			if err != nil {
				log.FinishSpinnerWithError()
				return errors.Cause(err)
			}
			log.FinishSpinner()

			state := "frozen"
			if account.Active {
				state = "active"
			}
			log.ActionWithoutSpinner("Account %s is now %s", account.AccountNumber, state)

			return nil
		},
	}

	return cmd
}

func BankerDepositCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "deposit",
		Short:         "Deposit funds into an account",
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

			log.ActionWithSpinner("Depositing %.2f into %s", v.GetFloat64("amount"), v.GetString("account"))
			transaction, err := client.Deposit(api.DepositRequest{
				AccountNumber: v.GetString("account"),
				Amount:        v.GetFloat64("amount"),
			})
			if err != nil {
				log.FinishSpinnerWithError()
				return errors.Cause(err)
			}
			log.FinishSpinner()

			log.ActionWithoutSpinner("Transaction %d recorded", transaction.ID)

			return nil
		},
	}

	cmd.Flags().String("account", "", "account number to deposit into")
	cmd.Flags().Float64("amount", 0, "amount to deposit")

	cmd.MarkFlagRequired("account")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func BankerTransactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "transactions ACCOUNT_NUMBER",
		Short:         "Show any account's transactions",
		Long:          "",
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRunE:       protectedPreRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()

			log := logger.NewCLILogger(cmd.OutOrStdout())

			if len(args) != 1 {
				cmd.Help()
				return errors.New("an account number is required")
			}

			client, err := newAPIClient(log)
			if err != nil {
				return errors.Wrap(err, "failed to create api client")
			}

			transactions, err := client.AccountTransactions(args[0])
			if err != nil {
				return errors.Cause(err)
			}

			print.Transactions(transactions, v.GetString("output"))

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "output format. supported values: json")

	return cmd
}

func BankerStatementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "statement ACCOUNT_NUMBER",
		Short:         "Download any account's statement",
		Long:          "",
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRunE:       protectedPreRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()

			log := logger.NewCLILogger(cmd.OutOrStdout())

			if len(args) != 1 {
				cmd.Help()
				return errors.New("an account number is required")
			}

			client, err := newAPIClient(log)
			if err != nil {
				return errors.Wrap(err, "failed to create api client")
			}

			log.ActionWithSpinner("Downloading statement for account %s", args[0])
			b, filename, err := client.DownloadAccountStatement(args[0])
			if err != nil {
				log.FinishSpinnerWithError()
				return errors.Cause(err)
			}
			log.FinishSpinner()

			dest := v.GetString("dest")
			if dest == "" {
				dest = filename
			}
			if dest == "" {
				dest = "statement-" + args[0] + ".pdf"
			}

			if err := os.WriteFile(dest, b, 0644); err != nil {
				return errors.Wrap(err, "failed to write statement file")
			}

			log.ActionWithoutSpinner("Wrote %s", dest)

			return nil
		},
	}

	cmd.Flags().String("dest", "", "path to write the statement to. defaults to the server-suggested filename")

	return cmd
}
