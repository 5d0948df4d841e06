package cli

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/obsbank/obsctl/pkg/logger"
	"github.com/obsbank/obsctl/pkg/print"
)

func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "history ACCOUNT_NUMBER",
		Short:         "Show transaction history for an account",
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

			transactions, err := client.TransactionHistory(args[0])
			if err != nil {
				return errors.Cause(err)
			}

			print.Transactions(transactions, v.GetString("output"))

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "output format. supported values: json")

	cmd.AddCommand(HistoryInvoiceCmd())
	cmd.AddCommand(HistoryStatementCmd())

	return cmd
}

func HistoryInvoiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "invoice TRANSACTION_ID",
		Short:         "Download the invoice for a transaction",
		Long:          "",
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRunE:       protectedPreRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()

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

			log.ActionWithSpinner("Downloading invoice for transaction %d", transactionID)
			b, filename, err := client.DownloadInvoice(transactionID)
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
				dest = "invoice-" + args[0] + ".pdf"
			}

			if err := os.WriteFile(dest, b, 0644); err != nil {
				return errors.Wrap(err, "failed to write invoice file")
			}

			log.ActionWithoutSpinner("Wrote %s", dest)

			return nil
		},
	}

	cmd.Flags().String("dest", "", "path to write the invoice to. defaults to the server-suggested filename")

	return cmd
}

func HistoryStatementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "statement ACCOUNT_NUMBER",
		Short:         "Download the statement for an account",
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
			b, filename, err := client.DownloadStatement(args[0])
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
