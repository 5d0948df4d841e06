package cli

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/obsbank/obsctl/pkg/api"
	"github.com/obsbank/obsctl/pkg/logger"
	"github.com/obsbank/obsctl/pkg/print"
)

func RecurringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "recurring ACCOUNT_NUMBER",
		Short:         "List recurring payments for an account",
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

			payments, err := client.RecurringPayments(args[0])
			if err != nil {
				return errors.Cause(err)
			}

			print.RecurringPayments(payments, v.GetString("output"))

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "output format. supported values: json")

	cmd.AddCommand(RecurringCreateCmd())
	cmd.AddCommand(RecurringStopCmd())

	return cmd
}

func RecurringCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "create",
		Short:         "Set up a recurring payment",
		Long:          `Set up a recurring payment. The schedule runs server-side; this only registers it.`,
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

			log.ActionWithSpinner("Creating recurring payment")
			payment, err := client.CreateRecurringPayment(api.CreateRecurringRequest{
				FromAccountNumber:   v.GetString("from"),
				TargetAccountNumber: v.GetString("to"),
				Amount:              v.GetFloat64("amount"),
				Frequency:           v.GetString("frequency"),
				StartDate:           v.GetString("start-date"),
				EndDate:             v.GetString("end-date"),
			})
			if err != nil {
				log.FinishSpinnerWithError()
				return errors.Cause(err)
			}
			log.FinishSpinner()

			log.ActionWithoutSpinner("Recurring payment %d is %s", payment.ID, payment.Status)

			return nil
		},
	}

	cmd.Flags().String("from", "", "account number to pay from")
	cmd.Flags().String("to", "", "target account number")
	cmd.Flags().Float64("amount", 0, "amount per payment")
	cmd.Flags().String("frequency", "", "payment frequency. supported values: DAILY, WEEKLY, MONTHLY")
	cmd.Flags().String("start-date", "", "first payment date (YYYY-MM-DD)")
	cmd.Flags().String("end-date", "", "last payment date (YYYY-MM-DD). omit for indefinite")

	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("frequency")
	cmd.MarkFlagRequired("start-date")

	return cmd
}

func RecurringStopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stop PAYMENT_ID",
		Short:         "Stop a recurring payment",
		Long:          "",
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRunE:       protectedPreRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewCLILogger(cmd.OutOrStdout())

			if len(args) != 1 {
				cmd.Help()
				return errors.New("a payment id is required")
			}

			paymentID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrap(err, "failed to parse payment id")
			}

			client, err := newAPIClient(log)
			if err != nil {
				return errors.Wrap(err, "failed to create api client")
			}

			log.ActionWithSpinner("Stopping recurring payment %d", paymentID)
			if err := client.StopRecurringPayment(paymentID); err != nil {
				log.FinishSpinnerWithError()
				return errors.Cause(err)
			}
			log.FinishSpinner()

			return nil
		},
	}

	return cmd
}
