package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/obsbank/obsctl/pkg/api"
	"github.com/obsbank/obsctl/pkg/logger"
)

func TransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "transfer",
		Short:         "Transfer funds between accounts",
		Long:          `Transfer funds from one of your accounts to another account. Large transfers may be held for banker approval; the transaction status in the response tells you which.`,
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

			log.ActionWithSpinner("Transferring %.2f from %s to %s", v.GetFloat64("amount"), v.GetString("from"), v.GetString("to"))
			transaction, err := client.Transfer(api.TransferRequest{
				FromAccountNumber: v.GetString("from"),
				ToAccountNumber:   v.GetString("to"),
				Amount:            v.GetFloat64("amount"),
			})
			if err != nil {
				log.FinishSpinnerWithError()
				return errors.Cause(err)
			}
			log.FinishSpinner()

			if transaction.Status != "" {
				log.ActionWithoutSpinner("Transaction %d is %s", transaction.ID, transaction.Status)
			} else {
				log.ActionWithoutSpinner("Transaction %d complete", transaction.ID)
			}

			return nil
		},
	}

	cmd.Flags().String("from", "", "account number to transfer from")
	cmd.Flags().String("to", "", "account number to transfer to")
	cmd.Flags().Float64("amount", 0, "amount to transfer")

	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("amount")

	return cmd
}
