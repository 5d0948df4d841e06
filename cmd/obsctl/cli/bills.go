package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/obsbank/obsctl/pkg/api"
	"github.com/obsbank/obsctl/pkg/billpay"
	"github.com/obsbank/obsctl/pkg/logger"
	"github.com/obsbank/obsctl/pkg/print"
	"github.com/obsbank/obsctl/pkg/util"
)

func BillsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bills",
		Short:         "List your paid bills",
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

			bills, err := client.MyBills()
			if err != nil {
				return errors.Cause(err)
			}

			print.Bills(bills, v.GetString("output"))

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "output format. supported values: json")

	cmd.AddCommand(BillsPayCmd())

	return cmd
}

func BillsPayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pay",
		Short:         "Pay a bill",
		Long:          `Pay a bill. With --account, --biller and --amount the payment is submitted directly; otherwise an interactive step-by-step flow collects them.`,
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

			account := v.GetString("account")
			biller := v.GetString("biller")
			amount := v.GetFloat64("amount")

			if account != "" && biller != "" && amount > 0 {
				return payBill(client, log, api.BillPayRequest{
					AccountNumber: account,
					BillerName:    biller,
					Amount:        amount,
				})
			}

			return runBillWizard(client, log)
		},
	}

	cmd.Flags().String("account", "", "account number to pay from")
	cmd.Flags().String("biller", "", "biller name")
	cmd.Flags().Float64("amount", 0, "amount to pay")

	return cmd
}

func payBill(client *api.Client, log *logger.CLILogger, r api.BillPayRequest) error {
	log.ActionWithSpinner("Paying %.2f to %s", r.Amount, r.BillerName)
	msg, err := client.PayBill(r)
	if err != nil {
		log.FinishSpinnerWithError()
		return errors.Cause(err)
	}
	log.FinishSpinner()

	if msg == "" {
		msg = "Payment successful"
	}
	log.ActionWithoutSpinner(msg)

	return nil
}

// runBillWizard drives the interactive payment flow. All step ordering
// lives in the billpay state machine; this loop only renders prompts for
// whichever step the flow is in.
func runBillWizard(client *api.Client, log *logger.CLILogger) error {
	accounts, err := client.MyAccounts()
	if err != nil {
		return errors.Cause(err)
	}
	if len(accounts) == 0 {
		return errors.New("you have no accounts to pay from")
	}

	flow := billpay.NewFlow()

	for {
		switch flow.Step() {
		case billpay.StepSelectAccount:
			items := make([]string, 0, len(accounts)+1)
			for _, account := range accounts {
				items = append(items, fmt.Sprintf("%s (%s, %.2f)", account.AccountNumber, account.AccountType, account.Balance))
			}
			items = append(items, "Cancel")

			idx, _, err := util.PromptForSelect("Pay from account", items)
			if err != nil || idx == len(accounts) {
				flow.Abort()
				continue
			}
			if err := flow.SelectAccount(accounts[idx].AccountNumber); err != nil {
				return err
			}

		case billpay.StepSelectBiller:
			items := append(append([]string{}, billpay.Categories...), "Back")

			idx, category, err := util.PromptForSelect("Biller category", items)
			if err != nil {
				flow.Abort()
				continue
			}
			if idx == len(billpay.Categories) {
				flow.Back()
				continue
			}

			provider, err := util.PromptForInput("Provider", nonEmpty("a provider is required"))
			if err != nil {
				flow.Abort()
				continue
			}

			consumerLabel := "Consumer number"
			if category == "Mobile" {
				consumerLabel = "Mobile number"
			}
			consumerNumber, err := util.PromptForInput(consumerLabel, nonEmpty("a consumer number is required"))
			if err != nil {
				flow.Abort()
				continue
			}

			if err := flow.SelectBiller(category, provider, consumerNumber); err != nil {
				log.Errorf("%v", err)
			}

		case billpay.StepEnterAmount:
			input, err := util.PromptForInput("Amount (or 'back')", nil)
			if err != nil {
				flow.Abort()
				continue
			}
			if strings.EqualFold(input, "back") {
				flow.Back()
				continue
			}

			amount, err := strconv.ParseFloat(input, 64)
			if err != nil {
				log.Errorf("%q is not a number", input)
				continue
			}
			if err := flow.SetAmount(amount); err != nil {
				log.Errorf("%v", err)
			}

		case billpay.StepConfirm:
			label := fmt.Sprintf("Pay %.2f to %s from %s", flow.Amount(), flow.BillerName(), flow.AccountNumber())
			idx, _, err := util.PromptForSelect(label, []string{"Pay now", "Back", "Cancel"})
			if err != nil || idx == 2 {
				flow.Abort()
				continue
			}
			if idx == 1 {
				flow.Back()
				continue
			}

			r, err := flow.Confirm()
			if err != nil {
				return err
			}
			return payBill(client, log, r)

		case billpay.StepAborted:
			log.ActionWithoutSpinner("Payment cancelled")
			return nil

		default:
			return errors.Errorf("unexpected wizard step %s", flow.Step())
		}
	}
}

func nonEmpty(msg string) func(string) error {
	return func(input string) error {
		if strings.TrimSpace(input) == "" {
			return errors.New(msg)
		}
		return nil
	}
}
