package print

import (
	"encoding/json"
	"fmt"

	"github.com/obsbank/obsctl/pkg/api"
)

func RecurringPayments(payments []api.RecurringPayment, format string) {
	switch format {
	case "json":
		printRecurringJSON(payments)
	default:
		printRecurringTable(payments)
	}
}

func printRecurringJSON(payments []api.RecurringPayment) {
	str, _ := json.MarshalIndent(payments, "", "    ")
	fmt.Println(string(str))
}

func printRecurringTable(payments []api.RecurringPayment) {
	w := NewTabWriter()
	defer w.Flush()

	fmtColumns := "%v\t%s\t%.2f\t%s\t%s\t%s\t%s\n"
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", "ID", "TARGET", "AMOUNT", "FREQUENCY", "START", "END", "STATUS")
	for _, payment := range payments {
		endDate := payment.EndDate
		if endDate == "" {
			endDate = "Indefinite"
		}
		fmt.Fprintf(w, fmtColumns, payment.ID, payment.TargetAccountNumber, payment.Amount, payment.Frequency, payment.StartDate, endDate, payment.Status)
	}
}
