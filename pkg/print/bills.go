package print

import (
	"encoding/json"
	"fmt"

	"github.com/obsbank/obsctl/pkg/api"
)

func Bills(bills []api.Bill, format string) {
	switch format {
	case "json":
		printBillsJSON(bills)
	default:
		printBillsTable(bills)
	}
}

func printBillsJSON(bills []api.Bill) {
	str, _ := json.MarshalIndent(bills, "", "    ")
	fmt.Println(string(str))
}

func printBillsTable(bills []api.Bill) {
	w := NewTabWriter()
	defer w.Flush()

	fmtColumns := "%v\t%s\t%s\t%.2f\t%s\n"
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", "ID", "ACCOUNT", "BILLER", "AMOUNT", "PAID AT")
	for _, bill := range bills {
		fmt.Fprintf(w, fmtColumns, bill.ID, bill.AccountNumber, bill.BillerName, bill.Amount, bill.PaidAt)
	}
}
