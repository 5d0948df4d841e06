package print

import (
	"encoding/json"
	"fmt"

	"github.com/obsbank/obsctl/pkg/api"
)

func Transactions(transactions []api.Transaction, format string) {
	switch format {
	case "json":
		printTransactionsJSON(transactions)
	default:
		printTransactionsTable(transactions)
	}
}

func printTransactionsJSON(transactions []api.Transaction) {
	str, _ := json.MarshalIndent(transactions, "", "    ")
	fmt.Println(string(str))
}

func printTransactionsTable(transactions []api.Transaction) {
	w := NewTabWriter()
	defer w.Flush()

	fmtColumns := "%v\t%s\t%s\t%.2f\t%s\t%s\n"
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", "ID", "TIMESTAMP", "DESCRIPTION", "AMOUNT", "TYPE", "STATUS")
	for _, transaction := range transactions {
		fmt.Fprintf(w, fmtColumns, transaction.ID, transaction.Timestamp, transaction.Description, transaction.Amount, transaction.Type, transaction.Status)
	}
}
