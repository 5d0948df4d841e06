package print

import (
	"encoding/json"
	"fmt"

	"github.com/obsbank/obsctl/pkg/api"
)

func Accounts(accounts []api.Account, format string) {
	switch format {
	case "json":
		printAccountsJSON(accounts)
	default:
		printAccountsTable(accounts)
	}
}

func printAccountsJSON(accounts []api.Account) {
	str, _ := json.MarshalIndent(accounts, "", "    ")
	fmt.Println(string(str))
}

func printAccountsTable(accounts []api.Account) {
	w := NewTabWriter()
	defer w.Flush()

	fmtColumns := "%s\t%s\t%.2f\t%s\t%s\n"
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", "ACCOUNT", "TYPE", "BALANCE", "STATUS", "BUSINESS")
	for _, account := range accounts {
		status := "ACTIVE"
		if !account.Active {
			status = "FROZEN"
		}
		fmt.Fprintf(w, fmtColumns, account.AccountNumber, account.AccountType, account.Balance, status, account.BusinessName)
	}
}
