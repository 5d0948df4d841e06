package print

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/obsbank/obsctl/pkg/api"
)

func Users(users []api.User, format string) {
	switch format {
	case "json":
		printUsersJSON(users)
	default:
		printUsersTable(users)
	}
}

func printUsersJSON(users []api.User) {
	str, _ := json.MarshalIndent(users, "", "    ")
	fmt.Println(string(str))
}

func printUsersTable(users []api.User) {
	w := NewTabWriter()
	defer w.Flush()

	fmtColumns := "%v\t%s\t%s\t%s\t%s\t%s\n"
	fmt.Fprintf(w, fmtColumns, "ID", "USERNAME", "EMAIL", "PHONE", "ROLES", "STATUS")
	for _, user := range users {
		status := "ACTIVE"
		if !user.Active {
			status = "INACTIVE"
		}
		fmt.Fprintf(w, fmtColumns, user.ID, user.Username, user.Email, user.PhoneNumber, strings.Join(user.Roles, ","), status)
	}
}
