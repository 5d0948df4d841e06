package print

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/obsbank/obsctl/pkg/session"
)

func Session(sess *session.Session, format string) {
	switch format {
	case "json":
		str, _ := json.MarshalIndent(sess, "", "    ")
		fmt.Println(string(str))
	default:
		printSessionTable(sess)
	}
}

func printSessionTable(sess *session.Session) {
	w := NewTabWriter()
	defer w.Flush()

	fmt.Fprintf(w, "USERNAME\t%s\n", sess.Username)
	if sess.FullName != "" {
		fmt.Fprintf(w, "FULL NAME\t%s\n", sess.FullName)
	}
	fmt.Fprintf(w, "EMAIL\t%s\n", sess.Email)
	if sess.PhoneNumber != "" {
		fmt.Fprintf(w, "PHONE\t%s\n", sess.PhoneNumber)
	}
	fmt.Fprintf(w, "ROLES\t%s\n", strings.Join(sess.Roles, ","))
}
