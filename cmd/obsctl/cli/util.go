package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/obsbank/obsctl/pkg/api"
	"github.com/obsbank/obsctl/pkg/logger"
	"github.com/obsbank/obsctl/pkg/nav"
	"github.com/obsbank/obsctl/pkg/session"
)

func sessionStore() (*session.Store, error) {
	path := viper.GetString("session-file")
	if path == "" {
		defaultPath, err := session.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	return session.NewStore(path), nil
}

func newAPIClient(log *logger.CLILogger) (*api.Client, error) {
	store, err := sessionStore()
	if err != nil {
		return nil, err
	}

	endpoint := viper.GetString("endpoint")

	client := api.NewClient(endpoint, store, func() {
		log.Errorf("Your session has expired. Run 'obsctl login' to sign in again.")
	})

	return client, nil
}

// protectedPreRunE is the shared pre-run for commands that need a
// session: bind flags, then refuse to run when logged out. The failed
// command leaves no partial state behind, the CLI equivalent of a
// replacing redirect to the login screen.
func protectedPreRunE(cmd *cobra.Command, args []string) error {
	viper.BindPFlags(cmd.Flags())

	store, err := sessionStore()
	if err != nil {
		return err
	}

	return nav.RequireSession(store)
}
