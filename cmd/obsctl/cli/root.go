package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/obsbank/obsctl/pkg/nav"
)

func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "obsctl",
		Short: "Command-line client for the OBS online banking API",
		Long:  `obsctl is a command-line client for the OBS online banking API. Log in once and your session is kept on disk; every other command uses it until you log out or it expires.`,
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlags(cmd.Flags())
		},
	}

	cobra.OnInitialize(initConfig)

	cmd.PersistentFlags().String("endpoint", "https://localhost:8443", "base URL of the banking API")
	cmd.PersistentFlags().String("session-file", "", "path to the session file (default is $XDG_CONFIG_HOME/obsctl/session.json)")

	cmd.AddCommand(LoginCmd())
	cmd.AddCommand(LogoutCmd())
	cmd.AddCommand(RegisterCmd())
	cmd.AddCommand(WhoamiCmd())
	cmd.AddCommand(ProfileCmd())
	cmd.AddCommand(AccountsCmd())
	cmd.AddCommand(TransferCmd())
	cmd.AddCommand(HistoryCmd())
	cmd.AddCommand(BillsCmd())
	cmd.AddCommand(RecurringCmd())
	cmd.AddCommand(BankerCmd())
	cmd.AddCommand(AdminCmd())
	cmd.AddCommand(AboutCmd())
	cmd.AddCommand(VersionCmd())

	viper.BindPFlags(cmd.PersistentFlags())

	applyNavVisibility(cmd)

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	return cmd
}

func InitAndExecute() {
	if err := RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("OBSCTL")
	viper.AutomaticEnv()
}

// Role-gated commands the navigation tiering can hide from help output.
// Hiding mirrors the nav bar only; a hidden command still runs when
// invoked directly, role enforcement stays server-side.
var roleGatedCommands = []string{"accounts", "transfer", "bills", "recurring", "history", "banker", "admin"}

func applyNavVisibility(root *cobra.Command) {
	store, err := sessionStore()
	if err != nil {
		return
	}

	sess := store.Load()
	if sess == nil {
		// logged out: protected commands stay listed so help output
		// shows what logging in unlocks
		return
	}

	visible := map[string]bool{}
	for _, link := range nav.Links(sess) {
		visible[link] = true
	}

	for _, sub := range root.Commands() {
		for _, name := range roleGatedCommands {
			if sub.Name() == name {
				sub.Hidden = !visible[name]
			}
		}
	}
}
