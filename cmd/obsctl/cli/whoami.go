package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/obsbank/obsctl/pkg/print"
)

func WhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "whoami",
		Short:         "Show the stored session",
		Long:          `Show the stored session without making any network call.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()

			store, err := sessionStore()
			if err != nil {
				return errors.Wrap(err, "failed to open session store")
			}

			sess := store.Load()
			if sess == nil {
				return errors.New("not logged in")
			}

			print.Session(sess, v.GetString("output"))

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "output format. supported values: json")

	return cmd
}
