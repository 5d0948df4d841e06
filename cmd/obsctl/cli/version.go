package cli

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/obsbank/obsctl/pkg/buildversion"
)

type VersionOutput struct {
	Version string `json:"version"`
	GitSHA  string `json:"gitSha"`
	Go      string `json:"go"`
}

func VersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "version",
		Short:         "Print the current version and exit",
		Long:          `Print the current version and exit`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()

			output := VersionOutput{
				Version: buildversion.Version(),
				GitSHA:  buildversion.GitSHA(),
				Go:      buildversion.GoVersion(),
			}

			if v.GetString("output") == "json" {
				str, err := json.MarshalIndent(output, "", "    ")
				if err != nil {
					return errors.Wrap(err, "failed to marshal version output")
				}
				fmt.Println(string(str))
				return nil
			}

			fmt.Printf("obsctl version %s\n", output.Version)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "output format. supported values: json")

	return cmd
}
