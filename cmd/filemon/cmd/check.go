package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check system requirements",
	Long:  `Check inotify kernel support and configuration.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf("\n\n%w\n"+CheckDocumentString, err)

			return
		}()

		err = checkCmdRun()
		return
	},
}

var checkFlags struct {
	EnableLogger bool
}

func checkCmdRun() (err error) {
	err = checkKernelCmdRun()
	if err != nil {
		return
	}

	err = checkConfigCmdRun()
	if err != nil {
		return
	}

	return
}

func init() {
	checkCmd.PersistentFlags().BoolVar(
		&checkFlags.EnableLogger,
		"enable-logger", false,
		"enable logging output during checks",
	)

	rootCmd.AddCommand(checkCmd)
}
