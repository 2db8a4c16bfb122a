package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/spf13/cobra"
)

// checkKernelCmd represents the kernel command
var checkKernelCmd = &cobra.Command{
	Use:   "kernel",
	Short: "Check kernel inotify support",
	Long:  `Check that inotify is available and has watches to spare.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf("\n\n%w\n"+CheckDocumentString, err)

			return
		}()

		err = checkKernelCmdRun()
		return
	},
}

var inotifyLimits = []string{
	"/proc/sys/fs/inotify/max_user_instances",
	"/proc/sys/fs/inotify/max_user_watches",
}

func checkKernelCmdRun() (err error) {
	defer Wrap(&err, "check kernel inotify support")

	for i := range inotifyLimits {
		var limit int
		limit, err = readLimit(inotifyLimits[i])
		if err != nil {
			return
		}

		if limit <= 0 {
			err = &ErrInotifyDisabled{Limit: inotifyLimits[i]}
			return
		}
	}

	return
}

func readLimit(path string) (ret int, err error) {
	defer Wrap(&err, "read %s", path)

	var content []byte
	content, err = os.ReadFile(path)
	if err != nil {
		return
	}

	ret, err = strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil {
		return
	}

	return
}

type ErrInotifyDisabled struct {
	Limit string
}

func (e *ErrInotifyDisabled) Error() string {
	return fmt.Sprintf("inotify is disabled on this system (%s is 0).", e.Limit)
}

func init() {
	checkCmd.AddCommand(checkKernelCmd)
}
