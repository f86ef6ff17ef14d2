package cli

import (
	"github.com/spf13/cobra"
)

var exitCmd = &cobra.Command{
	Use:   "exit",
	Short: "Leave the interactive shell",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The shell loop intercepts "exit" itself; outside the shell
		// there is nothing to leave.
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exitCmd)
}
