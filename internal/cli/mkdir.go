package cli

import (
	"github.com/spf13/cobra"
	"github.com/upyfs/upyfs/internal/protocol"
)

var mkdirParents bool

var mkdirCmd = &cobra.Command{
	Use:   "mkdir DIR...",
	Short: "Create directories on the device",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMkdir,
}

func init() {
	// No -p shorthand: the root command claims it for --port.
	mkdirCmd.Flags().BoolVar(&mkdirParents, "parents", false, "create parent directories as needed")
	rootCmd.AddCommand(mkdirCmd)
}

func runMkdir(cmd *cobra.Command, args []string) error {
	stmt := protocol.Statement("mkdir", args, protocol.Bool("parents", mkdirParents))

	payload, err := runQuery(classQuery, stmt)
	if err != nil {
		return err
	}
	printPayload(payload)
	return nil
}
