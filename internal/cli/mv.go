package cli

import (
	"github.com/spf13/cobra"
	"github.com/upyfs/upyfs/internal/protocol"
)

var mvCmd = &cobra.Command{
	Use:   "mv SRC... DEST",
	Short: "Move or rename files on the device",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runMv,
}

func init() {
	rootCmd.AddCommand(mvCmd)
}

func runMv(cmd *cobra.Command, args []string) error {
	payload, err := runQuery(classQuery, protocol.Statement("mv", args))
	if err != nil {
		return err
	}
	printPayload(payload)
	return nil
}
