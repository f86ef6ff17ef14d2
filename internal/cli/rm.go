package cli

import (
	"github.com/spf13/cobra"
	"github.com/upyfs/upyfs/internal/protocol"
)

var rmRecursive bool

var rmCmd = &cobra.Command{
	Use:   "rm FILE...",
	Short: "Remove files or directories from the device",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRm,
}

func init() {
	rmCmd.Flags().BoolVarP(&rmRecursive, "recursive", "r", false, "remove directories recursively")
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	stmt := protocol.Statement("rm", args, protocol.Bool("rec", rmRecursive))

	payload, err := runQuery(classQuery, stmt)
	if err != nil {
		return err
	}
	printPayload(payload)
	return nil
}
