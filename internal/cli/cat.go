package cli

import (
	"github.com/spf13/cobra"
	"github.com/upyfs/upyfs/internal/protocol"
)

var catCmd = &cobra.Command{
	Use:   "cat FILE...",
	Short: "Print files from the device",
	Long: `Displays one or more files stored on the device. A file that cannot
be read is reported by the device inside the result output.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCat,
}

func init() {
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	// Dumping a large file can outlast the query timeout.
	payload, err := runQuery(classTransfer, protocol.Statement("cat", args))
	if err != nil {
		return err
	}
	printPayload(payload)
	return nil
}
