package cli

import (
	"github.com/spf13/cobra"
	"github.com/upyfs/upyfs/internal/protocol"
)

var (
	duMaxDepth int
	duHuman    bool
)

var duCmd = &cobra.Command{
	Use:   "du [PATH...]",
	Short: "Show filesystem usage for paths on the device",
	RunE:  runDu,
}

func init() {
	duCmd.Flags().IntVarP(&duMaxDepth, "max-depth", "d", -1, "maximal traversal depth (-1 for unlimited)")
	duCmd.Flags().BoolVarP(&duHuman, "human-readable", "f", false, "print sizes in human readable format")
	rootCmd.AddCommand(duCmd)
}

func runDu(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	stmt := protocol.Statement("du", args,
		protocol.Int("max_depth", duMaxDepth),
		protocol.Bool("human_readable", duHuman),
	)

	// Recursive traversal of the device filesystem is slow.
	payload, err := runQuery(classTransfer, stmt)
	if err != nil {
		return err
	}
	printPayload(payload)
	return nil
}
