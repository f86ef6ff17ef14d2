package cli

import (
	"github.com/spf13/cobra"
	"github.com/upyfs/upyfs/internal/protocol"
)

var (
	lsHuman     bool
	lsLong      bool
	lsRecursive bool
)

var lsCmd = &cobra.Command{
	Use:   "ls [PATH...]",
	Short: "List files and directories on the device",
	Long: `Lists files or directory contents on the device. Without a path the
current directory is listed.`,
	RunE: runLs,
}

func init() {
	lsCmd.Flags().BoolVarP(&lsHuman, "human-readable", "f", false, "print sizes in human readable format")
	lsCmd.Flags().BoolVarP(&lsLong, "long", "l", false, "print a detailed list of file information")
	lsCmd.Flags().BoolVarP(&lsRecursive, "recursive", "r", false, "traverse directories recursively")
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	stmt := protocol.Statement("ls", args,
		protocol.Bool("human_readable", lsHuman),
		protocol.Bool("list_format", lsLong),
		protocol.Bool("rec", lsRecursive),
	)

	payload, err := runQuery(classQuery, stmt)
	if err != nil {
		return err
	}
	printPayload(payload)
	return nil
}
