package cli

import (
	"github.com/spf13/cobra"
	"github.com/upyfs/upyfs/internal/protocol"
)

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Remove the command module from the device and reboot it",
	Long: `Deletes cli_module.py on the device and resets the board. The device
reboots immediately, so no result is read back.`,
	Args: cobra.NoArgs,
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	dev, err := openDevice(classQuery)
	if err != nil {
		return err
	}
	return dev.Send(protocol.Statement("restore", nil))
}
