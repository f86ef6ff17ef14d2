package cli

import (
	"github.com/spf13/cobra"
	"github.com/upyfs/upyfs/internal/device"
)

var freeCmd = &cobra.Command{
	Use:   "free",
	Short: "Show free memory space on the device",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return querySysinfo(device.QueryFree)
	},
}

func init() {
	rootCmd.AddCommand(freeCmd)
}
