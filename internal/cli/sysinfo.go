package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/upyfs/upyfs/internal/device"
	"github.com/upyfs/upyfs/internal/protocol"
)

var sysinfoQuery string

var sysinfoCmd = &cobra.Command{
	Use:   "sysinfo",
	Short: "Show system and memory information of the device",
	Long: `Queries the device for system and memory information.

Memory queries: avail, bsize, free, frsize, size
System queries: fwver, hostname, hwrelease, machine, sysname
Aggregates: all (default), all_mem, all_sys`,
	Args: cobra.NoArgs,
	RunE: runSysinfo,
}

func init() {
	sysinfoCmd.Flags().StringVarP(&sysinfoQuery, "query", "q", string(device.QueryAll), "information to query")
	rootCmd.AddCommand(sysinfoCmd)
}

func runSysinfo(cmd *cobra.Command, args []string) error {
	return querySysinfo(device.Query(sysinfoQuery))
}

// querySysinfo runs one sysinfo exchange; free reuses it.
func querySysinfo(q device.Query) error {
	if !q.Valid() {
		return fmt.Errorf("unknown query %q (valid queries: %v)", q, device.Queries)
	}

	stmt := protocol.Statement("sysinfo", nil, protocol.Str("query", string(q)))
	payload, err := runQuery(classQuery, stmt)
	if err != nil {
		return err
	}
	printPayload(payload)
	return nil
}
