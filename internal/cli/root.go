package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
	"github.com/upyfs/upyfs/internal/config"
	"github.com/upyfs/upyfs/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	flagPort        string
	flagBaud        int
	flagConfig      string
	flagTimeout     time.Duration
	flagVerbose     bool
	flagInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "upyfs",
	Short: "Filesystem shell for MicroPython boards over a serial line",
	Long: `upyfs drives the command module on a MicroPython board through its
serial REPL: it encodes each command as an interpreter statement, sends
it over the line, and extracts the marked result from the console
output. One serial exchange per command; the board may reset in
between.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logging.SetLevel(logging.LevelDebug)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagInteractive {
			return runShell(cmd)
		}
		cmd.Help()
		return errors.New("a command is required unless --interactive is set")
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("upyfs version {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagPort, "port", "p", "", "serial port device path (e.g. /dev/ttyUSB0)")
	pf.IntVarP(&flagBaud, "baud", "b", config.DefaultBaud, "baud rate for the serial connection")
	pf.StringVar(&flagConfig, "config", "", "path to the config file (default .upyfs.yaml)")
	pf.DurationVar(&flagTimeout, "timeout", 0, "read timeout override for every command class")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "start the interactive shell")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
