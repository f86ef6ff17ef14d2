package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/upyfs/upyfs/internal/device"
	"github.com/upyfs/upyfs/internal/logging"
)

const (
	shellPrompt = "upyfs> "

	// historyFileName lives in the user's home directory.
	historyFileName = ".upyfs_history"
	historySize     = 500
)

// runShell drives the interactive mode: read a line, dispatch it to the
// matching subcommand, repeat. Each dispatched command still brackets
// its own serial exchange, so the board may reset between lines.
func runShell(cmd *cobra.Command) error {
	probeModule()

	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:                 shellPrompt,
		HistoryFile:            historyPath(),
		HistoryLimit:           historySize,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start line editor: %w", err)
	}
	defer rl.Close()

	root := cmd.Root()
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			// Ctrl-C clears the line, not the shell.
			continue
		}
		if err != nil {
			// Ctrl-D leaves the shell.
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveToHistory(line)

		fields := strings.Fields(line)
		if fields[0] == "exit" {
			return nil
		}
		if !knownCommand(root, fields[0]) {
			fmt.Fprintf(os.Stderr, "unknown command %q, try: %s\n", fields[0], commandNames(root))
			continue
		}

		if err := dispatchLine(root, fields); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}

// dispatchLine runs one shell line through the root command. Each line
// parses its options fresh, so a flag given on one line does not stick
// to the next.
func dispatchLine(root *cobra.Command, fields []string) error {
	resetFlags(root)
	root.SetArgs(fields)
	return root.Execute()
}

// resetFlags returns every subcommand flag set by a previous dispatch
// to its default. Persistent flags keep their values: a --port given at
// shell launch covers the whole session.
func resetFlags(root *cobra.Command) {
	persistent := root.PersistentFlags()
	for _, c := range root.Commands() {
		c.Flags().Visit(func(f *pflag.Flag) {
			if persistent.Lookup(f.Name) != nil {
				return
			}
			f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
}

// probeModule checks whether the command module is installed on the
// device and tells the user how to install it when it is not. Probe
// failures only warn; the shell still starts.
func probeModule() {
	board, err := openDevice(classQuery)
	if err != nil {
		logging.Warn("module probe skipped", "err", err)
		return
	}
	out, err := board.Exchange(device.ProbeStatement())
	if err != nil {
		logging.Warn("module probe failed", "err", err)
		return
	}
	if device.ModuleMissing(out) {
		fmt.Fprintf(os.Stderr,
			"%s not found on the device; install it with: cp %s %s\n",
			device.ModuleFile, device.ModuleFile, device.ModuleFile)
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFileName)
}

func knownCommand(root *cobra.Command, name string) bool {
	if name == "help" {
		return true
	}
	for _, c := range root.Commands() {
		if c.Name() == name {
			return true
		}
	}
	return false
}

func commandNames(root *cobra.Command) string {
	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		if c.Hidden {
			continue
		}
		names = append(names, c.Name())
	}
	return strings.Join(names, ", ")
}
