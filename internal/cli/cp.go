package cli

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/upyfs/upyfs/internal/device"
	"github.com/upyfs/upyfs/internal/protocol"
)

// Copy sides.
const (
	sideLocal  = "local"
	sideSerial = "serial"
)

var (
	cpSrcSide   string
	cpDestSide  string
	cpRecursive bool
)

var cpCmd = &cobra.Command{
	Use:   "cp SRC... DEST",
	Short: "Copy local files to the device",
	Long: `Copies files to the device. Sources are local paths and the
destination is a path on the device. When the destination is an existing
device directory each source is copied into it; otherwise a single
source is copied to the destination path.

Copying between two local paths is not permitted; use cp(1) for that.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCp,
}

func init() {
	cpCmd.Flags().StringVarP(&cpSrcSide, "source", "s", sideLocal, "side holding the sources (local|serial)")
	cpCmd.Flags().StringVarP(&cpDestSide, "dest", "d", sideSerial, "side holding the destination (local|serial)")
	cpCmd.Flags().BoolVarP(&cpRecursive, "recursive", "r", false, "copy directories recursively")
	rootCmd.AddCommand(cpCmd)
}

func runCp(cmd *cobra.Command, args []string) error {
	srcs, destPath := args[:len(args)-1], args[len(args)-1]

	if !validSide(cpSrcSide) || !validSide(cpDestSide) {
		return fmt.Errorf("copy sides must be %q or %q", sideLocal, sideSerial)
	}
	if cpSrcSide == sideLocal && cpDestSide == sideLocal {
		return errors.New("copying between two local paths is not permitted; use cp(1)")
	}
	if cpSrcSide == sideSerial {
		return errors.New("copying from the device is not supported")
	}
	if cpRecursive {
		return errors.New("recursive copy is not supported")
	}
	if strings.TrimSpace(destPath) == "" {
		return errors.New("destination path cannot be empty")
	}

	board, err := openDevice(classTransfer)
	if err != nil {
		return err
	}

	raw, err := board.Exchange(protocol.Statement("is_dir", []string{destPath}))
	if err != nil {
		return err
	}
	probe, err := protocol.Extract(raw)
	if err != nil {
		return err
	}

	srcs = dedupPaths(srcs)

	switch strings.TrimSpace(probe) {
	case device.IsDirTrue:
		for _, src := range srcs {
			if err := copyFile(board, src, path.Join(destPath, filepath.Base(src))); err != nil {
				return err
			}
		}
	case device.IsDirFalse:
		if len(srcs) > 1 {
			return fmt.Errorf("%s is not a directory: cannot copy multiple files", destPath)
		}
		if err := copyFile(board, srcs[0], destPath); err != nil {
			return err
		}
	default:
		// Destination does not exist on the device.
		if len(srcs) > 1 {
			return fmt.Errorf("directory %s does not exist: cannot copy multiple files", destPath)
		}
		if err := copyFile(board, srcs[0], destPath); err != nil {
			return err
		}
	}

	return nil
}

func validSide(side string) bool {
	return side == sideLocal || side == sideSerial
}

// copyFile encodes one local file as a statement sequence and plays it
// through a single session bracket.
func copyFile(board Device, src, destPath string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer f.Close()

	stmts, err := protocol.EncodeFile(f, destPath)
	if err != nil {
		return err
	}
	return board.Transfer(stmts)
}

// dedupPaths resolves paths and drops duplicates, keeping first-seen
// order. Each source is transferred at most once per invocation.
func dedupPaths(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	var out []string
	for _, p := range paths {
		resolved, err := filepath.Abs(p)
		if err != nil {
			resolved = p
		}
		if seen[resolved] {
			continue
		}
		seen[resolved] = true
		out = append(out, p)
	}
	return out
}
