package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// substitution is one metacharacter rewrite applied to a source line
// before it is embedded in a quoted remote string literal.
type substitution struct {
	from string
	to   string
}

// substitutions is applied in slice order. The backslash rule must come
// first: every later rule introduces a backslash, and running it after
// them would double-escape their output. Keeping the table as a slice
// rather than a map makes the order explicit.
var substitutions = []substitution{
	{`\`, `\\`},
	{"\n", `\n`},
	{"\r", `\r`},
	{"\t", "    "},
	{"'", `\'`},
}

// EscapeLine rewrites metacharacters in one source line so the line can
// appear inside a single-quoted interpreter string literal.
func EscapeLine(line string) string {
	for _, s := range substitutions {
		line = strings.ReplaceAll(line, s.from, s.to)
	}
	return line
}

// OpenStatement returns the statement opening the destination file on
// the device in write mode.
func OpenStatement(dest string) string {
	return `fd = open("` + dest + `", "w")` + Terminator + Terminator
}

// WriteStatement returns the statement appending one escaped source line
// to the open destination handle.
func WriteStatement(line string) string {
	return "fd.write('" + EscapeLine(line) + "'.encode(\"utf-8\"))" + Terminator + Terminator
}

// CloseStatement returns the statement closing the destination handle.
func CloseStatement() string {
	return "fd.close()" + Terminator + Terminator
}

// EncodeFile converts a local text source into the statement sequence
// that reconstructs it at dest on the device: one open, one write per
// source line, one close. Lines keep their trailing newline, which the
// escape table turns into a literal \n inside the remote string.
//
// All statements of one file are meant to go through a single session
// bracket; see session.Transfer.
func EncodeFile(src io.Reader, dest string) ([]string, error) {
	stmts := []string{OpenStatement(dest)}

	r := bufio.NewReader(src)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			stmts = append(stmts, WriteStatement(line))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read source: %w", err)
		}
	}

	return append(stmts, CloseStatement()), nil
}
