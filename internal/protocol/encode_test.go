package protocol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatement(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		args []string
		opts []Option
		want string
	}{
		{
			name: "no arguments",
			cmd:  "restore",
			want: "restore()",
		},
		{
			name: "positional only",
			cmd:  "cat",
			args: []string{"boot.py", "main.py"},
			want: `cat("boot.py", "main.py")`,
		},
		{
			name: "options only",
			cmd:  "sysinfo",
			opts: []Option{Str("query", "hostname")},
			want: `sysinfo(query="hostname")`,
		},
		{
			name: "mixed in order",
			cmd:  "ls",
			args: []string{"."},
			opts: []Option{Bool("human_readable", false), Bool("list_format", true), Bool("rec", false)},
			want: `ls(".", human_readable=False, list_format=True, rec=False)`,
		},
		{
			name: "integer option",
			cmd:  "du",
			args: []string{"lib"},
			opts: []Option{Int("max_depth", -1), Bool("human_readable", true)},
			want: `du("lib", max_depth=-1, human_readable=True)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Statement(tt.cmd, tt.args, tt.opts...)
			assert.Equal(t, tt.want+Terminator+Terminator, got)
		})
	}
}

func TestStatement_TerminatedByBlankLine(t *testing.T) {
	got := Statement("ls", []string{"."})
	assert.True(t, strings.HasSuffix(got, "\r\n\r\n"))
	// No terminator anywhere but the end.
	body := strings.TrimSuffix(got, "\r\n\r\n")
	assert.NotContains(t, body, "\r\n")
}

// Round-trip: a statement fed to a device that echoes it and wraps the
// formatted arguments in an envelope comes back through Extract intact.
func TestStatement_RoundTrip(t *testing.T) {
	stmt := Statement("cat", []string{"boot.py"})

	payload := strings.TrimSuffix(stmt, Terminator+Terminator)
	deviceOutput := ">>> " + stmt + BeginMarker + "\r\n" + payload + "\r\n" + EndMarker + "\r\n>>> "

	got, err := Extract(deviceOutput)
	require.NoError(t, err)
	assert.Equal(t, "\n"+payload+"\n", got)
}
