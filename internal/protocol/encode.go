package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Option is a keyword argument for a remote statement. Options render in
// the order given, so encoded statements are deterministic.
type Option struct {
	Key   string
	Value interface{}
}

// Bool returns a boolean keyword option.
func Bool(key string, value bool) Option {
	return Option{Key: key, Value: value}
}

// Int returns an integer keyword option.
func Int(key string, value int) Option {
	return Option{Key: key, Value: value}
}

// Str returns a string keyword option.
func Str(key string, value string) Option {
	return Option{Key: key, Value: value}
}

// Statement renders a call to a device-side function as one interpreter
// statement: positional arguments as comma-separated quoted string
// literals, options as key=value using the interpreter's literal syntax
// (True/False for booleans). The statement is terminated by CRLF plus a
// blank line so the REPL executes it immediately.
//
// Argument values are not escaped against embedded quote characters; a
// path containing a double quote produces a syntactically broken remote
// statement. This matches the device tooling's existing behavior.
func Statement(name string, args []string, opts ...Option) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('"')
		b.WriteString(arg)
		b.WriteByte('"')
	}
	for i, opt := range opts {
		if i > 0 || len(args) > 0 {
			b.WriteString(", ")
		}
		b.WriteString(opt.Key)
		b.WriteByte('=')
		b.WriteString(literal(opt.Value))
	}
	b.WriteByte(')')
	b.WriteString(Terminator)
	b.WriteString(Terminator)
	return b.String()
}

// literal renders a Go value in the remote interpreter's literal syntax.
func literal(v interface{}) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(val)
	case string:
		return `"` + val + `"`
	default:
		return fmt.Sprint(val)
	}
}
