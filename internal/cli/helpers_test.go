package cli

import (
	"bytes"
	"io"
	"os"
)

// mockBoard implements Device and records everything sent to it.
type mockBoard struct {
	exchanges []string
	sends     []string
	transfers [][]string

	// replies are consumed one per Exchange; when exhausted, reply is
	// returned for every further call.
	replies []string
	reply   string
	err     error
}

func (m *mockBoard) Exchange(stmt string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.exchanges = append(m.exchanges, stmt)
	if len(m.replies) > 0 {
		r := m.replies[0]
		m.replies = m.replies[1:]
		return r, nil
	}
	return m.reply, nil
}

func (m *mockBoard) Send(stmt string) error {
	if m.err != nil {
		return m.err
	}
	m.sends = append(m.sends, stmt)
	return nil
}

func (m *mockBoard) Transfer(stmts []string) error {
	if m.err != nil {
		return m.err
	}
	m.transfers = append(m.transfers, stmts)
	return nil
}

// useMockBoard swaps the device dialer for a mock and returns it along
// with a pointer to the last requested timeout class. The caller must
// defer the returned restore func.
func useMockBoard(board *mockBoard) (restore func(), lastClass *timeoutClass) {
	class := timeoutClass(-1)
	prev := openDevice
	openDevice = func(c timeoutClass) (Device, error) {
		class = c
		return board, nil
	}
	return func() { openDevice = prev }, &class
}

func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

// envelope wraps a payload the way the device console does, prompts and
// echoes included.
func envelope(payload string) string {
	return ">>> \r\n##### BEGIN RESULTS #####\r\n" + payload + "##### END RESULTS #####\r\n>>> "
}
