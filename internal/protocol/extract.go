package protocol

import "strings"

// Extract locates the result envelope in raw device output and returns
// its payload.
//
// Line terminators are normalized first, then the output is split on the
// BEGIN marker: fewer than two parts means the device never produced an
// envelope (ErrNoResults). Everything after the first BEGIN occurrence is
// kept; if BEGIN appears more than once, later occurrences remain
// embedded in the payload, a compatibility quirk of the device tooling.
// The remainder is split on the END marker (absence is ErrIncomplete) and
// everything before the last END occurrence is the payload.
//
// Leading and trailing console noise is tolerated; extra BEGIN/END pairs
// inside the envelope are not disambiguated.
func Extract(raw string) (string, error) {
	norm := strings.ReplaceAll(raw, "\r\n", "\n")

	parts := strings.Split(norm, BeginMarker)
	if len(parts) < 2 {
		return "", ErrNoResults
	}
	rest := strings.Join(parts[1:], "")

	parts = strings.Split(rest, EndMarker)
	if len(parts) < 2 {
		return "", ErrIncomplete
	}
	return strings.Join(parts[:len(parts)-1], ""), nil
}
