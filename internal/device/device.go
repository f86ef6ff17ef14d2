// Package device describes the command module running on the board: the
// sysinfo query keys it answers, the probe that detects whether the
// module is installed, and the replies its filesystem helpers produce.
package device

import (
	"strings"

	"github.com/upyfs/upyfs/internal/protocol"
)

// ModuleFile is the filename of the command module on the device.
const ModuleFile = "cli_module.py"

// Query is one sysinfo query key. The device maps each key to a single
// formatted output line.
type Query string

// Memory queries.
const (
	QueryAvail  Query = "avail"  // available userspace
	QueryBSize  Query = "bsize"  // blocksize
	QueryFree   Query = "free"   // free space
	QueryFRSize Query = "frsize" // fragment size
	QuerySize   Query = "size"   // total memory space
)

// System queries.
const (
	QueryFWVer     Query = "fwver"     // firmware version
	QueryHostname  Query = "hostname"  // hostname
	QueryHWRelease Query = "hwrelease" // hardware release
	QueryMachine   Query = "machine"   // machine label
	QuerySysname   Query = "sysname"   // system name
)

// Aggregate queries.
const (
	QueryAll    Query = "all"
	QueryAllMem Query = "all_mem"
	QueryAllSys Query = "all_sys"
)

// MemQueries lists the memory query keys.
var MemQueries = []Query{QueryAvail, QueryBSize, QueryFree, QueryFRSize, QuerySize}

// SysQueries lists the system query keys.
var SysQueries = []Query{QueryFWVer, QueryHostname, QueryHWRelease, QueryMachine, QuerySysname}

// Queries lists every accepted query key, aggregates first.
var Queries = func() []Query {
	all := []Query{QueryAll, QueryAllMem, QueryAllSys}
	all = append(all, MemQueries...)
	return append(all, SysQueries...)
}()

// Valid reports whether q is a query the device understands.
func (q Query) Valid() bool {
	for _, known := range Queries {
		if q == known {
			return true
		}
	}
	return false
}

// Directory-probe replies produced by the device's is_dir helper. Any
// other reply means the path does not exist.
const (
	IsDirTrue  = "TRUE"
	IsDirFalse = "FALSE"
)

// moduleMissingMark is printed by the probe statement when stat on the
// command module raises ENOENT.
const moduleMissingMark = "### [Errno 2] ENOENT ###"

// ProbeStatement returns the statement that checks whether the command
// module is installed on the device. The statement runs against the bare
// REPL, so errors are caught and printed rather than wrapped in a result
// envelope.
func ProbeStatement() string {
	return "try: sb = uos.stat(\"" + ModuleFile + "\")" + protocol.Terminator +
		"except Exception as err: print(\"### {} ###\".format(err))" + protocol.Terminator +
		protocol.Terminator
}

// ModuleMissing inspects the probe output and reports whether the
// command module needs to be installed. Empty output means the device
// did not answer, which is treated as missing.
func ModuleMissing(output string) bool {
	if len(output) == 0 {
		return true
	}
	for _, line := range strings.Split(output, "\r\n") {
		if line == moduleMissingMark {
			return true
		}
	}
	return false
}
