package exifdir

import (
	"fmt"

	"github.com/paulmatencio/s3c/gLog"
)

// The gLog loggers stay nil until the application calls gLog.InitLog, and a
// library must not crash a host that never did. Output depth 2 keeps the
// caller's file and line in the log prefix.

func tracef(format string, args ...interface{}) {
	if gLog.Trace != nil {
		gLog.Trace.Output(2, fmt.Sprintf(format, args...))
	}
}

func warningf(format string, args ...interface{}) {
	if gLog.Warning != nil {
		gLog.Warning.Output(2, fmt.Sprintf(format, args...))
	}
}
