package store

import (
	"fmt"

	"github.com/paulmatencio/s3c/gLog"
)

// The gLog loggers are nil until gLog.InitLog is called, which only the
// commands do.

func tracef(format string, args ...interface{}) {
	if gLog.Trace != nil {
		gLog.Trace.Output(2, fmt.Sprintf(format, args...))
	}
}

func errorf(format string, args ...interface{}) {
	if gLog.Error != nil {
		gLog.Error.Output(2, fmt.Sprintf(format, args...))
	}
}
