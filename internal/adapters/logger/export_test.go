// export_test.go exports private functions for white-box testing.
package logger

import "io"

var (
	CollectErrorEntriesExported = collectErrorEntries
	FormatErrorEntriesExported  = formatErrorEntries
)

// NewWithConsole creates a Logger whose console output goes to w.
func NewWithConsole(w io.Writer) *Logger {
	return newLogger(w)
}
