package giteditor

import "log/slog"

var logger = slog.Default()

// SetLogger replaces the logger used by this package.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}
