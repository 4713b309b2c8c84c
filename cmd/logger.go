package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds a charm logger writing to w at the named level.
func NewLogger(w io.Writer, level string, jsonOutput bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	}
	if jsonOutput {
		opts.Formatter = log.JSONFormatter
	}
	return log.NewWithOptions(w, opts), nil
}
