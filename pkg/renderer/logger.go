package renderer

import (
	"log"
	"os"

	"github.com/calluna-lt3/raytrace/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stderr.
// Stdout is left free for image data.
type DefaultLogger struct {
	out *log.Logger
}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	dl.out.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{out: log.New(os.Stderr, "", log.LstdFlags)}
}

// discardLogger drops every message
type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}

// NewDiscardLogger returns a logger that ignores all output
func NewDiscardLogger() core.Logger {
	return discardLogger{}
}
