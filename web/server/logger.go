package server

import (
	"fmt"
	"log"
	"strings"

	"github.com/calluna-lt3/raytrace/pkg/core"
)

// RenderLogger implements core.Logger by tagging server log lines with a render ID
type RenderLogger struct {
	renderID string
	out      *log.Logger
}

// NewRenderLogger creates a logger for a specific render
func NewRenderLogger(renderID string, out *log.Logger) core.Logger {
	if out == nil {
		out = log.Default()
	}
	return &RenderLogger{
		renderID: renderID,
		out:      out,
	}
}

// Printf implements core.Logger interface
func (rl *RenderLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	rl.out.Printf("[%s] %s", rl.renderID, message)
}
