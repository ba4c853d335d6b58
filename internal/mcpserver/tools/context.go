package tools

import (
	"github.com/rs/zerolog"
)

// ToolContext carries per-call resources for tool handlers
type ToolContext struct {
	Logger    *zerolog.Logger
	SessionID string
}

// NewToolContext creates a context for one invocation. A nil logger is
// replaced by a disabled one.
func NewToolContext(logger *zerolog.Logger, sessionID string) *ToolContext {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &ToolContext{
		Logger:    logger,
		SessionID: sessionID,
	}
}
