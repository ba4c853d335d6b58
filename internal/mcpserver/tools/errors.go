package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ToolError represents a structured error from tool execution
type ToolError struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorCode categorizes tool errors
type ErrorCode string

const (
	ErrCodeInvalidParams ErrorCode = "INVALID_PARAMS"
	ErrCodeUnknownTool   ErrorCode = "UNKNOWN_TOOL"
	ErrCodeInternal      ErrorCode = "INTERNAL_ERROR"
)

// NewToolError creates a tool error with optional data
func NewToolError(code ErrorCode, message string, data map[string]any) *ToolError {
	return &ToolError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// ToJSONRPCError converts ToolError to JSON-RPC error code
func (e *ToolError) ToJSONRPCError() (int, string, json.RawMessage) {
	var code int
	switch e.Code {
	case ErrCodeInvalidParams:
		code = -32602 // InvalidParams
	case ErrCodeUnknownTool:
		code = -32601 // MethodNotFound
	default:
		code = -32603 // InternalError
	}

	var data json.RawMessage
	if e.Data != nil {
		dataBytes, _ := json.Marshal(e.Data)
		data = dataBytes
	}

	return code, e.Message, data
}

// FieldError is a single schema violation
type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Message    string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Message
}

// ValidationErrors collects every violation found in one set of arguments
type ValidationErrors []*FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}

// Fields returns the offending field names in report order
func (e ValidationErrors) Fields() []string {
	names := make([]string, 0, len(e))
	for _, fe := range e {
		names = append(names, fe.Field)
	}
	return names
}

// Classify renders any failure as an error-flagged call result with no
// structured content. Validation failures name each offending field.
func Classify(err error) CallResult {
	var text string

	var verrs ValidationErrors
	var toolErr *ToolError
	switch {
	case err == nil:
		text = "Error: unknown failure"
	case errors.As(err, &verrs):
		text = "Input validation error: " + verrs.Error()
	case errors.As(err, &toolErr) && toolErr.Code == ErrCodeUnknownTool:
		text = toolErr.Message
	case errors.As(err, &toolErr):
		text = "Error: " + toolErr.Message
	default:
		text = "Error: " + err.Error()
	}

	return CallResult{
		Content: []ContentBlock{TextBlock(text)},
		IsError: true,
	}
}
