package tools

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolError_ToJSONRPCError(t *testing.T) {
	tests := []struct {
		name         string
		err          *ToolError
		expectedCode int
		expectedMsg  string
		hasData      bool
	}{
		{
			name:         "invalid params",
			err:          NewToolError(ErrCodeInvalidParams, "bad args", nil),
			expectedCode: -32602,
			expectedMsg:  "bad args",
		},
		{
			name:         "invalid params with data",
			err:          NewToolError(ErrCodeInvalidParams, "resource uri is required", map[string]any{"field": "uri"}),
			expectedCode: -32602,
			expectedMsg:  "resource uri is required",
			hasData:      true,
		},
		{
			name:         "unknown tool",
			err:          NewToolError(ErrCodeUnknownTool, "Unknown tool: x", nil),
			expectedCode: -32601,
			expectedMsg:  "Unknown tool: x",
		},
		{
			name:         "internal",
			err:          NewToolError(ErrCodeInternal, "boom", nil),
			expectedCode: -32603,
			expectedMsg:  "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg, data := tt.err.ToJSONRPCError()
			assert.Equal(t, tt.expectedCode, code)
			assert.Equal(t, tt.expectedMsg, msg)
			if tt.hasData {
				assert.JSONEq(t, `{"field":"uri"}`, string(data))
			} else {
				assert.Nil(t, data)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "validation errors name each field",
			err: ValidationErrors{
				{Field: "limit", Constraint: "maximum", Message: "must be <= 100, got 101"},
				{Field: "extra", Constraint: "additionalProperties", Message: "is not a recognized field"},
			},
			want: "Input validation error: limit must be <= 100, got 101; extra is not a recognized field",
		},
		{
			name: "wrapped validation errors",
			err:  fmt.Errorf("decode: %w", ValidationErrors{{Field: "arguments", Constraint: "type", Message: "must be a JSON object"}}),
			want: "Input validation error: arguments must be a JSON object",
		},
		{
			name: "unknown tool",
			err:  unknownTool("delete-everything"),
			want: "Unknown tool: delete-everything",
		},
		{
			name: "tool error",
			err:  NewToolError(ErrCodeInternal, "tool panicked: boom", nil),
			want: "Error: tool panicked: boom",
		},
		{
			name: "plain error",
			err:  errors.New("disk on fire"),
			want: "Error: disk on fire",
		},
		{
			name: "nil",
			err:  nil,
			want: "Error: unknown failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.err)

			assert.True(t, result.IsError)
			assert.Nil(t, result.StructuredContent)
			assert.Nil(t, result.Meta)
			require.Len(t, result.Content, 1)
			assert.Equal(t, "text", result.Content[0].Type)
			assert.Equal(t, tt.want, result.Content[0].Text)
		})
	}
}
