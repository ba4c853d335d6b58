package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRPCRequest_Parsing(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(*testing.T, *JSONRPCRequest)
	}{
		{
			name:  "valid request with id",
			input: `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`,
			check: func(t *testing.T, req *JSONRPCRequest) {
				assert.Equal(t, "2.0", req.JSONRPC)
				assert.Equal(t, "initialize", req.Method)
				assert.NotEmpty(t, req.ID)
			},
		},
		{
			name:  "notification without id",
			input: `{"jsonrpc":"2.0","method":"notifications/initialized"}`,
			check: func(t *testing.T, req *JSONRPCRequest) {
				assert.True(t, req.IsNotification())
			},
		},
		{
			name:  "request with string id",
			input: `{"jsonrpc":"2.0","id":"abc123","method":"tools/list"}`,
			check: func(t *testing.T, req *JSONRPCRequest) {
				assert.False(t, req.IsNotification())
				assert.Equal(t, `"abc123"`, string(req.ID))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req JSONRPCRequest
			require.NoError(t, json.Unmarshal([]byte(tt.input), &req))
			tt.check(t, &req)
		})
	}
}

func TestJSONRPCResponse_Marshaling(t *testing.T) {
	tests := []struct {
		name     string
		response JSONRPCResponse
		wantJSON string
	}{
		{
			name: "success response",
			response: JSONRPCResponse{
				JSONRPC: "2.0",
				ID:      json.RawMessage(`1`),
				Result:  json.RawMessage(`{}`),
			},
			wantJSON: `{"jsonrpc":"2.0","id":1,"result":{}}`,
		},
		{
			name: "error response",
			response: JSONRPCResponse{
				JSONRPC: "2.0",
				ID:      nullableID(nil),
				Error: &JSONRPCError{
					Code:    ParseError,
					Message: "invalid JSON",
				},
			},
			wantJSON: `{"jsonrpc":"2.0","id":null,"error":{"code":-32700,"message":"invalid JSON"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.response)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantJSON, string(got))
		})
	}
}

func TestJSONRPCRequest_IsNotification(t *testing.T) {
	tests := []struct {
		name string
		req  JSONRPCRequest
		want bool
	}{
		{
			name: "request with id is not notification",
			req:  JSONRPCRequest{ID: json.RawMessage(`1`)},
			want: false,
		},
		{
			name: "request without id is notification",
			req:  JSONRPCRequest{},
			want: true,
		},
		{
			name: "request with null id is not notification",
			req:  JSONRPCRequest{ID: json.RawMessage(`null`)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.IsNotification())
		})
	}
}

func TestNegotiateProtocolVersion(t *testing.T) {
	assert.Equal(t, "2025-03-26", negotiateProtocolVersion("2025-03-26"))
	assert.Equal(t, "2024-11-05", negotiateProtocolVersion("2024-11-05"))
	assert.Equal(t, LatestProtocolVersion, negotiateProtocolVersion("1999-01-01"))
	assert.Equal(t, LatestProtocolVersion, negotiateProtocolVersion(""))
}
