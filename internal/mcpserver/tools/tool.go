package tools

import (
	"context"
	"encoding/json"

	"github.com/TaylorBeck/lead-finder-chatgpt/internal/mcpserver/widgets"
)

// ToolName identifies one of the closed set of tools the server exposes
type ToolName string

const (
	ToolFindBusinessLeads  ToolName = "find-business-leads"
	ToolAnalyzeLeadTrends  ToolName = "analyze-lead-trends"
	ToolExportToCRM        ToolName = "export-to-crm"
	ToolEnrichProspectData ToolName = "enrich-prospect-data"
)

// ToolDefinition describes an MCP tool with its name, description, and input schema
type ToolDefinition struct {
	Name        ToolName
	Title       string
	Description string
	Schema      Schema
	WidgetID    string // empty for tools that render no UI
}

// Payload is the typed structured content produced by a completed tool call
type Payload interface {
	// Summary is the one-line human readable description of the outcome
	Summary() string
}

// Handler processes a validated tool invocation
type Handler func(ctx context.Context, tc *ToolContext, in Input) (Payload, error)

// Tool pairs a definition with its handler for registration
type Tool struct {
	Definition ToolDefinition
	Handler    Handler
}

// ToolDescriptor is returned by tools/list (MCP specification format)
type ToolDescriptor struct {
	Name        string                  `json:"name"`
	Title       string                  `json:"title,omitempty"`
	Description string                  `json:"description"`
	InputSchema map[string]any          `json:"inputSchema"`
	Meta        *widgets.DescriptorMeta `json:"_meta,omitempty"`
}

// CallRequest represents a tools/call JSON-RPC request
type CallRequest struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// CallResult is the tool call envelope: display text, structured content and
// widget metadata, or an error-flagged message
type CallResult struct {
	Content           []ContentBlock `json:"content"`
	StructuredContent Payload        `json:"structuredContent,omitempty"`
	Meta              *ResultMeta    `json:"_meta,omitempty"`
	IsError           bool           `json:"isError,omitempty"`
}

// ContentBlock represents a piece of tool output
type ContentBlock struct {
	Type string `json:"type"` // "text", "resource", etc.
	Text string `json:"text,omitempty"`
}

// TextBlock returns a text content block
func TextBlock(text string) ContentBlock {
	return ContentBlock{Type: "text", Text: text}
}

// ResultMeta references the widget a tool result renders with
type ResultMeta struct {
	Widget                 widgets.EmbeddedResource `json:"openai.com/widget"`
	OutputTemplate         string                   `json:"openai/outputTemplate"`
	WidgetAccessible       bool                     `json:"openai/widgetAccessible"`
	ResultCanProduceWidget bool                     `json:"openai/resultCanProduceWidget"`
}
