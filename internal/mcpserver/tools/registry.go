package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/TaylorBeck/lead-finder-chatgpt/internal/mcpserver/telemetry"
	"github.com/TaylorBeck/lead-finder-chatgpt/internal/mcpserver/widgets"
)

// OutcomeKind is the terminal state of one invocation
type OutcomeKind string

const (
	OutcomeCompleted        OutcomeKind = "completed"
	OutcomeValidationFailed OutcomeKind = "validation_failed"
	OutcomeUnknownTool      OutcomeKind = "unknown_tool"
	OutcomeExecutionFailed  OutcomeKind = "execution_failed"
)

// Outcome is the result of an invocation. Result is always well formed:
// the envelope when Kind is OutcomeCompleted, otherwise the classified error
// with Err holding the cause.
type Outcome struct {
	Kind   OutcomeKind
	Result CallResult
	Err    error
}

// Registry holds the closed set of tools and dispatches calls to them.
// It is built once and never mutated, so it is shared across requests without locking.
type Registry struct {
	tools    map[ToolName]*toolEntry
	ordering []ToolName // Preserve registration order for consistent tools/list
	metrics  telemetry.Metrics
}

type toolEntry struct {
	def     ToolDefinition
	handler Handler
	widget  *widgets.Widget
}

// NewRegistry builds a registry over the given tools. Every tool naming a
// widget must find it in widgetRegistry.
func NewRegistry(widgetRegistry *widgets.Registry, metrics telemetry.Metrics, defs ...Tool) (*Registry, error) {
	if metrics == nil {
		metrics = telemetry.NoopMetrics{}
	}

	r := &Registry{
		tools:   make(map[ToolName]*toolEntry, len(defs)),
		metrics: metrics,
	}

	for _, t := range defs {
		if t.Definition.Name == "" {
			return nil, fmt.Errorf("tool name cannot be empty")
		}
		if t.Handler == nil {
			return nil, fmt.Errorf("tool %s: handler cannot be nil", t.Definition.Name)
		}
		if _, exists := r.tools[t.Definition.Name]; exists {
			return nil, fmt.Errorf("tool %s already registered", t.Definition.Name)
		}

		entry := &toolEntry{def: t.Definition, handler: t.Handler}
		if t.Definition.WidgetID != "" {
			if widgetRegistry == nil {
				return nil, fmt.Errorf("tool %s: widget %s requested without a widget registry", t.Definition.Name, t.Definition.WidgetID)
			}
			w, ok := widgetRegistry.FindByID(t.Definition.WidgetID)
			if !ok {
				return nil, fmt.Errorf("tool %s: widget %s not registered", t.Definition.Name, t.Definition.WidgetID)
			}
			entry.widget = &w
		}

		r.tools[t.Definition.Name] = entry
		r.ordering = append(r.ordering, t.Definition.Name)
	}

	return r, nil
}

// List returns all registered tool descriptors (for tools/list response)
func (r *Registry) List() []ToolDescriptor {
	descriptors := make([]ToolDescriptor, 0, len(r.ordering))
	for _, name := range r.ordering {
		entry := r.tools[name]
		d := ToolDescriptor{
			Name:        string(entry.def.Name),
			Title:       entry.def.Title,
			Description: entry.def.Description,
			InputSchema: entry.def.Schema.JSONSchema(),
		}
		if entry.widget != nil {
			d.Meta = entry.widget.Meta()
		}
		descriptors = append(descriptors, d)
	}
	return descriptors
}

// Get retrieves a tool definition by name
func (r *Registry) Get(name string) (*ToolDefinition, bool) {
	entry, exists := r.tools[ToolName(name)]
	if !exists {
		return nil, false
	}
	return &entry.def, true
}

// Validate checks raw arguments for the named tool without running it
func (r *Registry) Validate(name string, raw map[string]any) (Input, error) {
	entry, exists := r.tools[ToolName(name)]
	if !exists {
		return Input{}, unknownTool(name)
	}
	return entry.def.Schema.Validate(raw)
}

// Invoke runs one tool call to completion. It never panics and never returns
// a nil result: unknown tools, invalid arguments and handler faults all come
// back as error-flagged results.
func (r *Registry) Invoke(ctx context.Context, tc *ToolContext, name string, rawArgs json.RawMessage) Outcome {
	if tc == nil {
		tc = NewToolContext(nil, "")
	}

	started := time.Now()
	outcome := r.invoke(ctx, tc, name, rawArgs)

	label := name
	if outcome.Kind == OutcomeUnknownTool {
		label = "unknown"
	}
	r.metrics.ObserveToolCall(label, string(outcome.Kind), time.Since(started))

	logEvent := tc.Logger.Debug()
	switch outcome.Kind {
	case OutcomeExecutionFailed:
		logEvent = tc.Logger.Error().Err(outcome.Err)
	case OutcomeValidationFailed, OutcomeUnknownTool:
		logEvent = tc.Logger.Warn().Err(outcome.Err)
	}
	logEvent.
		Str("tool", name).
		Str("outcome", string(outcome.Kind)).
		Dur("duration", time.Since(started)).
		Msg("tool call finished")

	return outcome
}

func (r *Registry) invoke(ctx context.Context, tc *ToolContext, name string, rawArgs json.RawMessage) Outcome {
	entry, exists := r.tools[ToolName(name)]
	if !exists {
		return failed(OutcomeUnknownTool, unknownTool(name))
	}

	args, err := decodeArguments(rawArgs)
	if err != nil {
		return failed(OutcomeValidationFailed, err)
	}

	in, err := r.Validate(name, args)
	if err != nil {
		return failed(OutcomeValidationFailed, err)
	}

	payload, err := execute(ctx, tc, entry.handler, in)
	if err != nil {
		return failed(OutcomeExecutionFailed, err)
	}

	return Outcome{
		Kind:   OutcomeCompleted,
		Result: BuildEnvelope(payload, entry.widget),
	}
}

// execute runs a handler, converting panics into errors
func execute(ctx context.Context, tc *ToolContext, handler Handler, in Input) (payload Payload, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			payload = nil
			err = NewToolError(ErrCodeInternal, fmt.Sprintf("tool panicked: %v", rec), nil)
		}
	}()

	payload, err = handler(ctx, tc, in)
	if err == nil && payload == nil {
		err = NewToolError(ErrCodeInternal, "tool returned no result", nil)
	}
	return payload, err
}

func failed(kind OutcomeKind, err error) Outcome {
	return Outcome{Kind: kind, Result: Classify(err), Err: err}
}

func unknownTool(name string) *ToolError {
	return NewToolError(ErrCodeUnknownTool, fmt.Sprintf("Unknown tool: %s", name), map[string]any{"tool": name})
}

// decodeArguments turns the raw arguments object into a map. Missing or null
// arguments are an empty object.
func decodeArguments(raw json.RawMessage) (map[string]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return map[string]any{}, nil
	}

	var args map[string]any
	if err := json.Unmarshal(trimmed, &args); err != nil {
		return nil, ValidationErrors{{Field: "arguments", Constraint: "type", Message: "must be a JSON object"}}
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}
