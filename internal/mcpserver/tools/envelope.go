package tools

import (
	"github.com/TaylorBeck/lead-finder-chatgpt/internal/mcpserver/widgets"
)

// BuildEnvelope wraps a completed tool payload. Widget metadata is attached
// only when the tool renders with a widget.
func BuildEnvelope(payload Payload, widget *widgets.Widget) CallResult {
	result := CallResult{
		Content:           []ContentBlock{TextBlock(payload.Summary())},
		StructuredContent: payload,
	}

	if widget != nil {
		result.Meta = &ResultMeta{
			Widget:                 widget.Embedded(),
			OutputTemplate:         widget.TemplateURI,
			WidgetAccessible:       true,
			ResultCanProduceWidget: true,
		}
	}

	return result
}
