package widgets

// Annotations are the tool behavior hints advertised alongside a widget
type Annotations struct {
	DestructiveHint bool `json:"destructiveHint"`
	OpenWorldHint   bool `json:"openWorldHint"`
	ReadOnlyHint    bool `json:"readOnlyHint"`
}

// DescriptorMeta is the _meta block shared by tools/list, resources/list,
// resources/templates/list and resources/read so a widget renders the same
// however it was discovered.
type DescriptorMeta struct {
	OutputTemplate         string      `json:"openai/outputTemplate"`
	Invoking               string      `json:"openai/toolInvocation/invoking"`
	Invoked                string      `json:"openai/toolInvocation/invoked"`
	WidgetAccessible       bool        `json:"openai/widgetAccessible"`
	ResultCanProduceWidget bool        `json:"openai/resultCanProduceWidget"`
	Annotations            Annotations `json:"annotations"`
}

// Meta returns the descriptor metadata for w
func (w Widget) Meta() *DescriptorMeta {
	return &DescriptorMeta{
		OutputTemplate:         w.TemplateURI,
		Invoking:               w.Invoking,
		Invoked:                w.Invoked,
		WidgetAccessible:       true,
		ResultCanProduceWidget: true,
		Annotations: Annotations{
			DestructiveHint: false,
			OpenWorldHint:   false,
			ReadOnlyHint:    true,
		},
	}
}

// ResourceContents is a text resource holding widget markup
type ResourceContents struct {
	URI      string          `json:"uri"`
	MIMEType string          `json:"mimeType"`
	Text     string          `json:"text"`
	Title    string          `json:"title,omitempty"`
	Meta     *DescriptorMeta `json:"_meta,omitempty"`
}

// EmbeddedResource wraps widget markup for inclusion in a tool result
type EmbeddedResource struct {
	Type     string           `json:"type"`
	Resource ResourceContents `json:"resource"`
}

// Embedded returns w as an embedded resource reference
func (w Widget) Embedded() EmbeddedResource {
	return EmbeddedResource{
		Type: "resource",
		Resource: ResourceContents{
			URI:      w.TemplateURI,
			MIMEType: MIMEType,
			Text:     w.HTML,
			Title:    w.Title,
		},
	}
}
