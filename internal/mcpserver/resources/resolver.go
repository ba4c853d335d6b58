// Package resources serves widget markup through the MCP resources methods.
package resources

import (
	"fmt"

	"github.com/TaylorBeck/lead-finder-chatgpt/internal/mcpserver/telemetry"
	"github.com/TaylorBeck/lead-finder-chatgpt/internal/mcpserver/widgets"
)

// Resource is an entry of resources/list
type Resource struct {
	URI         string                  `json:"uri"`
	Name        string                  `json:"name"`
	Title       string                  `json:"title,omitempty"`
	Description string                  `json:"description,omitempty"`
	MIMEType    string                  `json:"mimeType"`
	Meta        *widgets.DescriptorMeta `json:"_meta,omitempty"`
}

// Template is an entry of resources/templates/list
type Template struct {
	URITemplate string                  `json:"uriTemplate"`
	Name        string                  `json:"name"`
	Title       string                  `json:"title,omitempty"`
	Description string                  `json:"description,omitempty"`
	MIMEType    string                  `json:"mimeType"`
	Meta        *widgets.DescriptorMeta `json:"_meta,omitempty"`
}

// ReadMeta reports why a read produced no contents
type ReadMeta struct {
	Error string `json:"error"`
}

// ReadResult is the resources/read result
type ReadResult struct {
	Contents []widgets.ResourceContents `json:"contents"`
	Meta     *ReadMeta                  `json:"_meta,omitempty"`
}

// Found reports whether the read resolved to a widget
func (r ReadResult) Found() bool {
	return r.Meta == nil
}

// Resolver answers resource queries from a widget registry
type Resolver struct {
	widgets *widgets.Registry
	metrics telemetry.Metrics
}

func NewResolver(registry *widgets.Registry, metrics telemetry.Metrics) *Resolver {
	if metrics == nil {
		metrics = telemetry.NoopMetrics{}
	}
	return &Resolver{widgets: registry, metrics: metrics}
}

// ListResources returns one resource per widget in registration order
func (r *Resolver) ListResources() []Resource {
	all := r.widgets.List()
	out := make([]Resource, 0, len(all))
	for _, w := range all {
		out = append(out, Resource{
			URI:         w.TemplateURI,
			Name:        w.Title,
			Title:       w.Title,
			Description: description(w),
			MIMEType:    widgets.MIMEType,
			Meta:        w.Meta(),
		})
	}
	return out
}

// ListResourceTemplates mirrors ListResources using template URIs
func (r *Resolver) ListResourceTemplates() []Template {
	all := r.widgets.List()
	out := make([]Template, 0, len(all))
	for _, w := range all {
		out = append(out, Template{
			URITemplate: w.TemplateURI,
			Name:        w.Title,
			Title:       w.Title,
			Description: description(w),
			MIMEType:    widgets.MIMEType,
			Meta:        w.Meta(),
		})
	}
	return out
}

// Read resolves uri to widget markup. An unknown uri is not a fault: the
// result has no contents and carries the reason in its metadata.
func (r *Resolver) Read(uri string) ReadResult {
	w, ok := r.widgets.FindByTemplateURI(uri)
	r.metrics.ObserveResourceRead(ok)
	if !ok {
		return ReadResult{
			Contents: []widgets.ResourceContents{},
			Meta:     &ReadMeta{Error: fmt.Sprintf("Unknown resource: %s", uri)},
		}
	}

	return ReadResult{
		Contents: []widgets.ResourceContents{{
			URI:      w.TemplateURI,
			MIMEType: widgets.MIMEType,
			Text:     w.HTML,
			Title:    w.Title,
			Meta:     w.Meta(),
		}},
	}
}

func description(w widgets.Widget) string {
	return w.Title + " widget markup"
}
