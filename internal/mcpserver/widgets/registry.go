package widgets

import (
	"fmt"
	"strings"
)

// MIMEType identifies widget markup as an embeddable skybridge fragment
const MIMEType = "text/html+skybridge"

// DefaultAssetBaseURL is used when no asset base URL is configured
const DefaultAssetBaseURL = "http://localhost:4444"

// Widget describes a UI fragment that a tool result can be rendered with
type Widget struct {
	Identifier   string
	Title        string
	TemplateURI  string
	Invoking     string
	Invoked      string
	HTML         string
	ResponseText string
}

// Registry is an immutable catalog of widgets, safe for concurrent reads
type Registry struct {
	ordered []Widget
	byID    map[string]int
	byURI   map[string]int
}

// New builds a registry from the given widgets, preserving their order.
// Identifiers and template URIs must be non-empty and unique.
func New(ws ...Widget) (*Registry, error) {
	r := &Registry{
		ordered: make([]Widget, 0, len(ws)),
		byID:    make(map[string]int, len(ws)),
		byURI:   make(map[string]int, len(ws)),
	}

	for _, w := range ws {
		if w.Identifier == "" {
			return nil, fmt.Errorf("widget identifier cannot be empty")
		}
		if w.TemplateURI == "" {
			return nil, fmt.Errorf("widget %s: template uri cannot be empty", w.Identifier)
		}
		if _, exists := r.byID[w.Identifier]; exists {
			return nil, fmt.Errorf("widget %s already registered", w.Identifier)
		}
		if _, exists := r.byURI[w.TemplateURI]; exists {
			return nil, fmt.Errorf("template uri %s already registered", w.TemplateURI)
		}

		r.byID[w.Identifier] = len(r.ordered)
		r.byURI[w.TemplateURI] = len(r.ordered)
		r.ordered = append(r.ordered, w)
	}

	return r, nil
}

// FindByID looks a widget up by identifier
func (r *Registry) FindByID(id string) (Widget, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return Widget{}, false
	}
	return r.ordered[idx], true
}

// FindByTemplateURI looks a widget up by its resource address
func (r *Registry) FindByTemplateURI(uri string) (Widget, bool) {
	idx, ok := r.byURI[uri]
	if !ok {
		return Widget{}, false
	}
	return r.ordered[idx], true
}

// List returns all widgets in registration order.
// The returned slice is a copy; callers may not mutate the registry through it.
func (r *Registry) List() []Widget {
	out := make([]Widget, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Len returns the number of registered widgets
func (r *Registry) Len() int {
	return len(r.ordered)
}

// Markup renders the root element and asset links for a widget bundle
func Markup(assetBaseURL, bundle string) string {
	base := strings.TrimRight(assetBaseURL, "/")
	if base == "" {
		base = DefaultAssetBaseURL
	}
	return fmt.Sprintf(
		"<div id=\"%s-root\"></div>\n"+
			"<link rel=\"stylesheet\" href=\"%s/%s.css\">\n"+
			"<script type=\"module\" src=\"%s/%s.js\"></script>",
		bundle, base, bundle, base, bundle,
	)
}
