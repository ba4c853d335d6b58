package resources

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TaylorBeck/lead-finder-chatgpt/internal/mcpserver/widgets"
)

type readCounter struct {
	found, missing int
}

func (c *readCounter) ObserveToolCall(string, string, time.Duration) {}

func (c *readCounter) ObserveResourceRead(found bool) {
	if found {
		c.found++
	} else {
		c.missing++
	}
}

func newResolver(t *testing.T, metrics *readCounter) *Resolver {
	t.Helper()
	registry, err := widgets.NewDefaultRegistry("https://assets.example.com/")
	require.NoError(t, err)
	if metrics == nil {
		return NewResolver(registry, nil)
	}
	return NewResolver(registry, metrics)
}

func TestResolver_ListResources(t *testing.T) {
	r := newResolver(t, nil)

	list := r.ListResources()
	require.Len(t, list, 3)

	uris := []string{list[0].URI, list[1].URI, list[2].URI}
	assert.Equal(t, []string{
		"ui://widget/lead-finder.html",
		"ui://widget/lead-dashboard.html",
		"ui://widget/crm-export.html",
	}, uris)

	for _, res := range list {
		assert.Equal(t, widgets.MIMEType, res.MIMEType)
		require.NotNil(t, res.Meta)
		assert.Equal(t, res.URI, res.Meta.OutputTemplate)
		assert.True(t, res.Meta.WidgetAccessible)
	}
}

func TestResolver_ListResourceTemplatesMatchesResources(t *testing.T) {
	r := newResolver(t, nil)

	resources := r.ListResources()
	templates := r.ListResourceTemplates()
	require.Len(t, templates, len(resources))

	for i := range templates {
		assert.Equal(t, resources[i].URI, templates[i].URITemplate)
		assert.Equal(t, resources[i].Name, templates[i].Name)
		assert.Equal(t, resources[i].Meta, templates[i].Meta)
	}
}

func TestResolver_ReadKnownWidget(t *testing.T) {
	metrics := &readCounter{}
	r := newResolver(t, metrics)

	result := r.Read("ui://widget/lead-dashboard.html")
	assert.True(t, result.Found())
	require.Len(t, result.Contents, 1)

	contents := result.Contents[0]
	assert.Equal(t, "ui://widget/lead-dashboard.html", contents.URI)
	assert.Equal(t, widgets.MIMEType, contents.MIMEType)
	assert.Contains(t, contents.Text, "https://assets.example.com/lead-dashboard.js")
	require.NotNil(t, contents.Meta)
	assert.Equal(t, "Generating analytics dashboard", contents.Meta.Invoking)
	assert.Equal(t, 1, metrics.found)
}

func TestResolver_ReadUnknownURI(t *testing.T) {
	metrics := &readCounter{}
	r := newResolver(t, metrics)

	result := r.Read("ui://widget/nope.html")
	assert.False(t, result.Found())
	assert.NotNil(t, result.Contents)
	assert.Empty(t, result.Contents)
	require.NotNil(t, result.Meta)
	assert.Equal(t, "Unknown resource: ui://widget/nope.html", result.Meta.Error)
	assert.Equal(t, 1, metrics.missing)

	raw, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"contents":[],"_meta":{"error":"Unknown resource: ui://widget/nope.html"}}`, string(raw))
}
