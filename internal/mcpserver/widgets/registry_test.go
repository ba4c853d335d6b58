package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultRegistry_Lookups(t *testing.T) {
	r, err := NewDefaultRegistry("https://cdn.example.com/")
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())

	w, ok := r.FindByID(CRMExportID)
	require.True(t, ok)
	assert.Equal(t, "ui://widget/crm-export.html", w.TemplateURI)

	byURI, ok := r.FindByTemplateURI("ui://widget/lead-dashboard.html")
	require.True(t, ok)
	assert.Equal(t, LeadDashboardID, byURI.Identifier)

	_, ok = r.FindByID("delete-everything")
	assert.False(t, ok)
	_, ok = r.FindByTemplateURI("ui://widget/missing.html")
	assert.False(t, ok)
}

func TestRegistry_ListPreservesOrder(t *testing.T) {
	r, err := NewDefaultRegistry(DefaultAssetBaseURL)
	require.NoError(t, err)

	first := r.List()
	second := r.List()
	require.Len(t, first, 3)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{LeadFinderID, LeadDashboardID, CRMExportID},
		[]string{first[0].Identifier, first[1].Identifier, first[2].Identifier})

	// Mutating the returned slice must not leak into the registry
	first[0].Title = "changed"
	again, _ := r.FindByID(LeadFinderID)
	assert.Equal(t, "Find Business Leads", again.Title)
}

func TestNew_RejectsDuplicates(t *testing.T) {
	tests := []struct {
		name    string
		widgets []Widget
	}{
		{
			name:    "duplicate identifier",
			widgets: []Widget{{Identifier: "a", TemplateURI: "ui://a"}, {Identifier: "a", TemplateURI: "ui://b"}},
		},
		{
			name:    "duplicate template uri",
			widgets: []Widget{{Identifier: "a", TemplateURI: "ui://a"}, {Identifier: "b", TemplateURI: "ui://a"}},
		},
		{
			name:    "empty identifier",
			widgets: []Widget{{TemplateURI: "ui://a"}},
		},
		{
			name:    "empty template uri",
			widgets: []Widget{{Identifier: "a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.widgets...)
			assert.Error(t, err)
			assert.Nil(t, r)
		})
	}
}

func TestMarkup_UsesAssetBaseURL(t *testing.T) {
	html := Markup("https://cdn.example.com/", "lead-finder")
	assert.Contains(t, html, `<div id="lead-finder-root"></div>`)
	assert.Contains(t, html, `href="https://cdn.example.com/lead-finder.css"`)
	assert.Contains(t, html, `src="https://cdn.example.com/lead-finder.js"`)

	fallback := Markup("", "crm-export")
	assert.Contains(t, fallback, DefaultAssetBaseURL+"/crm-export.js")
}

func TestWidget_MetaAndEmbedded(t *testing.T) {
	r, err := NewDefaultRegistry(DefaultAssetBaseURL)
	require.NoError(t, err)
	w, _ := r.FindByID(LeadFinderID)

	meta := w.Meta()
	assert.Equal(t, w.TemplateURI, meta.OutputTemplate)
	assert.Equal(t, w.Invoking, meta.Invoking)
	assert.True(t, meta.WidgetAccessible)
	assert.True(t, meta.ResultCanProduceWidget)
	assert.True(t, meta.Annotations.ReadOnlyHint)
	assert.False(t, meta.Annotations.DestructiveHint)

	emb := w.Embedded()
	assert.Equal(t, "resource", emb.Type)
	assert.Equal(t, MIMEType, emb.Resource.MIMEType)
	assert.Equal(t, w.HTML, emb.Resource.Text)
	assert.Equal(t, w.Title, emb.Resource.Title)
}
