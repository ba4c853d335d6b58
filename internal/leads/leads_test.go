package leads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Search(t *testing.T) {
	catalog := NewSampleCatalog()

	tests := []struct {
		name    string
		query   Query
		wantIDs []string
	}{
		{
			name:    "no filters returns qualified leads only",
			query:   Query{},
			wantIDs: []string{"lead-001", "lead-002", "lead-003", "lead-004", "lead-005"},
		},
		{
			name:    "industry is case insensitive",
			query:   Query{Industry: "saas"},
			wantIDs: []string{"lead-002", "lead-005"},
		},
		{
			name:    "unknown industry yields nothing",
			query:   Query{Industry: "Aerospace"},
			wantIDs: []string{},
		},
		{
			name:    "region matches part of location",
			query:   Query{Region: "ma"},
			wantIDs: []string{"lead-003"},
		},
		{
			name:    "company size band",
			query:   Query{CompanySize: "201-1000"},
			wantIDs: []string{"lead-001", "lead-003"},
		},
		{
			name:    "any contact role matches title",
			query:   Query{ContactRoles: []string{"sales", "revenue"}},
			wantIDs: []string{"lead-002", "lead-004", "lead-005"},
		},
		{
			name:    "limit caps results",
			query:   Query{Limit: 2},
			wantIDs: []string{"lead-001", "lead-002"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Search(tt.query)
			ids := make([]string, 0, len(got))
			for _, l := range got {
				ids = append(ids, l.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCatalog_SearchPersonalizesIntent(t *testing.T) {
	catalog := NewSampleCatalog()

	got := catalog.Search(Query{Limit: 1, IntentSignals: []string{"a CRM", "automation", "reporting"}})
	require.Len(t, got, 1)
	assert.Equal(t, []string{"a CRM", "automation"}, got[0].IntentAnalysis.SolutionSeeking)
	assert.Contains(t, got[0].SourceContent, "a CRM")

	// The catalog itself must be untouched
	orig, ok := catalog.Get("lead-001")
	require.True(t, ok)
	assert.Contains(t, orig.SourceContent, defaultSolution)
	assert.Empty(t, orig.IntentAnalysis.SolutionSeeking)
}

func TestSummarize(t *testing.T) {
	catalog := NewSampleCatalog()
	found := catalog.Search(Query{Industry: "SaaS"})

	m := Summarize(found)
	assert.Equal(t, 2, m.QualifiedLeadsFound)
	assert.Equal(t, 6, m.TotalConversationsAnalyzed)
	assert.InDelta(t, (0.78+0.67)/2, m.AverageLeadScore, 1e-9)
	assert.Equal(t, map[Platform]int{PlatformLinkedIn: 0, PlatformReddit: 1, PlatformTwitter: 1}, m.PlatformBreakdown)
	assert.Equal(t, map[string]int{"SaaS": 2}, m.IndustryBreakdown)
	assert.Equal(t, map[string]int{"Austin, TX": 1, "Seattle, WA": 1}, m.GeographicDistribution)
}

func TestSummarize_EmptyIsZero(t *testing.T) {
	m := Summarize(nil)
	assert.Equal(t, 0.0, m.AverageLeadScore)
	assert.Equal(t, 0, m.QualifiedLeadsFound)
	assert.Len(t, m.PlatformBreakdown, len(Platforms))
	assert.NotNil(t, m.IndustryBreakdown)
	assert.NotNil(t, m.GeographicDistribution)
}

func TestHistory_Report(t *testing.T) {
	history := NewSampleHistory()
	catalog := NewSampleCatalog()

	r := history.Report(30, catalog)
	require.Len(t, r.TimeSeries, 5)
	assert.Equal(t, "2025-09-07", r.TimeSeries[0].Date)
	assert.Equal(t, "2025-10-05", r.TimeSeries[4].Date)
	assert.Equal(t, []int{12, 18, 25, 30, 35}, []int{
		r.TimeSeries[0].Leads, r.TimeSeries[1].Leads, r.TimeSeries[2].Leads,
		r.TimeSeries[3].Leads, r.TimeSeries[4].Leads,
	})

	assert.Equal(t, 120, r.Analytics.TotalLeads)
	assert.Equal(t, r.Analytics.TotalLeads, r.Analytics.HotLeads+r.Analytics.WarmLeads+r.Analytics.ColdLeads)
	assert.InDelta(t, 0.2, r.Analytics.ConversionRate, 1e-9)
	assert.Equal(t, "2.3 days", r.Analytics.AvgResponseTime)
	assert.InDelta(t, 5.0/30.0, r.Trends.WeeklyGrowth, 1e-9)
	assert.InDelta(t, 23.0/12.0, r.Trends.MonthlyGrowth, 1e-9)
	assert.Equal(t, []string{"SaaS", "Technology", "Healthcare"}, r.Trends.TopIndustries)
	assert.Equal(t, []string{"San Francisco", "Austin", "Boston"}, r.Trends.TopLocations)
}

func TestHistory_ReportShortAndEmptyWindows(t *testing.T) {
	catalog := NewSampleCatalog()

	week := NewSampleHistory().Report(7, catalog)
	require.Len(t, week.TimeSeries, 1)
	assert.Equal(t, 0.0, week.Trends.WeeklyGrowth)

	empty := NewHistory(nil).Report(30, catalog)
	assert.Equal(t, 0, empty.Analytics.TotalLeads)
	assert.Equal(t, 0.0, empty.Analytics.ConversionRate)
	assert.Equal(t, "0.0 days", empty.Analytics.AvgResponseTime)
	assert.NotNil(t, empty.TimeSeries)
}
