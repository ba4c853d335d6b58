package tools

import (
	"context"
	"time"

	"github.com/TaylorBeck/lead-finder-chatgpt/internal/leads"
)

// LeadTools holds the read-only data the lead finder handlers work from
type LeadTools struct {
	Catalog *leads.Catalog
	History *leads.History
	Now     func() time.Time
}

// NewLeadTools wires handlers to a catalog and activity history
func NewLeadTools(catalog *leads.Catalog, history *leads.History) *LeadTools {
	return &LeadTools{
		Catalog: catalog,
		History: history,
		Now:     time.Now,
	}
}

func (lt *LeadTools) HandleFindBusinessLeads(ctx context.Context, tc *ToolContext, in Input) (Payload, error) {
	params := NewLeadSearchParams(in)

	query := leads.Query{
		Region:        deref(params.Region),
		Industry:      deref(params.Industry),
		CompanySize:   deref(params.CompanySize),
		ContactRoles:  params.ContactRoles,
		IntentSignals: params.IntentSignals,
		Limit:         params.Limit,
	}
	found := lt.Catalog.Search(query)

	tc.Logger.Debug().
		Int("found", len(found)).
		Int("limit", params.Limit).
		Str("industry", query.Industry).
		Msg("lead search completed")

	return LeadSearchResult{
		Leads:   found,
		Metrics: leads.Summarize(found),
		SearchParameters: SearchParameters{
			Region:        params.Region,
			Industry:      params.Industry,
			ContactRoles:  params.ContactRoles,
			CompanyStage:  params.CompanyStage,
			CompanySize:   params.CompanySize,
			IntentSignals: params.IntentSignals,
			Output:        params.Output,
			Limit:         params.Limit,
			FiltersApplied: FiltersApplied{
				Geographic:  params.Region,
				CompanySize: params.CompanySize,
				MinScore:    leads.MinScore,
			},
		},
		GeneratedAt: lt.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (lt *LeadTools) HandleAnalyzeLeadTrends(ctx context.Context, tc *ToolContext, in Input) (Payload, error) {
	params := NewLeadTrendsParams(in)

	report := lt.History.Report(params.Days, lt.Catalog)
	return TrendReportResult{
		Analytics:  report.Analytics,
		Trends:     report.Trends,
		TimeSeries: report.TimeSeries,
		TimeRange:  params.TimeRange,
	}, nil
}

func (lt *LeadTools) HandleExportToCRM(ctx context.Context, tc *ToolContext, in Input) (Payload, error) {
	params := NewCRMExportParams(in)

	tc.Logger.Info().
		Str("crmSystem", params.CRMSystem).
		Int("leadCount", len(params.LeadIDs)).
		Msg("CRM export prepared")

	return CRMExportResult{
		ExportConfig: ExportConfig{
			CRMSystem:    params.CRMSystem,
			LeadCount:    len(params.LeadIDs),
			CreateTasks:  params.CreateTasks,
			SetReminders: params.SetReminders,
		},
		ExportOptions: ExportOptions{
			CRMSystems: []string{"Salesforce", "HubSpot", "Pipedrive"},
			Formats:    []string{"CSV", "JSON", "CRM Native"},
			Fields:     []string{"Contact Info", "Company Data", "Lead Score", "Intent Analysis"},
			Automation: []string{"Create Tasks", "Set Reminders", "Assign Owner"},
		},
		ExportStatus: "ready",
		LeadIDs:      params.LeadIDs,
	}, nil
}

func (lt *LeadTools) HandleEnrichProspectData(ctx context.Context, tc *ToolContext, in Input) (Payload, error) {
	params := NewEnrichmentParams(in)

	result := EnrichmentResult{
		EnrichmentLevel: params.EnrichmentLevel,
		Prospects:       make([]EnrichedProspect, 0, len(params.ProspectIDs)),
		NotFound:        make([]string, 0),
	}

	for _, id := range params.ProspectIDs {
		lead, ok := lt.Catalog.Get(id)
		if !ok {
			result.NotFound = append(result.NotFound, id)
			continue
		}
		result.Prospects = append(result.Prospects, enrich(lead, params))
	}
	result.EnrichedCount = len(result.Prospects)

	return result, nil
}

func enrich(l leads.Lead, params EnrichmentParams) EnrichedProspect {
	p := EnrichedProspect{
		ID:           l.ID,
		ProspectName: l.ProspectName,
		Company:      l.Company,
		Title:        l.Title,
		LeadScore:    l.LeadScore,
	}

	if params.IncludeContactInfo {
		contact := leads.ContactInfo{
			Email:           l.ContactInfo.Email,
			EmailConfidence: l.ContactInfo.EmailConfidence,
		}
		if params.EnrichmentLevel != EnrichmentBasic {
			contact.Phone = l.ContactInfo.Phone
			contact.SocialProfiles = l.ContactInfo.SocialProfiles
		}
		p.ContactInfo = &contact
	}
	if params.IncludeCompanyInsights {
		insights := l.CompanyInsights
		p.CompanyInsights = &insights
	}
	if params.EnrichmentLevel == EnrichmentPremium {
		intent := l.IntentAnalysis
		p.IntentAnalysis = &intent
	}

	return p
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
