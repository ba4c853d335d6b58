package tools

import (
	"fmt"

	"github.com/TaylorBeck/lead-finder-chatgpt/internal/leads"
)

// LeadSearchResult is the structured content of find-business-leads
type LeadSearchResult struct {
	Leads            []leads.Lead     `json:"leads"`
	Metrics          leads.Metrics    `json:"metrics"`
	SearchParameters SearchParameters `json:"search_parameters"`
	GeneratedAt      string           `json:"generated_at"`
}

// SearchParameters echoes the arguments a lead search ran with
type SearchParameters struct {
	Region         *string        `json:"region"`
	Industry       *string        `json:"industry"`
	ContactRoles   []string       `json:"contact_roles"`
	CompanyStage   *string        `json:"company_stage"`
	CompanySize    *string        `json:"company_size"`
	IntentSignals  []string       `json:"intent_signals"`
	Output         string         `json:"output"`
	Limit          int            `json:"limit"`
	FiltersApplied FiltersApplied `json:"filters_applied"`
}

// FiltersApplied lists the filters that narrowed the search
type FiltersApplied struct {
	Geographic  *string `json:"geographic"`
	CompanySize *string `json:"company_size"`
	MinScore    float64 `json:"min_score"`
}

func (r LeadSearchResult) Summary() string {
	return fmt.Sprintf("Found %d high-quality business leads with an average score of %.2f",
		len(r.Leads), r.Metrics.AverageLeadScore)
}

// TrendReportResult is the structured content of analyze-lead-trends
type TrendReportResult struct {
	Analytics  leads.Analytics `json:"analytics"`
	Trends     leads.Trends    `json:"trends"`
	TimeSeries []leads.Point   `json:"time_series"`
	TimeRange  string          `json:"time_range"`
}

func (r TrendReportResult) Summary() string {
	return fmt.Sprintf("Generated analytics dashboard with lead trends: %d leads over the last %s, %.1f%% conversion rate",
		r.Analytics.TotalLeads, r.TimeRange, r.Analytics.ConversionRate*100)
}

// CRMExportResult is the structured content of export-to-crm
type CRMExportResult struct {
	ExportConfig  ExportConfig  `json:"export_config"`
	ExportOptions ExportOptions `json:"export_options"`
	ExportStatus  string        `json:"export_status"`
	LeadIDs       []string      `json:"lead_ids"`
}

// ExportConfig describes the export the caller asked for
type ExportConfig struct {
	CRMSystem    string `json:"crm_system"`
	LeadCount    int    `json:"lead_count"`
	CreateTasks  bool   `json:"create_tasks"`
	SetReminders bool   `json:"set_reminders"`
}

// ExportOptions lists what the export widget can offer
type ExportOptions struct {
	CRMSystems []string `json:"crm_systems"`
	Formats    []string `json:"formats"`
	Fields     []string `json:"fields"`
	Automation []string `json:"automation"`
}

func (r CRMExportResult) Summary() string {
	name, ok := crmDisplayNames[r.ExportConfig.CRMSystem]
	if !ok {
		name = r.ExportConfig.CRMSystem
	}
	return fmt.Sprintf("Prepared %d leads for export to %s", r.ExportConfig.LeadCount, name)
}

// EnrichmentResult is the structured content of enrich-prospect-data
type EnrichmentResult struct {
	EnrichmentLevel string             `json:"enrichment_level"`
	Prospects       []EnrichedProspect `json:"prospects"`
	NotFound        []string           `json:"not_found"`
	EnrichedCount   int                `json:"enriched_count"`
}

// EnrichedProspect is one catalog lead trimmed to the requested enrichment
type EnrichedProspect struct {
	ID              string                 `json:"id"`
	ProspectName    string                 `json:"prospect_name"`
	Company         string                 `json:"company"`
	Title           string                 `json:"title"`
	LeadScore       float64                `json:"lead_score"`
	ContactInfo     *leads.ContactInfo     `json:"contact_info,omitempty"`
	CompanyInsights *leads.CompanyInsights `json:"company_insights,omitempty"`
	IntentAnalysis  *leads.IntentAnalysis  `json:"intent_analysis,omitempty"`
}

func (r EnrichmentResult) Summary() string {
	return fmt.Sprintf("Enriched %d of %d prospects at %s level",
		r.EnrichedCount, r.EnrichedCount+len(r.NotFound), r.EnrichmentLevel)
}
