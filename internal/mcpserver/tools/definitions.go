package tools

import (
	"github.com/TaylorBeck/lead-finder-chatgpt/internal/mcpserver/widgets"
)

// LeadFinderTools returns every tool the server exposes, in listing order
func LeadFinderTools(lt *LeadTools) []Tool {
	return []Tool{
		{
			Definition: ToolDefinition{
				Name:        ToolFindBusinessLeads,
				Title:       "Find Business Leads",
				Description: "Find high-quality business leads by analyzing social media conversations for purchase intent signals",
				Schema:      leadSearchSchema(),
				WidgetID:    widgets.LeadFinderID,
			},
			Handler: lt.HandleFindBusinessLeads,
		},
		{
			Definition: ToolDefinition{
				Name:        ToolAnalyzeLeadTrends,
				Title:       "Analyze Lead Trends",
				Description: "Show analytics dashboard with lead trends and metrics",
				Schema:      leadTrendsSchema(),
				WidgetID:    widgets.LeadDashboardID,
			},
			Handler: lt.HandleAnalyzeLeadTrends,
		},
		{
			Definition: ToolDefinition{
				Name:        ToolExportToCRM,
				Title:       "Export to CRM",
				Description: "Export leads to CRM systems like Salesforce, HubSpot, or Pipedrive",
				Schema:      crmExportSchema(),
				WidgetID:    widgets.CRMExportID,
			},
			Handler: lt.HandleExportToCRM,
		},
		{
			Definition: ToolDefinition{
				Name:        ToolEnrichProspectData,
				Title:       "Enrich Prospect Data",
				Description: "Enrich prospects with contact details, company insights and intent analysis",
				Schema:      enrichmentSchema(),
			},
			Handler: lt.HandleEnrichProspectData,
		},
	}
}

func leadSearchSchema() Schema {
	min1, max100 := minLeadLimit, maxLeadLimit
	return NewSchema(
		StringField("region", "Geographic region to focus on, such as a state or city"),
		StringField("industry", "Industry to focus on"),
		StringArrayField("contact_roles", "Job roles to target, e.g. VP of Marketing", nil),
		StringField("company_stage", "Company stage, e.g. startup, growth, enterprise"),
		StringField("company_size", "Company size band, e.g. 51-200"),
		StringArrayField("intent_signals", "Purchase intent phrases to look for", nil),
		EnumField("output", "How the results should be presented", outputFormats).WithDefault(OutputSummary),
		IntegerField("limit", "Maximum number of leads to return (1-100)", &min1, &max100).WithDefault(defaultLeadLimit),
	)
}

func leadTrendsSchema() Schema {
	return NewSchema(
		DayRangeField("time_range", "Time range in days, up to 365d: 7d, 30d, 90d", maxTimeRangeDays).WithDefault(defaultTimeRange),
	)
}

func crmExportSchema() Schema {
	one := 1
	return NewSchema(
		StringArrayField("lead_ids", "Lead IDs to export", &one).Require(),
		EnumField("crm_system", "Target CRM system", crmSystems).Require(),
		BooleanField("create_tasks", "Create follow-up tasks").WithDefault(true),
		BooleanField("set_reminders", "Set follow-up reminders").WithDefault(true),
	)
}

func enrichmentSchema() Schema {
	one := 1
	return NewSchema(
		StringArrayField("prospect_ids", "IDs of prospects to enrich", &one).Require(),
		EnumField("enrichment_level", "Enrichment level", enrichmentLevels).WithDefault(EnrichmentStandard),
		BooleanField("include_contact_info", "Include contact details").WithDefault(true),
		BooleanField("include_company_insights", "Include company insights").WithDefault(true),
	)
}
