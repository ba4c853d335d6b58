package tools

// Output formats the lead finder widget can present results in
const (
	OutputSummary       = "summary"
	OutputDetailedTable = "detailed_table"
	OutputCompactList   = "compact_list"
)

var outputFormats = []string{OutputSummary, OutputDetailedTable, OutputCompactList}

// CRM systems leads can be exported to
const (
	CRMSalesforce = "salesforce"
	CRMHubSpot    = "hubspot"
	CRMPipedrive  = "pipedrive"
)

var crmSystems = []string{CRMSalesforce, CRMHubSpot, CRMPipedrive}

var crmDisplayNames = map[string]string{
	CRMSalesforce: "Salesforce",
	CRMHubSpot:    "HubSpot",
	CRMPipedrive:  "Pipedrive",
}

// Enrichment levels, from contact basics to full intent analysis
const (
	EnrichmentBasic    = "basic"
	EnrichmentStandard = "standard"
	EnrichmentPremium  = "premium"
)

var enrichmentLevels = []string{EnrichmentBasic, EnrichmentStandard, EnrichmentPremium}

const (
	defaultLeadLimit = 20
	minLeadLimit     = 1
	maxLeadLimit     = 100
	defaultTimeRange = "30d"
	maxTimeRangeDays = 365
)

type LeadSearchParams struct {
	Region        *string
	Industry      *string
	ContactRoles  []string
	CompanyStage  *string
	CompanySize   *string
	IntentSignals []string
	Output        string
	Limit         int
}

func NewLeadSearchParams(in Input) LeadSearchParams {
	return LeadSearchParams{
		Region:        in.StringPtr("region"),
		Industry:      in.StringPtr("industry"),
		ContactRoles:  in.Strings("contact_roles"),
		CompanyStage:  in.StringPtr("company_stage"),
		CompanySize:   in.StringPtr("company_size"),
		IntentSignals: in.Strings("intent_signals"),
		Output:        in.String("output"),
		Limit:         in.Int("limit"),
	}
}

type LeadTrendsParams struct {
	TimeRange string
	Days      int
}

func NewLeadTrendsParams(in Input) LeadTrendsParams {
	return LeadTrendsParams{
		TimeRange: in.String("time_range"),
		Days:      in.Days("time_range"),
	}
}

type CRMExportParams struct {
	LeadIDs      []string
	CRMSystem    string
	CreateTasks  bool
	SetReminders bool
}

func NewCRMExportParams(in Input) CRMExportParams {
	return CRMExportParams{
		LeadIDs:      in.Strings("lead_ids"),
		CRMSystem:    in.String("crm_system"),
		CreateTasks:  in.Bool("create_tasks"),
		SetReminders: in.Bool("set_reminders"),
	}
}

type EnrichmentParams struct {
	ProspectIDs            []string
	EnrichmentLevel        string
	IncludeContactInfo     bool
	IncludeCompanyInsights bool
}

func NewEnrichmentParams(in Input) EnrichmentParams {
	return EnrichmentParams{
		ProspectIDs:            in.Strings("prospect_ids"),
		EnrichmentLevel:        in.String("enrichment_level"),
		IncludeContactInfo:     in.Bool("include_contact_info"),
		IncludeCompanyInsights: in.Bool("include_company_insights"),
	}
}
