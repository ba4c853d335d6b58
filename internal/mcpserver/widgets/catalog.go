package widgets

// Widget identifiers double as the names of the tools that render them
const (
	LeadFinderID    = "find-business-leads"
	LeadDashboardID = "analyze-lead-trends"
	CRMExportID     = "export-to-crm"
)

// Defaults returns the lead finder widget set with assets served from assetBaseURL
func Defaults(assetBaseURL string) []Widget {
	return []Widget{
		{
			Identifier:   LeadFinderID,
			Title:        "Find Business Leads",
			TemplateURI:  "ui://widget/lead-finder.html",
			Invoking:     "Searching for high-quality business leads",
			Invoked:      "Found business leads",
			HTML:         Markup(assetBaseURL, "lead-finder"),
			ResponseText: "Found business leads with AI-powered analysis!",
		},
		{
			Identifier:   LeadDashboardID,
			Title:        "Analyze Lead Trends",
			TemplateURI:  "ui://widget/lead-dashboard.html",
			Invoking:     "Generating analytics dashboard",
			Invoked:      "Dashboard ready",
			HTML:         Markup(assetBaseURL, "lead-dashboard"),
			ResponseText: "Analytics dashboard generated!",
		},
		{
			Identifier:   CRMExportID,
			Title:        "Export to CRM",
			TemplateURI:  "ui://widget/crm-export.html",
			Invoking:     "Preparing CRM export",
			Invoked:      "Export ready",
			HTML:         Markup(assetBaseURL, "crm-export"),
			ResponseText: "CRM export prepared!",
		},
	}
}

// NewDefaultRegistry builds the registry used by the server
func NewDefaultRegistry(assetBaseURL string) (*Registry, error) {
	return New(Defaults(assetBaseURL)...)
}
