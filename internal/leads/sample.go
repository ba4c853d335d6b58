package leads

import "fmt"

const defaultSolution = "a better solution"

func sampleLead(l Lead, template string) Lead {
	l.sourceTemplate = template
	l.SourceContent = fmt.Sprintf(template, defaultSolution)
	return l
}

func sampleLeads() []Lead {
	return []Lead{
		sampleLead(Lead{
			ID:             "lead-001",
			ProspectName:   "Sarah Johnson",
			Company:        "TechCorp Solutions",
			Title:          "VP of Marketing",
			Industry:       "Technology",
			Location:       "San Francisco, CA",
			SourcePlatform: PlatformLinkedIn,
			SourceURL:      "https://linkedin.com/posts/sarah-johnson",
			LeadScore:      0.85,
			ScoreBreakdown: ScoreBreakdown{IntentStrength: 0.9, CompanyFit: 0.8, RoleRelevance: 0.85, EngagementLevel: 0.8, TimingSignals: 0.9},
			IntentAnalysis: IntentAnalysis{
				HasIntent: true, Confidence: 0.85, IntentLevel: "high", UrgencyLevel: "high",
				PainPoints: []string{"manual processes", "data silos"},
			},
			ContactInfo: ContactInfo{
				Email: "sarah.johnson@techcorp.com", EmailConfidence: 0.9, Phone: "+1-555-0123",
				SocialProfiles: map[string]string{"linkedin": "https://linkedin.com/in/sarah-johnson", "twitter": "@sarahj_tech"},
			},
			CompanyInsights: CompanyInsights{
				Industry: "Technology", Size: "201-1000", Revenue: "$50M-$100M",
				Technologies: []string{"Salesforce", "HubSpot", "Slack"},
				RecentNews:   []string{"Series B funding", "New product launch"},
			},
		}, "Looking for %s to streamline our marketing operations"),
		sampleLead(Lead{
			ID:             "lead-002",
			ProspectName:   "Michael Chen",
			Company:        "GrowthCo Inc",
			Title:          "Head of Sales",
			Industry:       "SaaS",
			Location:       "Austin, TX",
			SourcePlatform: PlatformReddit,
			SourceURL:      "https://reddit.com/r/sales/comments/xyz",
			LeadScore:      0.78,
			ScoreBreakdown: ScoreBreakdown{IntentStrength: 0.8, CompanyFit: 0.75, RoleRelevance: 0.8, EngagementLevel: 0.7, TimingSignals: 0.8},
			IntentAnalysis: IntentAnalysis{
				HasIntent: true, Confidence: 0.78, IntentLevel: "medium", UrgencyLevel: "medium",
				PainPoints: []string{"low conversion rates", "manual prospecting"},
			},
			ContactInfo: ContactInfo{
				Email: "michael.chen@growthco.com", EmailConfidence: 0.85, Phone: "+1-555-0456",
				SocialProfiles: map[string]string{"linkedin": "https://linkedin.com/in/michael-chen", "twitter": "@mchen_sales"},
			},
			CompanyInsights: CompanyInsights{
				Industry: "SaaS", Size: "51-200", Revenue: "$10M-$50M",
				Technologies: []string{"Pipedrive", "Zoom", "Calendly"},
				RecentNews:   []string{"Team expansion", "Product update"},
			},
		}, "Need help finding %s for our sales processes"),
		sampleLead(Lead{
			ID:             "lead-003",
			ProspectName:   "Emily Rodriguez",
			Company:        "HealthTech Solutions",
			Title:          "Marketing Director",
			Industry:       "Healthcare",
			Location:       "Boston, MA",
			SourcePlatform: PlatformTwitter,
			SourceURL:      "https://twitter.com/emily_health/status/123",
			LeadScore:      0.72,
			ScoreBreakdown: ScoreBreakdown{IntentStrength: 0.7, CompanyFit: 0.75, RoleRelevance: 0.7, EngagementLevel: 0.75, TimingSignals: 0.65},
			IntentAnalysis: IntentAnalysis{
				HasIntent: true, Confidence: 0.72, IntentLevel: "medium", UrgencyLevel: "low",
				PainPoints: []string{"campaign tracking", "ROI measurement"},
			},
			ContactInfo: ContactInfo{
				Email: "emily.rodriguez@healthtech.com", EmailConfidence: 0.8, Phone: "+1-555-0789",
				SocialProfiles: map[string]string{"linkedin": "https://linkedin.com/in/emily-rodriguez", "twitter": "@emily_health"},
			},
			CompanyInsights: CompanyInsights{
				Industry: "Healthcare", Size: "201-1000", Revenue: "$100M-$500M",
				Technologies: []string{"Epic", "Salesforce", "Tableau"},
				RecentNews:   []string{"FDA approval", "Partnership announcement"},
			},
		}, "Seeking recommendations for %s"),
		sampleLead(Lead{
			ID:             "lead-004",
			ProspectName:   "David Park",
			Company:        "Ledgerly",
			Title:          "Chief Revenue Officer",
			Industry:       "Fintech",
			Location:       "New York, NY",
			SourcePlatform: PlatformLinkedIn,
			SourceURL:      "https://linkedin.com/posts/david-park",
			LeadScore:      0.81,
			ScoreBreakdown: ScoreBreakdown{IntentStrength: 0.85, CompanyFit: 0.8, RoleRelevance: 0.9, EngagementLevel: 0.7, TimingSignals: 0.8},
			IntentAnalysis: IntentAnalysis{
				HasIntent: true, Confidence: 0.81, IntentLevel: "high", UrgencyLevel: "medium",
				PainPoints: []string{"pipeline visibility", "forecast accuracy"},
			},
			ContactInfo: ContactInfo{
				Email: "david.park@ledgerly.io", EmailConfidence: 0.75, Phone: "+1-555-0311",
				SocialProfiles: map[string]string{"linkedin": "https://linkedin.com/in/david-park"},
			},
			CompanyInsights: CompanyInsights{
				Industry: "Fintech", Size: "51-200", Revenue: "$10M-$50M",
				Technologies: []string{"HubSpot", "Snowflake", "Looker"},
				RecentNews:   []string{"Series A funding"},
			},
		}, "We want to buy %s before next quarter"),
		sampleLead(Lead{
			ID:             "lead-005",
			ProspectName:   "Priya Natarajan",
			Company:        "CloudNest",
			Title:          "Director of Sales Operations",
			Industry:       "SaaS",
			Location:       "Seattle, WA",
			SourcePlatform: PlatformTwitter,
			SourceURL:      "https://twitter.com/priya_ops/status/456",
			LeadScore:      0.67,
			ScoreBreakdown: ScoreBreakdown{IntentStrength: 0.6, CompanyFit: 0.7, RoleRelevance: 0.75, EngagementLevel: 0.6, TimingSignals: 0.65},
			IntentAnalysis: IntentAnalysis{
				HasIntent: true, Confidence: 0.67, IntentLevel: "medium", UrgencyLevel: "low",
				PainPoints: []string{"CRM hygiene", "territory planning"},
			},
			ContactInfo: ContactInfo{
				Email: "priya@cloudnest.dev", EmailConfidence: 0.7, Phone: "+1-555-0642",
				SocialProfiles: map[string]string{"twitter": "@priya_ops"},
			},
			CompanyInsights: CompanyInsights{
				Industry: "SaaS", Size: "1000+", Revenue: "$500M+",
				Technologies: []string{"Salesforce", "Outreach", "Gong"},
				RecentNews:   []string{"IPO filing"},
			},
		}, "Anyone have experience with %s?"),
		sampleLead(Lead{
			ID:             "lead-006",
			ProspectName:   "Tom Becker",
			Company:        "Brightside Retail",
			Title:          "Store Manager",
			Industry:       "Retail",
			Location:       "Chicago, IL",
			SourcePlatform: PlatformReddit,
			SourceURL:      "https://reddit.com/r/retail/comments/abc",
			LeadScore:      0.41,
			ScoreBreakdown: ScoreBreakdown{IntentStrength: 0.3, CompanyFit: 0.5, RoleRelevance: 0.4, EngagementLevel: 0.45, TimingSignals: 0.4},
			IntentAnalysis: IntentAnalysis{
				HasIntent: false, Confidence: 0.41, IntentLevel: "low", UrgencyLevel: "low",
				PainPoints: []string{"staff scheduling"},
			},
			ContactInfo: ContactInfo{
				Email: "tbecker@brightside.com", EmailConfidence: 0.5,
				SocialProfiles: map[string]string{},
			},
			CompanyInsights: CompanyInsights{
				Industry: "Retail", Size: "11-50", Revenue: "$1M-$10M",
				Technologies: []string{"Square"},
				RecentNews:   []string{},
			},
		}, "Just browsing %s, nothing urgent"),
	}
}
