// Package leads holds the lead catalog and the aggregate computations the
// lead finder tools report on.
package leads

// Platform names a social source a lead was found on
type Platform string

const (
	PlatformLinkedIn Platform = "LinkedIn"
	PlatformReddit   Platform = "Reddit"
	PlatformTwitter  Platform = "Twitter"
)

// Platforms is the fixed set reported in platform breakdowns
var Platforms = []Platform{PlatformLinkedIn, PlatformReddit, PlatformTwitter}

// Lead is a prospect with purchase intent
type Lead struct {
	ID              string          `json:"id"`
	ProspectName    string          `json:"prospect_name"`
	Company         string          `json:"company"`
	Title           string          `json:"title"`
	Industry        string          `json:"industry"`
	Location        string          `json:"location"`
	SourcePlatform  Platform        `json:"source_platform"`
	SourceURL       string          `json:"source_url"`
	SourceContent   string          `json:"source_content"`
	LeadScore       float64         `json:"lead_score"`
	ScoreBreakdown  ScoreBreakdown  `json:"score_breakdown"`
	IntentAnalysis  IntentAnalysis  `json:"intent_analysis"`
	ContactInfo     ContactInfo     `json:"contact_info"`
	CompanyInsights CompanyInsights `json:"company_insights"`

	// sourceTemplate holds a single %s verb filled with the searched intent signal
	sourceTemplate string
}

type ScoreBreakdown struct {
	IntentStrength  float64 `json:"intent_strength"`
	CompanyFit      float64 `json:"company_fit"`
	RoleRelevance   float64 `json:"role_relevance"`
	EngagementLevel float64 `json:"engagement_level"`
	TimingSignals   float64 `json:"timing_signals"`
}

type IntentAnalysis struct {
	HasIntent       bool     `json:"has_intent"`
	Confidence      float64  `json:"confidence"`
	IntentLevel     string   `json:"intent_level"`
	UrgencyLevel    string   `json:"urgency_level"`
	SolutionSeeking []string `json:"solution_seeking"`
	PainPoints      []string `json:"pain_points"`
}

type ContactInfo struct {
	Email           string            `json:"email"`
	EmailConfidence float64           `json:"email_confidence"`
	Phone           string            `json:"phone"`
	SocialProfiles  map[string]string `json:"social_profiles"`
}

type CompanyInsights struct {
	Industry     string   `json:"industry"`
	Size         string   `json:"size"`
	Revenue      string   `json:"revenue"`
	Technologies []string `json:"technologies"`
	RecentNews   []string `json:"recent_news"`
}
