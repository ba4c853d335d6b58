package leads

// ConversationsPerLead is how many conversations are analyzed for each qualified lead
const ConversationsPerLead = 3

// Metrics aggregates a search result set
type Metrics struct {
	TotalConversationsAnalyzed int              `json:"total_conversations_analyzed"`
	QualifiedLeadsFound        int              `json:"qualified_leads_found"`
	AverageLeadScore           float64          `json:"average_lead_score"`
	PlatformBreakdown          map[Platform]int `json:"platform_breakdown"`
	IndustryBreakdown          map[string]int   `json:"industry_breakdown"`
	GeographicDistribution     map[string]int   `json:"geographic_distribution"`
}

// Summarize computes metrics over leads. Every known platform is present in the
// platform breakdown, and the average of an empty set is zero.
func Summarize(leads []Lead) Metrics {
	m := Metrics{
		TotalConversationsAnalyzed: len(leads) * ConversationsPerLead,
		QualifiedLeadsFound:        len(leads),
		PlatformBreakdown:          make(map[Platform]int, len(Platforms)),
		IndustryBreakdown:          make(map[string]int),
		GeographicDistribution:     make(map[string]int),
	}
	for _, p := range Platforms {
		m.PlatformBreakdown[p] = 0
	}

	var total float64
	for _, l := range leads {
		total += l.LeadScore
		m.PlatformBreakdown[l.SourcePlatform]++
		m.IndustryBreakdown[l.Industry]++
		m.GeographicDistribution[l.Location]++
	}
	m.AverageLeadScore = Average(total, len(leads))

	return m
}

// Average divides sum by n, defining the empty average as zero
func Average(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
