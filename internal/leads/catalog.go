package leads

import (
	"fmt"
	"strings"
)

// MinScore is the qualification threshold applied to every search
const MinScore = 0.6

// Query narrows a catalog search. Empty fields do not filter.
type Query struct {
	Industry      string
	Region        string
	CompanySize   string
	ContactRoles  []string
	IntentSignals []string
	Limit         int
}

// Catalog is a read-only set of leads
type Catalog struct {
	leads []Lead
}

// NewCatalog wraps the given leads. The slice is not copied and must not be
// modified afterwards.
func NewCatalog(leads []Lead) *Catalog {
	return &Catalog{leads: leads}
}

// NewSampleCatalog returns the demonstration catalog
func NewSampleCatalog() *Catalog {
	return NewCatalog(sampleLeads())
}

// Search returns copies of the leads matching q, in catalog order, capped at q.Limit
// when it is positive. An industry nobody works in yields an empty result.
func (c *Catalog) Search(q Query) []Lead {
	out := make([]Lead, 0, len(c.leads))
	for _, l := range c.leads {
		if !q.matches(l) {
			continue
		}
		out = append(out, q.personalize(l))
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out
}

// Get returns the lead with the given id
func (c *Catalog) Get(id string) (Lead, bool) {
	for _, l := range c.leads {
		if l.ID == id {
			return l, true
		}
	}
	return Lead{}, false
}

func (q Query) matches(l Lead) bool {
	if l.LeadScore < MinScore {
		return false
	}
	if q.Industry != "" && !strings.EqualFold(l.Industry, q.Industry) {
		return false
	}
	if q.Region != "" && !containsFold(l.Location, q.Region) {
		return false
	}
	if q.CompanySize != "" && !strings.EqualFold(l.CompanyInsights.Size, q.CompanySize) {
		return false
	}
	if len(q.ContactRoles) > 0 {
		matched := false
		for _, role := range q.ContactRoles {
			if containsFold(l.Title, role) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// personalize rewrites the intent fields of a lead around the caller's signals
func (q Query) personalize(l Lead) Lead {
	signals := q.IntentSignals
	if len(signals) > 2 {
		signals = signals[:2]
	}
	l.IntentAnalysis.SolutionSeeking = append([]string{}, signals...)
	l.IntentAnalysis.PainPoints = append([]string{}, l.IntentAnalysis.PainPoints...)
	if len(q.IntentSignals) > 0 && l.sourceTemplate != "" {
		l.SourceContent = fmt.Sprintf(l.sourceTemplate, q.IntentSignals[0])
	}
	return l
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
