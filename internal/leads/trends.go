package leads

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// WeeklyActivity is one week of lead pipeline activity
type WeeklyActivity struct {
	WeekOf        time.Time
	Hot           int
	Warm          int
	Cold          int
	Conversions   int
	ResponseHours float64 // mean first-response time for the week
}

// Leads returns the number of leads that came in during the week
func (w WeeklyActivity) Leads() int {
	return w.Hot + w.Warm + w.Cold
}

// Analytics is the pipeline summary for a window
type Analytics struct {
	TotalLeads      int     `json:"total_leads"`
	HotLeads        int     `json:"hot_leads"`
	WarmLeads       int     `json:"warm_leads"`
	ColdLeads       int     `json:"cold_leads"`
	ConversionRate  float64 `json:"conversion_rate"`
	AvgResponseTime string  `json:"avg_response_time"`
}

// Trends describes growth and concentration within a window
type Trends struct {
	WeeklyGrowth  float64  `json:"weekly_growth"`
	MonthlyGrowth float64  `json:"monthly_growth"`
	TopIndustries []string `json:"top_industries"`
	TopLocations  []string `json:"top_locations"`
}

// Point is one entry of the dashboard time series
type Point struct {
	Date        string `json:"date"`
	Leads       int    `json:"leads"`
	Conversions int    `json:"conversions"`
}

// TrendReport is everything the dashboard renders for one window
type TrendReport struct {
	Analytics  Analytics
	Trends     Trends
	TimeSeries []Point
}

// History is a chronologically ordered record of weekly activity
type History struct {
	weeks []WeeklyActivity
}

// NewHistory wraps weeks, which must be sorted by WeekOf ascending
func NewHistory(weeks []WeeklyActivity) *History {
	return &History{weeks: weeks}
}

// Window returns the weeks that fall within the last days days of the history.
// The most recent week is always included when the history is not empty.
func (h *History) Window(days int) []WeeklyActivity {
	if len(h.weeks) == 0 {
		return nil
	}
	end := h.weeks[len(h.weeks)-1].WeekOf
	cutoff := end.AddDate(0, 0, -days)

	out := make([]WeeklyActivity, 0, len(h.weeks))
	for _, w := range h.weeks {
		if w.WeekOf.After(cutoff) {
			out = append(out, w)
		}
	}
	return out
}

// Report aggregates the window of the last days days. Concentration trends are
// derived from the catalog's qualified leads.
func (h *History) Report(days int, catalog *Catalog) TrendReport {
	weeks := h.Window(days)

	var r TrendReport
	var conversions int
	var responseHours float64
	r.TimeSeries = make([]Point, 0, len(weeks))
	for _, w := range weeks {
		r.Analytics.HotLeads += w.Hot
		r.Analytics.WarmLeads += w.Warm
		r.Analytics.ColdLeads += w.Cold
		conversions += w.Conversions
		responseHours += w.ResponseHours
		r.TimeSeries = append(r.TimeSeries, Point{
			Date:        w.WeekOf.Format(dateLayout),
			Leads:       w.Leads(),
			Conversions: w.Conversions,
		})
	}
	r.Analytics.TotalLeads = r.Analytics.HotLeads + r.Analytics.WarmLeads + r.Analytics.ColdLeads
	r.Analytics.ConversionRate = Average(float64(conversions), r.Analytics.TotalLeads)
	r.Analytics.AvgResponseTime = fmt.Sprintf("%.1f days", Average(responseHours, len(weeks))/24)

	r.Trends.WeeklyGrowth = growth(weeks, 1)
	r.Trends.MonthlyGrowth = growth(weeks, 4)

	qualified := catalog.Search(Query{})
	r.Trends.TopIndustries = topN(qualified, 3, func(l Lead) string { return l.Industry })
	r.Trends.TopLocations = topN(qualified, 3, func(l Lead) string { return city(l.Location) })

	return r
}

// growth compares the latest week with the one back weeks earlier. Windows too
// short to compare, or a zero baseline, report no growth.
func growth(weeks []WeeklyActivity, back int) float64 {
	if len(weeks) <= back {
		return 0
	}
	latest := weeks[len(weeks)-1].Leads()
	base := weeks[len(weeks)-1-back].Leads()
	if base == 0 {
		return 0
	}
	return float64(latest-base) / float64(base)
}

// topN ranks values by frequency, breaking ties by first appearance
func topN(leads []Lead, n int, key func(Lead) string) []string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, l := range leads {
		k := key(l)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}

func city(location string) string {
	if i := strings.Index(location, ","); i >= 0 {
		return strings.TrimSpace(location[:i])
	}
	return location
}

// NewSampleHistory returns thirteen weeks of demonstration activity
func NewSampleHistory() *History {
	start := time.Date(2025, time.July, 13, 0, 0, 0, 0, time.UTC)
	counts := []struct{ hot, warm, cold, conv int }{
		{2, 4, 3, 1}, {2, 5, 3, 1}, {3, 5, 2, 1}, {3, 6, 3, 2},
		{3, 6, 2, 2}, {4, 6, 3, 2}, {3, 7, 3, 2}, {4, 7, 3, 2},
		{3, 6, 3, 2}, {5, 8, 5, 3}, {7, 12, 6, 5}, {9, 14, 7, 6}, {11, 16, 8, 8},
	}

	weeks := make([]WeeklyActivity, 0, len(counts))
	for i, c := range counts {
		weeks = append(weeks, WeeklyActivity{
			WeekOf:        start.AddDate(0, 0, 7*i),
			Hot:           c.hot,
			Warm:          c.warm,
			Cold:          c.cold,
			Conversions:   c.conv,
			ResponseHours: 48 + float64(i%4)*6,
		})
	}
	return NewHistory(weeks)
}
