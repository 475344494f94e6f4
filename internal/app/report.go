package app

import (
	"fmt"
	"math"
	"strings"
	"time"

	"weightlog/internal/domain"
)

// ReportDateLayout is how report and chart dates are shown (MMDDYYYY).
const ReportDateLayout = "01022006"

// Trend is the change between the first and last record, in pounds.
type Trend struct {
	// Sufficient is false when there are fewer than two records.
	Sufficient bool    `json:"sufficient"`
	Direction  string  `json:"direction,omitempty"`
	Lbs        float64 `json:"lbs"`
}

func (t Trend) String() string {
	if !t.Sufficient {
		return "Not enough data for trend analysis"
	}
	return fmt.Sprintf("%s of %.2f lbs", t.Direction, t.Lbs)
}

// Report summarises a profile's records. Weights are in pounds.
type Report struct {
	Count      int       `json:"count"`
	AverageLbs float64   `json:"averageLbs"`
	MinLbs     float64   `json:"minLbs"`
	MaxLbs     float64   `json:"maxLbs"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	Trend      Trend     `json:"trend"`
}

// Summarize computes the report for records in file order. An empty input
// returns domain.ErrNoData.
func Summarize(records []domain.NormalizedRecord) (*Report, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no weight data available to generate a report: %w", domain.ErrNoData)
	}

	first, last := records[0], records[len(records)-1]
	r := &Report{
		Count: len(records),
		From:  first.Timestamp,
		To:    first.Timestamp,
	}
	minKg, maxKg, sumKg := math.Inf(1), math.Inf(-1), 0.0
	for _, rec := range records {
		sumKg += rec.WeightKg
		minKg = math.Min(minKg, rec.WeightKg)
		maxKg = math.Max(maxKg, rec.WeightKg)
		if rec.Timestamp.Before(r.From) {
			r.From = rec.Timestamp
		}
		if rec.Timestamp.After(r.To) {
			r.To = rec.Timestamp
		}
	}
	r.AverageLbs = domain.KgToLbs(sumKg / float64(len(records)))
	r.MinLbs = domain.KgToLbs(minKg)
	r.MaxLbs = domain.KgToLbs(maxKg)

	if r.Count > 1 {
		change := domain.KgToLbs(last.WeightKg - first.WeightKg)
		r.Trend = Trend{Sufficient: true, Direction: "Loss", Lbs: math.Abs(change)}
		if change > 0 {
			r.Trend.Direction = "Gain"
		}
	}
	return r, nil
}

// Text renders the report as the preformatted block shown to the user.
func (r *Report) Text(profile string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weight Recording Report - Profile: %s\n\n", profile)
	fmt.Fprintf(&b, "Total Entries: %d\n", r.Count)
	fmt.Fprintf(&b, "Date Range: %s to %s\n\n", r.From.Format(ReportDateLayout), r.To.Format(ReportDateLayout))
	b.WriteString("Statistics (in lbs):\n")
	fmt.Fprintf(&b, "- Average Weight: %.2f\n", r.AverageLbs)
	fmt.Fprintf(&b, "- Minimum Weight: %.2f\n", r.MinLbs)
	fmt.Fprintf(&b, "- Maximum Weight: %.2f\n\n", r.MaxLbs)
	fmt.Fprintf(&b, "Overall Trend: %s\n", r.Trend)
	return b.String()
}
