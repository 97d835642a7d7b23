package routine

import (
	"fmt"
	"math"
)

// Rate returns completed/total as a 0-100 percentage rounded to the
// given number of decimals. A zero denominator yields 0.
func Rate(completed, total, decimals int) float64 {
	if total == 0 {
		return 0
	}
	return Round(float64(completed)/float64(total)*100, decimals)
}

// Round rounds v to the given number of decimals. Each domain keeps one
// precision for all of its rates rather than a global setting.
func Round(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}

// FormatRate renders a 0-100 rate as a percentage string with the given
// precision, e.g. "85.7%".
func FormatRate(rate float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, rate)
}

// Insight is one pre-evaluated (predicate, message) pair. Rules are
// independent: every matching rule emits, in table order.
type Insight struct {
	When    bool
	Message string
}

// CollectInsights returns the messages of all matching rules.
func CollectInsights(rules []Insight) []string {
	insights := []string{}
	for _, r := range rules {
		if r.When {
			insights = append(insights, r.Message)
		}
	}
	return insights
}
