// Package bonus holds the bonus computation core: the KPI aggregate, the
// configurable formula with its file codec, and the review statistics built
// on top of both.
package bonus

import "fmt"

// Aggregate weights, fixed by the bonus policy.
const (
	weightProjectCompletion = 0.4
	weightCodeQuality       = 0.3
	weightTeamwork          = 0.2
	weightInnovation        = 0.1
)

// KPI holds the four performance sub-scores, each a percentage in [0,100] by
// convention. Values are not clamped here; range checks belong to the input
// boundary, and out-of-range values flow into the aggregate unchanged.
type KPI struct {
	ProjectCompletion float64
	CodeQuality       float64
	Teamwork          float64
	Innovation        float64
}

// Total returns the weighted aggregate score.
func (k KPI) Total() float64 {
	return k.ProjectCompletion*weightProjectCompletion +
		k.CodeQuality*weightCodeQuality +
		k.Teamwork*weightTeamwork +
		k.Innovation*weightInnovation
}

func (k KPI) String() string {
	return fmt.Sprintf("projects %.0f%%, quality %.0f%%, teamwork %.0f%%, innovation %.0f%%",
		k.ProjectCompletion, k.CodeQuality, k.Teamwork, k.Innovation)
}
