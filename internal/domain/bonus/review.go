package bonus

// LowKPIThreshold marks employees whose aggregate KPI calls for improvement.
// Fixed by policy, not configurable.
const LowKPIThreshold = 70.0

// ReviewRow is one employee's line in the bonus review.
type ReviewRow struct {
	Name       string
	Salary     float64
	KPIScore   float64
	Experience int
	Bonus      float64
}

// Review aggregates the bonus run across all employees.
type Review struct {
	Rows             []ReviewRow
	Total            float64
	Average          float64
	Max              float64
	Min              float64
	Best             string
	Worst            string
	NeedsImprovement []string
}

// BuildReview computes the totals, the best and worst earners, and the list
// of employees below the KPI threshold. Rows keep their input order.
func BuildReview(rows []ReviewRow) Review {
	review := Review{Rows: rows}
	for i, row := range rows {
		review.Total += row.Bonus
		if i == 0 || row.Bonus > review.Max {
			review.Max = row.Bonus
			review.Best = row.Name
		}
		if i == 0 || row.Bonus < review.Min {
			review.Min = row.Bonus
			review.Worst = row.Name
		}
		if row.KPIScore < LowKPIThreshold {
			review.NeedsImprovement = append(review.NeedsImprovement, row.Name)
		}
	}
	if len(rows) > 0 {
		review.Average = review.Total / float64(len(rows))
	}
	return review
}
