package model

import "time"

// Stats aggregates watering status over a collection.
// Overdue + DueToday + Healthy always equals Total.
type Stats struct {
	Total    int `json:"total"`
	Overdue  int `json:"overdue"`
	DueToday int `json:"due_today"`
	Healthy  int `json:"healthy"`
}

// DueDate returns the date the plant next needs water.
func DueDate(p *Plant) time.Time {
	return Day(p.LastWatered).AddDate(0, 0, p.WaterIntervalDays)
}

// ComputeStatus classifies a plant against the reference date today.
//
// - overdue: today is after the due date
// - due_today: today is the due date
// - healthy: today is before the due date
func ComputeStatus(p *Plant, today time.Time) WaterStatus {
	due := DueDate(p)
	today = Day(today)

	switch {
	case today.After(due):
		return StatusOverdue
	case today.Equal(due):
		return StatusDueToday
	default:
		return StatusHealthy
	}
}

// NeedsWater returns true if the plant is overdue or due today.
func NeedsWater(p *Plant, today time.Time) bool {
	return !Day(today).Before(DueDate(p))
}

// DaysUntilDue returns the number of days until the due date.
// Zero means due today; negative values count days overdue.
func DaysUntilDue(p *Plant, today time.Time) int {
	return int(DueDate(p).Sub(Day(today)).Hours() / 24)
}

// ComputeStats counts plants per status for the reference date.
func ComputeStats(plants []Plant, today time.Time) Stats {
	stats := Stats{Total: len(plants)}
	for i := range plants {
		switch ComputeStatus(&plants[i], today) {
		case StatusOverdue:
			stats.Overdue++
		case StatusDueToday:
			stats.DueToday++
		default:
			stats.Healthy++
		}
	}
	return stats
}
