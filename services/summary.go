package services

import (
	"diet-server/entities"
)

const dayLayout = "2006-01-02"

// Summarize reduces an owner's meals to the adherence report.
//
// The peak day groups in-diet meals by the UTC date of RecordedAt, the
// server-side creation time, and never by the owner supplied OccurredOn.
// Equal counts go to the earliest date. With no in-diet meal the peak day
// is nil.
func Summarize(meals []entities.Meal) entities.MealSummary {
	summary := entities.MealSummary{TotalMeals: len(meals)}

	perDay := make(map[string]int)
	for _, m := range meals {
		if !m.InDiet {
			summary.TotalNotInDiet++
			continue
		}
		summary.TotalInDiet++
		perDay[m.RecordedAt.UTC().Format(dayLayout)]++
	}

	summary.BestAdherenceDay = peakDay(perDay)
	return summary
}

func peakDay(perDay map[string]int) *entities.PeakAdherenceDay {
	var best *entities.PeakAdherenceDay
	for day, count := range perDay {
		// the layout sorts lexically in date order
		if best == nil || count > best.DietSequence || (count == best.DietSequence && day < best.Date) {
			best = &entities.PeakAdherenceDay{Date: day, DietSequence: count}
		}
	}
	return best
}
