package entities

// MealSummary is the adherence report for one owner. The JSON names are
// relied on by existing clients.
type MealSummary struct {
	TotalMeals       int               `json:"totalMeals"`
	TotalInDiet      int               `json:"totalInDiet"`
	TotalNotInDiet   int               `json:"totalNotInDiet"`
	BestAdherenceDay *PeakAdherenceDay `json:"bestAdherenceDay"`
}

// PeakAdherenceDay is the calendar day with the most in-diet meals recorded.
// DietSequence is that day's count, not a run of consecutive days.
type PeakAdherenceDay struct {
	Date         string `json:"-"`
	DietSequence int    `json:"dietSequence"`
}
