package allocation

import (
	"debatab/repository"
)

// PopulateFeedbackScores sets each adjudicator's Score to the feedback
// average weighted against the base score. Without usable feedback the
// weight collapses to zero and the base score stands alone.
func PopulateFeedbackScores(adjudicators []*repository.Adjudicator, averages map[int]float64, weight float64) {
	for _, adjudicator := range adjudicators {
		average, ok := averages[adjudicator.Id]
		if !ok {
			adjudicator.Score = adjudicator.BaseScore
			continue
		}
		adjudicator.Score = adjudicator.BaseScore*(1-weight) + average*weight
	}
}

// AnnotateAvailability sets Available on each adjudicator from the round's
// check-in rows.
func AnnotateAvailability(adjudicators []*repository.Adjudicator, availableIds []int) {
	available := make(map[int]bool, len(availableIds))
	for _, id := range availableIds {
		available[id] = true
	}
	for _, adjudicator := range adjudicators {
		adjudicator.Available = available[adjudicator.Id]
	}
}
