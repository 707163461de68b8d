package choices

import (
	"debatab/repository"
	"debatab/utils"
)

func AdjudicatorOptions(adjudicators []*repository.Adjudicator) []Choice {
	return utils.Map(adjudicators, func(adjudicator *repository.Adjudicator) Choice {
		return Choice{Value: adjudicator.Id, Label: adjudicator.Name}
	})
}

func InstitutionOptions(institutions []*repository.Institution) []Choice {
	return utils.Map(institutions, func(institution *repository.Institution) Choice {
		return Choice{Value: institution.Id, Label: institution.Name}
	})
}

// TeamOptions labels teams by code name when the viewer gets anonymized
// names, by short name otherwise.
func TeamOptions(teams []*repository.Team, useCodeNames bool) []Choice {
	return utils.Map(teams, func(team *repository.Team) Choice {
		label := team.ShortName
		if useCodeNames {
			label = team.CodeName
		}
		return Choice{Value: team.Id, Label: label}
	})
}
