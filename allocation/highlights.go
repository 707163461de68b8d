package allocation

import (
	"debatab/repository"
	"debatab/utils"
)

// Highlight is one entry of the legend blocks in the allocation UI. Rank
// entries carry string pks ('a'..'f') and a score cutoff, region entries
// carry the region's numeric pk.
type Highlight struct {
	Pk     any             `json:"pk"`
	Fields HighlightFields `json:"fields"`
}

type HighlightFields struct {
	Name   string   `json:"name"`
	Cutoff *float64 `json:"cutoff,omitempty"`
}

func GenderHighlights() []Highlight {
	return []Highlight{
		{Pk: "m", Fields: HighlightFields{Name: "Male"}},
		{Pk: "f", Fields: HighlightFields{Name: "Female"}},
		{Pk: "o", Fields: HighlightFields{Name: "Other"}},
		{Pk: "u", Fields: HighlightFields{Name: "Unknown"}},
	}
}

// RanksDictionary buckets the score range into the A/B/C/F grades used to
// colour adjudicators, cut at 80%, 60%, 40% and the bottom of the range.
func RanksDictionary(minScore float64, maxScore float64) []Highlight {
	width := maxScore - minScore
	cutoff := func(fraction float64) *float64 {
		value := minScore + width*fraction
		return &value
	}
	return []Highlight{
		{Pk: "a", Fields: HighlightFields{Name: "A", Cutoff: cutoff(0.8)}},
		{Pk: "b", Fields: HighlightFields{Name: "B", Cutoff: cutoff(0.6)}},
		{Pk: "c", Fields: HighlightFields{Name: "C", Cutoff: cutoff(0.4)}},
		{Pk: "f", Fields: HighlightFields{Name: "F", Cutoff: cutoff(0)}},
	}
}

func RegionHighlights(regions []*repository.Region) []Highlight {
	return utils.Map(regions, func(region *repository.Region) Highlight {
		return Highlight{Pk: region.Id, Fields: HighlightFields{Name: region.Name}}
	})
}

// SerializeGender maps the stored gender to its highlight pk, empty becomes
// unknown.
func SerializeGender(gender string) string {
	switch gender {
	case repository.GenderMale:
		return "m"
	case repository.GenderFemale:
		return "f"
	case repository.GenderOther:
		return "o"
	default:
		return "u"
	}
}
