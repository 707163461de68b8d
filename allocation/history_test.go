package allocation

import (
	"testing"

	"debatab/repository"

	"github.com/stretchr/testify/assert"
)

func TestBuildHistoriesCountsRoundsBack(t *testing.T) {
	teamHistories, adjudicatorHistories := buildHistories(
		[]*repository.AdjudicatorPairing{
			{AdjudicatorId: 10, OtherId: 1, Seq: 1},
			{AdjudicatorId: 10, OtherId: 2, Seq: 3},
		},
		nil, 4)

	assert.Equal(t, []HistoryItem{{Id: 2, Ago: 1}, {Id: 1, Ago: 3}}, adjudicatorHistories[10].Team)
	assert.Equal(t, []HistoryItem{{Id: 10, Ago: 3}}, teamHistories[1].Adjudicator)
	assert.Equal(t, []HistoryItem{{Id: 10, Ago: 1}}, teamHistories[2].Adjudicator)
}

func TestBuildHistoriesRepeatedMeetings(t *testing.T) {
	// the same pair sitting together in several rounds yields one item per
	// meeting
	_, adjudicatorHistories := buildHistories(
		[]*repository.AdjudicatorPairing{
			{AdjudicatorId: 10, OtherId: 1, Seq: 1},
			{AdjudicatorId: 10, OtherId: 1, Seq: 2},
		},
		nil, 3)

	assert.Equal(t, []HistoryItem{{Id: 1, Ago: 1}, {Id: 1, Ago: 2}}, adjudicatorHistories[10].Team)
}

func TestBuildHistoriesPanelPairsAreBidirectional(t *testing.T) {
	_, adjudicatorHistories := buildHistories(nil,
		[]*repository.AdjudicatorPairing{
			{AdjudicatorId: 10, OtherId: 11, Seq: 2},
		}, 3)

	assert.Equal(t, []HistoryItem{{Id: 11, Ago: 1}}, adjudicatorHistories[10].Adjudicator)
	assert.Equal(t, []HistoryItem{{Id: 10, Ago: 1}}, adjudicatorHistories[11].Adjudicator)
}

func TestBuildHistoriesSortsByRecencyThenId(t *testing.T) {
	_, adjudicatorHistories := buildHistories(
		[]*repository.AdjudicatorPairing{
			{AdjudicatorId: 10, OtherId: 5, Seq: 1},
			{AdjudicatorId: 10, OtherId: 3, Seq: 2},
			{AdjudicatorId: 10, OtherId: 1, Seq: 2},
		},
		nil, 3)

	assert.Equal(t, []HistoryItem{
		{Id: 1, Ago: 1},
		{Id: 3, Ago: 1},
		{Id: 5, Ago: 2},
	}, adjudicatorHistories[10].Team)
}

func TestBuildHistoriesOnlyTouchedParticipantsAppear(t *testing.T) {
	teamHistories, adjudicatorHistories := buildHistories(nil, nil, 5)

	assert.Empty(t, teamHistories)
	assert.Empty(t, adjudicatorHistories)
}
