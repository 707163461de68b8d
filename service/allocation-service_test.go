package service

import (
	"fmt"
	"net/http"
	"testing"

	"debatab/allocation"
	"debatab/app_error"
	"debatab/repository"

	"github.com/stretchr/testify/assert"
)

func TestGetDebateAllocation(t *testing.T) {
	f := SetUp()
	defer TearDown()
	allocationService := NewAllocationService(db)

	debate := &repository.Debate{
		RoundId:    f.Round2.Id,
		Bracket:    3,
		RoomRank:   1,
		Importance: 1,
		DebateTeams: []*repository.DebateTeam{
			{Side: "aff", TeamId: f.OxfordA.Id},
			{Side: "neg", TeamId: f.YaleA.Id},
		},
		DebateAdjudicators: []*repository.DebateAdjudicator{
			{AdjudicatorId: f.Alice.Id, Type: repository.PositionChair},
		},
	}
	// the round 1 debate feeds the history tables
	previous := &repository.Debate{
		RoundId: f.Round1.Id,
		DebateTeams: []*repository.DebateTeam{
			{Side: "aff", TeamId: f.OxfordA.Id},
			{Side: "neg", TeamId: f.YaleA.Id},
		},
		DebateAdjudicators: []*repository.DebateAdjudicator{
			{AdjudicatorId: f.Alice.Id, Type: repository.PositionChair},
			{AdjudicatorId: f.Bob.Id, Type: repository.PositionPanellist},
		},
	}
	create(debate, previous,
		&repository.RoundAvailability{RoundId: f.Round2.Id, AdjudicatorId: f.Alice.Id},
		&repository.RoundAvailability{RoundId: f.Round2.Id, AdjudicatorId: f.Carol.Id},
		&repository.AdjudicatorFeedback{AdjudicatorId: f.Alice.Id, RoundId: f.Round1.Id, Score: 2, Confirmed: true},
		&repository.AdjudicatorFeedback{AdjudicatorId: f.Alice.Id, RoundId: f.Round1.Id, Score: 4, Confirmed: true},
		&repository.AdjudicatorFeedback{AdjudicatorId: f.Alice.Id, RoundId: f.Round1.Id, Score: 5},
		&repository.AdjudicatorTeamConflict{AdjudicatorId: f.Alice.Id, TeamId: f.YaleA.Id},
	)

	result, err := allocationService.GetDebateAllocation(f.Tabber, f.Tournament, f.Round2)
	assert.NoError(t, err)

	assert.Len(t, result.Adjudicators, 3, "all of the tournament's adjudicators, ordered by name")
	alice := result.Adjudicators[0]
	assert.Equal(t, "Alice Birch", alice.Name)
	assert.Equal(t, "f", alice.Gender)
	assert.True(t, alice.Available)
	// base 4.5 and confirmed average 3 at feedback weight 0.5, the
	// unconfirmed score of 5 does not count
	assert.InDelta(t, 3.75, alice.Score, 0.0001)
	assert.Equal(t, f.Oxford.Id, *alice.Institution)
	assert.Equal(t, f.Europe.Id, *alice.Region)

	bob := result.Adjudicators[1]
	assert.Equal(t, "Bob Chen", bob.Name)
	assert.False(t, bob.Available)
	assert.InDelta(t, 3.0, bob.Score, 0.0001, "no feedback, base score stands alone")
	assert.Nil(t, bob.Region, "Yale has no region")

	carol := result.Adjudicators[2]
	assert.True(t, carol.Available)
	assert.Equal(t, "u", carol.Gender)
	assert.Nil(t, carol.Institution)
	assert.True(t, carol.AdjCore)

	assert.Len(t, result.Debates, 1)
	d := result.Debates[0]
	assert.Equal(t, debate.Id, d.Id)
	assert.Equal(t, []string{"aff", "neg"}, d.Sides)
	assert.Equal(t, f.OxfordA.Id, d.Teams["aff"].Id)
	assert.Equal(t, "Oxford A", d.Teams["aff"].Name)
	assert.Equal(t, f.Oxford.Id, *d.Teams["aff"].Institution)
	assert.Equal(t, f.YaleA.Id, d.Teams["neg"].Id)
	assert.Equal(t, f.Alice.Id, *d.Adjudicators.Chair)
	assert.Empty(t, d.Adjudicators.Panellists)
	assert.Empty(t, d.Adjudicators.Trainees)

	extra := result.ExtraInfo
	assert.Equal(t, 1.0, extra.AdjMinScore)
	assert.Equal(t, 5.0, extra.AdjMaxScore)
	assert.Equal(t, "a", extra.Highlights.Rank[0].Pk)
	assert.InDelta(t, 4.2, *extra.Highlights.Rank[0].Fields.Cutoff, 0.0001)
	assert.Len(t, extra.Highlights.Gender, 4)
	assert.Equal(t, []allocation.Highlight{
		{Pk: f.Europe.Id, Fields: allocation.HighlightFields{Name: "Europe"}},
	}, extra.Highlights.Region)
	assert.Equal(t, 1.5, extra.AllocationSettings["draw_rules__adj_min_voting_score"])
	assert.Equal(t, 1000000, extra.AllocationSettings["draw_rules__adj_conflict_penalty"])
	assert.Equal(t, false, extra.AllocationSettings["draw_rules__no_trainee_position"])
	assert.False(t, extra.HasPreformedPanels)
	assert.Equal(t, "/tournaments/test-open/rounds/2/draw", extra.BackURL)
	assert.Equal(t, "Return to Draw", extra.BackLabel)

	assert.Equal(t, []int{f.YaleA.Id}, extra.Clashes.Adjudicators[f.Alice.Id].Team)
	assert.Equal(t, []int{f.Oxford.Id}, extra.Clashes.Adjudicators[f.Alice.Id].Institution)
	assert.Equal(t, []int{f.Alice.Id}, extra.Clashes.Teams[f.YaleA.Id].Adjudicator)
	assert.Equal(t, []int{f.Yale.Id}, extra.Clashes.Teams[f.YaleA.Id].Institution)

	assert.Equal(t, []allocation.HistoryItem{
		{Id: f.OxfordA.Id, Ago: 1},
		{Id: f.YaleA.Id, Ago: 1},
	}, extra.Histories.Adjudicators[f.Alice.Id].Team)
	assert.Equal(t, []allocation.HistoryItem{{Id: f.Bob.Id, Ago: 1}}, extra.Histories.Adjudicators[f.Alice.Id].Adjudicator)
	assert.Equal(t, []allocation.HistoryItem{
		{Id: f.Alice.Id, Ago: 1},
		{Id: f.Bob.Id, Ago: 1},
	}, extra.Histories.Teams[f.OxfordA.Id].Adjudicator)
}

func TestGetDebateAllocationRequiresPermission(t *testing.T) {
	f := SetUp()
	defer TearDown()
	allocationService := NewAllocationService(db)

	_, err := allocationService.GetDebateAllocation(f.Outsider, f.Tournament, f.Round2)
	assert.EqualError(t, err, "missing permission view_debate_adjudicators")
	assert.Equal(t, http.StatusForbidden, app_error.HTTPStatus(err))
}

func TestSaveDebateAllocationReplacesAssignments(t *testing.T) {
	f := SetUp()
	defer TearDown()
	allocationService := NewAllocationService(db)

	debate := &repository.Debate{
		RoundId: f.Round2.Id,
		DebateAdjudicators: []*repository.DebateAdjudicator{
			{AdjudicatorId: f.Alice.Id, Type: repository.PositionChair},
		},
	}
	create(debate)

	debates, err := allocationService.SaveDebateAllocation(f.Tabber, f.Tournament, f.Round2, []*AllocationUpdate{
		{Id: debate.Id, Chair: &f.Bob.Id, Panellists: []int{f.Alice.Id}, Trainees: []int{f.Carol.Id}},
	})
	assert.NoError(t, err)
	assert.Len(t, debates, 1)
	assert.Equal(t, f.Bob.Id, *debates[0].Adjudicators.Chair)
	assert.Equal(t, []int{f.Alice.Id}, debates[0].Adjudicators.Panellists)
	assert.Equal(t, []int{f.Carol.Id}, debates[0].Adjudicators.Trainees)

	// a second save replaces the panel instead of stacking assignments
	debates, err = allocationService.SaveDebateAllocation(f.Tabber, f.Tournament, f.Round2, []*AllocationUpdate{
		{Id: debate.Id, Chair: &f.Alice.Id},
	})
	assert.NoError(t, err)
	assert.Equal(t, f.Alice.Id, *debates[0].Adjudicators.Chair)
	assert.Empty(t, debates[0].Adjudicators.Panellists)

	var count int64
	db.Model(&repository.DebateAdjudicator{}).Where("debate_id = ?", debate.Id).Count(&count)
	assert.Equal(t, int64(1), count)

	entries, err := repository.NewActionLogRepository(db).GetEntriesForTournament(f.Tournament.Id, 10)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, repository.ActionAdjudicatorsSave, entries[0].Type)
	assert.Equal(t, f.Round2.Id, *entries[0].RoundId)
}

func TestSaveDebateAllocationRejectsForeignDebate(t *testing.T) {
	f := SetUp()
	defer TearDown()
	allocationService := NewAllocationService(db)

	other := &repository.Debate{RoundId: f.Round1.Id}
	create(other)

	_, err := allocationService.SaveDebateAllocation(f.Tabber, f.Tournament, f.Round2, []*AllocationUpdate{
		{Id: other.Id, Chair: &f.Alice.Id},
	})
	assert.EqualError(t, err, fmt.Sprintf("debate with id %d is not in this round", other.Id))
	assert.Equal(t, http.StatusBadRequest, app_error.HTTPStatus(err))

	var count int64
	db.Model(&repository.DebateAdjudicator{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSaveDebateAllocationRejectsUnknownAdjudicator(t *testing.T) {
	f := SetUp()
	defer TearDown()
	allocationService := NewAllocationService(db)

	debate := &repository.Debate{RoundId: f.Round2.Id}
	create(debate)

	_, err := allocationService.SaveDebateAllocation(f.Tabber, f.Tournament, f.Round2, []*AllocationUpdate{
		{Id: debate.Id, Chair: intPointer(999999)},
	})
	assert.EqualError(t, err, "adjudicator with id 999999 is not in this tournament")
	assert.Equal(t, http.StatusBadRequest, app_error.HTTPStatus(err))
}

func TestSaveDebateAllocationRejectsDoubleAssignment(t *testing.T) {
	f := SetUp()
	defer TearDown()
	allocationService := NewAllocationService(db)

	debate := &repository.Debate{RoundId: f.Round2.Id}
	create(debate)

	_, err := allocationService.SaveDebateAllocation(f.Tabber, f.Tournament, f.Round2, []*AllocationUpdate{
		{Id: debate.Id, Chair: &f.Alice.Id, Panellists: []int{f.Alice.Id}},
	})
	assert.EqualError(t, err, fmt.Sprintf("adjudicator with id %d is assigned twice", f.Alice.Id))
	assert.Equal(t, http.StatusBadRequest, app_error.HTTPStatus(err))
}

func TestCreatePanelsAndSavePanelAllocation(t *testing.T) {
	f := SetUp()
	defer TearDown()
	allocationService := NewAllocationService(db)

	panels, err := allocationService.CreatePanels(f.Tabber, f.Tournament, f.Round2, 2)
	assert.NoError(t, err)
	assert.Len(t, panels, 2)

	_, err = allocationService.CreatePanels(f.Tabber, f.Tournament, f.Round2, 0)
	assert.EqualError(t, err, "count must be positive")
	assert.Equal(t, http.StatusBadRequest, app_error.HTTPStatus(err))

	saved, err := allocationService.SavePanelAllocation(f.Tabber, f.Tournament, f.Round2, []*AllocationUpdate{
		{Id: panels[0].Id, Chair: &f.Alice.Id, Panellists: []int{f.Bob.Id}},
	})
	assert.NoError(t, err)
	assert.Len(t, saved, 2)
	assert.Equal(t, f.Alice.Id, *saved[0].Adjudicators.Chair)
	assert.Equal(t, []int{f.Bob.Id}, saved[0].Adjudicators.Panellists)
	assert.Nil(t, saved[1].Adjudicators.Chair)

	result, err := allocationService.GetPanelAllocation(f.Tabber, f.Tournament, f.Round2)
	assert.NoError(t, err)
	assert.Len(t, result.Panels, 2)
	assert.True(t, result.ExtraInfo.HasPreformedPanels)
	assert.Equal(t, "/tournaments/test-open/rounds/2/preformed-panels", result.ExtraInfo.BackURL)
	assert.Equal(t, "Return to Panels Overview", result.ExtraInfo.BackLabel)

	entries, err := repository.NewActionLogRepository(db).GetEntriesForTournament(f.Tournament.Id, 10)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, repository.ActionPreformedPanelsAdjudicatorEdit, entries[0].Type)
	assert.Equal(t, repository.ActionPreformedPanelsCreate, entries[1].Type)
}

func TestSavePanelAllocationRejectsForeignPanel(t *testing.T) {
	f := SetUp()
	defer TearDown()
	allocationService := NewAllocationService(db)

	panel := &repository.PreformedPanel{RoundId: f.Round1.Id}
	create(panel)

	_, err := allocationService.SavePanelAllocation(f.Tabber, f.Tournament, f.Round2, []*AllocationUpdate{
		{Id: panel.Id, Chair: &f.Alice.Id},
	})
	assert.EqualError(t, err, fmt.Sprintf("panel with id %d is not in this round", panel.Id))
	assert.Equal(t, http.StatusBadRequest, app_error.HTTPStatus(err))
}

func TestRequireAllocationViewer(t *testing.T) {
	f := SetUp()
	defer TearDown()
	allocationService := NewAllocationService(db)

	// the viewer only holds view_debate_adjudicators, either view permission
	// admits
	assert.NoError(t, allocationService.RequireAllocationViewer(f.Viewer, f.Tournament))
	assert.NoError(t, allocationService.RequireAllocationViewer(f.Admin, f.Tournament))

	err := allocationService.RequireAllocationViewer(f.Outsider, f.Tournament)
	assert.EqualError(t, err, "missing an allocation view permission")
	assert.Equal(t, http.StatusForbidden, app_error.HTTPStatus(err))
}

func intPointer(i int) *int {
	return &i
}
