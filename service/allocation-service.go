package service

import (
	"fmt"
	"net/http"

	"debatab/allocation"
	"debatab/app_error"
	"debatab/repository"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Highlights are the legend blocks of the drag-and-drop UI.
type Highlights struct {
	Gender []allocation.Highlight `json:"gender"`
	Rank   []allocation.Highlight `json:"rank"`
	Region []allocation.Highlight `json:"region"`
}

type ClashTables struct {
	Teams        map[int]*allocation.ParticipantClashes `json:"teams"`
	Adjudicators map[int]*allocation.ParticipantClashes `json:"adjudicators"`
}

type HistoryTables struct {
	Teams        map[int]*allocation.ParticipantHistory `json:"teams"`
	Adjudicators map[int]*allocation.ParticipantHistory `json:"adjudicators"`
}

type ExtraInfo struct {
	Highlights         Highlights     `json:"highlights"`
	AdjMinScore        float64        `json:"adjMinScore"`
	AdjMaxScore        float64        `json:"adjMaxScore"`
	AllocationSettings map[string]any `json:"allocationSettings"`
	Clashes            ClashTables    `json:"clashes"`
	Histories          HistoryTables  `json:"histories"`
	HasPreformedPanels bool           `json:"hasPreformedPanels"`
	BackURL            string         `json:"backUrl"`
	BackLabel          string         `json:"backLabel"`
}

type AllocationAdjudicator struct {
	Id          int     `json:"id"`
	Name        string  `json:"name"`
	Gender      string  `json:"gender"`
	Available   bool    `json:"available"`
	Score       float64 `json:"score"`
	Institution *int    `json:"institution"`
	Region      *int    `json:"region"`
	Independent bool    `json:"independent"`
	AdjCore     bool    `json:"adj_core"`
}

// AllocationPositions is the panel of one debate or preformed panel, and the
// shape a save submits them back in.
type AllocationPositions struct {
	Chair      *int  `json:"chair"`
	Panellists []int `json:"panellists"`
	Trainees   []int `json:"trainees"`
}

type AllocationTeam struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Institution *int   `json:"institution"`
}

type AllocationDebate struct {
	Id           int                        `json:"id"`
	Bracket      float64                    `json:"bracket"`
	RoomRank     int                        `json:"room_rank"`
	Importance   int                        `json:"importance"`
	Sides        []string                   `json:"sides"`
	Teams        map[string]*AllocationTeam `json:"teams"`
	Adjudicators AllocationPositions        `json:"adjudicators"`
}

type AllocationPanel struct {
	Id           int                 `json:"id"`
	Importance   int                 `json:"importance"`
	BracketMin   float64             `json:"bracket_min"`
	BracketMax   float64             `json:"bracket_max"`
	RoomRank     int                 `json:"room_rank"`
	Liveness     int                 `json:"liveness"`
	Adjudicators AllocationPositions `json:"adjudicators"`
}

type DebateAllocation struct {
	Adjudicators []*AllocationAdjudicator `json:"adjudicators"`
	Debates      []*AllocationDebate      `json:"debates"`
	ExtraInfo    *ExtraInfo               `json:"extraInfo"`
}

type PanelAllocation struct {
	Adjudicators []*AllocationAdjudicator `json:"adjudicators"`
	Panels       []*AllocationPanel       `json:"panels"`
	ExtraInfo    *ExtraInfo               `json:"extraInfo"`
}

// AllocationUpdate reassigns the adjudicators of one debate or panel.
type AllocationUpdate struct {
	Id         int   `json:"id" binding:"required"`
	Chair      *int  `json:"chair"`
	Panellists []int `json:"panellists"`
	Trainees   []int `json:"trainees"`
}

type AllocationService struct {
	adjudicatorRepository  *repository.AdjudicatorRepository
	teamRepository         *repository.TeamRepository
	institutionRepository  *repository.InstitutionRepository
	debateRepository       *repository.DebateRepository
	panelRepository        *repository.PanelRepository
	availabilityRepository *repository.AvailabilityRepository
	feedbackRepository     *repository.FeedbackRepository
	conflictRepository     *repository.ConflictRepository
	tournamentRepository   *repository.TournamentRepository
	permissionService      *PermissionService
	actionLogService       *ActionLogService
}

func NewAllocationService(db *gorm.DB) *AllocationService {
	return &AllocationService{
		adjudicatorRepository:  repository.NewAdjudicatorRepository(db),
		teamRepository:         repository.NewTeamRepository(db),
		institutionRepository:  repository.NewInstitutionRepository(db),
		debateRepository:       repository.NewDebateRepository(db),
		panelRepository:        repository.NewPanelRepository(db),
		availabilityRepository: repository.NewAvailabilityRepository(db),
		feedbackRepository:     repository.NewFeedbackRepository(db),
		conflictRepository:     repository.NewConflictRepository(db),
		tournamentRepository:   repository.NewTournamentRepository(db),
		permissionService:      NewPermissionService(db),
		actionLogService:       NewActionLogService(db),
	}
}

// allocationContext is the part of the payload both editors share.
type allocationContext struct {
	adjudicators []*repository.Adjudicator
	extraInfo    *ExtraInfo
}

func (e *AllocationService) GetDebateAllocation(user *repository.User, tournament *repository.Tournament, round *repository.Round) (*DebateAllocation, error) {
	if err := e.requirePermission(user, repository.PermissionViewDebateAdjudicators, tournament); err != nil {
		return nil, err
	}

	var debates []*repository.Debate
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		debates, err = e.debateRepository.GetDebatesForRound(round.Id)
		return err
	})
	context, err := e.buildAllocationContext(tournament, round)
	if err != nil {
		return nil, err
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	context.extraInfo.BackURL = fmt.Sprintf("/tournaments/%s/rounds/%d/draw", tournament.Slug, round.Seq)
	context.extraInfo.BackLabel = "Return to Draw"

	useCodeNames := repository.UseCodeNamesForAdmin(tournament.TeamCodeNames)
	return &DebateAllocation{
		Adjudicators: mapAllocationAdjudicators(context.adjudicators),
		Debates:      mapAllocationDebates(debates, tournament.Sides, useCodeNames),
		ExtraInfo:    context.extraInfo,
	}, nil
}

func (e *AllocationService) GetPanelAllocation(user *repository.User, tournament *repository.Tournament, round *repository.Round) (*PanelAllocation, error) {
	if err := e.requirePermission(user, repository.PermissionViewPreformedPanels, tournament); err != nil {
		return nil, err
	}

	var panels []*repository.PreformedPanel
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		panels, err = e.panelRepository.GetPanelsForRound(round.Id)
		return err
	})
	context, err := e.buildAllocationContext(tournament, round)
	if err != nil {
		return nil, err
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	context.extraInfo.BackURL = fmt.Sprintf("/tournaments/%s/rounds/%d/preformed-panels", tournament.Slug, round.Seq)
	context.extraInfo.BackLabel = "Return to Panels Overview"

	return &PanelAllocation{
		Adjudicators: mapAllocationAdjudicators(context.adjudicators),
		Panels:       mapAllocationPanels(panels),
		ExtraInfo:    context.extraInfo,
	}, nil
}

// buildAllocationContext assembles the adjudicator list and extraInfo block.
// The independent queries fan out concurrently, the clash tables follow once
// the participant lists are in.
func (e *AllocationService) buildAllocationContext(tournament *repository.Tournament, round *repository.Round) (*allocationContext, error) {
	var (
		adjudicators  []*repository.Adjudicator
		teams         []*repository.Team
		regions       []*repository.Region
		availableIds  []int
		averages      map[int]float64
		currentRound  *repository.Round
		hasPanels     bool
		teamHistories map[int]*allocation.ParticipantHistory
		adjHistories  map[int]*allocation.ParticipantHistory
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		adjudicators, err = e.adjudicatorRepository.GetAdjudicatorsForTournament(tournament.Id)
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = e.teamRepository.GetTeamsForTournament(tournament.Id, false)
		return err
	})
	g.Go(func() error {
		var err error
		regions, err = e.institutionRepository.GetAllRegions()
		return err
	})
	g.Go(func() error {
		var err error
		availableIds, err = e.availabilityRepository.GetAvailableAdjudicatorIds(round.Id)
		return err
	})
	g.Go(func() error {
		var err error
		averages, err = e.feedbackRepository.GetAverageScores(tournament.Id)
		return err
	})
	g.Go(func() error {
		// The weight follows the tournament's current round, not the round
		// being edited.
		var err error
		currentRound, err = e.tournamentRepository.GetCurrentRound(tournament)
		return err
	})
	g.Go(func() error {
		var err error
		hasPanels, err = e.panelRepository.HasPanelsForRound(round.Id)
		return err
	})
	g.Go(func() error {
		var err error
		history := allocation.NewHistoryInfo(e.debateRepository, round)
		teamHistories, adjHistories, err = history.SerializedByParticipant()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	conflicts := allocation.NewConflictsInfo(e.conflictRepository, teams, adjudicators)
	teamClashes, adjClashes, err := conflicts.SerializedByParticipant()
	if err != nil {
		return nil, err
	}

	allocation.AnnotateAvailability(adjudicators, availableIds)
	allocation.PopulateFeedbackScores(adjudicators, averages, currentRound.FeedbackWeight)

	extraInfo := &ExtraInfo{
		Highlights: Highlights{
			Gender: allocation.GenderHighlights(),
			Rank:   allocation.RanksDictionary(tournament.AdjMinScore, tournament.AdjMaxScore),
			Region: allocation.RegionHighlights(regions),
		},
		AdjMinScore: tournament.AdjMinScore,
		AdjMaxScore: tournament.AdjMaxScore,
		AllocationSettings: map[string]any{
			"draw_rules__adj_min_voting_score":             tournament.AdjMinVotingScore,
			"draw_rules__adj_conflict_penalty":             tournament.AdjConflictPenalty,
			"draw_rules__adj_history_penalty":              tournament.AdjHistoryPenalty,
			"draw_rules__preformed_panel_mismatch_penalty": tournament.PreformedPanelMismatchPenalty,
			"draw_rules__no_trainee_position":              tournament.NoTraineePosition,
			"draw_rules__no_panellist_position":            tournament.NoPanellistPosition,
		},
		Clashes:            ClashTables{Teams: teamClashes, Adjudicators: adjClashes},
		Histories:          HistoryTables{Teams: teamHistories, Adjudicators: adjHistories},
		HasPreformedPanels: hasPanels,
	}
	return &allocationContext{adjudicators: adjudicators, extraInfo: extraInfo}, nil
}

// SaveDebateAllocation replaces the adjudicator assignments of the submitted
// debates and returns their fresh rendition for the response and the
// websocket broadcast.
func (e *AllocationService) SaveDebateAllocation(user *repository.User, tournament *repository.Tournament, round *repository.Round, updates []*AllocationUpdate) ([]*AllocationDebate, error) {
	if err := e.requirePermission(user, repository.PermissionEditDebateAdjudicators, tournament); err != nil {
		return nil, err
	}
	debates, err := e.debateRepository.GetDebatesForRound(round.Id)
	if err != nil {
		return nil, err
	}
	debateIds := make(map[int]bool, len(debates))
	for _, debate := range debates {
		debateIds[debate.Id] = true
	}
	validAdjudicators, err := e.adjudicatorIdsForTournament(tournament)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(updates))
	assignments := make([]*repository.DebateAdjudicator, 0)
	for _, update := range updates {
		if !debateIds[update.Id] {
			return nil, app_error.New(http.StatusBadRequest, fmt.Sprintf("debate with id %d is not in this round", update.Id))
		}
		ids = append(ids, update.Id)
		rows, err := assignmentRows(update, validAdjudicators)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			assignments = append(assignments, &repository.DebateAdjudicator{
				DebateId:      update.Id,
				AdjudicatorId: row.adjudicatorId,
				Type:          row.position,
			})
		}
	}

	if err := e.debateRepository.ReplaceDebateAdjudicators(ids, assignments); err != nil {
		return nil, err
	}
	_, err = e.actionLogService.Log(repository.ActionAdjudicatorsSave, user, tournament, &round.Id, map[string]int{"debates": len(updates)})
	if err != nil {
		return nil, err
	}

	debates, err = e.debateRepository.GetDebatesForRound(round.Id)
	if err != nil {
		return nil, err
	}
	useCodeNames := repository.UseCodeNamesForAdmin(tournament.TeamCodeNames)
	return mapAllocationDebates(debates, tournament.Sides, useCodeNames), nil
}

// SavePanelAllocation is the preformed-panel counterpart of
// SaveDebateAllocation.
func (e *AllocationService) SavePanelAllocation(user *repository.User, tournament *repository.Tournament, round *repository.Round, updates []*AllocationUpdate) ([]*AllocationPanel, error) {
	if err := e.requirePermission(user, repository.PermissionEditPreformedPanels, tournament); err != nil {
		return nil, err
	}
	panels, err := e.panelRepository.GetPanelsForRound(round.Id)
	if err != nil {
		return nil, err
	}
	panelIds := make(map[int]bool, len(panels))
	for _, panel := range panels {
		panelIds[panel.Id] = true
	}
	validAdjudicators, err := e.adjudicatorIdsForTournament(tournament)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(updates))
	assignments := make([]*repository.PreformedPanelAdjudicator, 0)
	for _, update := range updates {
		if !panelIds[update.Id] {
			return nil, app_error.New(http.StatusBadRequest, fmt.Sprintf("panel with id %d is not in this round", update.Id))
		}
		ids = append(ids, update.Id)
		rows, err := assignmentRows(update, validAdjudicators)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			assignments = append(assignments, &repository.PreformedPanelAdjudicator{
				PanelId:       update.Id,
				AdjudicatorId: row.adjudicatorId,
				Type:          row.position,
			})
		}
	}

	if err := e.panelRepository.ReplacePanelAdjudicators(ids, assignments); err != nil {
		return nil, err
	}
	_, err = e.actionLogService.Log(repository.ActionPreformedPanelsAdjudicatorEdit, user, tournament, &round.Id, map[string]int{"panels": len(updates)})
	if err != nil {
		return nil, err
	}

	panels, err = e.panelRepository.GetPanelsForRound(round.Id)
	if err != nil {
		return nil, err
	}
	return mapAllocationPanels(panels), nil
}

// GetPanelsOverview backs the preformed panels index page.
func (e *AllocationService) GetPanelsOverview(round *repository.Round) ([]*AllocationPanel, error) {
	panels, err := e.panelRepository.GetPanelsForRound(round.Id)
	if err != nil {
		return nil, err
	}
	return mapAllocationPanels(panels), nil
}

// GetDebatesOverview returns the round's debates without the editor context,
// for the websocket's initial frame.
func (e *AllocationService) GetDebatesOverview(tournament *repository.Tournament, round *repository.Round) ([]*AllocationDebate, error) {
	debates, err := e.debateRepository.GetDebatesForRound(round.Id)
	if err != nil {
		return nil, err
	}
	useCodeNames := repository.UseCodeNamesForAdmin(tournament.TeamCodeNames)
	return mapAllocationDebates(debates, tournament.Sides, useCodeNames), nil
}

// RequireAllocationViewer admits users holding either allocation view
// permission, for endpoints that relay both editors.
func (e *AllocationService) RequireAllocationViewer(user *repository.User, tournament *repository.Tournament) error {
	for _, permission := range []repository.Permission{
		repository.PermissionViewDebateAdjudicators,
		repository.PermissionViewPreformedPanels,
	} {
		allowed, err := e.permissionService.HasPermission(user, permission, tournament)
		if err != nil {
			return err
		}
		if allowed {
			return nil
		}
	}
	return app_error.New(http.StatusForbidden, "missing an allocation view permission")
}

// CreatePanels adds count empty panels to the round.
func (e *AllocationService) CreatePanels(user *repository.User, tournament *repository.Tournament, round *repository.Round, count int) ([]*AllocationPanel, error) {
	if err := e.requirePermission(user, repository.PermissionEditPreformedPanels, tournament); err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, app_error.New(http.StatusBadRequest, "count must be positive")
	}
	panels := make([]*repository.PreformedPanel, 0, count)
	for i := 0; i < count; i++ {
		panels = append(panels, &repository.PreformedPanel{RoundId: round.Id})
	}
	if err := e.panelRepository.CreatePanels(panels); err != nil {
		return nil, err
	}
	_, err := e.actionLogService.Log(repository.ActionPreformedPanelsCreate, user, tournament, &round.Id, map[string]int{"count": count})
	if err != nil {
		return nil, err
	}
	return mapAllocationPanels(panels), nil
}

func (e *AllocationService) requirePermission(user *repository.User, permission repository.Permission, tournament *repository.Tournament) error {
	allowed, err := e.permissionService.HasPermission(user, permission, tournament)
	if err != nil {
		return err
	}
	if !allowed {
		return app_error.New(http.StatusForbidden, fmt.Sprintf("missing permission %s", permission))
	}
	return nil
}

func (e *AllocationService) adjudicatorIdsForTournament(tournament *repository.Tournament) (map[int]bool, error) {
	adjudicators, err := e.adjudicatorRepository.GetAdjudicatorsForTournament(tournament.Id)
	if err != nil {
		return nil, err
	}
	ids := make(map[int]bool, len(adjudicators))
	for _, adjudicator := range adjudicators {
		ids[adjudicator.Id] = true
	}
	return ids, nil
}

type assignmentRow struct {
	adjudicatorId int
	position      repository.AdjudicatorPosition
}

// assignmentRows flattens one update into typed rows, rejecting adjudicators
// outside the tournament and adjudicators listed twice on the same panel.
func assignmentRows(update *AllocationUpdate, validAdjudicators map[int]bool) ([]assignmentRow, error) {
	rows := make([]assignmentRow, 0, 1+len(update.Panellists)+len(update.Trainees))
	if update.Chair != nil {
		rows = append(rows, assignmentRow{adjudicatorId: *update.Chair, position: repository.PositionChair})
	}
	for _, id := range update.Panellists {
		rows = append(rows, assignmentRow{adjudicatorId: id, position: repository.PositionPanellist})
	}
	for _, id := range update.Trainees {
		rows = append(rows, assignmentRow{adjudicatorId: id, position: repository.PositionTrainee})
	}
	seen := make(map[int]bool, len(rows))
	for _, row := range rows {
		if !validAdjudicators[row.adjudicatorId] {
			return nil, app_error.New(http.StatusBadRequest, fmt.Sprintf("adjudicator with id %d is not in this tournament", row.adjudicatorId))
		}
		if seen[row.adjudicatorId] {
			return nil, app_error.New(http.StatusBadRequest, fmt.Sprintf("adjudicator with id %d is assigned twice", row.adjudicatorId))
		}
		seen[row.adjudicatorId] = true
	}
	return rows, nil
}

func mapAllocationAdjudicators(adjudicators []*repository.Adjudicator) []*AllocationAdjudicator {
	mapped := make([]*AllocationAdjudicator, 0, len(adjudicators))
	for _, adjudicator := range adjudicators {
		entry := &AllocationAdjudicator{
			Id:          adjudicator.Id,
			Name:        adjudicator.Name,
			Gender:      allocation.SerializeGender(adjudicator.Gender),
			Available:   adjudicator.Available,
			Score:       adjudicator.Score,
			Institution: adjudicator.InstitutionId,
			Independent: adjudicator.Independent,
			AdjCore:     adjudicator.AdjCore,
		}
		if adjudicator.Institution != nil {
			entry.Region = adjudicator.Institution.RegionId
		}
		mapped = append(mapped, entry)
	}
	return mapped
}

func mapAllocationDebates(debates []*repository.Debate, sides []string, useCodeNames bool) []*AllocationDebate {
	mapped := make([]*AllocationDebate, 0, len(debates))
	for _, debate := range debates {
		teams := make(map[string]*AllocationTeam, len(debate.DebateTeams))
		for _, debateTeam := range debate.DebateTeams {
			if debateTeam.Team == nil {
				continue
			}
			name := debateTeam.Team.ShortName
			if useCodeNames {
				name = debateTeam.Team.CodeName
			}
			teams[debateTeam.Side] = &AllocationTeam{
				Id:          debateTeam.Team.Id,
				Name:        name,
				Institution: debateTeam.Team.InstitutionId,
			}
		}
		mapped = append(mapped, &AllocationDebate{
			Id:           debate.Id,
			Bracket:      debate.Bracket,
			RoomRank:     debate.RoomRank,
			Importance:   debate.Importance,
			Sides:        sides,
			Teams:        teams,
			Adjudicators: mapDebatePositions(debate.DebateAdjudicators),
		})
	}
	return mapped
}

func mapAllocationPanels(panels []*repository.PreformedPanel) []*AllocationPanel {
	mapped := make([]*AllocationPanel, 0, len(panels))
	for _, panel := range panels {
		mapped = append(mapped, &AllocationPanel{
			Id:           panel.Id,
			Importance:   panel.Importance,
			BracketMin:   panel.BracketMin,
			BracketMax:   panel.BracketMax,
			RoomRank:     panel.RoomRank,
			Liveness:     panel.Liveness,
			Adjudicators: mapPanelPositions(panel.Adjudicators),
		})
	}
	return mapped
}

func mapDebatePositions(rows []*repository.DebateAdjudicator) AllocationPositions {
	positions := AllocationPositions{Panellists: []int{}, Trainees: []int{}}
	for _, row := range rows {
		switch row.Type {
		case repository.PositionChair:
			id := row.AdjudicatorId
			positions.Chair = &id
		case repository.PositionPanellist:
			positions.Panellists = append(positions.Panellists, row.AdjudicatorId)
		case repository.PositionTrainee:
			positions.Trainees = append(positions.Trainees, row.AdjudicatorId)
		}
	}
	return positions
}

func mapPanelPositions(rows []*repository.PreformedPanelAdjudicator) AllocationPositions {
	positions := AllocationPositions{Panellists: []int{}, Trainees: []int{}}
	for _, row := range rows {
		switch row.Type {
		case repository.PositionChair:
			id := row.AdjudicatorId
			positions.Chair = &id
		case repository.PositionPanellist:
			positions.Panellists = append(positions.Panellists, row.AdjudicatorId)
		case repository.PositionTrainee:
			positions.Trainees = append(positions.Trainees, row.AdjudicatorId)
		}
	}
	return positions
}
