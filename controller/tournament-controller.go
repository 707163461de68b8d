package controller

import (
	"encoding/json"
	"strconv"
	"time"

	"debatab/repository"
	"debatab/service"
	"debatab/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TournamentController struct {
	tournamentService *service.TournamentService
	actionLogService  *service.ActionLogService
}

func NewTournamentController(db *gorm.DB) *TournamentController {
	return &TournamentController{
		tournamentService: service.NewTournamentService(db),
		actionLogService:  service.NewActionLogService(db),
	}
}

func setupTournamentController(db *gorm.DB) []RouteInfo {
	e := NewTournamentController(db)
	basePath := "/tournaments"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getTournamentsHandler(), Authenticated: true},
		{Method: "POST", Path: "", HandlerFunc: e.createTournamentHandler(), Authenticated: true, RequiredSuperuser: true},
		{Method: "GET", Path: "/:tournament_slug", HandlerFunc: e.getTournamentHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/:tournament_slug", HandlerFunc: e.updateTournamentHandler(), Authenticated: true, RequiredSuperuser: true},
		{Method: "GET", Path: "/:tournament_slug/rounds", HandlerFunc: e.getRoundsHandler(), Authenticated: true},
		{Method: "GET", Path: "/:tournament_slug/rounds/:round_seq", HandlerFunc: e.getRoundHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/:tournament_slug/rounds/:round_seq", HandlerFunc: e.updateRoundHandler(), Authenticated: true, RequiredSuperuser: true},
		{Method: "GET", Path: "/:tournament_slug/actions", HandlerFunc: e.getActionsHandler(), Authenticated: true, RequiredSuperuser: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @Description Fetches all tournaments
// @Tags tournament
// @Produce json
// @Security BearerAuth
// @Success 200 {array} TournamentResponse
// @Router /tournaments [get]
func (e *TournamentController) getTournamentsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournaments, err := e.tournamentService.GetAllTournaments()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(tournaments, toTournamentResponse))
	}
}

// @Description Creates a tournament with its preliminary rounds
// @Tags tournament
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tournament body TournamentCreate true "Tournament to create"
// @Success 201 {object} TournamentResponse
// @Router /tournaments [post]
func (e *TournamentController) createTournamentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tournamentCreate TournamentCreate
		if err := c.BindJSON(&tournamentCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		tournament, err := e.tournamentService.CreateTournament(tournamentCreate.toModel(), tournamentCreate.NumberOfRounds)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, toTournamentResponse(tournament))
	}
}

// @Description Fetches a tournament by slug
// @Tags tournament
// @Produce json
// @Security BearerAuth
// @Param tournament_slug path string true "Tournament slug"
// @Success 200 {object} TournamentResponse
// @Router /tournaments/{tournament_slug} [get]
func (e *TournamentController) getTournamentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		c.JSON(200, toTournamentResponse(tournament))
	}
}

// @Description Updates a tournament's settings
// @Tags tournament
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tournament_slug path string true "Tournament slug"
// @Param tournament body TournamentUpdate true "Settings to change"
// @Success 200 {object} TournamentResponse
// @Router /tournaments/{tournament_slug} [patch]
func (e *TournamentController) updateTournamentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		var update TournamentUpdate
		if err := c.BindJSON(&update); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		update.apply(tournament)
		tournament, err := e.tournamentService.UpdateTournament(tournament)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, toTournamentResponse(tournament))
	}
}

// @Description Fetches the rounds of a tournament in sequence order
// @Tags tournament
// @Produce json
// @Security BearerAuth
// @Param tournament_slug path string true "Tournament slug"
// @Success 200 {array} RoundResponse
// @Router /tournaments/{tournament_slug}/rounds [get]
func (e *TournamentController) getRoundsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		rounds, err := e.tournamentService.GetRounds(tournament)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(rounds, toRoundResponse))
	}
}

// @Description Fetches a round by its sequence number
// @Tags tournament
// @Produce json
// @Security BearerAuth
// @Param tournament_slug path string true "Tournament slug"
// @Param round_seq path int true "Round sequence number"
// @Success 200 {object} RoundResponse
// @Router /tournaments/{tournament_slug}/rounds/{round_seq} [get]
func (e *TournamentController) getRoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		round := getRound(c, e.tournamentService, tournament)
		if round == nil {
			return
		}
		c.JSON(200, toRoundResponse(round))
	}
}

// @Description Updates a round
// @Tags tournament
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tournament_slug path string true "Tournament slug"
// @Param round_seq path int true "Round sequence number"
// @Param round body RoundUpdate true "Round fields to change"
// @Success 200 {object} RoundResponse
// @Router /tournaments/{tournament_slug}/rounds/{round_seq} [patch]
func (e *TournamentController) updateRoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		round := getRound(c, e.tournamentService, tournament)
		if round == nil {
			return
		}
		var update RoundUpdate
		if err := c.BindJSON(&update); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		update.apply(round)
		round, err := e.tournamentService.SaveRound(round)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, toRoundResponse(round))
	}
}

// @Description Fetches the latest administrative actions of a tournament
// @Tags tournament
// @Produce json
// @Security BearerAuth
// @Param tournament_slug path string true "Tournament slug"
// @Param limit query int false "Maximum number of entries" default(50)
// @Success 200 {array} ActionLogEntryResponse
// @Router /tournaments/{tournament_slug}/actions [get]
func (e *TournamentController) getActionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if err != nil || limit < 1 {
			c.JSON(400, gin.H{"error": "limit must be a positive number"})
			return
		}
		entries, err := e.actionLogService.GetEntriesForTournament(tournament.Id, limit)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(entries, toActionLogEntryResponse))
	}
}

type TournamentCreate struct {
	Name           string   `json:"name" binding:"required"`
	ShortName      string   `json:"short_name"`
	Slug           string   `json:"slug" binding:"required"`
	Sides          []string `json:"sides"`
	NumberOfRounds int      `json:"number_of_rounds"`
}

type TournamentUpdate struct {
	Name                          *string  `json:"name"`
	ShortName                     *string  `json:"short_name"`
	CurrentRoundId                *int     `json:"current_round_id"`
	AdjMinScore                   *float64 `json:"adj_min_score"`
	AdjMaxScore                   *float64 `json:"adj_max_score"`
	AdjMinVotingScore             *float64 `json:"adj_min_voting_score"`
	AdjConflictPenalty            *int     `json:"adj_conflict_penalty"`
	AdjHistoryPenalty             *int     `json:"adj_history_penalty"`
	PreformedPanelMismatchPenalty *int     `json:"preformed_panel_mismatch_penalty"`
	NoTraineePosition             *bool    `json:"no_trainee_position"`
	NoPanellistPosition           *bool    `json:"no_panellist_position"`
	TeamCodeNames                 *string  `json:"team_code_names"`
}

type RoundUpdate struct {
	Name           *string  `json:"name"`
	Abbreviation   *string  `json:"abbreviation"`
	DrawStatus     *string  `json:"draw_status"`
	FeedbackWeight *float64 `json:"feedback_weight"`
	Completed      *bool    `json:"completed"`
}

type TournamentResponse struct {
	Id                            int      `json:"id"`
	Name                          string   `json:"name"`
	ShortName                     string   `json:"short_name"`
	Slug                          string   `json:"slug"`
	Sides                         []string `json:"sides"`
	CurrentRoundId                *int     `json:"current_round_id"`
	AdjMinScore                   float64  `json:"adj_min_score"`
	AdjMaxScore                   float64  `json:"adj_max_score"`
	AdjMinVotingScore             float64  `json:"adj_min_voting_score"`
	AdjConflictPenalty            int      `json:"adj_conflict_penalty"`
	AdjHistoryPenalty             int      `json:"adj_history_penalty"`
	PreformedPanelMismatchPenalty int      `json:"preformed_panel_mismatch_penalty"`
	NoTraineePosition             bool     `json:"no_trainee_position"`
	NoPanellistPosition           bool     `json:"no_panellist_position"`
	TeamCodeNames                 string   `json:"team_code_names"`
}

type RoundResponse struct {
	Id             int     `json:"id"`
	Seq            int     `json:"seq"`
	Name           string  `json:"name"`
	Abbreviation   string  `json:"abbreviation"`
	Stage          string  `json:"stage"`
	DrawStatus     string  `json:"draw_status"`
	FeedbackWeight float64 `json:"feedback_weight"`
	Completed      bool    `json:"completed"`
}

type ActionLogEntryResponse struct {
	Id        int             `json:"id"`
	Type      string          `json:"type"`
	UserId    int             `json:"user_id"`
	RoundId   *int            `json:"round_id"`
	Timestamp time.Time       `json:"timestamp"`
	Detail    json.RawMessage `json:"detail"`
}

func (e *TournamentCreate) toModel() *repository.Tournament {
	tournament := &repository.Tournament{
		Name:      e.Name,
		ShortName: e.ShortName,
		Slug:      e.Slug,
	}
	if len(e.Sides) > 0 {
		tournament.Sides = e.Sides
	}
	return tournament
}

func (e *TournamentUpdate) apply(tournament *repository.Tournament) {
	if e.Name != nil {
		tournament.Name = *e.Name
	}
	if e.ShortName != nil {
		tournament.ShortName = *e.ShortName
	}
	if e.CurrentRoundId != nil {
		tournament.CurrentRoundId = e.CurrentRoundId
	}
	if e.AdjMinScore != nil {
		tournament.AdjMinScore = *e.AdjMinScore
	}
	if e.AdjMaxScore != nil {
		tournament.AdjMaxScore = *e.AdjMaxScore
	}
	if e.AdjMinVotingScore != nil {
		tournament.AdjMinVotingScore = *e.AdjMinVotingScore
	}
	if e.AdjConflictPenalty != nil {
		tournament.AdjConflictPenalty = *e.AdjConflictPenalty
	}
	if e.AdjHistoryPenalty != nil {
		tournament.AdjHistoryPenalty = *e.AdjHistoryPenalty
	}
	if e.PreformedPanelMismatchPenalty != nil {
		tournament.PreformedPanelMismatchPenalty = *e.PreformedPanelMismatchPenalty
	}
	if e.NoTraineePosition != nil {
		tournament.NoTraineePosition = *e.NoTraineePosition
	}
	if e.NoPanellistPosition != nil {
		tournament.NoPanellistPosition = *e.NoPanellistPosition
	}
	if e.TeamCodeNames != nil {
		tournament.TeamCodeNames = repository.TeamCodeNames(*e.TeamCodeNames)
	}
}

func (e *RoundUpdate) apply(round *repository.Round) {
	if e.Name != nil {
		round.Name = *e.Name
	}
	if e.Abbreviation != nil {
		round.Abbreviation = *e.Abbreviation
	}
	if e.DrawStatus != nil {
		round.DrawStatus = *e.DrawStatus
	}
	if e.FeedbackWeight != nil {
		round.FeedbackWeight = *e.FeedbackWeight
	}
	if e.Completed != nil {
		round.Completed = *e.Completed
	}
}

func toTournamentResponse(tournament *repository.Tournament) TournamentResponse {
	return TournamentResponse{
		Id:                            tournament.Id,
		Name:                          tournament.Name,
		ShortName:                     tournament.ShortName,
		Slug:                          tournament.Slug,
		Sides:                         tournament.Sides,
		CurrentRoundId:                tournament.CurrentRoundId,
		AdjMinScore:                   tournament.AdjMinScore,
		AdjMaxScore:                   tournament.AdjMaxScore,
		AdjMinVotingScore:             tournament.AdjMinVotingScore,
		AdjConflictPenalty:            tournament.AdjConflictPenalty,
		AdjHistoryPenalty:             tournament.AdjHistoryPenalty,
		PreformedPanelMismatchPenalty: tournament.PreformedPanelMismatchPenalty,
		NoTraineePosition:             tournament.NoTraineePosition,
		NoPanellistPosition:           tournament.NoPanellistPosition,
		TeamCodeNames:                 string(tournament.TeamCodeNames),
	}
}

func toRoundResponse(round *repository.Round) RoundResponse {
	return RoundResponse{
		Id:             round.Id,
		Seq:            round.Seq,
		Name:           round.Name,
		Abbreviation:   round.Abbreviation,
		Stage:          round.Stage,
		DrawStatus:     round.DrawStatus,
		FeedbackWeight: round.FeedbackWeight,
		Completed:      round.Completed,
	}
}

func toActionLogEntryResponse(entry *repository.ActionLogEntry) ActionLogEntryResponse {
	return ActionLogEntryResponse{
		Id:        entry.Id,
		Type:      string(entry.Type),
		UserId:    entry.UserId,
		RoundId:   entry.RoundId,
		Timestamp: entry.Timestamp,
		Detail:    json.RawMessage(entry.Detail),
	}
}
