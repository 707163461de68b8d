package controller

import (
	"debatab/app_error"
	"debatab/formset"
	"debatab/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ConflictController struct {
	conflictService   *service.ConflictService
	tournamentService *service.TournamentService
}

func NewConflictController(db *gorm.DB) *ConflictController {
	return &ConflictController{
		conflictService:   service.NewConflictService(db),
		tournamentService: service.NewTournamentService(db),
	}
}

func setupConflictController(db *gorm.DB) []RouteInfo {
	e := NewConflictController(db)
	basePath := "/tournaments/:tournament_slug/conflicts"
	routes := []RouteInfo{
		{Method: "GET", Path: "/:relation", HandlerFunc: e.getEditorHandler(), Authenticated: true},
		{Method: "POST", Path: "/:relation", HandlerFunc: e.submitEditorHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetConflictEditor
// @Description Fetches the conflict editor for one relation, with current rows and selectable options
// @Tags conflict
// @Produce json
// @Security BearerAuth
// @Param tournament_slug path string true "Tournament slug"
// @Param relation path string true "Conflict relation" Enums(adjudicator-team, adjudicator-adjudicator, adjudicator-institution, team-institution)
// @Success 200 {object} formset.View
// @Router /tournaments/{tournament_slug}/conflicts/{relation} [get]
func (e *ConflictController) getEditorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := getUser(c)
		if user == nil {
			return
		}
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		view, err := e.conflictService.BuildEditor(service.ConflictRelation(c.Param("relation")), user, tournament)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, view)
	}
}

// @id SubmitConflictEditor
// @Description Saves the submitted conflict rows for one relation
// @Tags conflict
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tournament_slug path string true "Tournament slug"
// @Param relation path string true "Conflict relation" Enums(adjudicator-team, adjudicator-adjudicator, adjudicator-institution, team-institution)
// @Param submission body formset.Submission true "Submitted forms"
// @Success 200 {object} formset.Result
// @Failure 400 {object} ConflictEditorErrors
// @Router /tournaments/{tournament_slug}/conflicts/{relation} [post]
func (e *ConflictController) submitEditorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := getUser(c)
		if user == nil {
			return
		}
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		var submission formset.Submission
		if err := c.BindJSON(&submission); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		result, fieldErrors, err := e.conflictService.SubmitEditor(service.ConflictRelation(c.Param("relation")), user, tournament, &submission)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		if len(fieldErrors) > 0 {
			c.JSON(400, ConflictEditorErrors{Errors: fieldErrors})
			return
		}
		c.JSON(200, result)
	}
}

type ConflictEditorErrors struct {
	Errors []formset.FieldError `json:"errors"`
}
