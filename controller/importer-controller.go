package controller

import (
	"debatab/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ImporterController struct {
	importerService    *service.ImporterService
	tournamentService  *service.TournamentService
	institutionService *service.InstitutionService
}

func NewImporterController(db *gorm.DB) *ImporterController {
	return &ImporterController{
		importerService:    service.NewImporterService(db),
		tournamentService:  service.NewTournamentService(db),
		institutionService: service.NewInstitutionService(db),
	}
}

func setupImporterController(db *gorm.DB) []RouteInfo {
	e := NewImporterController(db)
	routes := []RouteInfo{
		{Method: "POST", Path: "/importer/institutions", HandlerFunc: e.importInstitutionsHandler(), Authenticated: true, RequiredSuperuser: true},
		{Method: "GET", Path: "/tournaments/:tournament_slug/importer", HandlerFunc: e.getImporterIndexHandler(), Authenticated: true},
		{Method: "POST", Path: "/tournaments/:tournament_slug/importer/teams", HandlerFunc: e.importTeamsHandler(), Authenticated: true, RequiredSuperuser: true},
		{Method: "POST", Path: "/tournaments/:tournament_slug/importer/adjudicators", HandlerFunc: e.importAdjudicatorsHandler(), Authenticated: true, RequiredSuperuser: true},
	}
	return routes
}

// @id GetImporterIndex
// @Description Fetches the participant counts shown on the importer landing page
// @Tags importer
// @Produce json
// @Security BearerAuth
// @Param tournament_slug path string true "Tournament slug"
// @Success 200 {object} ImporterIndexResponse
// @Router /tournaments/{tournament_slug}/importer [get]
func (e *ImporterController) getImporterIndexHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		counts, err := e.importerService.CountParticipants(tournament)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, ImporterIndexResponse{
			Institutions: counts.Institutions,
			Teams:        counts.Teams,
			Adjudicators: counts.Adjudicators,
		})
	}
}

// @id ImportInstitutions
// @Description Imports institutions from an uploaded csv file with columns name, code and optionally region
// @Tags importer
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "csv file"
// @Success 200 {object} service.ImportResult
// @Router /importer/institutions [post]
func (e *ImporterController) importInstitutionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		defer file.Close()
		result, err := e.importerService.ImportInstitutions(file)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, result)
	}
}

// @id ImportTeams
// @Description Imports teams from an uploaded csv file with columns short_name, long_name, institution and code_name
// @Tags importer
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param tournament_slug path string true "Tournament slug"
// @Param file formData file true "csv file"
// @Success 200 {object} service.ImportResult
// @Router /tournaments/{tournament_slug}/importer/teams [post]
func (e *ImporterController) importTeamsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		defer file.Close()
		result, err := e.importerService.ImportTeams(tournament, file)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, result)
	}
}

// @id ImportAdjudicators
// @Description Imports adjudicators from an uploaded csv file with columns name, base_score, institution and email
// @Tags importer
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param tournament_slug path string true "Tournament slug"
// @Param file formData file true "csv file"
// @Success 200 {object} service.ImportResult
// @Router /tournaments/{tournament_slug}/importer/adjudicators [post]
func (e *ImporterController) importAdjudicatorsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		defer file.Close()
		result, err := e.importerService.ImportAdjudicators(tournament, file)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, result)
	}
}

type ImporterIndexResponse struct {
	Institutions int `json:"institutions"`
	Teams        int `json:"teams"`
	Adjudicators int `json:"adjudicators"`
}
