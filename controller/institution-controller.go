package controller

import (
	"time"

	"debatab/repository"
	"debatab/service"
	"debatab/utils"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InstitutionController struct {
	institutionService *service.InstitutionService
}

func NewInstitutionController(db *gorm.DB) *InstitutionController {
	return &InstitutionController{
		institutionService: service.NewInstitutionService(db),
	}
}

func setupInstitutionController(db *gorm.DB, cacheStore persistence.CacheStore) []RouteInfo {
	e := NewInstitutionController(db)
	routes := []RouteInfo{
		{Method: "GET", Path: "/institutions", HandlerFunc: cache.CachePage(cacheStore, time.Minute, e.getInstitutionsHandler()), Authenticated: true},
		{Method: "POST", Path: "/institutions", HandlerFunc: e.createInstitutionHandler(), Authenticated: true, RequiredSuperuser: true},
		{Method: "GET", Path: "/regions", HandlerFunc: cache.CachePage(cacheStore, time.Minute, e.getRegionsHandler()), Authenticated: true},
	}
	return routes
}

// @Description Fetches all institutions across tournaments
// @Tags institution
// @Produce json
// @Security BearerAuth
// @Success 200 {array} InstitutionResponse
// @Router /institutions [get]
func (e *InstitutionController) getInstitutionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		institutions, err := e.institutionService.GetAllInstitutions()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(institutions, toInstitutionResponse))
	}
}

// @Description Creates an institution
// @Tags institution
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param institution body InstitutionCreate true "Institution to create"
// @Success 201 {object} InstitutionResponse
// @Router /institutions [post]
func (e *InstitutionController) createInstitutionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var institutionCreate InstitutionCreate
		if err := c.BindJSON(&institutionCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		institution, err := e.institutionService.CreateInstitution(institutionCreate.Name, institutionCreate.Code, institutionCreate.Region)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, toInstitutionResponse(institution))
	}
}

// @Description Fetches all regions
// @Tags institution
// @Produce json
// @Security BearerAuth
// @Success 200 {array} RegionResponse
// @Router /regions [get]
func (e *InstitutionController) getRegionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		regions, err := e.institutionService.GetAllRegions()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(regions, toRegionResponse))
	}
}

type InstitutionCreate struct {
	Name   string `json:"name" binding:"required"`
	Code   string `json:"code" binding:"required"`
	Region string `json:"region"`
}

type InstitutionResponse struct {
	Id       int    `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	RegionId *int   `json:"region_id"`
	Region   string `json:"region"`
}

type RegionResponse struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

func toInstitutionResponse(institution *repository.Institution) InstitutionResponse {
	response := InstitutionResponse{
		Id:       institution.Id,
		Name:     institution.Name,
		Code:     institution.Code,
		RegionId: institution.RegionId,
	}
	if institution.Region != nil {
		response.Region = institution.Region.Name
	}
	return response
}

func toRegionResponse(region *repository.Region) RegionResponse {
	return RegionResponse{
		Id:   region.Id,
		Name: region.Name,
	}
}
