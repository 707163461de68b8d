package controller

import (
	"encoding/json"
	"net/http"
	"sync"

	"debatab/app_error"
	"debatab/metrics"
	"debatab/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

type AllocationController struct {
	allocationService *service.AllocationService
	tournamentService *service.TournamentService
	userService       *service.UserService
	mu                sync.Mutex
	connections       map[int]map[*websocket.Conn]bool
}

func NewAllocationController(db *gorm.DB) *AllocationController {
	return &AllocationController{
		allocationService: service.NewAllocationService(db),
		tournamentService: service.NewTournamentService(db),
		userService:       service.NewUserService(db),
		connections:       make(map[int]map[*websocket.Conn]bool),
	}
}

func setupAllocationController(db *gorm.DB) []RouteInfo {
	e := NewAllocationController(db)
	basePath := "/tournaments/:tournament_slug/rounds/:round_seq"
	routes := []RouteInfo{
		{Method: "GET", Path: "/edit-debate-adjudicators", HandlerFunc: e.getDebateAllocationHandler(), Authenticated: true},
		{Method: "PUT", Path: "/edit-debate-adjudicators", HandlerFunc: e.saveDebateAllocationHandler(), Authenticated: true},
		{Method: "GET", Path: "/edit-panel-adjudicators", HandlerFunc: e.getPanelAllocationHandler(), Authenticated: true},
		{Method: "PUT", Path: "/edit-panel-adjudicators", HandlerFunc: e.savePanelAllocationHandler(), Authenticated: true},
		{Method: "GET", Path: "/preformed-panels", HandlerFunc: e.getPanelsHandler(), Authenticated: true},
		{Method: "POST", Path: "/preformed-panels", HandlerFunc: e.createPanelsHandler(), Authenticated: true},
		{Method: "GET", Path: "/allocation/ws", HandlerFunc: e.webSocketHandler},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// allow any host origin to connect to the websocket
		return true
	},
}

// AllocationSocketMessage carries the fresh state of one or both editors.
type AllocationSocketMessage struct {
	Debates []*service.AllocationDebate `json:"debates,omitempty"`
	Panels  []*service.AllocationPanel  `json:"panels,omitempty"`
}

// @id GetDebateAllocation
// @Description Fetches the debate adjudicator allocation of a round for the drag and drop editor
// @Tags allocation
// @Produce json
// @Security BearerAuth
// @Param tournament_slug path string true "Tournament slug"
// @Param round_seq path int true "Round sequence number"
// @Success 200 {object} service.DebateAllocation
// @Router /tournaments/{tournament_slug}/rounds/{round_seq}/edit-debate-adjudicators [get]
func (e *AllocationController) getDebateAllocationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := getUser(c)
		if user == nil {
			return
		}
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		round := getRound(c, e.tournamentService, tournament)
		if round == nil {
			return
		}
		allocation, err := e.allocationService.GetDebateAllocation(user, tournament, round)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, allocation)
	}
}

// @id SaveDebateAllocation
// @Description Replaces the adjudicator assignments of the submitted debates
// @Tags allocation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tournament_slug path string true "Tournament slug"
// @Param round_seq path int true "Round sequence number"
// @Param updates body []service.AllocationUpdate true "Assignments per debate"
// @Success 200 {array} service.AllocationDebate
// @Router /tournaments/{tournament_slug}/rounds/{round_seq}/edit-debate-adjudicators [put]
func (e *AllocationController) saveDebateAllocationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := getUser(c)
		if user == nil {
			return
		}
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		round := getRound(c, e.tournamentService, tournament)
		if round == nil {
			return
		}
		var updates []*service.AllocationUpdate
		if err := c.BindJSON(&updates); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		debates, err := e.allocationService.SaveDebateAllocation(user, tournament, round, updates)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		metrics.AllocationSavesTotal.WithLabelValues("debates").Inc()
		e.broadcast(round.Id, &AllocationSocketMessage{Debates: debates})
		c.JSON(200, debates)
	}
}

// @id GetPanelAllocation
// @Description Fetches the preformed panel allocation of a round for the drag and drop editor
// @Tags allocation
// @Produce json
// @Security BearerAuth
// @Param tournament_slug path string true "Tournament slug"
// @Param round_seq path int true "Round sequence number"
// @Success 200 {object} service.PanelAllocation
// @Router /tournaments/{tournament_slug}/rounds/{round_seq}/edit-panel-adjudicators [get]
func (e *AllocationController) getPanelAllocationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := getUser(c)
		if user == nil {
			return
		}
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		round := getRound(c, e.tournamentService, tournament)
		if round == nil {
			return
		}
		allocation, err := e.allocationService.GetPanelAllocation(user, tournament, round)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, allocation)
	}
}

// @id SavePanelAllocation
// @Description Replaces the adjudicator assignments of the submitted preformed panels
// @Tags allocation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tournament_slug path string true "Tournament slug"
// @Param round_seq path int true "Round sequence number"
// @Param updates body []service.AllocationUpdate true "Assignments per panel"
// @Success 200 {array} service.AllocationPanel
// @Router /tournaments/{tournament_slug}/rounds/{round_seq}/edit-panel-adjudicators [put]
func (e *AllocationController) savePanelAllocationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := getUser(c)
		if user == nil {
			return
		}
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		round := getRound(c, e.tournamentService, tournament)
		if round == nil {
			return
		}
		var updates []*service.AllocationUpdate
		if err := c.BindJSON(&updates); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		panels, err := e.allocationService.SavePanelAllocation(user, tournament, round, updates)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		metrics.AllocationSavesTotal.WithLabelValues("panels").Inc()
		e.broadcast(round.Id, &AllocationSocketMessage{Panels: panels})
		c.JSON(200, panels)
	}
}

// @id GetPreformedPanels
// @Description Fetches the preformed panels of a round
// @Tags allocation
// @Produce json
// @Security BearerAuth
// @Param tournament_slug path string true "Tournament slug"
// @Param round_seq path int true "Round sequence number"
// @Success 200 {array} service.AllocationPanel
// @Router /tournaments/{tournament_slug}/rounds/{round_seq}/preformed-panels [get]
func (e *AllocationController) getPanelsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		round := getRound(c, e.tournamentService, tournament)
		if round == nil {
			return
		}
		panels, err := e.allocationService.GetPanelsOverview(round)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, panels)
	}
}

// @id CreatePreformedPanels
// @Description Adds empty preformed panels to a round
// @Tags allocation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tournament_slug path string true "Tournament slug"
// @Param round_seq path int true "Round sequence number"
// @Param body body PanelsCreate true "Number of panels to add"
// @Success 201 {array} service.AllocationPanel
// @Router /tournaments/{tournament_slug}/rounds/{round_seq}/preformed-panels [post]
func (e *AllocationController) createPanelsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := getUser(c)
		if user == nil {
			return
		}
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		round := getRound(c, e.tournamentService, tournament)
		if round == nil {
			return
		}
		var panelsCreate PanelsCreate
		if err := c.BindJSON(&panelsCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		panels, err := e.allocationService.CreatePanels(user, tournament, round, panelsCreate.Count)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, panels)
	}
}

// @id AllocationWebSocket
// @Description Websocket for allocation updates. Once connected, the client receives the fresh debates or panels after every save in the round.
// @Tags allocation
// @Router /tournaments/{tournament_slug}/rounds/{round_seq}/allocation/ws [get]
// @Param tournament_slug path string true "Tournament slug"
// @Param round_seq path int true "Round sequence number"
// @Security BearerAuth
// @Success 200 {object} AllocationSocketMessage
func (e *AllocationController) webSocketHandler(c *gin.Context) {
	// Browsers cannot set headers on websocket requests, so the token comes
	// as a query parameter.
	if token := c.Request.URL.Query().Get("token"); token != "" {
		c.Request.Header.Set("Authorization", "Bearer "+token)
	}
	user, err := e.userService.GetUserFromRequest(c)
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthenticated"})
		return
	}
	tournament := getTournament(c, e.tournamentService)
	if tournament == nil {
		return
	}
	round := getRound(c, e.tournamentService, tournament)
	if round == nil {
		return
	}
	if err := e.allocationService.RequireAllocationViewer(user, tournament); err != nil {
		app_error.Respond(c, err)
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		http.NotFound(c.Writer, c.Request)
		return
	}
	defer conn.Close()

	// Send the current state to the new subscriber
	debates, err := e.allocationService.GetDebatesOverview(tournament, round)
	if err != nil {
		return
	}
	panels, err := e.allocationService.GetPanelsOverview(round)
	if err != nil {
		return
	}
	serialized, err := json.Marshal(&AllocationSocketMessage{Debates: debates, Panels: panels})
	if err != nil {
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, serialized); err != nil {
		return
	}

	e.mu.Lock()
	if _, ok := e.connections[round.Id]; !ok {
		e.connections[round.Id] = make(map[*websocket.Conn]bool)
	}
	e.connections[round.Id][conn] = true
	e.mu.Unlock()
	metrics.AllocationSocketGauge.Inc()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			e.mu.Lock()
			delete(e.connections[round.Id], conn)
			if len(e.connections[round.Id]) == 0 {
				delete(e.connections, round.Id)
			}
			e.mu.Unlock()
			metrics.AllocationSocketGauge.Dec()
			return
		}
	}
}

func (e *AllocationController) broadcast(roundId int, message *AllocationSocketMessage) {
	serialized, err := json.Marshal(message)
	if err != nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for conn := range e.connections[roundId] {
		if err := conn.WriteMessage(websocket.TextMessage, serialized); err != nil {
			conn.Close()
			delete(e.connections[roundId], conn)
		}
	}
}

type PanelsCreate struct {
	Count int `json:"count" binding:"required"`
}
