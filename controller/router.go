package controller

import (
	"debatab/repository"
	"debatab/service"
	"strconv"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RouteInfo struct {
	Method            string
	Path              string
	HandlerFunc       gin.HandlerFunc
	Authenticated     bool
	RequiredSuperuser bool
}

func SetRoutes(r *gin.Engine, db *gorm.DB, cacheStore persistence.CacheStore) {
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupTournamentController(db)...)
	routes = append(routes, setupInstitutionController(db, cacheStore)...)
	routes = append(routes, setupConflictController(db)...)
	routes = append(routes, setupAllocationController(db)...)
	routes = append(routes, setupImporterController(db)...)
	routes = append(routes, setupOauthController(db)...)
	routes = append(routes, setupUserController(db)...)
	userService := service.NewUserService(db)
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware(userService, route.RequiredSuperuser))
		}
		handlerfuncs = append(handlerfuncs, route.HandlerFunc)
		r.Handle(route.Method, route.Path, handlerfuncs...)
	}
}

// AuthMiddleware resolves the requesting user from the auth cookie or the
// Authorization header and stores it on the context for the handler.
func AuthMiddleware(userService *service.UserService, requireSuperuser bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := userService.GetUserFromRequest(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			c.Abort()
			return
		}
		if requireSuperuser && !user.IsSuperuser {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Set("user", user)
		c.Next()
	}
}

func getUser(c *gin.Context) *repository.User {
	value, ok := c.Get("user")
	if !ok {
		c.JSON(401, gin.H{"error": "Unauthenticated"})
		return nil
	}
	user, ok := value.(*repository.User)
	if !ok {
		c.JSON(401, gin.H{"error": "Unauthenticated"})
		return nil
	}
	return user
}

// getTournament resolves the tournament_slug path parameter. It writes the
// error response itself, callers just return on nil.
func getTournament(c *gin.Context, tournamentService *service.TournamentService) *repository.Tournament {
	tournament, err := tournamentService.GetTournamentBySlug(c.Param("tournament_slug"))
	if err != nil {
		c.JSON(404, gin.H{"error": "Tournament not found"})
		return nil
	}
	return tournament
}

// getRound resolves the round_seq path parameter within a tournament.
func getRound(c *gin.Context, tournamentService *service.TournamentService, tournament *repository.Tournament) *repository.Round {
	seq, err := strconv.Atoi(c.Param("round_seq"))
	if err != nil {
		c.JSON(400, gin.H{"error": "round_seq must be a number"})
		return nil
	}
	round, err := tournamentService.GetRound(tournament, seq)
	if err != nil {
		c.JSON(404, gin.H{"error": "Round not found"})
		return nil
	}
	return round
}
