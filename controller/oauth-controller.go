package controller

import (
	"net/http"

	"debatab/auth"
	"debatab/config"
	"debatab/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OauthController struct {
	oauthService *service.OauthService
}

func NewOauthController(db *gorm.DB) *OauthController {
	return &OauthController{
		oauthService: service.NewOauthService(db),
	}
}

func setupOauthController(db *gorm.DB) []RouteInfo {
	e := NewOauthController(db)
	basePath := "/oauth2"
	routes := []RouteInfo{
		{Method: "GET", Path: "/discord", HandlerFunc: e.discordOauthHandler()},
		{Method: "GET", Path: "/discord/redirect", HandlerFunc: e.discordRedirectHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @Description Redirects to discord oauth
// @Tags oauth
// @Produce json
// @Param last_url query string false "Url to send the browser back to after login"
// @Success 302
// @Router /oauth2/discord [get]
func (e *OauthController) discordOauthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		lastUrl := c.Request.URL.Query().Get("last_url")
		if lastUrl == "" {
			lastUrl = config.Env().FrontendURL
		}
		url := e.oauthService.GetOauthProviderUrl(lastUrl, callbackUrl(c))
		c.Redirect(http.StatusTemporaryRedirect, url)
	}
}

// @Description Redirect handler for discord oauth
// @Tags oauth
// @Produce json
// @Success 302
// @Router /oauth2/discord/redirect [get]
func (e *OauthController) discordRedirectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		errorString := c.Request.URL.Query().Get("error")
		if errorString != "" {
			c.JSON(400, gin.H{"error": errorString + ": " + c.Request.URL.Query().Get("error_description")})
			return
		}
		code := c.Request.URL.Query().Get("code")
		state := c.Request.URL.Query().Get("state")
		user, lastUrl, err := e.oauthService.VerifyDiscord(state, code, callbackUrl(c))
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		authToken, _ := auth.CreateToken(user)
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie("auth", authToken, 60*60*24*7, "/", config.Env().PublicDomain, false, true)
		if lastUrl == "" {
			lastUrl = config.Env().FrontendURL
		}
		c.Redirect(http.StatusTemporaryRedirect, lastUrl)
	}
}

// callbackUrl rebuilds the redirect url discord was sent to, which must match
// on the token exchange.
func callbackUrl(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + "/oauth2/discord/redirect"
}
