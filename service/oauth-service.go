package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"debatab/config"
	"debatab/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

type OauthState struct {
	Verifier string
	Timeout  int64
	Redirect string
}

type OauthService struct {
	config      *oauth2.Config
	userService *UserService

	mu       sync.Mutex
	stateMap map[string]OauthState
}

type DiscordUserResponse struct {
	Id            string `json:"id"`
	Username      string `json:"username"`
	Avatar        string `json:"avatar"`
	Discriminator string `json:"discriminator"`
	GlobalName    string `json:"global_name"`
	Locale        string `json:"locale"`
}

func NewOauthService(db *gorm.DB) *OauthService {
	env := config.Env()
	return &OauthService{
		config: &oauth2.Config{
			ClientID:     env.DiscordClientID,
			ClientSecret: env.DiscordClientSecret,
			Scopes:       []string{"identify"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://discord.com/oauth2/authorize",
				TokenURL: "https://discord.com/api/oauth2/token",
			},
		},
		userService: NewUserService(db),
		stateMap:    make(map[string]OauthState),
	}
}

// GetNewVerifier mints a state/verifier pair and drops expired entries while
// it holds the lock.
func (e *OauthService) GetNewVerifier(lastUrl string) (string, string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for state, entry := range e.stateMap {
		if entry.Timeout < time.Now().Unix() {
			delete(e.stateMap, state)
		}
	}
	state := uuid.NewString()
	verifier := oauth2.GenerateVerifier()
	e.stateMap[state] = OauthState{
		Verifier: verifier,
		Timeout:  time.Now().Add(1 * time.Minute).Unix(),
		Redirect: lastUrl,
	}
	return state, verifier
}

func (e *OauthService) GetOauthProviderUrl(lastUrl string, redirectUrl string) string {
	state, verifier := e.GetNewVerifier(lastUrl)
	oauthConfig := *e.config
	oauthConfig.RedirectURL = redirectUrl
	return oauthConfig.AuthCodeURL(
		state,
		oauth2.SetAuthURLParam("code_challenge", oauth2.S256ChallengeFromVerifier(verifier)),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)
}

func (e *OauthService) fetchToken(state string, code string, redirectUrl string) (*OauthState, *oauth2.Token, error) {
	e.mu.Lock()
	authState, ok := e.stateMap[state]
	if ok {
		delete(e.stateMap, state)
	}
	e.mu.Unlock()
	if !ok {
		return nil, nil, fmt.Errorf("state is unknown")
	}
	oauthConfig := *e.config
	oauthConfig.RedirectURL = redirectUrl
	token, err := oauthConfig.Exchange(context.Background(), code, oauth2.SetAuthURLParam("code_verifier", authState.Verifier))
	if err != nil {
		return nil, nil, err
	}
	return &authState, token, nil
}

// VerifyDiscord completes the code exchange, resolves the Discord account and
// returns the matching user together with the url to send the browser back
// to.
func (e *OauthService) VerifyDiscord(state string, code string, redirectUrl string) (*repository.User, string, error) {
	authState, token, err := e.fetchToken(state, code, redirectUrl)
	if err != nil {
		return nil, "", err
	}
	client := e.config.Client(context.Background(), token)
	response, err := client.Get("https://discord.com/api/users/@me")
	if err != nil {
		return nil, "", err
	}
	defer response.Body.Close()
	discordUser := &DiscordUserResponse{}
	if err := json.NewDecoder(response.Body).Decode(discordUser); err != nil {
		return nil, "", err
	}
	if discordUser.Id == "" {
		return nil, "", fmt.Errorf("discord did not return an account id")
	}
	user, err := e.userService.GetOrCreateDiscordUser(discordUser.Id, discordUser.Username)
	if err != nil {
		return nil, "", err
	}
	return user, authState.Redirect, nil
}
