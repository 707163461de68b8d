package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"debatab/auth"
	"debatab/formset"
	"debatab/repository"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	_ "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/ory/dockertest/v3"
)

var db *gorm.DB
var enumQueries = []string{
	`CREATE TYPE debatab.adjudicator_position AS ENUM ('C', 'P', 'T')`,
	`CREATE TYPE debatab.team_code_names AS ENUM ('off', 'all-tooltips', 'admin-tooltips-code', 'admin-tooltips-real', 'everywhere')`,
	`CREATE TYPE debatab.permission AS ENUM ('view_debate_adjudicators', 'edit_debate_adjudicators', 'view_preformed_panels', 'edit_preformed_panels', 'view_adj_team_conflicts', 'edit_adj_team_conflicts', 'view_adj_adj_conflicts', 'edit_adj_adj_conflicts', 'view_adj_inst_conflicts', 'edit_adj_inst_conflicts', 'view_team_inst_conflicts', 'edit_team_inst_conflicts')`,
	`CREATE TYPE debatab.action_type AS ENUM ('conflicts_adj_team_edit', 'conflicts_adj_adj_edit', 'conflicts_adj_inst_edit', 'conflicts_team_inst_edit', 'adjudicators_save', 'preformed_panels_create', 'preformed_panels_adjudicator_edit')`,
}

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}

	// uses pool to try to connect to Docker
	err = pool.Client.Ping()
	if err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	// pulls an image, creates a container based on it and runs it
	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "DATABASE_NAME=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600) // Tell docker to hard kill the container in 10 minutes
	sqlInfo := fmt.Sprintf(
		"host=localhost port=%s user=postgres password=postgres dbname=postgres sslmode=disable search_path=debatab",
		resource.GetPort("5432/tcp"))

	// exponential backoff-retry, because the application in the container might not be ready to accept connections yet
	if err := pool.Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(sqlInfo), &gorm.Config{
			NamingStrategy: schema.NamingStrategy{
				TablePrefix:   "debatab.",
				SingularTable: false,
			},
			Logger: logger.Default.LogMode(logger.Silent),
		})

		if err != nil {
			return err
		}
		db.Exec(`CREATE SCHEMA IF NOT EXISTS debatab`)
		for _, query := range enumQueries {
			x := db.Exec(query)
			if x.Error != nil {
				if strings.Contains(x.Error.Error(), "already exists") {
					continue
				}
			}
		}
		return db.AutoMigrate(
			&repository.Tournament{},
			&repository.Round{},
			&repository.Region{},
			&repository.Institution{},
			&repository.Adjudicator{},
			&repository.Team{},
			&repository.AdjudicatorTeamConflict{},
			&repository.AdjudicatorAdjudicatorConflict{},
			&repository.AdjudicatorInstitutionConflict{},
			&repository.TeamInstitutionConflict{},
			&repository.Debate{},
			&repository.DebateTeam{},
			&repository.DebateAdjudicator{},
			&repository.PreformedPanel{},
			&repository.PreformedPanelAdjudicator{},
			&repository.RoundAvailability{},
			&repository.AdjudicatorFeedback{},
			&repository.User{},
			&repository.UserPermission{},
			&repository.ActionLogEntry{},
		)

	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	// as of go1.15 testing.M returns the exit code of m.Run(), so it is safe to use defer here
	defer func() {
		if err := pool.Purge(resource); err != nil {
			log.Fatalf("Could not purge resource: %s", err)
		}

	}()
	gin.SetMode(gin.TestMode)
	m.Run()
}

func TearDown() {
	db.Exec("DELETE FROM debatab.action_log_entries")
	db.Exec("DELETE FROM debatab.user_permissions")
	db.Exec("DELETE FROM debatab.users")
	db.Exec("DELETE FROM debatab.round_availabilities")
	db.Exec("DELETE FROM debatab.adjudicator_feedbacks")
	db.Exec("DELETE FROM debatab.debate_adjudicators")
	db.Exec("DELETE FROM debatab.debate_teams")
	db.Exec("DELETE FROM debatab.debates")
	db.Exec("DELETE FROM debatab.preformed_panel_adjudicators")
	db.Exec("DELETE FROM debatab.preformed_panels")
	db.Exec("DELETE FROM debatab.adjudicator_team_conflicts")
	db.Exec("DELETE FROM debatab.adjudicator_adjudicator_conflicts")
	db.Exec("DELETE FROM debatab.adjudicator_institution_conflicts")
	db.Exec("DELETE FROM debatab.team_institution_conflicts")
	db.Exec("DELETE FROM debatab.adjudicators")
	db.Exec("DELETE FROM debatab.teams")
	db.Exec("DELETE FROM debatab.rounds")
	db.Exec("DELETE FROM debatab.tournaments")
	db.Exec("DELETE FROM debatab.institutions")
	db.Exec("DELETE FROM debatab.regions")
}

// adminPassword is the plain text behind the admin fixture's password hash.
const adminPassword = "substantive-motion"

type fixture struct {
	Tournament *repository.Tournament
	Round1     *repository.Round
	Oxford     *repository.Institution
	Alice      *repository.Adjudicator
	Bob        *repository.Adjudicator
	OxfordA    *repository.Team
	Swing      *repository.Team
	Admin      *repository.User
	Tabber     *repository.User
	Outsider   *repository.User
}

func create(entities ...any) {
	for _, entity := range entities {
		if err := db.Create(entity).Error; err != nil {
			log.Fatalf("Could not create fixture %T: %s", entity, err)
		}
	}
}

func SetUp() *fixture {
	TearDown()
	f := &fixture{}

	f.Oxford = &repository.Institution{Name: "Oxford", Code: "OXF"}
	create(f.Oxford)

	f.Tournament = &repository.Tournament{
		Name:  "Router Open 2026",
		Slug:  "router-open",
		Sides: pq.StringArray{"aff", "neg"},
		Rounds: []*repository.Round{
			{Seq: 1, Name: "Round 1", Abbreviation: "R1"},
		},
	}
	create(f.Tournament)
	f.Round1 = f.Tournament.Rounds[0]

	f.Alice = &repository.Adjudicator{
		TournamentId: f.Tournament.Id, Name: "Alice Birch", InstitutionId: &f.Oxford.Id, BaseScore: 4, URLKey: "alice",
	}
	f.Bob = &repository.Adjudicator{
		TournamentId: f.Tournament.Id, Name: "Bob Chen", BaseScore: 3, URLKey: "bob",
	}
	create(f.Alice, f.Bob)

	f.OxfordA = &repository.Team{
		TournamentId: f.Tournament.Id, ShortName: "Oxford A", LongName: "Oxford A", CodeName: "Kingfisher", InstitutionId: &f.Oxford.Id,
	}
	f.Swing = &repository.Team{
		TournamentId: f.Tournament.Id, ShortName: "Swing", LongName: "Swing", CodeName: "Heron",
	}
	create(f.OxfordA, f.Swing)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	if err != nil {
		log.Fatalf("Could not hash fixture password: %s", err)
	}
	f.Admin = &repository.User{Username: "admin", PasswordHash: string(hash), IsSuperuser: true}
	f.Tabber = &repository.User{Username: "tabber"}
	f.Outsider = &repository.User{Username: "outsider"}
	create(f.Admin, f.Tabber, f.Outsider)

	grants := []*repository.UserPermission{
		{UserId: f.Tabber.Id, TournamentId: f.Tournament.Id, Permission: repository.PermissionViewAdjTeamConflicts},
		{UserId: f.Tabber.Id, TournamentId: f.Tournament.Id, Permission: repository.PermissionEditAdjTeamConflicts},
	}
	create(&grants)
	return f
}

func newRouter() *gin.Engine {
	r := gin.New()
	SetRoutes(r, db, persistence.NewInMemoryStore(time.Minute))
	return r
}

func bearerFor(t *testing.T, user *repository.User) string {
	t.Helper()
	token, err := auth.CreateToken(user)
	if err != nil {
		t.Fatalf("Could not create token: %s", err)
	}
	return "Bearer " + token
}

func doRequest(r *gin.Engine, method string, path string, authHeader string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) *T {
	t.Helper()
	target := new(T)
	if err := json.Unmarshal(w.Body.Bytes(), target); err != nil {
		t.Fatalf("Could not decode response %q: %s", w.Body.String(), err)
	}
	return target
}

func authCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "auth" {
			return cookie
		}
	}
	return nil
}

func TestAuthenticationRequired(t *testing.T) {
	SetUp()
	r := newRouter()

	w := doRequest(r, "GET", "/tournaments", "", nil)
	assert.Equal(t, 401, w.Code)
	assert.JSONEq(t, `{"error": "Unauthenticated"}`, w.Body.String())

	w = doRequest(r, "GET", "/tournaments", "Bearer not-a-token", nil)
	assert.Equal(t, 401, w.Code)

	req := httptest.NewRequest("GET", "/tournaments", nil)
	req.AddCookie(&http.Cookie{Name: "auth", Value: "not-a-token"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 401, w.Code)
	assert.JSONEq(t, `{"error": "Unauthenticated"}`, w.Body.String())
}

func TestSuperuserOnlyRoutes(t *testing.T) {
	f := SetUp()
	r := newRouter()

	w := doRequest(r, "GET", "/users", bearerFor(t, f.Tabber), nil)
	assert.Equal(t, 403, w.Code)
	assert.JSONEq(t, `{"error": "Unauthorized"}`, w.Body.String())

	w = doRequest(r, "GET", "/users", bearerFor(t, f.Admin), nil)
	assert.Equal(t, 200, w.Code)
	users := decode[[]User](t, w)
	usernames := make([]string, 0, len(*users))
	for _, user := range *users {
		usernames = append(usernames, user.Username)
	}
	assert.ElementsMatch(t, []string{"admin", "tabber", "outsider"}, usernames)
}

func TestLoginLifecycle(t *testing.T) {
	f := SetUp()
	r := newRouter()

	w := doRequest(r, "POST", "/users/login", "", LoginRequest{Username: "admin", Password: adminPassword})
	assert.Equal(t, 200, w.Code)
	login := decode[LoginResponse](t, w)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, f.Admin.Id, login.User.Id)
	assert.Equal(t, "admin", login.User.Username)
	assert.True(t, login.User.IsSuperuser)

	cookie := authCookie(w)
	assert.NotNil(t, cookie)
	assert.Equal(t, login.Token, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	// the cookie alone authenticates a browser request
	req := httptest.NewRequest("GET", "/users/self", nil)
	req.AddCookie(&http.Cookie{Name: "auth", Value: login.Token})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
	self := decode[User](t, w)
	assert.Equal(t, "admin", self.Username)

	// so does the token as a bearer header
	w = doRequest(r, "GET", "/users/self", "Bearer "+login.Token, nil)
	assert.Equal(t, 200, w.Code)

	w = doRequest(r, "POST", "/users/login", "", LoginRequest{Username: "admin", Password: "wrong"})
	assert.Equal(t, 401, w.Code)
	assert.JSONEq(t, `{"error": "invalid username or password"}`, w.Body.String())

	w = doRequest(r, "POST", "/users/login", "", map[string]string{"username": "admin"})
	assert.Equal(t, 400, w.Code)

	w = doRequest(r, "POST", "/users/logout", "Bearer "+login.Token, nil)
	assert.Equal(t, 204, w.Code)
	cookie = authCookie(w)
	assert.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestTournamentAndRoundLookups(t *testing.T) {
	f := SetUp()
	r := newRouter()
	admin := bearerFor(t, f.Admin)

	w := doRequest(r, "GET", "/tournaments/does-not-exist", admin, nil)
	assert.Equal(t, 404, w.Code)
	assert.JSONEq(t, `{"error": "Tournament not found"}`, w.Body.String())

	w = doRequest(r, "GET", "/tournaments/router-open", admin, nil)
	assert.Equal(t, 200, w.Code)
	tournament := decode[TournamentResponse](t, w)
	assert.Equal(t, "Router Open 2026", tournament.Name)
	assert.Equal(t, []string{"aff", "neg"}, tournament.Sides)

	w = doRequest(r, "GET", "/tournaments/router-open/rounds/first", admin, nil)
	assert.Equal(t, 400, w.Code)
	assert.JSONEq(t, `{"error": "round_seq must be a number"}`, w.Body.String())

	w = doRequest(r, "GET", "/tournaments/router-open/rounds/9", admin, nil)
	assert.Equal(t, 404, w.Code)
	assert.JSONEq(t, `{"error": "Round not found"}`, w.Body.String())

	w = doRequest(r, "GET", "/tournaments/router-open/rounds/1", admin, nil)
	assert.Equal(t, 200, w.Code)
	round := decode[RoundResponse](t, w)
	assert.Equal(t, f.Round1.Id, round.Id)
	assert.Equal(t, "Round 1", round.Name)
}

func TestConflictEditorOverHTTP(t *testing.T) {
	f := SetUp()
	r := newRouter()
	tabber := bearerFor(t, f.Tabber)

	w := doRequest(r, "GET", "/tournaments/router-open/conflicts/adjudicator-team", tabber, nil)
	assert.Equal(t, 200, w.Code)
	view := decode[formset.View](t, w)
	assert.Equal(t, "Adjudicator-Team Conflicts", view.PageTitle)
	assert.True(t, view.CanEdit)
	assert.False(t, view.Disabled)
	assert.Equal(t, 10, view.Extra)
	assert.Len(t, view.Fields, 2)
	assert.Equal(t, "adjudicator", view.Fields[0].Name)
	assert.Len(t, view.Fields[0].Choices, 3)
	assert.Len(t, view.Fields[1].Choices, 3)

	w = doRequest(r, "GET", "/tournaments/router-open/conflicts/bogus", tabber, nil)
	assert.Equal(t, 404, w.Code)
	assert.JSONEq(t, `{"error": "unknown conflict relation bogus"}`, w.Body.String())

	w = doRequest(r, "GET", "/tournaments/router-open/conflicts/adjudicator-team", bearerFor(t, f.Outsider), nil)
	assert.Equal(t, 403, w.Code)

	submission := formset.Submission{Forms: []formset.SubmittedForm{
		{Values: map[string]int{"adjudicator": f.Alice.Id, "team": f.Swing.Id}},
	}}
	w = doRequest(r, "POST", "/tournaments/router-open/conflicts/adjudicator-team", tabber, submission)
	assert.Equal(t, 200, w.Code)
	result := decode[formset.Result](t, w)
	assert.Equal(t, 1, result.Nsaved)
	assert.Equal(t, 0, result.Ndeleted)
	assert.Equal(t, []string{"Saved 1 adjudicator-team conflict."}, result.Messages)
	assert.Equal(t, "/tournaments/router-open/importer", result.Redirect)

	w = doRequest(r, "GET", "/tournaments/router-open/conflicts/adjudicator-team", tabber, nil)
	assert.Equal(t, 200, w.Code)
	view = decode[formset.View](t, w)
	assert.Len(t, view.Forms, 11)
	assert.NotNil(t, view.Forms[0].Id)
	assert.Equal(t, map[string]int{"adjudicator": f.Alice.Id, "team": f.Swing.Id}, view.Forms[0].Values)

	invalid := formset.Submission{Forms: []formset.SubmittedForm{
		{Values: map[string]int{"adjudicator": 999999, "team": f.Swing.Id}},
	}}
	w = doRequest(r, "POST", "/tournaments/router-open/conflicts/adjudicator-team", tabber, invalid)
	assert.Equal(t, 400, w.Code)
	editorErrors := decode[ConflictEditorErrors](t, w)
	assert.Len(t, editorErrors.Errors, 1)
	assert.Equal(t, 0, editorErrors.Errors[0].Form)
	assert.Equal(t, "adjudicator", editorErrors.Errors[0].Field)
}

func TestCreateUserAndPermissions(t *testing.T) {
	f := SetUp()
	r := newRouter()
	admin := bearerFor(t, f.Admin)

	w := doRequest(r, "POST", "/users", bearerFor(t, f.Tabber), UserCreate{Username: "newbie", Password: "pw"})
	assert.Equal(t, 403, w.Code)

	w = doRequest(r, "POST", "/users", admin, UserCreate{Username: "newbie", Password: "pw", Email: "newbie@example.org"})
	assert.Equal(t, 201, w.Code)
	newbie := decode[User](t, w)
	assert.NotZero(t, newbie.Id)
	assert.Equal(t, "newbie", newbie.Username)
	assert.False(t, newbie.IsSuperuser)

	w = doRequest(r, "POST", "/users/login", "", LoginRequest{Username: "newbie", Password: "pw"})
	assert.Equal(t, 200, w.Code)
	login := decode[LoginResponse](t, w)

	update := PermissionsUpdate{
		TournamentId: f.Tournament.Id,
		Permissions:  []repository.Permission{repository.PermissionViewAdjTeamConflicts},
	}
	w = doRequest(r, "PATCH", fmt.Sprintf("/users/%d/permissions", newbie.Id), admin, update)
	assert.Equal(t, 200, w.Code)
	updated := decode[User](t, w)
	assert.Equal(t, []PermissionGrant{
		{TournamentId: f.Tournament.Id, Permission: "view_adj_team_conflicts"},
	}, updated.Permissions)

	// with only the view grant the editor renders read only
	w = doRequest(r, "GET", "/tournaments/router-open/conflicts/adjudicator-team", "Bearer "+login.Token, nil)
	assert.Equal(t, 200, w.Code)
	view := decode[formset.View](t, w)
	assert.True(t, view.Disabled)
	assert.False(t, view.CanEdit)
	assert.Equal(t, 0, view.Extra)
}
