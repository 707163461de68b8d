package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"debatab/client"
	"debatab/config"
	"debatab/repository"
	"debatab/service"
	"debatab/utils"

	"gorm.io/gorm"
)

const announcerConsumerId = 1

// ActionAnnouncer tails every tournament's action log stream and relays the
// entries to the Discord announcement channel.
type ActionAnnouncer struct {
	discordClient     *client.DiscordClient
	tournamentService *service.TournamentService
	userService       *service.UserService

	mu      sync.Mutex
	running map[int]bool
}

func NewActionAnnouncer(db *gorm.DB, discordClient *client.DiscordClient) *ActionAnnouncer {
	return &ActionAnnouncer{
		discordClient:     discordClient,
		tournamentService: service.NewTournamentService(db),
		userService:       service.NewUserService(db),
		running:           make(map[int]bool),
	}
}

// AnnounceLoop keeps one consumer per tournament alive, picking up
// tournaments created while the server runs.
func (a *ActionAnnouncer) AnnounceLoop(ctx context.Context) {
	if !a.discordClient.Enabled() {
		return
	}
	for {
		tournaments, err := a.tournamentService.GetAllTournaments()
		if err != nil {
			log.Printf("action announcer could not list tournaments: %v", err)
		} else {
			for _, tournament := range tournaments {
				a.ensureConsumer(ctx, tournament)
			}
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Minute):
		}
	}
}

func (a *ActionAnnouncer) ensureConsumer(ctx context.Context, tournament *repository.Tournament) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running[tournament.Id] {
		return
	}
	a.running[tournament.Id] = true
	go func() {
		defer func() {
			a.mu.Lock()
			delete(a.running, tournament.Id)
			a.mu.Unlock()
		}()
		a.consume(ctx, tournament)
	}()
}

func (a *ActionAnnouncer) consume(ctx context.Context, tournament *repository.Tournament) {
	reader, err := config.GetReader(tournament.Id, announcerConsumerId)
	if err != nil {
		log.Printf("action announcer for %s not started: %v", tournament.Slug, err)
		return
	}
	defer utils.Closer(reader)()
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			return
		}
		var entry repository.ActionLogEntry
		if err := json.Unmarshal(msg.Value, &entry); err != nil {
			log.Printf("skipping malformed action log message: %v", err)
			continue
		}
		if err := a.discordClient.SendMessage(a.describe(tournament, &entry)); err != nil {
			log.Print(err)
		}
	}
}

func (a *ActionAnnouncer) describe(tournament *repository.Tournament, entry *repository.ActionLogEntry) string {
	name := tournament.ShortName
	if name == "" {
		name = tournament.Name
	}
	actor := fmt.Sprintf("user %d", entry.UserId)
	if user, err := a.userService.GetUserById(entry.UserId); err == nil {
		actor = user.Username
	}
	phrase, ok := actionPhrases[entry.Type]
	if !ok {
		phrase = string(entry.Type)
	}
	return fmt.Sprintf("[%s] %s %s", name, actor, phrase)
}

var actionPhrases = map[repository.ActionType]string{
	repository.ActionConflictsAdjTeamEdit:           "updated the adjudicator-team conflicts",
	repository.ActionConflictsAdjAdjEdit:            "updated the adjudicator-adjudicator conflicts",
	repository.ActionConflictsAdjInstEdit:           "updated the adjudicator-institution conflicts",
	repository.ActionConflictsTeamInstEdit:          "updated the team-institution conflicts",
	repository.ActionAdjudicatorsSave:               "saved the debate adjudicator allocation",
	repository.ActionPreformedPanelsCreate:          "added preformed panels",
	repository.ActionPreformedPanelsAdjudicatorEdit: "saved the preformed panel allocation",
}
