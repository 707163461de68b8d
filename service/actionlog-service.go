package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"debatab/config"
	"debatab/metrics"
	"debatab/repository"

	"github.com/segmentio/kafka-go"
	"gorm.io/gorm"
)

// ActionLogService records administrative actions. The database row is the
// durable record, the Kafka stream relays it to live consumers and the
// Discord announcer.
type ActionLogService struct {
	actionLogRepository *repository.ActionLogRepository

	mu      sync.Mutex
	writers map[int]*kafka.Writer
}

func NewActionLogService(db *gorm.DB) *ActionLogService {
	return &ActionLogService{
		actionLogRepository: repository.NewActionLogRepository(db),
		writers:             make(map[int]*kafka.Writer),
	}
}

func (e *ActionLogService) Log(actionType repository.ActionType, user *repository.User, tournament *repository.Tournament, roundId *int, detail any) (*repository.ActionLogEntry, error) {
	payload, err := json.Marshal(detail)
	if err != nil {
		return nil, err
	}
	entry := &repository.ActionLogEntry{
		Type:         actionType,
		UserId:       user.Id,
		TournamentId: tournament.Id,
		RoundId:      roundId,
		Detail:       string(payload),
	}
	entry, err = e.actionLogRepository.Create(entry)
	if err != nil {
		return nil, err
	}
	e.publish(entry)
	return entry, nil
}

func (e *ActionLogService) GetEntriesForTournament(tournamentId int, limit int) ([]*repository.ActionLogEntry, error) {
	return e.actionLogRepository.GetEntriesForTournament(tournamentId, limit)
}

// publish is best effort, a broker outage must not fail the admin action.
func (e *ActionLogService) publish(entry *repository.ActionLogEntry) {
	writer, err := e.getWriter(entry.TournamentId)
	if err != nil {
		metrics.ActionLogPublishErrors.Inc()
		log.Printf("action log publish skipped: %v", err)
		return
	}
	message, err := json.Marshal(entry)
	if err != nil {
		log.Printf("action log publish skipped: %v", err)
		return
	}
	err = writer.WriteMessages(context.Background(), kafka.Message{Value: message})
	if err != nil {
		metrics.ActionLogPublishErrors.Inc()
		log.Printf("failed to publish action log entry %d: %v", entry.Id, err)
	}
}

func (e *ActionLogService) getWriter(tournamentId int) (*kafka.Writer, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if writer, ok := e.writers[tournamentId]; ok {
		return writer, nil
	}
	if err := config.CreateTopic(tournamentId); err != nil {
		return nil, err
	}
	writer, err := config.GetWriter(tournamentId)
	if err != nil {
		return nil, err
	}
	e.writers[tournamentId] = writer
	return writer, nil
}
