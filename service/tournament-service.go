package service

import (
	"fmt"

	"debatab/repository"

	"gorm.io/gorm"
)

type TournamentService struct {
	tournamentRepository *repository.TournamentRepository
}

func NewTournamentService(db *gorm.DB) *TournamentService {
	return &TournamentService{
		tournamentRepository: repository.NewTournamentRepository(db),
	}
}

func (e *TournamentService) GetAllTournaments() ([]*repository.Tournament, error) {
	return e.tournamentRepository.FindAll()
}

func (e *TournamentService) GetTournamentBySlug(slug string) (*repository.Tournament, error) {
	return e.tournamentRepository.GetTournamentBySlug(slug)
}

// CreateTournament saves the tournament and seeds numberOfRounds preliminary
// rounds with default feedback weights.
func (e *TournamentService) CreateTournament(tournament *repository.Tournament, numberOfRounds int) (*repository.Tournament, error) {
	tournament, err := e.tournamentRepository.Save(tournament)
	if err != nil {
		return nil, err
	}
	for seq := 1; seq <= numberOfRounds; seq++ {
		round := &repository.Round{
			TournamentId: tournament.Id,
			Seq:          seq,
			Name:         fmt.Sprintf("Round %d", seq),
			Abbreviation: fmt.Sprintf("R%d", seq),
		}
		if _, err := e.tournamentRepository.SaveRound(round); err != nil {
			return nil, err
		}
	}
	return tournament, nil
}

func (e *TournamentService) UpdateTournament(tournament *repository.Tournament) (*repository.Tournament, error) {
	return e.tournamentRepository.Save(tournament)
}

func (e *TournamentService) GetRound(tournament *repository.Tournament, seq int) (*repository.Round, error) {
	return e.tournamentRepository.GetRound(tournament.Id, seq)
}

func (e *TournamentService) GetRounds(tournament *repository.Tournament) ([]*repository.Round, error) {
	return e.tournamentRepository.GetRounds(tournament.Id)
}

func (e *TournamentService) SaveRound(round *repository.Round) (*repository.Round, error) {
	return e.tournamentRepository.SaveRound(round)
}
