package service

import (
	"fmt"
	"io"

	"debatab/parser"
	"debatab/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImportResult reports an import: rows written and the lines that were
// rejected.
type ImportResult struct {
	Imported int               `json:"imported"`
	Errors   []parser.RowError `json:"errors"`
}

type ImporterService struct {
	institutionRepository *repository.InstitutionRepository
	teamRepository        *repository.TeamRepository
	adjudicatorRepository *repository.AdjudicatorRepository
}

func NewImporterService(db *gorm.DB) *ImporterService {
	return &ImporterService{
		institutionRepository: repository.NewInstitutionRepository(db),
		teamRepository:        repository.NewTeamRepository(db),
		adjudicatorRepository: repository.NewAdjudicatorRepository(db),
	}
}

func (e *ImporterService) ImportInstitutions(reader io.Reader) (*ImportResult, error) {
	rows, rowErrors, err := parser.ParseInstitutions(reader)
	if err != nil {
		return nil, err
	}
	existing, err := e.institutionsByName()
	if err != nil {
		return nil, err
	}
	institutions := make([]*repository.Institution, 0, len(rows))
	for _, row := range rows {
		if _, ok := existing[row.Name]; ok {
			rowErrors = append(rowErrors, parser.RowError{
				Line:   row.Line,
				Reason: fmt.Sprintf("institution %s already exists", row.Name),
			})
			continue
		}
		institution := &repository.Institution{Name: row.Name, Code: row.Code}
		if row.Region != "" {
			region, err := e.institutionRepository.GetOrCreateRegion(row.Region)
			if err != nil {
				return nil, err
			}
			institution.RegionId = &region.Id
		}
		institutions = append(institutions, institution)
	}
	if err := e.institutionRepository.CreateInstitutions(institutions); err != nil {
		return nil, err
	}
	return &ImportResult{Imported: len(institutions), Errors: rowErrors}, nil
}

func (e *ImporterService) ImportTeams(tournament *repository.Tournament, reader io.Reader) (*ImportResult, error) {
	rows, rowErrors, err := parser.ParseTeams(reader)
	if err != nil {
		return nil, err
	}
	institutions, err := e.institutionsByName()
	if err != nil {
		return nil, err
	}
	teams := make([]*repository.Team, 0, len(rows))
	for _, row := range rows {
		team := &repository.Team{
			TournamentId: tournament.Id,
			ShortName:    row.ShortName,
			LongName:     row.LongName,
			CodeName:     row.CodeName,
		}
		if row.Institution != "" {
			institution, ok := institutions[row.Institution]
			if !ok {
				rowErrors = append(rowErrors, parser.RowError{
					Line:   row.Line,
					Reason: fmt.Sprintf("unknown institution %s", row.Institution),
				})
				continue
			}
			team.InstitutionId = &institution.Id
		}
		teams = append(teams, team)
	}
	if err := e.teamRepository.CreateTeams(teams); err != nil {
		return nil, err
	}
	return &ImportResult{Imported: len(teams), Errors: rowErrors}, nil
}

func (e *ImporterService) ImportAdjudicators(tournament *repository.Tournament, reader io.Reader) (*ImportResult, error) {
	rows, rowErrors, err := parser.ParseAdjudicators(reader)
	if err != nil {
		return nil, err
	}
	institutions, err := e.institutionsByName()
	if err != nil {
		return nil, err
	}
	adjudicators := make([]*repository.Adjudicator, 0, len(rows))
	for _, row := range rows {
		adjudicator := &repository.Adjudicator{
			TournamentId: tournament.Id,
			Name:         row.Name,
			BaseScore:    row.BaseScore,
			Email:        row.Email,
			URLKey:       uuid.NewString(),
		}
		if row.Institution != "" {
			institution, ok := institutions[row.Institution]
			if !ok {
				rowErrors = append(rowErrors, parser.RowError{
					Line:   row.Line,
					Reason: fmt.Sprintf("unknown institution %s", row.Institution),
				})
				continue
			}
			adjudicator.InstitutionId = &institution.Id
		}
		adjudicators = append(adjudicators, adjudicator)
	}
	if err := e.adjudicatorRepository.CreateAdjudicators(adjudicators); err != nil {
		return nil, err
	}
	return &ImportResult{Imported: len(adjudicators), Errors: rowErrors}, nil
}

// ParticipantCounts summarizes what the importer landing page shows.
type ParticipantCounts struct {
	Institutions int `json:"institutions"`
	Teams        int `json:"teams"`
	Adjudicators int `json:"adjudicators"`
}

func (e *ImporterService) CountParticipants(tournament *repository.Tournament) (*ParticipantCounts, error) {
	institutions, err := e.institutionRepository.GetAllInstitutions()
	if err != nil {
		return nil, err
	}
	teams, err := e.teamRepository.GetTeamsForTournament(tournament.Id, false)
	if err != nil {
		return nil, err
	}
	adjudicators, err := e.adjudicatorRepository.GetAdjudicatorsForTournament(tournament.Id)
	if err != nil {
		return nil, err
	}
	return &ParticipantCounts{
		Institutions: len(institutions),
		Teams:        len(teams),
		Adjudicators: len(adjudicators),
	}, nil
}

func (e *ImporterService) institutionsByName() (map[string]*repository.Institution, error) {
	institutions, err := e.institutionRepository.GetAllInstitutions()
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*repository.Institution, len(institutions))
	for _, institution := range institutions {
		byName[institution.Name] = institution
	}
	return byName, nil
}
