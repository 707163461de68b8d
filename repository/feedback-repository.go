package repository

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Feedback on an adjudicator, submitted by a team or a fellow adjudicator
// after a round. Only confirmed, non-ignored rows count towards scores.
type AdjudicatorFeedback struct {
	Id                  int     `gorm:"primaryKey"`
	AdjudicatorId       int     `gorm:"not null;index"`
	SourceAdjudicatorId *int    `gorm:"null"`
	SourceTeamId        *int    `gorm:"null"`
	RoundId             int     `gorm:"not null"`
	Score               float64 `gorm:"not null"`
	Confirmed           bool    `gorm:"not null;default:false"`
	Ignored             bool    `gorm:"not null;default:false"`
}

type averageScoreRow struct {
	AdjudicatorId int
	Average       float64
}

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

// GetAverageScores returns the mean confirmed feedback score per adjudicator
// of the tournament. Adjudicators without usable feedback are absent from the
// map.
func (r *FeedbackRepository) GetAverageScores(tournamentId int) (map[int]float64, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetAverageScores"))
	defer timer.ObserveDuration()
	rows := make([]*averageScoreRow, 0)
	query := `
		SELECT f.adjudicator_id AS adjudicator_id, AVG(f.score) AS average
		FROM debatab.adjudicator_feedbacks f
		JOIN debatab.adjudicators a ON f.adjudicator_id = a.id
		WHERE a.tournament_id = ? AND f.confirmed AND NOT f.ignored
		GROUP BY f.adjudicator_id
	`
	result := r.DB.Raw(query, tournamentId).Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	averages := make(map[int]float64, len(rows))
	for _, row := range rows {
		averages[row.AdjudicatorId] = row.Average
	}
	return averages, nil
}
