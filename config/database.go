package config

import (
	model "debatab/repository"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var enumQueries = []string{
	`CREATE TYPE debatab.adjudicator_position AS ENUM ('C', 'P', 'T')`,
	`CREATE TYPE debatab.team_code_names AS ENUM ('off', 'all-tooltips', 'admin-tooltips-code', 'admin-tooltips-real', 'everywhere')`,
	`CREATE TYPE debatab.permission AS ENUM ('view_debate_adjudicators', 'edit_debate_adjudicators', 'view_preformed_panels', 'edit_preformed_panels', 'view_adj_team_conflicts', 'edit_adj_team_conflicts', 'view_adj_adj_conflicts', 'edit_adj_adj_conflicts', 'view_adj_inst_conflicts', 'edit_adj_inst_conflicts', 'view_team_inst_conflicts', 'edit_team_inst_conflicts')`,
	`CREATE TYPE debatab.action_type AS ENUM ('conflicts_adj_team_edit', 'conflicts_adj_adj_edit', 'conflicts_adj_inst_edit', 'conflicts_team_inst_edit', 'adjudicators_save', 'preformed_panels_create', 'preformed_panels_adjudicator_edit')`,
}

func InitDB(host string, port string, user string, password string, dbName string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, password, dbName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "debatab.",
			SingularTable: false,
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	x := db.Exec(`CREATE SCHEMA IF NOT EXISTS debatab`)
	if x.Error != nil {
		return nil, x.Error
	}
	for _, query := range enumQueries {
		x := db.Exec(query)
		if x.Error != nil {
			if strings.Contains(x.Error.Error(), "already exists") {
				continue
			}
			return nil, x.Error
		}
	}

	err = db.AutoMigrate(
		&model.Tournament{},
		&model.Round{},
		&model.Region{},
		&model.Institution{},
		&model.Adjudicator{},
		&model.Team{},
		&model.AdjudicatorTeamConflict{},
		&model.AdjudicatorAdjudicatorConflict{},
		&model.AdjudicatorInstitutionConflict{},
		&model.TeamInstitutionConflict{},
		&model.Debate{},
		&model.DebateTeam{},
		&model.DebateAdjudicator{},
		&model.PreformedPanel{},
		&model.PreformedPanelAdjudicator{},
		&model.RoundAvailability{},
		&model.AdjudicatorFeedback{},
		&model.User{},
		&model.UserPermission{},
		&model.ActionLogEntry{},
	)

	if err != nil {
		return nil, err
	}
	return db, nil
}
