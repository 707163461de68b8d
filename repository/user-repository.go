package repository

import (
	"fmt"

	"gorm.io/gorm"
)

type Permission string

const (
	PermissionViewDebateAdjudicators Permission = "view_debate_adjudicators"
	PermissionEditDebateAdjudicators Permission = "edit_debate_adjudicators"
	PermissionViewPreformedPanels    Permission = "view_preformed_panels"
	PermissionEditPreformedPanels    Permission = "edit_preformed_panels"
	PermissionViewAdjTeamConflicts   Permission = "view_adj_team_conflicts"
	PermissionEditAdjTeamConflicts   Permission = "edit_adj_team_conflicts"
	PermissionViewAdjAdjConflicts    Permission = "view_adj_adj_conflicts"
	PermissionEditAdjAdjConflicts    Permission = "edit_adj_adj_conflicts"
	PermissionViewAdjInstConflicts   Permission = "view_adj_inst_conflicts"
	PermissionEditAdjInstConflicts   Permission = "edit_adj_inst_conflicts"
	PermissionViewTeamInstConflicts  Permission = "view_team_inst_conflicts"
	PermissionEditTeamInstConflicts  Permission = "edit_team_inst_conflicts"
)

type User struct {
	Id           int    `gorm:"primaryKey"`
	Username     string `gorm:"not null;uniqueIndex"`
	PasswordHash string `gorm:"null"`
	Email        string `gorm:"null"`
	DiscordId    string `gorm:"null;index"`
	DiscordName  string `gorm:"null"`
	IsSuperuser  bool   `gorm:"not null;default:false"`

	Permissions []*UserPermission `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

// Permissions are granted per tournament, one row per grant.
type UserPermission struct {
	Id           int        `gorm:"primaryKey"`
	UserId       int        `gorm:"not null;uniqueIndex:idx_user_permissions_grant"`
	TournamentId int        `gorm:"not null;uniqueIndex:idx_user_permissions_grant"`
	Permission   Permission `gorm:"not null;type:debatab.permission;uniqueIndex:idx_user_permissions_grant"`
}

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetUserById(userId int) (*User, error) {
	var user User
	result := r.DB.Preload("Permissions").First(&user, userId)
	if result.Error != nil {
		return nil, fmt.Errorf("user with id %d not found", userId)
	}
	return &user, nil
}

func (r *UserRepository) GetAllUsers() ([]*User, error) {
	var users []*User
	result := r.DB.Preload("Permissions").Order("username").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (r *UserRepository) GetUserByUsername(username string) (*User, error) {
	var user User
	result := r.DB.First(&user, "username = ?", username)
	if result.Error != nil {
		return nil, fmt.Errorf("user %s not found", username)
	}
	return &user, nil
}

func (r *UserRepository) GetUserByDiscordId(discordId string) (*User, error) {
	var user User
	result := r.DB.First(&user, "discord_id = ?", discordId)
	if result.Error != nil {
		return nil, fmt.Errorf("user with discord id %s not found", discordId)
	}
	return &user, nil
}

func (r *UserRepository) SaveUser(user *User) (*User, error) {
	result := r.DB.Save(user)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save user: %v", result.Error)
	}
	return user, nil
}

func (r *UserRepository) HasPermission(userId int, tournamentId int, permission Permission) (bool, error) {
	var count int64
	result := r.DB.Model(&UserPermission{}).
		Where("user_id = ? AND tournament_id = ? AND permission = ?", userId, tournamentId, permission).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// SetPermissions replaces the user's grants for one tournament.
func (r *UserRepository) SetPermissions(userId int, tournamentId int, permissions []Permission) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Delete(&UserPermission{}, "user_id = ? AND tournament_id = ?", userId, tournamentId).Error
		if err != nil {
			return err
		}
		if len(permissions) == 0 {
			return nil
		}
		grants := make([]*UserPermission, 0, len(permissions))
		for _, permission := range permissions {
			grants = append(grants, &UserPermission{
				UserId:       userId,
				TournamentId: tournamentId,
				Permission:   permission,
			})
		}
		return tx.Create(&grants).Error
	})
}
