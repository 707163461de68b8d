package service

import (
	"debatab/repository"

	"gorm.io/gorm"
)

// PermissionService answers capability checks against an explicit user and
// tournament, superusers hold every permission.
type PermissionService struct {
	userRepository *repository.UserRepository
}

func NewPermissionService(db *gorm.DB) *PermissionService {
	return &PermissionService{
		userRepository: repository.NewUserRepository(db),
	}
}

func (e *PermissionService) HasPermission(user *repository.User, permission repository.Permission, tournament *repository.Tournament) (bool, error) {
	if user == nil {
		return false, nil
	}
	if user.IsSuperuser {
		return true, nil
	}
	return e.userRepository.HasPermission(user.Id, tournament.Id, permission)
}
