package service

import (
	"fmt"

	"debatab/auth"
	"debatab/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	userRepository *repository.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		userRepository: repository.NewUserRepository(db),
	}
}

func (s *UserService) GetUserById(userId int) (*repository.User, error) {
	return s.userRepository.GetUserById(userId)
}

func (s *UserService) GetAllUsers() ([]*repository.User, error) {
	return s.userRepository.GetAllUsers()
}

func (s *UserService) CreateUser(username string, password string, email string) (*repository.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &repository.User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
	}
	return s.userRepository.SaveUser(user)
}

func (s *UserService) Login(username string, password string) (*repository.User, error) {
	user, err := s.userRepository.GetUserByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}
	if user.PasswordHash == "" {
		return nil, fmt.Errorf("invalid username or password")
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}
	return user, nil
}

func (s *UserService) GetOrCreateDiscordUser(discordId string, discordName string) (*repository.User, error) {
	user, err := s.userRepository.GetUserByDiscordId(discordId)
	if err == nil {
		if user.DiscordName != discordName {
			user.DiscordName = discordName
			return s.userRepository.SaveUser(user)
		}
		return user, nil
	}
	user = &repository.User{
		Username:    discordName,
		DiscordId:   discordId,
		DiscordName: discordName,
	}
	return s.userRepository.SaveUser(user)
}

func (s *UserService) SetPermissions(userId int, tournamentId int, permissions []repository.Permission) (*repository.User, error) {
	err := s.userRepository.SetPermissions(userId, tournamentId, permissions)
	if err != nil {
		return nil, err
	}
	return s.userRepository.GetUserById(userId)
}

// GetUserFromRequest resolves the user from the auth cookie, falling back to
// a Bearer header for non-browser clients.
func (s *UserService) GetUserFromRequest(c *gin.Context) (*repository.User, error) {
	if cookie, err := c.Cookie("auth"); err == nil && cookie != "" {
		return s.GetUserFromToken(cookie)
	}
	authHeader := c.Request.Header.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return nil, fmt.Errorf("authorization header is invalid")
	}
	return s.GetUserFromToken(authHeader[7:])
}

func (s *UserService) GetUserFromToken(tokenString string) (*repository.User, error) {
	token, err := auth.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims := &auth.Claims{}
	if token.Valid {
		claims.FromJWTClaims(token.Claims)
		if err := claims.Valid(); err != nil {
			return nil, err
		}
		return s.GetUserById(claims.UserId)
	}
	return nil, jwt.ErrInvalidKey
}
