package services

import (
	"fmt"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/internal/repositories"
	"haveli_pos_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// LoginRequest is the console login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the access token and the account it identifies.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

// AuthService verifies console accounts and issues JWT access tokens. Not
// a hard security boundary in this system; it scopes which unit dashboards
// a login may mutate.
type AuthService interface {
	Login(req LoginRequest) (*LoginResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(ur repositories.UserRepository) AuthService {
	return &authService{userRepo: ur}
}

func (s *authService) Login(req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	token, err := utils.GenerateAccessToken(user.ID, user.Username, user.Role, string(user.Unit))
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	utils.LogInfo("User logged in", map[string]interface{}{"username": user.Username, "role": user.Role})
	return &LoginResponse{AccessToken: token, User: user}, nil
}
