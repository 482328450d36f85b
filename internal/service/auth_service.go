package service

import (
	"errors"
	"fmt"

	"github.com/minesight/rockfall-backend-go/internal/auth"
	"github.com/minesight/rockfall-backend-go/internal/models"
	"github.com/minesight/rockfall-backend-go/internal/repository"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrUserNotFound is returned when a profile lookup misses
	ErrUserNotFound = errors.New("user not found")
)

// RoleMismatchError is returned when credentials are valid but the requested
// role does not match the account's role.
type RoleMismatchError struct {
	RequestedRole string
}

func (e *RoleMismatchError) Error() string {
	return fmt.Sprintf("You do not have %s access", e.RequestedRole)
}

// AuthService handles login, token refresh and profile lookups
type AuthService struct {
	userRepo *repository.UserRepository
	tokens   *auth.TokenIssuer
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repository.UserRepository, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Login authenticates a user by email/password and checks the requested role
func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	if user.Role != req.Role {
		return nil, &RoleMismatchError{RequestedRole: req.Role}
	}

	tokens, err := s.tokens.IssuePair(user)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{User: *user, Tokens: tokens}, nil
}

// Refresh exchanges a valid refresh token for a new access token
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := s.tokens.Parse(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return "", err
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", auth.ErrInvalidToken
	}

	return s.tokens.IssueAccess(user)
}

// Profile returns the account behind a set of verified claims
func (s *AuthService) Profile(userID int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Register creates a user account with a hashed password (used by the CLI)
func (s *AuthService) Register(user *models.User, password string) error {
	if user.Role != models.RoleAdmin && user.Role != models.RoleManager {
		return fmt.Errorf("invalid role %q", user.Role)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	return s.userRepo.Create(user)
}
