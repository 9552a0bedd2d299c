package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/Placify/config"
	"github.com/lshigami/Placify/internal/dto"
	"github.com/lshigami/Placify/internal/model"
	"github.com/lshigami/Placify/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUser      = errors.New("username or email already exists")
)

const defaultCollege = "Placify College"

type AuthService interface {
	Register(req dto.RegisterRequest) error
	// Login verifies the credentials and opens a session. It returns the
	// opaque session token to be set as a cookie.
	Login(req dto.LoginRequest) (*dto.LoginResponse, string, error)
	Logout(token string) error
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, sessionRepo: sessionRepo, cfg: cfg}
}

func (s *authService) Register(req dto.RegisterRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	college := req.College
	if college == "" {
		college = defaultCollege
	}

	user := model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         model.RoleStudent,
		Department:   req.Department,
		Year:         req.Year,
		College:      college,
	}
	if err := s.userRepo.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return ErrDuplicateUser
		}
		log.Error().Err(err).Str("username", req.Username).Msg("Register: failed to create user")
		return fmt.Errorf("error creating user: %w", err)
	}

	log.Info().Str("username", user.Username).Msg("Student registered")
	return nil
}

func (s *authService) Login(req dto.LoginRequest) (*dto.LoginResponse, string, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		log.Error().Err(err).Str("username", req.Username).Msg("Login: repository error")
		return nil, "", fmt.Errorf("error looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	session := model.Session{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.Session.TTLHours) * time.Hour),
	}
	if err := s.sessionRepo.Create(&session); err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Login: failed to create session")
		return nil, "", fmt.Errorf("error creating session: %w", err)
	}

	redirect := "/student"
	if user.Role == model.RoleAdmin {
		redirect = "/admin"
	}

	log.Info().Str("username", user.Username).Str("role", user.Role).Msg("User logged in")
	return &dto.LoginResponse{Success: true, Role: user.Role, Redirect: redirect}, session.Token, nil
}

func (s *authService) Logout(token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessionRepo.DeleteByToken(token); err != nil {
		log.Error().Err(err).Msg("Logout: failed to delete session")
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// isUniqueViolation catches unique-constraint errors that driver layers do
// not translate into gorm.ErrDuplicatedKey (the sqlite driver used in tests
// reports them as plain strings).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
