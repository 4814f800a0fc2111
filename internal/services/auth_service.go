package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/intelliquiz/quiz-service/internal/models"
	"github.com/intelliquiz/quiz-service/internal/repositories"
	"github.com/intelliquiz/quiz-service/internal/validator"
)

type authService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator

	// Session state is explicit and owned here, initialized from the
	// persisted record and kept in lockstep with it.
	mu      sync.RWMutex
	current *models.SessionUser
}

func NewAuthService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) AuthService {
	return &authService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

// Initialize reads the persisted session record. An absent record means
// logged out; a corrupt one surfaces so callers do not proceed role-gated.
func (s *authService) Initialize(ctx context.Context) error {
	current, err := s.repo.Session().Get(ctx)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}

	s.mu.Lock()
	s.current = current
	s.mu.Unlock()

	s.logger.Info("Session restored", "user_id", current.ID, "role", current.Role)
	return nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.SessionUser, error) {
	users, err := s.repo.Users().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	for i := range users {
		if users[i].Username == username && users[i].Password == password {
			session := users[i].Redacted()
			if err := s.establishSession(ctx, session); err != nil {
				return nil, err
			}
			s.logger.Info("User logged in", "user_id", session.ID, "role", session.Role)
			return session, nil
		}
	}

	s.logger.Info("Login rejected", "username", username)
	return nil, ErrInvalidCredentials
}

func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*models.SessionUser, error) {
	if errs := s.validator.ValidateRegister(req); len(errs) > 0 {
		return nil, errs
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}

	// Exact, case-sensitive uniqueness check. The password and role play no
	// part in the conflict.
	_, err := s.repo.Users().GetByUsername(ctx, req.Username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !repositories.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Username: req.Username,
		Password: req.Password,
		Role:     role,
	}
	if err := s.repo.Users().Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	session := user.Redacted()
	if err := s.establishSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", "user_id", user.ID, "role", user.Role)
	return session, nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.repo.Session().Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.logger.Info("User logged out")
	return nil
}

func (s *authService) CurrentUser() *models.SessionUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *authService) establishSession(ctx context.Context, session *models.SessionUser) error {
	if err := s.repo.Session().Set(ctx, session); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()
	return nil
}
