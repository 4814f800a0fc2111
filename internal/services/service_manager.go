package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/intelliquiz/quiz-service/internal/repositories"
	"github.com/intelliquiz/quiz-service/internal/seed"
	"github.com/intelliquiz/quiz-service/internal/store"
	"github.com/intelliquiz/quiz-service/internal/validator"
)

// serviceManager implements ServiceManager
type serviceManager struct {
	// Dependencies
	store     store.Store
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator

	// Service instances
	authService     AuthService
	quizService     QuizService
	scheduleService ScheduleService
	attemptService  AttemptService
	resultService   ResultService
	reportService   ReportService

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager wires every service over the shared store, repository,
// logger and validator.
func NewServiceManager(st store.Store, repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) ServiceManager {
	m := &serviceManager{
		store:     st,
		repo:      repo,
		logger:    logger,
		validator: validator,
	}

	m.authService = NewAuthService(repo, logger, validator)
	m.quizService = NewQuizService(repo, logger, validator)
	m.scheduleService = NewScheduleService(repo, logger, validator)
	m.attemptService = NewAttemptService(repo, logger, validator)
	m.resultService = NewResultService(repo, logger)
	m.reportService = NewReportService(m.resultService, logger)

	return m
}

// Initialize runs the one-time seed bootstrap and restores the persisted
// session. It must complete before any role-gated operation is attempted.
func (m *serviceManager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if m.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	seeded, err := seed.Initialize(ctx, m.store)
	if err != nil {
		return fmt.Errorf("failed to bootstrap seed data: %w", err)
	}
	if seeded {
		m.logger.Info("Seed data loaded on first run")
	}

	if err := m.authService.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize auth service: %w", err)
	}

	m.initialized = true
	m.logger.Info("Services initialized")
	return nil
}

func (m *serviceManager) Auth() AuthService { return m.authService }

func (m *serviceManager) Quizzes() QuizService { return m.quizService }

func (m *serviceManager) Schedule() ScheduleService { return m.scheduleService }

func (m *serviceManager) Attempts() AttemptService { return m.attemptService }

func (m *serviceManager) Results() ResultService { return m.resultService }

func (m *serviceManager) Reports() ReportService { return m.reportService }

func (m *serviceManager) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized {
		return fmt.Errorf("service manager not initialized")
	}
	if m.shutdown {
		return fmt.Errorf("service manager is shut down")
	}
	return m.repo.Ping(ctx)
}

func (m *serviceManager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shutdown {
		return nil
	}
	m.shutdown = true
	m.initialized = false

	m.logger.Info("Services shut down")
	return nil
}
