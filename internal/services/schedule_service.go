package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/intelliquiz/quiz-service/internal/models"
	"github.com/intelliquiz/quiz-service/internal/repositories"
	"github.com/intelliquiz/quiz-service/internal/validator"
)

type scheduleService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewScheduleService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) ScheduleService {
	return &scheduleService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *scheduleService) Create(ctx context.Context, req *MockTestSaveRequest) (*models.MockTest, error) {
	if errs := s.validator.ValidateMockTestSave(req); len(errs) > 0 {
		return nil, errs
	}

	test := &models.MockTest{
		ID:              uuid.NewString(),
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		TimeSlots:       buildSlots(req.TimeSlots),
	}

	if err := s.repo.MockTests().Create(ctx, test); err != nil {
		return nil, fmt.Errorf("failed to create mock test: %w", err)
	}

	s.logger.Info("Mock test created", "test_id", test.ID, "slots", len(test.TimeSlots))
	return test, nil
}

// Update replaces title, duration and the slot list wholesale. Every slot is
// rebuilt unbooked: editing a mock test forfeits all existing bookings. That
// is the update contract, not an accident; callers should warn before
// saving.
func (s *scheduleService) Update(ctx context.Context, id string, req *MockTestSaveRequest) (*models.MockTest, error) {
	if errs := s.validator.ValidateMockTestSave(req); len(errs) > 0 {
		return nil, errs
	}

	test := &models.MockTest{
		ID:              id,
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		TimeSlots:       buildSlots(req.TimeSlots),
	}

	if err := s.repo.MockTests().Update(ctx, test); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrMockTestNotFound
		}
		return nil, fmt.Errorf("failed to update mock test: %w", err)
	}

	s.logger.Info("Mock test updated", "test_id", id, "slots", len(test.TimeSlots))
	return test, nil
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.MockTests().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrMockTestNotFound
		}
		return fmt.Errorf("failed to delete mock test: %w", err)
	}

	s.logger.Info("Mock test deleted", "test_id", id)
	return nil
}

func (s *scheduleService) GetByID(ctx context.Context, id string) (*models.MockTest, error) {
	test, err := s.repo.MockTests().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrMockTestNotFound
		}
		return nil, fmt.Errorf("failed to get mock test: %w", err)
	}
	return test, nil
}

func (s *scheduleService) List(ctx context.Context) ([]models.MockTest, error) {
	tests, err := s.repo.MockTests().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mock tests: %w", err)
	}
	return tests, nil
}

// BookSlot marks the slot booked by userID. A slot that is already booked is
// overwritten, not rejected: the last caller wins and the previous booking
// is silently lost. Callers that want rejection instead can check IsBooked
// and fail with ErrSlotAlreadyBooked.
func (s *scheduleService) BookSlot(ctx context.Context, testID, slotID, userID string) (*models.TimeSlot, error) {
	test, err := s.repo.MockTests().GetByID(ctx, testID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrMockTestNotFound
		}
		return nil, fmt.Errorf("failed to get mock test: %w", err)
	}

	slot := test.SlotByID(slotID)
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	slot.IsBooked = true
	slot.BookedBy = &userID

	if err := s.repo.MockTests().Update(ctx, test); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	s.logger.Info("Slot booked", "test_id", testID, "slot_id", slotID, "user_id", userID)
	booked := *slot
	return &booked, nil
}

// buildSlots materializes request slots into owned records, all unbooked,
// each with a fresh ID.
func buildSlots(reqs []TimeSlotRequest) []models.TimeSlot {
	slots := make([]models.TimeSlot, len(reqs))
	for i, slot := range reqs {
		slots[i] = models.TimeSlot{
			ID:        uuid.NewString(),
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}
	}
	return slots
}
