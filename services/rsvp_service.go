package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"vows.link/configs/configslog"
	"vows.link/models"
	"vows.link/repositories"
)

// RSVPServiceError is the error type for RSVP service failures.
type RSVPServiceError string

func (e RSVPServiceError) Error() string { return string(e) }

const (
	ErrRSVPInvalidInput     RSVPServiceError = "invalid RSVP data"
	ErrRSVPSubmissionFailed RSVPServiceError = "RSVP could not be submitted"
)

// SubmitRSVPInput carries one submission. PlusOneAttending defaults to
// false; optional texts stay nil when the guest left them empty.
type SubmitRSVPInput struct {
	GuestID             uint
	Attending           bool
	PlusOneAttending    bool
	DietaryRestrictions *string
	Message             *string
}

// IRSVPService is the interface for RSVP operations.
type IRSVPService interface {
	SubmitRSVP(ctx context.Context, input SubmitRSVPInput) (*models.RSVP, error)
	GetRSVPStats(ctx context.Context, weddingID uint) (*models.RSVPStats, error)
}

// RSVPService implements IRSVPService.
type RSVPService struct {
	repo      repositories.IRSVPRepository
	guestRepo repositories.IGuestRepository
}

// NewRSVPService creates a new RSVPService on the active connection.
func NewRSVPService() IRSVPService {
	return &RSVPService{
		repo:      repositories.NewRSVPRepository(),
		guestRepo: repositories.NewGuestRepository(),
	}
}

// SubmitRSVP records or replaces the guest's response. A resubmission
// overwrites every field, including the attending flags in either
// direction, and refreshes the response time; only the latest answer is
// kept. The replacement itself is a single atomic upsert at the store.
func (s *RSVPService) SubmitRSVP(ctx context.Context, input SubmitRSVPInput) (*models.RSVP, error) {
	if input.GuestID == 0 {
		return nil, fmt.Errorf("%w: guest ID is required", ErrRSVPInvalidInput)
	}

	if _, err := s.guestRepo.FindByID(ctx, input.GuestID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}

	rsvp := models.RSVP{
		GuestID:             input.GuestID,
		Attending:           input.Attending,
		PlusOneAttending:    input.PlusOneAttending,
		DietaryRestrictions: input.DietaryRestrictions,
		Message:             input.Message,
		RespondedAt:         time.Now().UTC(),
	}
	if err := s.repo.Upsert(ctx, &rsvp); err != nil {
		configslog.SLog.Errorw("RSVP upsert failed", "guestID", input.GuestID, "error", err)
		return nil, ErrRSVPSubmissionFailed
	}

	// Re-read so the caller always sees the stored row, including the
	// original ID when an existing response was overwritten.
	stored, err := s.repo.FindByGuestID(ctx, input.GuestID)
	if err != nil {
		return nil, ErrRSVPSubmissionFailed
	}
	return stored, nil
}

// GetRSVPStats aggregates a wedding's guest list in one pass and derives
// the response rate, rounded to two decimal places. A wedding with no
// guests has a rate of zero.
func (s *RSVPService) GetRSVPStats(ctx context.Context, weddingID uint) (*models.RSVPStats, error) {
	if weddingID == 0 {
		return nil, fmt.Errorf("%w: wedding ID is required", ErrRSVPInvalidInput)
	}

	stats, err := s.repo.StatsByWeddingID(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if stats.TotalGuests > 0 {
		rate := float64(stats.TotalResponded) / float64(stats.TotalGuests) * 100
		stats.ResponseRate = math.Round(rate*100) / 100
	}
	return stats, nil
}

var _ IRSVPService = (*RSVPService)(nil)

// NewRSVPServiceTx builds the service on an explicit handle.
func NewRSVPServiceTx(tx *gorm.DB) IRSVPService {
	return &RSVPService{
		repo:      repositories.NewRSVPRepositoryTx(tx),
		guestRepo: repositories.NewGuestRepositoryTx(tx),
	}
}
