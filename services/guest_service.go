package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vows.link/configs/configslog"
	"vows.link/models"
	"vows.link/repositories"
)

// GuestServiceError is the error type for guest service failures.
type GuestServiceError string

func (e GuestServiceError) Error() string { return string(e) }

const (
	ErrGuestNotFound       GuestServiceError = "guest not found"
	ErrGuestInvalidInput   GuestServiceError = "invalid guest data"
	ErrGuestCreationFailed GuestServiceError = "guest could not be added"
)

// AddGuestInput carries a new guest. Email uniqueness is deliberately
// not enforced; the same address may be added more than once.
type AddGuestInput struct {
	WeddingID      uint
	Name           string
	Email          string
	Phone          *string
	PlusOneAllowed bool
}

// IGuestService is the interface for guest operations.
type IGuestService interface {
	AddGuest(ctx context.Context, input AddGuestInput) (*models.Guest, error)
	ListGuests(ctx context.Context, weddingID uint) ([]models.Guest, error)
	GetGuestByID(ctx context.Context, id uint) (*models.GuestWithWedding, error)
}

// GuestService implements IGuestService.
type GuestService struct {
	repo        repositories.IGuestRepository
	weddingRepo repositories.IWeddingRepository
}

// NewGuestService creates a new GuestService on the active connection.
func NewGuestService() IGuestService {
	return &GuestService{
		repo:        repositories.NewGuestRepository(),
		weddingRepo: repositories.NewWeddingRepository(),
	}
}

// AddGuest inserts a new guest. The owning wedding is not looked up
// first; a dangling wedding ID is caught only by the foreign key.
func (s *GuestService) AddGuest(ctx context.Context, input AddGuestInput) (*models.Guest, error) {
	switch {
	case input.WeddingID == 0:
		return nil, fmt.Errorf("%w: wedding ID is required", ErrGuestInvalidInput)
	case input.Name == "":
		return nil, fmt.Errorf("%w: name is required", ErrGuestInvalidInput)
	case input.Email == "":
		return nil, fmt.Errorf("%w: email is required", ErrGuestInvalidInput)
	}

	guest := models.Guest{
		WeddingID:      input.WeddingID,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		PlusOneAllowed: input.PlusOneAllowed,
	}
	if err := s.repo.Create(ctx, &guest); err != nil {
		configslog.SLog.Errorw("guest creation failed", "weddingID", input.WeddingID, "error", err)
		return nil, ErrGuestCreationFailed
	}
	return &guest, nil
}

// ListGuests returns a wedding's guests ordered by name, each carrying
// its RSVP when one was submitted.
func (s *GuestService) ListGuests(ctx context.Context, weddingID uint) ([]models.Guest, error) {
	if weddingID == 0 {
		return nil, fmt.Errorf("%w: wedding ID is required", ErrGuestInvalidInput)
	}
	guests, err := s.repo.FindAllByWeddingID(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if guests == nil {
		guests = []models.Guest{}
	}
	return guests, nil
}

// GetGuestByID returns a single guest together with its owning wedding.
// This is the direct lookup that replaces scanning every wedding's
// guest list client-side.
func (s *GuestService) GetGuestByID(ctx context.Context, id uint) (*models.GuestWithWedding, error) {
	guest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}

	wedding, err := s.weddingRepo.FindByID(ctx, guest.WeddingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Orphaned guest rows should be impossible under the FK.
			configslog.SLog.Errorw("guest references missing wedding", "guestID", guest.ID, "weddingID", guest.WeddingID)
			return nil, ErrGuestNotFound
		}
		return nil, err
	}

	return &models.GuestWithWedding{Guest: *guest, Wedding: *wedding}, nil
}

var _ IGuestService = (*GuestService)(nil)

// NewGuestServiceTx builds the service on an explicit handle.
func NewGuestServiceTx(tx *gorm.DB) IGuestService {
	return &GuestService{
		repo:        repositories.NewGuestRepositoryTx(tx),
		weddingRepo: repositories.NewWeddingRepositoryTx(tx),
	}
}
