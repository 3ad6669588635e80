package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"vows.link/configs/configslog"
	"vows.link/models"
	"vows.link/repositories"
)

// PhotoServiceError is the error type for gallery service failures.
type PhotoServiceError string

func (e PhotoServiceError) Error() string { return string(e) }

const (
	ErrPhotoInvalidInput   PhotoServiceError = "invalid photo data"
	ErrPhotoCreationFailed PhotoServiceError = "photo could not be added"
)

// AddPhotoInput carries a new gallery photo. A zero DisplayOrder is a
// real position, not an absent value.
type AddPhotoInput struct {
	WeddingID    uint
	PhotoURL     string
	Caption      *string
	DisplayOrder int
}

// IWeddingPhotoService is the interface for gallery operations.
type IWeddingPhotoService interface {
	AddPhoto(ctx context.Context, input AddPhotoInput) (*models.WeddingPhoto, error)
}

// WeddingPhotoService implements IWeddingPhotoService.
type WeddingPhotoService struct {
	repo repositories.IWeddingPhotoRepository
}

// NewWeddingPhotoService creates a new WeddingPhotoService on the active
// connection.
func NewWeddingPhotoService() IWeddingPhotoService {
	return &WeddingPhotoService{repo: repositories.NewWeddingPhotoRepository()}
}

// AddPhoto appends a photo to a wedding's gallery. URLs are stored as
// given; no fetching or processing happens here.
func (s *WeddingPhotoService) AddPhoto(ctx context.Context, input AddPhotoInput) (*models.WeddingPhoto, error) {
	switch {
	case input.WeddingID == 0:
		return nil, fmt.Errorf("%w: wedding ID is required", ErrPhotoInvalidInput)
	case input.PhotoURL == "":
		return nil, fmt.Errorf("%w: photo URL is required", ErrPhotoInvalidInput)
	}

	photo := models.WeddingPhoto{
		WeddingID:    input.WeddingID,
		PhotoURL:     input.PhotoURL,
		Caption:      input.Caption,
		DisplayOrder: input.DisplayOrder,
	}
	if err := s.repo.Create(ctx, &photo); err != nil {
		configslog.SLog.Errorw("photo creation failed", "weddingID", input.WeddingID, "error", err)
		return nil, ErrPhotoCreationFailed
	}
	return &photo, nil
}

var _ IWeddingPhotoService = (*WeddingPhotoService)(nil)

// NewWeddingPhotoServiceTx builds the service on an explicit handle.
func NewWeddingPhotoServiceTx(tx *gorm.DB) IWeddingPhotoService {
	return &WeddingPhotoService{repo: repositories.NewWeddingPhotoRepositoryTx(tx)}
}
