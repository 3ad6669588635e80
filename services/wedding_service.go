package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"vows.link/configs"
	"vows.link/configs/configslog"
	"vows.link/models"
	"vows.link/pkg/slug"
	"vows.link/repositories"
)

// WeddingServiceError is the error type for wedding service failures.
type WeddingServiceError string

func (e WeddingServiceError) Error() string { return string(e) }

const (
	ErrWeddingNotFound       WeddingServiceError = "wedding not found"
	ErrWeddingInvalidInput   WeddingServiceError = "invalid wedding data"
	ErrWeddingCreationFailed WeddingServiceError = "wedding could not be created"
	ErrWeddingUpdateFailed   WeddingServiceError = "wedding could not be updated"
	ErrWeddingNotPublishable WeddingServiceError = "wedding has no webpage slug"
)

// CreateWeddingInput carries the required fields of a new wedding plus
// its optional description.
type CreateWeddingInput struct {
	Title       string
	BrideName   string
	GroomName   string
	WeddingDate time.Time
	Venue       string
	Description *string
}

// UpdateWeddingInput is a partial patch: nil fields keep their stored
// value, non-nil fields overwrite it. Pointers rather than zero-value
// checks so that legitimate empty strings still count as provided.
type UpdateWeddingInput struct {
	Title        *string
	BrideName    *string
	GroomName    *string
	WeddingDate  *time.Time
	Venue        *string
	Description  *string
	HeroPhotoURL *string
	PlaceDetails *string
	TemplateID   *models.WeddingTemplate
}

// IWeddingService is the interface for wedding operations.
type IWeddingService interface {
	CreateWedding(ctx context.Context, input CreateWeddingInput) (*models.Wedding, error)
	GetWeddingByID(ctx context.Context, id uint) (*models.Wedding, error)
	GetWeddingWithPhotos(ctx context.Context, id uint) (*models.WeddingWithPhotos, error)
	GetWeddingBySlug(ctx context.Context, pageSlug string) (*models.WeddingWithPhotos, error)
	ListWeddings(ctx context.Context) ([]models.Wedding, error)
	UpdateWedding(ctx context.Context, id uint, input UpdateWeddingInput) (*models.Wedding, error)
	PublishWedding(ctx context.Context, id uint) (*models.Wedding, string, error)
}

// WeddingService implements IWeddingService.
type WeddingService struct {
	repo      repositories.IWeddingRepository
	photoRepo repositories.IWeddingPhotoRepository
	baseURL   string
}

// NewWeddingService creates a new WeddingService on the active connection.
func NewWeddingService() IWeddingService {
	return &WeddingService{
		repo:      repositories.NewWeddingRepository(),
		photoRepo: repositories.NewWeddingPhotoRepository(),
		baseURL:   configs.App.BaseURL,
	}
}

func validateCreateWedding(input CreateWeddingInput) error {
	switch {
	case input.Title == "":
		return fmt.Errorf("%w: title is required", ErrWeddingInvalidInput)
	case input.BrideName == "":
		return fmt.Errorf("%w: bride name is required", ErrWeddingInvalidInput)
	case input.GroomName == "":
		return fmt.Errorf("%w: groom name is required", ErrWeddingInvalidInput)
	case input.WeddingDate.IsZero():
		return fmt.Errorf("%w: wedding date is required", ErrWeddingInvalidInput)
	case input.Venue == "":
		return fmt.Errorf("%w: venue is required", ErrWeddingInvalidInput)
	}
	return nil
}

// CreateWedding inserts a new wedding. The webpage slug is generated
// here, once, from the title; publishing later only flips the
// publication flag, so a published wedding always has a usable URL.
func (s *WeddingService) CreateWedding(ctx context.Context, input CreateWeddingInput) (*models.Wedding, error) {
	if err := validateCreateWedding(input); err != nil {
		return nil, err
	}

	pageSlug := slug.Make(input.Title)
	wedding := models.Wedding{
		Title:       input.Title,
		BrideName:   input.BrideName,
		GroomName:   input.GroomName,
		WeddingDate: input.WeddingDate,
		Venue:       input.Venue,
		Description: input.Description,
		TemplateID:  models.TemplateClassic,
		IsPublished: false,
		WebpageSlug: &pageSlug,
	}
	if err := s.repo.Create(ctx, &wedding); err != nil {
		configslog.SLog.Errorw("wedding creation failed", "title", input.Title, "error", err)
		return nil, ErrWeddingCreationFailed
	}

	configslog.SLog.Infof("wedding created: ID %d, slug %s", wedding.ID, pageSlug)
	return &wedding, nil
}

// GetWeddingByID returns the wedding or ErrWeddingNotFound.
func (s *WeddingService) GetWeddingByID(ctx context.Context, id uint) (*models.Wedding, error) {
	wedding, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrWeddingNotFound
		}
		return nil, err
	}
	return wedding, nil
}

// GetWeddingWithPhotos returns the wedding together with its ordered
// gallery.
func (s *WeddingService) GetWeddingWithPhotos(ctx context.Context, id uint) (*models.WeddingWithPhotos, error) {
	wedding, err := s.GetWeddingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.attachPhotos(ctx, wedding)
}

// GetWeddingBySlug resolves a public page. Only published weddings are
// visible; an unpublished wedding behind a correct slug is
// indistinguishable from a missing one.
func (s *WeddingService) GetWeddingBySlug(ctx context.Context, pageSlug string) (*models.WeddingWithPhotos, error) {
	wedding, err := s.repo.FindPublishedBySlug(ctx, pageSlug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrWeddingNotFound
		}
		return nil, err
	}
	return s.attachPhotos(ctx, wedding)
}

func (s *WeddingService) attachPhotos(ctx context.Context, wedding *models.Wedding) (*models.WeddingWithPhotos, error) {
	photos, err := s.photoRepo.FindAllByWeddingID(ctx, wedding.ID)
	if err != nil {
		return nil, err
	}
	if photos == nil {
		photos = []models.WeddingPhoto{}
	}
	return &models.WeddingWithPhotos{Wedding: *wedding, Photos: photos}, nil
}

// ListWeddings returns every wedding ordered by wedding date.
func (s *WeddingService) ListWeddings(ctx context.Context) ([]models.Wedding, error) {
	weddings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if weddings == nil {
		weddings = []models.Wedding{}
	}
	return weddings, nil
}

// UpdateWedding applies a partial patch. Omitted fields keep their
// stored value; the update timestamp is always refreshed.
func (s *WeddingService) UpdateWedding(ctx context.Context, id uint, input UpdateWeddingInput) (*models.Wedding, error) {
	wedding, err := s.GetWeddingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		wedding.Title = *input.Title
	}
	if input.BrideName != nil {
		wedding.BrideName = *input.BrideName
	}
	if input.GroomName != nil {
		wedding.GroomName = *input.GroomName
	}
	if input.WeddingDate != nil {
		wedding.WeddingDate = *input.WeddingDate
	}
	if input.Venue != nil {
		wedding.Venue = *input.Venue
	}
	if input.Description != nil {
		wedding.Description = input.Description
	}
	if input.HeroPhotoURL != nil {
		wedding.HeroPhotoURL = input.HeroPhotoURL
	}
	if input.PlaceDetails != nil {
		wedding.PlaceDetails = input.PlaceDetails
	}
	if input.TemplateID != nil {
		if !input.TemplateID.Valid() {
			return nil, fmt.Errorf("%w: unknown template %q", ErrWeddingInvalidInput, *input.TemplateID)
		}
		wedding.TemplateID = *input.TemplateID
	}

	if err := s.repo.Update(ctx, wedding); err != nil {
		configslog.SLog.Errorw("wedding update failed", "id", id, "error", err)
		return nil, ErrWeddingUpdateFailed
	}
	return wedding, nil
}

// PublishWedding flips the publication flag and returns the wedding
// together with its public page URL.
func (s *WeddingService) PublishWedding(ctx context.Context, id uint) (*models.Wedding, string, error) {
	wedding, err := s.GetWeddingByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if wedding.WebpageSlug == nil || *wedding.WebpageSlug == "" {
		// Cannot happen for weddings created here (slugs are assigned at
		// creation), only for rows imported from elsewhere.
		return nil, "", ErrWeddingNotPublishable
	}

	wedding.IsPublished = true
	if err := s.repo.Update(ctx, wedding); err != nil {
		configslog.SLog.Errorw("wedding publish failed", "id", id, "error", err)
		return nil, "", ErrWeddingUpdateFailed
	}

	url := s.PublicURL(*wedding.WebpageSlug)
	configslog.SLog.Infof("wedding published: ID %d, url %s", wedding.ID, url)
	return wedding, url, nil
}

// PublicURL builds the public invitation URL for a slug.
func (s *WeddingService) PublicURL(pageSlug string) string {
	return strings.TrimRight(s.baseURL, "/") + "/invitation/" + pageSlug
}

var _ IWeddingService = (*WeddingService)(nil)

// NewWeddingServiceTx builds the service on an explicit handle, used by
// tests and by the seeders.
func NewWeddingServiceTx(tx *gorm.DB) IWeddingService {
	return &WeddingService{
		repo:      repositories.NewWeddingRepositoryTx(tx),
		photoRepo: repositories.NewWeddingPhotoRepositoryTx(tx),
		baseURL:   configs.App.BaseURL,
	}
}
