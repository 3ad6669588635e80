package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"vows.link/configs"
	"vows.link/configs/configslog"
	"vows.link/models"
)

// IGuestRepository is the interface for guest database operations.
type IGuestRepository interface {
	Create(ctx context.Context, guest *models.Guest) error
	FindByID(ctx context.Context, id uint) (*models.Guest, error)
	FindAllByWeddingID(ctx context.Context, weddingID uint) ([]models.Guest, error)
}

// GuestRepository implements IGuestRepository.
type GuestRepository struct {
	db *gorm.DB
}

// NewGuestRepository creates a new GuestRepository on the active connection.
func NewGuestRepository() IGuestRepository {
	return &GuestRepository{db: configs.GetDB()}
}

func (r *GuestRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create inserts a new guest row. The owning wedding is not verified
// here; the foreign key constraint is the only safety net.
func (r *GuestRepository) Create(ctx context.Context, guest *models.Guest) error {
	if guest == nil || guest.WeddingID == 0 {
		return errors.New("guest must reference a wedding")
	}
	return r.getDB(ctx).Create(guest).Error
}

// FindByID returns the guest with the given ID or ErrNotFound.
func (r *GuestRepository) FindByID(ctx context.Context, id uint) (*models.Guest, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var guest models.Guest
	err := r.getDB(ctx).First(&guest, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GuestRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &guest, nil
}

// FindAllByWeddingID returns every guest of a wedding ordered by name,
// each with its RSVP preloaded when one exists.
func (r *GuestRepository) FindAllByWeddingID(ctx context.Context, weddingID uint) ([]models.Guest, error) {
	if weddingID == 0 {
		return nil, errors.New("wedding ID must not be zero")
	}
	var guests []models.Guest
	err := r.getDB(ctx).
		Preload("RSVP").
		Where("wedding_id = ?", weddingID).
		Order("name asc").
		Find(&guests).Error
	if err != nil {
		configslog.Log.Error("GuestRepository.FindAllByWeddingID: DB error", zap.Uint("weddingID", weddingID), zap.Error(err))
		return nil, err
	}
	return guests, nil
}

var _ IGuestRepository = (*GuestRepository)(nil)

// NewGuestRepositoryTx builds the repository on an explicit handle.
func NewGuestRepositoryTx(tx *gorm.DB) IGuestRepository {
	return &GuestRepository{db: tx}
}
