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

// IWeddingPhotoRepository is the interface for gallery photo operations.
type IWeddingPhotoRepository interface {
	Create(ctx context.Context, photo *models.WeddingPhoto) error
	FindAllByWeddingID(ctx context.Context, weddingID uint) ([]models.WeddingPhoto, error)
}

// WeddingPhotoRepository implements IWeddingPhotoRepository.
type WeddingPhotoRepository struct {
	db *gorm.DB
}

// NewWeddingPhotoRepository creates a new WeddingPhotoRepository on the
// active connection.
func NewWeddingPhotoRepository() IWeddingPhotoRepository {
	return &WeddingPhotoRepository{db: configs.GetDB()}
}

func (r *WeddingPhotoRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create inserts a new gallery photo.
func (r *WeddingPhotoRepository) Create(ctx context.Context, photo *models.WeddingPhoto) error {
	if photo == nil || photo.WeddingID == 0 {
		return errors.New("photo must reference a wedding")
	}
	return r.getDB(ctx).Create(photo).Error
}

// FindAllByWeddingID returns the gallery in display order, ties broken
// by creation time ascending.
func (r *WeddingPhotoRepository) FindAllByWeddingID(ctx context.Context, weddingID uint) ([]models.WeddingPhoto, error) {
	if weddingID == 0 {
		return nil, errors.New("wedding ID must not be zero")
	}
	var photos []models.WeddingPhoto
	err := r.getDB(ctx).
		Where("wedding_id = ?", weddingID).
		Order("display_order asc, created_at asc").
		Find(&photos).Error
	if err != nil {
		configslog.Log.Error("WeddingPhotoRepository.FindAllByWeddingID: DB error", zap.Uint("weddingID", weddingID), zap.Error(err))
		return nil, err
	}
	return photos, nil
}

var _ IWeddingPhotoRepository = (*WeddingPhotoRepository)(nil)

// NewWeddingPhotoRepositoryTx builds the repository on an explicit handle.
func NewWeddingPhotoRepositoryTx(tx *gorm.DB) IWeddingPhotoRepository {
	return &WeddingPhotoRepository{db: tx}
}
