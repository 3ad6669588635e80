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

// IWeddingRepository is the interface for wedding database operations.
type IWeddingRepository interface {
	Create(ctx context.Context, wedding *models.Wedding) error
	FindByID(ctx context.Context, id uint) (*models.Wedding, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*models.Wedding, error)
	FindAll(ctx context.Context) ([]models.Wedding, error)
	Update(ctx context.Context, wedding *models.Wedding) error
}

// WeddingRepository implements IWeddingRepository.
type WeddingRepository struct {
	db *gorm.DB
}

// NewWeddingRepository creates a new WeddingRepository on the active connection.
func NewWeddingRepository() IWeddingRepository {
	return &WeddingRepository{db: configs.GetDB()}
}

func (r *WeddingRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create inserts a new wedding row.
func (r *WeddingRepository) Create(ctx context.Context, wedding *models.Wedding) error {
	if wedding == nil {
		return errors.New("wedding must not be nil")
	}
	return r.getDB(ctx).Create(wedding).Error
}

// FindByID returns the wedding with the given ID or ErrNotFound.
func (r *WeddingRepository) FindByID(ctx context.Context, id uint) (*models.Wedding, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var wedding models.Wedding
	err := r.getDB(ctx).First(&wedding, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("WeddingRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &wedding, nil
}

// FindPublishedBySlug returns the wedding with the given slug, but only
// when it is published. Unpublished weddings and unknown slugs are both
// reported as ErrNotFound so callers cannot tell them apart.
func (r *WeddingRepository) FindPublishedBySlug(ctx context.Context, slug string) (*models.Wedding, error) {
	if slug == "" {
		return nil, ErrNotFound
	}
	var wedding models.Wedding
	err := r.getDB(ctx).
		Where("webpage_slug = ? AND is_published = ?", slug, true).
		First(&wedding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("WeddingRepository.FindPublishedBySlug: DB error", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &wedding, nil
}

// FindAll returns every wedding ordered by wedding date ascending.
func (r *WeddingRepository) FindAll(ctx context.Context) ([]models.Wedding, error) {
	var weddings []models.Wedding
	err := r.getDB(ctx).Order("wedding_date asc").Find(&weddings).Error
	if err != nil {
		configslog.Log.Error("WeddingRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return weddings, nil
}

// Update persists the full wedding row. GORM refreshes updated_at.
func (r *WeddingRepository) Update(ctx context.Context, wedding *models.Wedding) error {
	if wedding == nil || wedding.ID == 0 {
		return errors.New("wedding to update is not valid")
	}
	return r.getDB(ctx).Save(wedding).Error
}

var _ IWeddingRepository = (*WeddingRepository)(nil)

// NewWeddingRepositoryTx builds the repository on an explicit handle,
// used inside transactions and by tests.
func NewWeddingRepositoryTx(tx *gorm.DB) IWeddingRepository {
	return &WeddingRepository{db: tx}
}
