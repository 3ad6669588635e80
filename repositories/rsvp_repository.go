package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vows.link/configs"
	"vows.link/configs/configslog"
	"vows.link/models"
)

// IRSVPRepository is the interface for RSVP database operations.
type IRSVPRepository interface {
	Upsert(ctx context.Context, rsvp *models.RSVP) error
	FindByGuestID(ctx context.Context, guestID uint) (*models.RSVP, error)
	StatsByWeddingID(ctx context.Context, weddingID uint) (*models.RSVPStats, error)
}

// RSVPRepository implements IRSVPRepository.
type RSVPRepository struct {
	db *gorm.DB
}

// NewRSVPRepository creates a new RSVPRepository on the active connection.
func NewRSVPRepository() IRSVPRepository {
	return &RSVPRepository{db: configs.GetDB()}
}

func (r *RSVPRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Upsert inserts the RSVP or, when the guest already answered, overwrites
// the existing row in place. The conflict target is the unique index on
// guest_id, so two simultaneous submissions serialize at the store and
// can never produce a duplicate row.
func (r *RSVPRepository) Upsert(ctx context.Context, rsvp *models.RSVP) error {
	if rsvp == nil || rsvp.GuestID == 0 {
		return errors.New("RSVP must reference a guest")
	}
	return r.getDB(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "guest_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"attending", "plus_one_attending", "dietary_restrictions", "message", "responded_at",
		}),
	}).Create(rsvp).Error
}

// FindByGuestID returns the guest's RSVP or ErrNotFound.
func (r *RSVPRepository) FindByGuestID(ctx context.Context, guestID uint) (*models.RSVP, error) {
	if guestID == 0 {
		return nil, ErrNotFound
	}
	var rsvp models.RSVP
	err := r.getDB(ctx).Where("guest_id = ?", guestID).First(&rsvp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("RSVPRepository.FindByGuestID: DB error", zap.Uint("guestID", guestID), zap.Error(err))
		return nil, err
	}
	return &rsvp, nil
}

// StatsByWeddingID aggregates the guest list and its RSVPs in one pass.
// ResponseRate is left at zero; the service layer derives it.
func (r *RSVPRepository) StatsByWeddingID(ctx context.Context, weddingID uint) (*models.RSVPStats, error) {
	if weddingID == 0 {
		return nil, errors.New("wedding ID must not be zero")
	}
	var stats models.RSVPStats
	err := r.getDB(ctx).Raw(`
		SELECT
			COUNT(g.id)                                          AS total_guests,
			COUNT(r.id)                                          AS total_responded,
			COUNT(CASE WHEN r.attending = TRUE THEN 1 END)       AS total_attending,
			COUNT(CASE WHEN r.attending = FALSE THEN 1 END)      AS total_not_attending,
			COUNT(CASE WHEN r.plus_one_attending = TRUE THEN 1 END) AS total_plus_ones
		FROM guests g
		LEFT JOIN rsvps r ON r.guest_id = g.id
		WHERE g.wedding_id = ?`, weddingID).Scan(&stats).Error
	if err != nil {
		configslog.Log.Error("RSVPRepository.StatsByWeddingID: DB error", zap.Uint("weddingID", weddingID), zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

var _ IRSVPRepository = (*RSVPRepository)(nil)

// NewRSVPRepositoryTx builds the repository on an explicit handle.
func NewRSVPRepositoryTx(tx *gorm.DB) IRSVPRepository {
	return &RSVPRepository{db: tx}
}
