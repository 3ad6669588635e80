package models

import "time"

// WeddingPhoto is one gallery entry. The gallery is ordered by
// DisplayOrder ascending, ties broken by CreatedAt ascending.
type WeddingPhoto struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	WeddingID    uint      `gorm:"index;not null" json:"weddingId"`
	PhotoURL     string    `gorm:"type:varchar(500);not null" json:"photoUrl"`
	Caption      *string   `gorm:"type:text" json:"caption,omitempty"`
	DisplayOrder int       `gorm:"not null;default:0" json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`

	Wedding *Wedding `gorm:"foreignKey:WeddingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
