package models

import (
	"time"

	"gorm.io/gorm"
)

// Guest is one invitee, owned by exactly one Wedding. Guests are never
// edited or removed once added. Email is deliberately not unique: the
// same address may appear on a list more than once.
type Guest struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	WeddingID      uint      `gorm:"index;not null" json:"weddingId"`
	Name           string    `gorm:"type:varchar(150);not null" json:"name"`
	Email          string    `gorm:"type:varchar(150);not null" json:"email"`
	Phone          *string   `gorm:"type:varchar(30)" json:"phone,omitempty"`
	PlusOneAllowed bool      `gorm:"not null;default:false" json:"plusOneAllowed"`
	InvitedAt      time.Time `gorm:"not null" json:"invitedAt"`
	CreatedAt      time.Time `json:"createdAt"`

	Wedding *Wedding `gorm:"foreignKey:WeddingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	RSVP    *RSVP    `gorm:"foreignKey:GuestID" json:"rsvp,omitempty"`
}

// BeforeCreate stamps InvitedAt when the caller did not provide one.
func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.InvitedAt.IsZero() {
		g.InvitedAt = time.Now().UTC()
	}
	return nil
}

// GuestWithWedding pairs a guest with its owning wedding, used by the
// direct guest lookup.
type GuestWithWedding struct {
	Guest
	Wedding Wedding `json:"wedding"`
}
