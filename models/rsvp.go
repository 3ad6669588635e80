package models

import "time"

// RSVP is the single response a guest may hold. The unique index on
// GuestID backs the insert-or-update submission path: resubmitting
// overwrites every field in place and refreshes RespondedAt, so the row
// always reflects the latest answer only.
type RSVP struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	GuestID             uint      `gorm:"uniqueIndex;not null" json:"guestId"`
	Attending           bool      `gorm:"not null" json:"attending"`
	PlusOneAttending    bool      `gorm:"not null;default:false" json:"plusOneAttending"`
	DietaryRestrictions *string   `gorm:"type:text" json:"dietaryRestrictions,omitempty"`
	Message             *string   `gorm:"type:text" json:"message,omitempty"`
	RespondedAt         time.Time `gorm:"not null" json:"respondedAt"`
}

func (RSVP) TableName() string { return "rsvps" }

// RSVPStats is the one-pass aggregation over a wedding's guest list.
// TotalPlusOnes counts plus_one_attending rows regardless of whether the
// owning guest was allowed a plus-one; pre-existing inconsistencies are
// reported, not filtered.
type RSVPStats struct {
	TotalGuests       int64   `json:"totalGuests"`
	TotalResponded    int64   `json:"totalResponded"`
	TotalAttending    int64   `json:"totalAttending"`
	TotalNotAttending int64   `json:"totalNotAttending"`
	TotalPlusOnes     int64   `json:"totalPlusOnes"`
	ResponseRate      float64 `json:"responseRate"`
}
