package models

import "time"

// WeddingTemplate identifies one of the fixed public page layouts.
type WeddingTemplate string

const (
	TemplateClassic WeddingTemplate = "classic"
	TemplateModern  WeddingTemplate = "modern"
	TemplateElegant WeddingTemplate = "elegant"
	TemplateRustic  WeddingTemplate = "rustic"
)

// Valid reports whether t names a known template.
func (t WeddingTemplate) Valid() bool {
	switch t {
	case TemplateClassic, TemplateModern, TemplateElegant, TemplateRustic:
		return true
	}
	return false
}

// Resolve maps a stored template identifier onto a known template.
// Anything unrecognized falls back to classic.
func (t WeddingTemplate) Resolve() WeddingTemplate {
	if t.Valid() {
		return t
	}
	return TemplateClassic
}

// Wedding is one invitation event. The public page is reachable through
// WebpageSlug only while IsPublished is true.
type Wedding struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Title        string          `gorm:"type:varchar(255);not null" json:"title"`
	BrideName    string          `gorm:"type:varchar(150);not null" json:"brideName"`
	GroomName    string          `gorm:"type:varchar(150);not null" json:"groomName"`
	WeddingDate  time.Time       `gorm:"index;not null" json:"weddingDate"`
	Venue        string          `gorm:"type:varchar(255);not null" json:"venue"`
	Description  *string         `gorm:"type:text" json:"description,omitempty"`
	HeroPhotoURL *string         `gorm:"type:varchar(500)" json:"heroPhotoUrl,omitempty"`
	PlaceDetails *string         `gorm:"type:text" json:"placeDetails,omitempty"`
	TemplateID   WeddingTemplate `gorm:"type:varchar(20);not null;default:'classic'" json:"templateId"`
	IsPublished  bool            `gorm:"not null;default:false;index" json:"isPublished"`
	WebpageSlug  *string         `gorm:"type:varchar(255);uniqueIndex" json:"webpageSlug,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// WeddingWithPhotos is the composite returned by the with-photos and
// public page reads. Photos carry the gallery ordering.
type WeddingWithPhotos struct {
	Wedding
	Photos []WeddingPhoto `json:"photos"`
}
