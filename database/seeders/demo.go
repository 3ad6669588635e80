package seeders

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"vows.link/configs/configslog"
	"vows.link/models"
	"vows.link/pkg/slug"
)

const demoTitle = "Demo Wedding"

// SeedDemoWedding creates a sample wedding with a small guest list and
// gallery so a fresh install has something to look at. Idempotent: the
// seeder is skipped when the demo wedding already exists.
func SeedDemoWedding(db *gorm.DB) error {
	var existing models.Wedding
	result := db.Where("title = ?", demoTitle).First(&existing)
	if result.Error == nil {
		configslog.SLog.Debugf("Demo wedding already exists, skipping seeder.")
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Could not check for demo wedding", zap.Error(result.Error))
		return result.Error
	}

	configslog.SLog.Info("Creating demo wedding...")

	description := "A small ceremony followed by dinner and dancing."
	placeDetails := "Garden entrance, parking behind the main hall."
	pageSlug := slug.Make(demoTitle)
	wedding := models.Wedding{
		Title:        demoTitle,
		BrideName:    "Alice",
		GroomName:    "Ben",
		WeddingDate:  time.Now().UTC().AddDate(0, 3, 0),
		Venue:        "Rosewood Hall",
		Description:  &description,
		PlaceDetails: &placeDetails,
		TemplateID:   models.TemplateClassic,
		WebpageSlug:  &pageSlug,
	}
	if err := db.Create(&wedding).Error; err != nil {
		configslog.Log.Error("Demo wedding could not be created", zap.Error(err))
		return err
	}

	guests := []models.Guest{
		{WeddingID: wedding.ID, Name: "Carol Jones", Email: "carol@example.com", PlusOneAllowed: true},
		{WeddingID: wedding.ID, Name: "Dave Miller", Email: "dave@example.com"},
	}
	if err := db.Create(&guests).Error; err != nil {
		configslog.Log.Error("Demo guests could not be created", zap.Error(err))
		return err
	}

	caption := "The venue"
	photo := models.WeddingPhoto{
		WeddingID: wedding.ID,
		PhotoURL:  "https://images.example.com/rosewood-hall.jpg",
		Caption:   &caption,
	}
	if err := db.Create(&photo).Error; err != nil {
		configslog.Log.Error("Demo photo could not be created", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Demo wedding created (ID: %d, slug: %s).", wedding.ID, pageSlug)
	return nil
}
