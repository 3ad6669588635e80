package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"vows.link/database"
	"vows.link/models"
	"vows.link/services"
)

// testDB opens a fresh in-memory database with the full schema applied.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrationsInOrder(db))
	return db
}

func createWedding(t *testing.T, svc services.IWeddingService, title string) *models.Wedding {
	t.Helper()
	w, err := svc.CreateWedding(context.Background(), services.CreateWeddingInput{
		Title:       title,
		BrideName:   "Ada",
		GroomName:   "Alan",
		WeddingDate: time.Date(2026, 6, 20, 15, 0, 0, 0, time.UTC),
		Venue:       "Hall A",
	})
	require.NoError(t, err)
	return w
}

func addGuest(t *testing.T, svc services.IGuestService, weddingID uint, name, email string) *models.Guest {
	t.Helper()
	g, err := svc.AddGuest(context.Background(), services.AddGuestInput{
		WeddingID: weddingID,
		Name:      name,
		Email:     email,
	})
	require.NoError(t, err)
	return g
}
