package public_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"vows.link/configs"
	"vows.link/database"
	"vows.link/models"
	"vows.link/routes"
	"vows.link/services"
)

// newTestApp builds the app with the real view engine so the rendered
// pages are exercised, not just the route wiring.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrationsInOrder(db))
	configs.SetDB(db)

	app := fiber.New(fiber.Config{
		Views: html.New("../../views", ".html"),
	})
	routes.SetupRoutes(app)
	return app
}

func timeAt(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 16, 0, 0, 0, time.UTC)
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

func publishedWedding(t *testing.T, db *gorm.DB, template models.WeddingTemplate) (*models.Wedding, string) {
	t.Helper()
	svc := services.NewWeddingServiceTx(db)
	ctx := context.Background()

	w, err := svc.CreateWedding(ctx, services.CreateWeddingInput{
		Title:       "Garden Party",
		BrideName:   "Mira",
		GroomName:   "Theo",
		WeddingDate: timeAt(2026, 9, 12),
		Venue:       "Rose Garden",
	})
	require.NoError(t, err)

	if template != models.TemplateClassic {
		_, err = svc.UpdateWedding(ctx, w.ID, services.UpdateWeddingInput{TemplateID: &template})
		require.NoError(t, err)
	}

	w, _, err = svc.PublishWedding(ctx, w.ID)
	require.NoError(t, err)
	return w, *w.WebpageSlug
}

func TestShowInvitationRendersPublishedWedding(t *testing.T) {
	app := newTestApp(t)
	_, slug := publishedWedding(t, configs.GetDB(), models.TemplateClassic)

	resp, page := get(t, app, "/invitation/"+slug)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, page, "Mira")
	assert.Contains(t, page, "Theo")
	assert.Contains(t, page, "Rose Garden")
}

func TestShowInvitationUsesSelectedTemplate(t *testing.T) {
	app := newTestApp(t)
	_, slug := publishedWedding(t, configs.GetDB(), models.TemplateRustic)

	resp, page := get(t, app, "/invitation/"+slug)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	// Palatino only appears in the rustic layout.
	assert.Contains(t, page, "Palatino")
}

func TestShowInvitationUnknownSlug(t *testing.T) {
	app := newTestApp(t)

	resp, page := get(t, app, "/invitation/no-such-page")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, page, "Invitation not found")
}

func TestShowInvitationUnpublishedWedding(t *testing.T) {
	app := newTestApp(t)
	svc := services.NewWeddingServiceTx(configs.GetDB())

	w, err := svc.CreateWedding(context.Background(), services.CreateWeddingInput{
		Title:       "Still Secret",
		BrideName:   "A",
		GroomName:   "B",
		WeddingDate: timeAt(2026, 9, 12),
		Venue:       "V",
	})
	require.NoError(t, err)

	resp, _ := get(t, app, "/invitation/"+*w.WebpageSlug)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
