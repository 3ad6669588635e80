package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"vows.link/configs"
	"vows.link/database"
	"vows.link/routes"
)

// newTestApp wires the full router against a fresh in-memory database.
// The connection must be swapped in before the routes are registered
// because the handlers capture it at construction time.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrationsInOrder(db))
	configs.SetDB(db)

	app := fiber.New()
	routes.SetupRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func createWeddingHTTP(t *testing.T, app *fiber.App, title string) map[string]any {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/weddings", map[string]any{
		"title":       title,
		"brideName":   "Ada",
		"groomName":   "Alan",
		"weddingDate": "2026-06-20T15:00:00Z",
		"venue":       "Hall A",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return body
}

func addGuestHTTP(t *testing.T, app *fiber.App, weddingID float64, name, email string) map[string]any {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/guests", map[string]any{
		"weddingId": weddingID,
		"name":      name,
		"email":     email,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return body
}
