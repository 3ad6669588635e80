package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vows.link/models"
	"vows.link/repositories"
	"vows.link/services"
)

func TestCreateWeddingDefaults(t *testing.T) {
	svc := services.NewWeddingServiceTx(testDB(t))

	w := createWedding(t, svc, "Summer Party")

	assert.Equal(t, models.TemplateClassic, w.TemplateID)
	assert.False(t, w.IsPublished)
	require.NotNil(t, w.WebpageSlug)
	assert.True(t, strings.HasPrefix(*w.WebpageSlug, "summer-party-"))
	assert.Nil(t, w.Description)
}

func TestCreateWeddingRequiredFields(t *testing.T) {
	svc := services.NewWeddingServiceTx(testDB(t))

	_, err := svc.CreateWedding(context.Background(), services.CreateWeddingInput{
		Title: "No venue", BrideName: "A", GroomName: "B",
		WeddingDate: time.Now(),
	})
	assert.ErrorIs(t, err, services.ErrWeddingInvalidInput)
}

func TestUpdateWeddingPartialPatch(t *testing.T) {
	svc := services.NewWeddingServiceTx(testDB(t))
	ctx := context.Background()

	w := createWedding(t, svc, "Original Title")

	newTitle := "New"
	updated, err := svc.UpdateWedding(ctx, w.ID, services.UpdateWeddingInput{Title: &newTitle})
	require.NoError(t, err)

	// Only the supplied field changes; the venue survives untouched.
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "Hall A", updated.Venue)
	assert.Equal(t, "Ada", updated.BrideName)

	// An explicitly provided empty string is a real value, not absence.
	empty := ""
	updated, err = svc.UpdateWedding(ctx, w.ID, services.UpdateWeddingInput{Description: &empty})
	require.NoError(t, err)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "", *updated.Description)
	assert.Equal(t, "New", updated.Title)
}

func TestUpdateWeddingUnknownTemplate(t *testing.T) {
	svc := services.NewWeddingServiceTx(testDB(t))

	w := createWedding(t, svc, "Template Check")
	bogus := models.WeddingTemplate("brutalist")
	_, err := svc.UpdateWedding(context.Background(), w.ID, services.UpdateWeddingInput{TemplateID: &bogus})
	assert.ErrorIs(t, err, services.ErrWeddingInvalidInput)
}

func TestUpdateWeddingNotFound(t *testing.T) {
	svc := services.NewWeddingServiceTx(testDB(t))

	title := "x"
	_, err := svc.UpdateWedding(context.Background(), 999, services.UpdateWeddingInput{Title: &title})
	assert.ErrorIs(t, err, services.ErrWeddingNotFound)
}

func TestPublishWedding(t *testing.T) {
	svc := services.NewWeddingServiceTx(testDB(t))
	ctx := context.Background()

	w := createWedding(t, svc, "Go Public")

	published, url, err := svc.PublishWedding(ctx, w.ID)
	require.NoError(t, err)
	assert.True(t, published.IsPublished)
	assert.Equal(t, "http://localhost:3000/invitation/"+*w.WebpageSlug, url)

	_, _, err = svc.PublishWedding(ctx, 999)
	assert.ErrorIs(t, err, services.ErrWeddingNotFound)
}

func TestPublishWeddingWithoutSlug(t *testing.T) {
	db := testDB(t)
	svc := services.NewWeddingServiceTx(db)
	ctx := context.Background()

	// Rows imported from elsewhere may predate slug assignment; only the
	// repository can write one without a slug.
	repo := repositories.NewWeddingRepositoryTx(db)
	w := &models.Wedding{
		Title:       "Imported",
		BrideName:   "A",
		GroomName:   "B",
		WeddingDate: time.Date(2026, 6, 20, 15, 0, 0, 0, time.UTC),
		Venue:       "V",
		TemplateID:  models.TemplateClassic,
	}
	require.NoError(t, repo.Create(ctx, w))

	_, _, err := svc.PublishWedding(ctx, w.ID)
	assert.ErrorIs(t, err, services.ErrWeddingNotPublishable)

	stored, err := svc.GetWeddingByID(ctx, w.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsPublished)
}

func TestGetWeddingBySlugGatedOnPublication(t *testing.T) {
	svc := services.NewWeddingServiceTx(testDB(t))
	ctx := context.Background()

	w := createWedding(t, svc, "Gated")

	// Correct slug, unpublished: indistinguishable from a missing page.
	_, err := svc.GetWeddingBySlug(ctx, *w.WebpageSlug)
	assert.ErrorIs(t, err, services.ErrWeddingNotFound)

	_, _, err = svc.PublishWedding(ctx, w.ID)
	require.NoError(t, err)

	page, err := svc.GetWeddingBySlug(ctx, *w.WebpageSlug)
	require.NoError(t, err)
	assert.Equal(t, w.ID, page.ID)
	assert.NotNil(t, page.Photos)
}

func TestGetWeddingWithPhotos(t *testing.T) {
	db := testDB(t)
	svc := services.NewWeddingServiceTx(db)
	photoSvc := services.NewWeddingPhotoServiceTx(db)
	ctx := context.Background()

	w := createWedding(t, svc, "With Photos")
	for _, order := range []int{2, 0, 1} {
		_, err := photoSvc.AddPhoto(ctx, services.AddPhotoInput{
			WeddingID:    w.ID,
			PhotoURL:     "https://images.example.com/p.jpg",
			DisplayOrder: order,
		})
		require.NoError(t, err)
	}

	page, err := svc.GetWeddingWithPhotos(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, page.Photos, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{
		page.Photos[0].DisplayOrder, page.Photos[1].DisplayOrder, page.Photos[2].DisplayOrder,
	})
}

func TestListWeddingsOrderedByDate(t *testing.T) {
	svc := services.NewWeddingServiceTx(testDB(t))
	ctx := context.Background()

	late, err := svc.CreateWedding(ctx, services.CreateWeddingInput{
		Title: "Late", BrideName: "A", GroomName: "B",
		WeddingDate: time.Date(2027, 5, 1, 0, 0, 0, 0, time.UTC), Venue: "V",
	})
	require.NoError(t, err)
	early, err := svc.CreateWedding(ctx, services.CreateWeddingInput{
		Title: "Early", BrideName: "A", GroomName: "B",
		WeddingDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), Venue: "V",
	})
	require.NoError(t, err)

	all, err := svc.ListWeddings(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, early.ID, all[0].ID)
	assert.Equal(t, late.ID, all[1].ID)
}
