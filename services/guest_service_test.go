package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vows.link/services"
)

func TestAddGuestValidation(t *testing.T) {
	db := testDB(t)
	weddingSvc := services.NewWeddingServiceTx(db)
	svc := services.NewGuestServiceTx(db)
	ctx := context.Background()

	w := createWedding(t, weddingSvc, "Validation")

	_, err := svc.AddGuest(ctx, services.AddGuestInput{WeddingID: w.ID, Email: "no-name@example.com"})
	assert.ErrorIs(t, err, services.ErrGuestInvalidInput)

	_, err = svc.AddGuest(ctx, services.AddGuestInput{Name: "Orphan", Email: "o@example.com"})
	assert.ErrorIs(t, err, services.ErrGuestInvalidInput)
}

func TestAddGuestDuplicateEmail(t *testing.T) {
	db := testDB(t)
	weddingSvc := services.NewWeddingServiceTx(db)
	svc := services.NewGuestServiceTx(db)

	w := createWedding(t, weddingSvc, "Duplicates")

	first := addGuest(t, svc, w.ID, "Kim One", "kim@example.com")
	second := addGuest(t, svc, w.ID, "Kim Two", "kim@example.com")

	// Same address twice yields two distinct guests.
	assert.NotEqual(t, first.ID, second.ID)

	guests, err := svc.ListGuests(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Len(t, guests, 2)
}

func TestListGuestsIncludesRSVP(t *testing.T) {
	db := testDB(t)
	weddingSvc := services.NewWeddingServiceTx(db)
	svc := services.NewGuestServiceTx(db)
	rsvpSvc := services.NewRSVPServiceTx(db)
	ctx := context.Background()

	w := createWedding(t, weddingSvc, "Listing")
	bella := addGuest(t, svc, w.ID, "Bella", "bella@example.com")
	addGuest(t, svc, w.ID, "Arthur", "arthur@example.com")

	_, err := rsvpSvc.SubmitRSVP(ctx, services.SubmitRSVPInput{GuestID: bella.ID, Attending: true})
	require.NoError(t, err)

	guests, err := svc.ListGuests(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, guests, 2)

	// Alphabetical by name, responses attached where they exist.
	assert.Equal(t, "Arthur", guests[0].Name)
	assert.Nil(t, guests[0].RSVP)
	assert.Equal(t, "Bella", guests[1].Name)
	require.NotNil(t, guests[1].RSVP)
	assert.True(t, guests[1].RSVP.Attending)
}

func TestListGuestsEmptyWedding(t *testing.T) {
	db := testDB(t)
	weddingSvc := services.NewWeddingServiceTx(db)
	svc := services.NewGuestServiceTx(db)

	w := createWedding(t, weddingSvc, "Nobody Yet")

	guests, err := svc.ListGuests(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Empty(t, guests)
}

func TestGetGuestByID(t *testing.T) {
	db := testDB(t)
	weddingSvc := services.NewWeddingServiceTx(db)
	svc := services.NewGuestServiceTx(db)
	ctx := context.Background()

	w := createWedding(t, weddingSvc, "Lookup")
	g := addGuest(t, svc, w.ID, "Casey", "casey@example.com")

	found, err := svc.GetGuestByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Casey", found.Name)
	assert.Equal(t, w.ID, found.Wedding.ID)
	assert.Equal(t, "Lookup", found.Wedding.Title)

	_, err = svc.GetGuestByID(ctx, 999)
	assert.ErrorIs(t, err, services.ErrGuestNotFound)
}
