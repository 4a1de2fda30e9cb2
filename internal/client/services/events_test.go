package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/unievents/internal/client/client"
	"github.com/dmitrijs2005/unievents/internal/client/models"
	"github.com/dmitrijs2005/unievents/internal/client/repositories/credentials"
)

func newEventService(t *testing.T) (*apiStub, EventService) {
	t.Helper()
	stub, srv := newAPIStub(t)

	store := credentials.NewMemoryRepository()
	require.NoError(t, store.Set(context.Background(), "token", "X"))

	return stub, NewEventService(newAPIClient(t, srv.URL, store))
}

func TestEvents_List(t *testing.T) {
	stub, svc := newEventService(t)
	stub.on("GET /api/events", 200, `[
		{"id":1,"title":"Welcome week","date":"2030-01-10T10:00:00Z","location":"Hall","type":"social"},
		{"id":2,"title":"Thesis talks","date":"2030-01-11T10:00:00Z","location":"Room 4","type":"academico"}
	]`)

	events, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Welcome week", events[0].Title)
	assert.Equal(t, models.EventAcademic, events[1].Type)
	assert.Equal(t, "Bearer X", stub.lastHit(t).Auth)
}

func TestEvents_CRUDPathsAndMethods(t *testing.T) {
	stub, svc := newEventService(t)
	stub.on("GET /api/events/7", 200, `{"id":7,"title":"Open day"}`)
	stub.on("POST /api/events", 201, `{"id":8,"title":"New"}`)
	stub.on("PUT /api/events/8", 200, `{"id":8,"title":"Renamed"}`)
	stub.on("DELETE /api/events/8", 200, `{"message":"deleted"}`)

	ctx := context.Background()
	in := models.EventInput{
		Title:    "New",
		Date:     time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC),
		Location: "Hall",
		Type:     models.EventSocial,
	}

	e, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Open day", e.Title)
	assert.Equal(t, http.MethodGet, stub.lastHit(t).Method)

	e, err = svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(8), e.ID)
	h := stub.lastHit(t)
	assert.Equal(t, http.MethodPost, h.Method)
	assert.JSONEq(t, `{"title":"New","description":"","date":"2030-05-01T09:00:00Z","location":"Hall","type":"social"}`, h.Body)

	in.Title = "Renamed"
	e, err = svc.Update(ctx, 8, in)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", e.Title)
	assert.Equal(t, "/api/events/8", stub.lastHit(t).Path)

	require.NoError(t, svc.Delete(ctx, 8))
	h = stub.lastHit(t)
	assert.Equal(t, http.MethodDelete, h.Method)
	assert.Equal(t, "Bearer X", h.Auth)
}

func TestEvents_ErrorMessages(t *testing.T) {
	stub, svc := newEventService(t)
	stub.on("GET /api/events", 500, ``)
	stub.on("DELETE /api/events/3", 403, `{"message":"only the creator can delete this event"}`)

	_, err := svc.List(context.Background())
	assert.Equal(t, "could not load events", client.Message(err))

	err = svc.Delete(context.Background(), 3)
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, "only the creator can delete this event", client.Message(err))

	_, err = svc.Get(context.Background(), 404)
	require.ErrorIs(t, err, client.ErrNotFound)
	assert.Equal(t, "no route", client.Message(err))
}
