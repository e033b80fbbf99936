package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/notetest"
	"notekeeper/internal/domain/note"
)

const userID note.UserID = "42"

func newTestClient(t *testing.T) (*HTTPClient, *notetest.Server) {
	t.Helper()
	srv := notetest.New(t, slog.Default())
	return NewHTTPClientWithBase(srv.BaseURL(), 0, slog.Default()), srv
}

func TestHTTPClient_CreateThenList(t *testing.T) {
	c, srv := newTestClient(t)
	ctx := context.Background()

	created, err := c.Create(ctx, userID, "buy milk")
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "buy milk", created.Body)
	assert.Equal(t, userID, created.OwnerID)

	notes, err := c.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, created, notes[0])

	for _, r := range srv.Requests() {
		assert.Equal(t, "application/json", r.ContentType, "%s %s", r.Method, r.Path)
	}
}

func TestHTTPClient_ListByUser_Empty(t *testing.T) {
	c, _ := newTestClient(t)

	notes, err := c.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestHTTPClient_ListByUser_OnlyOwnNotes(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Seed(userID, "mine")
	srv.Seed("7", "theirs")

	notes, err := c.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	for _, n := range notes {
		assert.Equal(t, userID, n.OwnerID)
	}
}

func TestHTTPClient_ListByUser_Failure(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Seed(userID, "kept")
	srv.FailNext(notetest.OpList, http.StatusInternalServerError)

	notes, err := c.ListByUser(context.Background(), userID)
	assert.Nil(t, notes)
	assert.ErrorIs(t, err, note.ErrNetwork)

	var reqErr *note.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusInternalServerError, reqErr.Status)
	assert.Equal(t, http.MethodGet, reqErr.Method)
}

func TestHTTPClient_ListByUser_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL + "/api/v1/notes/"
	srv.Close()

	c := NewHTTPClientWithBase(base, 0, slog.Default())
	notes, err := c.ListByUser(context.Background(), userID)
	assert.Nil(t, notes)
	assert.ErrorIs(t, err, note.ErrNetwork)
	assert.NotErrorIs(t, err, note.ErrNotFound)
}

func TestHTTPClient_ListByUser_ForeignOwner(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 1, "body": "x", "ownerId": 9}]`))
	}))
	defer srv.Close()

	c := NewHTTPClientWithBase(srv.URL, 0, slog.Default())
	_, err := c.ListByUser(context.Background(), userID)
	assert.ErrorIs(t, err, note.ErrInvalidPayload)
	assert.ErrorIs(t, err, note.ErrNetwork)
}

func TestHTTPClient_RemoveThenGet(t *testing.T) {
	c, srv := newTestClient(t)
	ctx := context.Background()
	n := srv.Seed(userID, "to delete")

	got, err := c.GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, n, got)

	require.NoError(t, c.Remove(ctx, n.ID))

	_, err = c.GetByID(ctx, n.ID)
	assert.ErrorIs(t, err, note.ErrNotFound)
}

func TestHTTPClient_GetByID_Statuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
		notErr  error
	}{
		{name: "404 is not found", status: http.StatusNotFound, wantErr: note.ErrNotFound, notErr: note.ErrNetwork},
		{name: "500 is network", status: http.StatusInternalServerError, wantErr: note.ErrNetwork, notErr: note.ErrNotFound},
		{name: "403 is network", status: http.StatusForbidden, wantErr: note.ErrNetwork, notErr: note.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, srv := newTestClient(t)
			n := srv.Seed(userID, "x")
			srv.FailNext(notetest.OpFind, tt.status)

			_, err := c.GetByID(context.Background(), n.ID)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, tt.notErr)
		})
	}
}

func TestHTTPClient_UpdateThenGet(t *testing.T) {
	c, srv := newTestClient(t)
	ctx := context.Background()
	n := srv.Seed(userID, "buy milk")

	require.NoError(t, c.Update(ctx, n.ID, "buy oat milk"))

	got, err := c.GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk", got.Body)
	assert.Equal(t, n.ID, got.ID)
	assert.Equal(t, n.OwnerID, got.OwnerID)
}

func TestHTTPClient_Update_Failure(t *testing.T) {
	c, srv := newTestClient(t)
	n := srv.Seed(userID, "x")
	srv.FailNext(notetest.OpUpdate, http.StatusBadGateway)

	err := c.Update(context.Background(), n.ID, "y")
	assert.ErrorIs(t, err, note.ErrNetwork)
	assert.Equal(t, "x", srv.Notes(userID)[0].Body)
}

func TestHTTPClient_Create_EmptyBody(t *testing.T) {
	c, srv := newTestClient(t)
	srv.EmptyCreateBody = true

	created, err := c.Create(context.Background(), userID, "no echo")
	require.NoError(t, err)
	assert.True(t, created.ID.IsZero())
	assert.Equal(t, "no echo", created.Body)
	assert.Equal(t, userID, created.OwnerID)
	assert.Len(t, srv.Notes(userID), 1)
}

func TestHTTPClient_Create_AcceptsAny2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 5, "body": "created"}`))
	}))
	defer srv.Close()

	c := NewHTTPClientWithBase(srv.URL+"/api/v1/notes", 0, slog.Default())
	created, err := c.Create(context.Background(), userID, "created")
	require.NoError(t, err)
	assert.Equal(t, note.ID("5"), created.ID)
}

func TestHTTPClient_Create_Failure(t *testing.T) {
	c, srv := newTestClient(t)
	srv.FailNext(notetest.OpCreate, http.StatusBadRequest)

	_, err := c.Create(context.Background(), userID, "x")
	assert.ErrorIs(t, err, note.ErrNetwork)
	assert.Empty(t, srv.Notes(userID))
}

func TestHTTPClient_Search(t *testing.T) {
	c, srv := newTestClient(t)
	ctx := context.Background()
	srv.Seed(userID, "buy milk")
	srv.Seed(userID, "Buy bread")
	srv.Seed(userID, "milk the cow")

	all, err := c.ListByUser(ctx, userID)
	require.NoError(t, err)

	full, err := c.Search(ctx, userID, "")
	require.NoError(t, err)
	assert.Equal(t, all, full)

	found, err := c.Search(ctx, userID, "milk")
	require.NoError(t, err)
	assert.Equal(t, note.Filter(all, "milk"), found)
	assert.Len(t, found, 2)

	srv.FailNext(notetest.OpList, http.StatusServiceUnavailable)
	_, err = c.Search(ctx, userID, "milk")
	assert.ErrorIs(t, err, note.ErrNetwork)
}

func TestHTTPClient_NoTimeoutByDefault(t *testing.T) {
	c := NewHTTPClientWithBase("http://localhost/api/v1/notes/", 0, slog.Default())
	assert.Zero(t, c.client.Timeout)

	c = NewHTTPClientWithBase("http://localhost/api/v1/notes/", 3*time.Second, slog.Default())
	assert.Equal(t, 3*time.Second, c.client.Timeout)
}

func TestHTTPClient_ContextCanceled(t *testing.T) {
	c, _ := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListByUser(ctx, userID)
	assert.ErrorIs(t, err, note.ErrNetwork)
	assert.ErrorIs(t, err, context.Canceled)
}
