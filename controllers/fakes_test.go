package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-api/database"
	"github.com/yeremiapane/restaurant-api/models"
)

type fakeMenuStore struct {
	items   []models.MenuItem
	err     error
	created *models.MenuItem
}

func (f *fakeMenuStore) List(ctx context.Context) ([]models.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeMenuStore) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if id == strconv.FormatUint(uint64(f.items[i].ID), 10) {
			return &f.items[i], nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeMenuStore) Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	item.ID = uint(len(f.items) + 1)
	f.items = append(f.items, *item)
	f.created = item
	out := *item
	return &out, nil
}

type fakeReservationStore struct {
	reservations []models.Reservation
	err          error
	created      *models.Reservation
}

func (f *fakeReservationStore) List(ctx context.Context) ([]models.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reservations, nil
}

func (f *fakeReservationStore) Create(ctx context.Context, r *models.Reservation) (*models.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	r.ID = uint(len(f.reservations) + 1)
	f.reservations = append(f.reservations, *r)
	f.created = r
	out := *r
	return &out, nil
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return serve(t, r, req)
}

func doForm(t *testing.T, r http.Handler, path, form string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(form))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return serve(t, r, req)
}

func serve(t *testing.T, r http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return w, resp
}

func init() {
	gin.SetMode(gin.TestMode)
}
