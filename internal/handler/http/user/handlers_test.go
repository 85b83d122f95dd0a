package user_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/handler/http/user"
	userUC "blog-backend/internal/usecase/user"
)

type stubService struct {
	user *entity.User
	err  error

	createInput userUC.CreateInput
}

func (s *stubService) Get(context.Context, int64) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubService) Create(_ context.Context, in userUC.CreateInput) (*entity.User, error) {
	s.createInput = in
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func newMux(svc user.Service) *http.ServeMux {
	mux := http.NewServeMux()
	user.Register(mux, svc)
	return mux
}

func TestGetHandler_NeverExposesPasswordHash(t *testing.T) {
	svc := &stubService{user: &entity.User{
		ID:           1,
		Name:         "alice",
		PasswordHash: "$2a$10$secret",
		CreatedAt:    time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}}
	mux := newMux(svc)

	req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")

	var got user.DTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "alice", got.Name)
}

func TestGetHandler_NotFound(t *testing.T) {
	mux := newMux(&stubService{err: userUC.ErrUserNotFound})

	req := httptest.NewRequest(http.MethodGet, "/users/99", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateHandler(t *testing.T) {
	svc := &stubService{user: &entity.User{ID: 7, Name: "alice"}}
	mux := newMux(svc)

	body := `{"name":"alice","password":"correct horse battery"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "alice", svc.createInput.Name)

	var got user.DTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.ID)
}

func TestCreateHandler_Validation(t *testing.T) {
	mux := newMux(&stubService{err: &entity.ValidationError{Field: "password", Message: "must be at least 8 characters"}})

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"alice","password":"short"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateHandler_RepositoryFailure(t *testing.T) {
	mux := newMux(&stubService{err: errors.New("boom")})

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"alice","password":"longenough"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
