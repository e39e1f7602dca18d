package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"userapi-go/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	user  *User
	err   error
	calls []NewUser
}

func (s *stubStore) Create(_ context.Context, u NewUser) (*User, error) {
	s.calls = append(s.calls, u)
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

type responseBody struct {
	Message string            `json:"message"`
	User    json.RawMessage   `json:"user"`
	Errors  map[string]string `json:"errors"`
	Error   *string           `json:"error"`
}

func doCreate(t *testing.T, store Store, body string) (*httptest.ResponseRecorder, responseBody) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	NewHandler(store).HandleCreate(rec, req)

	var resp responseBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	return rec, resp
}

func TestHandleCreate_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"empty object", `{}`},
		{"null", `null`},
		{"missing name", `{"email":"a@example.com","password":"secret"}`},
		{"missing email", `{"name":"Alice","password":"secret"}`},
		{"missing password", `{"name":"Alice","email":"a@example.com"}`},
		{"empty name", `{"name":"","email":"a@example.com","password":"secret"}`},
		{"empty email", `{"name":"Alice","email":"","password":"secret"}`},
		{"empty password", `{"name":"Alice","email":"a@example.com","password":""}`},
		{"null password", `{"name":"Alice","email":"a@example.com","password":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubStore{}

			rec, resp := doCreate(t, store, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Missing required fields: name, email, or password", resp.Message)
			assert.Empty(t, store.calls, "store must not be called")
		})
	}
}

func TestHandleCreate_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"name":`},
		{"wrong type", `{"name":42,"email":"a@example.com","password":"secret"}`},
		{"array", `[]`},
		{"trailing garbage", `{"name":"Alice","email":"a@example.com","password":"secret"} garbage`},
		{"two objects", `{"name":"Alice","email":"a@example.com","password":"secret"}{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubStore{}

			rec, resp := doCreate(t, store, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Invalid request body", resp.Message)
			assert.Empty(t, store.calls)
		})
	}
}

func TestHandleCreate_Success(t *testing.T) {
	created := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	stored := &User{
		ID:        uuid.New(),
		Name:      "Alice",
		Email:     "a@example.com",
		Password:  "secret",
		CreatedAt: created,
		UpdatedAt: created,
	}
	store := &stubStore{user: stored}

	rec, resp := doCreate(t, store, `{"name":"Alice","email":"a@example.com","password":"secret"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "User created successfully", resp.Message)

	assert.JSONEq(t, `{
		"id": "`+stored.ID.String()+`",
		"name": "Alice",
		"email": "a@example.com",
		"password": "secret",
		"created_at": "2024-03-01T12:00:00Z",
		"updated_at": "2024-03-01T12:00:00Z"
	}`, string(resp.User))

	require.Len(t, store.calls, 1)
	assert.Equal(t, NewUser{Name: "Alice", Email: "a@example.com", Password: "secret"}, store.calls[0])
}

func TestHandleCreate_TrailingWhitespace(t *testing.T) {
	store := &stubStore{user: &User{ID: uuid.New(), Name: "Alice"}}

	rec, _ := doCreate(t, store, "{\"name\":\"Alice\",\"email\":\"a@example.com\",\"password\":\"secret\"}\n\t ")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, store.calls, 1)
}

func TestHandleCreate_WhitespaceValuesArePresent(t *testing.T) {
	tests := []struct {
		name string
		body string
		want NewUser
	}{
		{"blank name", `{"name":" ","email":"a@example.com","password":"secret"}`, NewUser{Name: " ", Email: "a@example.com", Password: "secret"}},
		{"blank email", `{"name":"Alice","email":"\t","password":"secret"}`, NewUser{Name: "Alice", Email: "\t", Password: "secret"}},
		{"blank password", `{"name":"Alice","email":"a@example.com","password":"  "}`, NewUser{Name: "Alice", Email: "a@example.com", Password: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubStore{user: &User{ID: uuid.New(), Name: tt.want.Name, Email: tt.want.Email}}

			rec, resp := doCreate(t, store, tt.body)

			assert.Equal(t, http.StatusCreated, rec.Code)
			assert.Equal(t, "User created successfully", resp.Message)
			require.Len(t, store.calls, 1, "blank values are passed through to the store")
			assert.Equal(t, tt.want, store.calls[0])
		})
	}
}

func TestHandleCreate_ValidationFailure(t *testing.T) {
	store := &stubStore{err: &ValidationError{Errors: map[string]string{"email": "invalid"}}}

	rec, resp := doCreate(t, store, `{"name":"Alice","email":"nope","password":"secret"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation error", resp.Message)
	assert.Equal(t, "invalid", resp.Errors["email"])
	assert.Nil(t, resp.Error)
}

func TestHandleCreate_WrappedValidationFailure(t *testing.T) {
	verr := &ValidationError{Errors: map[string]string{"name": "Invalid value for name"}}
	store := &stubStore{err: errors.Join(errors.New("repository create user"), verr)}

	rec, resp := doCreate(t, store, `{"name":"Alice","email":"a@example.com","password":"secret"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]string{"name": "Invalid value for name"}, resp.Errors)
}

func TestHandleCreate_StorageFailure(t *testing.T) {
	store := &stubStore{err: errors.New("connection lost")}

	rec, resp := doCreate(t, store, `{"name":"Alice","email":"a@example.com","password":"secret"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", resp.Message)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "connection lost", *resp.Error)
	assert.Len(t, store.calls, 1, "no retries")
}

func TestHandleCreate_StorageFailureKeepsRepositoryPrefix(t *testing.T) {
	repo := database.NewRepository(nil)
	store := &stubStore{err: repo.Error("create user", errors.New("connection refused"))}

	rec, resp := doCreate(t, store, `{"name":"Alice","email":"a@example.com","password":"secret"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "repository create user: connection refused", *resp.Error)
}

func TestHandleCreate_NotIdempotent(t *testing.T) {
	store := &stubStore{user: &User{ID: uuid.New(), Name: "Alice", Email: "a@example.com"}}
	body := `{"name":"Alice","email":"a@example.com","password":"secret"}`

	first, _ := doCreate(t, store, body)
	second, _ := doCreate(t, store, body)

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Len(t, store.calls, 2)
}
