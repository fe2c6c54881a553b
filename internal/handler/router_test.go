package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"usersvc/internal/app/account"
	"usersvc/internal/app/user"
	"usersvc/internal/configs"
	"usersvc/internal/pkg/auth/jwt"
	"usersvc/internal/pkg/auth/password"
	"usersvc/internal/pkg/avatar"
)

type testServer struct {
	handler http.Handler
	store   *user.MemoryStore
	now     time.Time
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		store: user.NewMemoryStore(),
		now:   time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	hasher, err := password.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	issuer, err := jwt.NewIssuer("test-secret", jwt.WithClock(func() time.Time { return ts.now }))
	require.NoError(t, err)

	ts.handler = Router(&AppDeps{
		Config:   &configs.AppConfig{Environment: "development"},
		Accounts: account.NewService(ts.store, hasher, issuer, avatar.Default()),
	})
	return ts
}

func (ts *testServer) do(t *testing.T, method, target string, body any, header http.Header) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	r := httptest.NewRequest(method, target, reader)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			r.Header.Add(k, v)
		}
	}

	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, r)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded), "body: %s", w.Body.String())
	}
	return w, decoded
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": []string{token}}
}

var exampleRegistration = map[string]string{
	"name": "A", "email": "a@x.com", "password": "secret1", "password2": "secret1",
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	w, body := ts.do(t, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestUsersTest(t *testing.T) {
	ts := newTestServer(t)

	w, body := ts.do(t, http.MethodGet, "/api/users/test", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"msg": "Users Works"}, body)
}

func TestRegisterLoginCurrent(t *testing.T) {
	ts := newTestServer(t)

	w, registered := ts.do(t, http.MethodPost, "/api/users/register", exampleRegistration, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "A", registered["name"])
	assert.Equal(t, "a@x.com", registered["email"])
	assert.Equal(t, avatar.Default().URL("a@x.com"), registered["avatar"])
	assert.NotEmpty(t, registered["id"])
	assert.NotEmpty(t, registered["date"])
	assert.NotContains(t, w.Body.String(), "secret1")
	assert.NotContains(t, w.Body.String(), "password")

	stored, err := ts.store.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)

	w, login := ts.do(t, http.MethodPost, "/api/users/login",
		map[string]string{"email": "a@x.com", "password": "secret1"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, login["success"])

	token, _ := login["token"].(string)
	require.True(t, strings.HasPrefix(token, "Bearer "), token)

	w, current := ts.do(t, http.MethodGet, "/api/users/current", nil, bearer(token))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, map[string]any{
		"id":    registered["id"],
		"name":  "A",
		"email": "a@x.com",
	}, current)
}

func TestRegister_Errors(t *testing.T) {
	ts := newTestServer(t)

	w, body := ts.do(t, http.MethodPost, "/api/users/register", map[string]string{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name field is required", body["name"])
	assert.Equal(t, "Email field is required", body["email"])
	assert.Equal(t, "Password field is required", body["password"])
	assert.Equal(t, "Confirm Password field is required", body["password2"])

	w, _ = ts.do(t, http.MethodPost, "/api/users/register", exampleRegistration, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, body = ts.do(t, http.MethodPost, "/api/users/register", exampleRegistration, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{"email": "Email already exists"}, body)
	assert.Equal(t, 1, ts.store.Len())
}

func TestRegister_MalformedBodies(t *testing.T) {
	ts := newTestServer(t)

	r := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader("name=A"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	r = httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(`{"name":`))
	r.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	ts.handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestLogin_Errors(t *testing.T) {
	ts := newTestServer(t)

	w, body := ts.do(t, http.MethodPost, "/api/users/login",
		map[string]string{"email": "ghost@x.com", "password": "secret1"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]any{"email": "User not found"}, body)

	w, _ = ts.do(t, http.MethodPost, "/api/users/register", exampleRegistration, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, body = ts.do(t, http.MethodPost, "/api/users/login",
		map[string]string{"email": "a@x.com", "password": "wrong-password"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{"password": "Password is not correct"}, body)

	w, body = ts.do(t, http.MethodPost, "/api/users/login", map[string]string{"email": "bad"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email is invalid", body["email"])
	assert.Equal(t, "Password field is required", body["password"])
}

func TestCurrent_Unauthenticated(t *testing.T) {
	ts := newTestServer(t)

	w, _ := ts.do(t, http.MethodPost, "/api/users/register", exampleRegistration, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, login := ts.do(t, http.MethodPost, "/api/users/login",
		map[string]string{"email": "a@x.com", "password": "secret1"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	token := login["token"].(string)

	tests := []struct {
		name   string
		header http.Header
		setup  func()
	}{
		{name: "no header"},
		{name: "wrong scheme", header: bearer("Basic abc")},
		{name: "garbage token", header: bearer("Bearer not.a.jwt")},
		{name: "expired", header: bearer(token), setup: func() { ts.now = ts.now.Add(2 * time.Hour) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			w, body := ts.do(t, http.MethodGet, "/api/users/current", nil, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, map[string]any{"error": "Unauthorized"}, body)
		})
	}
}

func TestCurrent_DeletedUser(t *testing.T) {
	ts := newTestServer(t)

	w, registered := ts.do(t, http.MethodPost, "/api/users/register", exampleRegistration, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, login := ts.do(t, http.MethodPost, "/api/users/login",
		map[string]string{"email": "a@x.com", "password": "secret1"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := ts.store.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Equal(t, registered["id"], stored.ID.String())
	require.True(t, ts.store.Delete(stored.ID))

	w, _ = ts.do(t, http.MethodGet, "/api/users/current", nil, bearer(login["token"].(string)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPublicRoutesIgnoreBadTokens(t *testing.T) {
	ts := newTestServer(t)

	w, _ := ts.do(t, http.MethodPost, "/api/users/register", exampleRegistration, bearer("Bearer garbage"))
	assert.Equal(t, http.StatusOK, w.Code)
}
