package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"blog_api/internal/models"
	"blog_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	genTokenToken string
	genTokenErr   error

	// tokens maps a bearer token to the user it authenticates as.
	tokens  map[string]*models.User
	authErr error

	lastGenUsername string
	lastGenPassword string
	lastAuthToken   string
}

func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	if u, ok := m.tokens[token]; ok {
		return u.PublicID, nil
	}
	return "", service.ErrInvalidToken
}

func (m *mockAuth) Authenticate(_ context.Context, token string) (*models.User, error) {
	m.lastAuthToken = token
	if m.authErr != nil {
		return nil, m.authErr
	}
	if u, ok := m.tokens[token]; ok {
		return u, nil
	}
	return nil, service.ErrInvalidToken
}

type mockUsers struct {
	user  *models.User
	users []models.User
	err   error

	registerCalls int
	promoteCalls  int
	deleteCalls   int
	lastPublicID  string
	lastUsername  string
	lastPassword  string
}

func (m *mockUsers) Register(_ context.Context, username, password string) (*models.User, error) {
	m.registerCalls++
	m.lastUsername, m.lastPassword = username, password
	return m.user, m.err
}

func (m *mockUsers) List(context.Context) ([]models.User, error) { return m.users, m.err }

func (m *mockUsers) Get(_ context.Context, publicID string) (*models.User, error) {
	m.lastPublicID = publicID
	return m.user, m.err
}

func (m *mockUsers) Promote(_ context.Context, publicID string) (*models.User, error) {
	m.promoteCalls++
	m.lastPublicID = publicID
	return m.user, m.err
}

func (m *mockUsers) Delete(_ context.Context, publicID string) (*models.User, error) {
	m.deleteCalls++
	m.lastPublicID = publicID
	return m.user, m.err
}

type mockPosts struct {
	post  *models.Post
	posts []models.Post
	err   error

	lastID       int
	lastAuthorID int
	lastInput    service.PostInput
	mutateCalls  int
}

func (m *mockPosts) ListAll(context.Context) ([]models.Post, error) { return m.posts, m.err }

func (m *mockPosts) ListOwn(_ context.Context, authorID int) ([]models.Post, error) {
	m.lastAuthorID = authorID
	return m.posts, m.err
}

func (m *mockPosts) Get(_ context.Context, id, authorID int) (*models.Post, error) {
	m.lastID, m.lastAuthorID = id, authorID
	return m.post, m.err
}

func (m *mockPosts) Create(_ context.Context, authorID int, in service.PostInput) (*models.Post, error) {
	m.mutateCalls++
	m.lastAuthorID, m.lastInput = authorID, in
	return m.post, m.err
}

func (m *mockPosts) Update(_ context.Context, id, authorID int, in service.PostInput) (*models.Post, error) {
	m.mutateCalls++
	m.lastID, m.lastAuthorID, m.lastInput = id, authorID, in
	return m.post, m.err
}

func (m *mockPosts) Delete(_ context.Context, id, authorID int) (*models.Post, error) {
	m.mutateCalls++
	m.lastID, m.lastAuthorID = id, authorID
	return m.post, m.err
}

// ---- Shared Test Helpers ----

var (
	testAdmin  = &models.User{ID: 1, PublicID: "pub-admin", Username: "root", PasswordHash: "h", Admin: true}
	testMember = &models.User{ID: 2, PublicID: "pub-member", Username: "joe", PasswordHash: "h"}
)

func newTestAuth() *mockAuth {
	return &mockAuth{tokens: map[string]*models.User{
		"admin-token":  testAdmin,
		"member-token": testMember,
	}}
}

func newTestRouter(s *service.Service, cfg Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, cfg)
	return h.InitRoutes()
}

func doRequest(t *testing.T, r http.Handler, method, path, token string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("unmarshal %q: %v", w.Body.String(), err)
	}
	return m
}
