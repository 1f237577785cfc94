package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/antera/antera-backend/internal/domain"
	"github.com/antera/antera-backend/internal/handler"
	"github.com/antera/antera-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// staticAuthService lets public auth routes answer without a store.
type staticAuthService struct{}

func (staticAuthService) Register(*domain.RegisterRequest) (*domain.AuthResponse, error) {
	return &domain.AuthResponse{}, nil
}

func (staticAuthService) Login(*domain.LoginRequest) (*domain.AuthResponse, error) {
	return &domain.AuthResponse{}, nil
}

func (staticAuthService) ListUsers() ([]*domain.UserSummary, error) {
	return []*domain.UserSummary{}, nil
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Setup(
		r,
		handler.NewAuthHandler(staticAuthService{}),
		handler.NewProfileHandler(nil),
		handler.NewConnectionHandler(nil),
		handler.NewMessageHandler(nil),
		handler.NewPostHandler(nil),
		handler.NewJobHandler(nil),
		handler.NewCompanyHandler(nil),
		handler.NewWSHandler(nil, ""),
		jwt.NewManager("secret", time.Hour),
	)
	return r
}

func TestRegisteredRoutes(t *testing.T) {
	r := testRouter()

	registered := make(map[string]bool)
	for _, ri := range r.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}

	expected := []string{
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/auth/users",

		"POST /api/connections",
		"GET /api/connections",
		"GET /api/connections/pending",
		"GET /api/connections/status/:userId",
		"PATCH /api/connections/:id/accept",
		"PATCH /api/connections/:id/reject",
		"DELETE /api/connections/:id",

		"GET /api/messages/unread-count",
		"GET /api/messages/conversations",
		"GET /api/messages/conversations/:id",
		"GET /api/messages/conversations/:id/messages",
		"POST /api/messages/conversations/:id/messages",
		"PATCH /api/messages/conversations/:id/read",

		"DELETE /api/jobs/:id",
		"PATCH /api/jobs/:id/deactivate",
		"POST /api/jobs/:id/apply",

		"DELETE /api/companies/:id",

		"GET /ws",
	}
	for _, want := range expected {
		if !registered[want] {
			t.Errorf("route %q not registered", want)
		}
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := testRouter()

	cases := []struct {
		method string
		path   string
	}{
		{"POST", "/api/connections"},
		{"GET", "/api/connections/pending"},
		{"PATCH", "/api/connections/1/accept"},
		{"PATCH", "/api/connections/1/reject"},
		{"GET", "/api/messages/conversations/2"},
		{"PATCH", "/api/messages/conversations/1/read"},
		{"GET", "/api/profile/1"},
		{"GET", "/api/jobs"},
		{"GET", "/api/jobs/1"},
		{"DELETE", "/api/jobs/1"},
		{"PATCH", "/api/jobs/1/deactivate"},
		{"DELETE", "/api/companies/1"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(tc.method, tc.path, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: expected 401, got %d", tc.method, tc.path, w.Code)
		}
	}
}

func TestUserListingIsPublic(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/auth/users", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 without token, got %d", w.Code)
	}
}
