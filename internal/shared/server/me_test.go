package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"companion-backend/internal/shared/auth"
	"companion-backend/internal/shared/server/middleware"
)

func newMeRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(middleware.Auth("dev"))
	registerMeRoutes(api)
	return router
}

func getMe(t *testing.T, router *gin.Engine, setHeaders func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	setHeaders(req)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMeReturnsGuestIdentity(t *testing.T) {
	router := newMeRouter(t)

	w := getMe(t, router, func(req *http.Request) {
		req.Header.Set("X-Guest-Id", "g-7")
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["userId"] != "guest:g-7" {
		t.Fatalf("unexpected userId: %v", resp["userId"])
	}
	if resp["isGuest"] != true {
		t.Fatalf("expected isGuest true, got %v", resp["isGuest"])
	}
}

func TestMeReturnsFounderClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newMeRouter(t)

	token, err := auth.SignJWT(auth.Claims{Sub: "google:sub-9", Email: "ravi@chaipoint.test", Name: "Ravi Iyer"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	w := getMe(t, router, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["userId"] != "google:sub-9" || resp["email"] != "ravi@chaipoint.test" || resp["name"] != "Ravi Iyer" {
		t.Fatalf("unexpected claims: %v", resp)
	}
	if resp["isGuest"] != false {
		t.Fatalf("expected isGuest false, got %v", resp["isGuest"])
	}
}

func TestMeRequiresIdentity(t *testing.T) {
	router := newMeRouter(t)

	w := getMe(t, router, func(*http.Request) {})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
