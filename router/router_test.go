package router

import (
	"docuchat-backend/config"
	"docuchat-backend/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setup(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	prev := config.Cfg
	t.Cleanup(func() { config.Cfg = prev })
	config.Cfg = &config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret"},
	}

	token, err := middleware.GenerateToken("user-1", "user@example.com")
	if err != nil {
		t.Fatalf("GenerateToken() = %v", err)
	}
	return Register(), token
}

// 未认证的请求在进入业务逻辑前被拒绝，不产生任何副作用
func TestProtectedRoutesRequireAuth(t *testing.T) {
	r, _ := setup(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/files"},
		{http.MethodPut, "/api/files?filename=report.pdf"},
		{http.MethodDelete, "/api/files?filename=report.pdf"},
		{http.MethodPut, "/api/embedding?filename=report.pdf"},
		{http.MethodGet, "/api/files/status?id=abc"},
		{http.MethodPost, "/api/chat"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestMissingFilenameParameter(t *testing.T) {
	r, token := setup(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/api/files"},
		{http.MethodDelete, "/api/files"},
		{http.MethodPut, "/api/embedding"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			r.ServeHTTP(w, req)

			if w.Code != http.StatusInternalServerError {
				t.Errorf("status = %d, want 500", w.Code)
			}
		})
	}
}
