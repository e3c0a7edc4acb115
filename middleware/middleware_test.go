package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestTrimTrailingSlash(t *testing.T) {
	tests := map[string]string{
		"/users/":   "/users",
		"/users":    "/users",
		"/posts/1/": "/posts/1",
		"/":         "/",
		"//":        "/",
	}
	for in, want := range tests {
		var got string
		h := TrimTrailingSlash(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.URL.Path
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, in, nil))
		if got != want {
			t.Fatalf("path %q -> %q, want %q", in, got, want)
		}
	}
}

func TestRequestLoggerLevels(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for _, path := range []string{"/ok", "/bad"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Level != zap.InfoLevel {
		t.Fatalf("ok level = %v, want info", entries[0].Level)
	}
	if entries[1].Level != zap.WarnLevel {
		t.Fatalf("404 level = %v, want warn", entries[1].Level)
	}
	if got := entries[1].ContextMap()["status"]; got != int64(http.StatusNotFound) {
		t.Fatalf("status field = %v, want 404", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := CORS(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/follow", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow origin = %q, want *", got)
	}
}
