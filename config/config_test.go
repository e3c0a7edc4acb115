package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MINIO_ENDPOINT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "3000" {
		t.Fatalf("port = %q, want 3000", cfg.Port)
	}
	if cfg.DatabaseURL != "" {
		t.Fatalf("database url = %q, want empty", cfg.DatabaseURL)
	}
	if cfg.Minio.Bucket != "instagram-media" {
		t.Fatalf("bucket = %q, want instagram-media", cfg.Minio.Bucket)
	}
	if cfg.Minio.UploadsEnabled() {
		t.Fatal("uploads should be disabled without an endpoint")
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("cors origins = %v, want [*]", cfg.CORSAllowedOrigins)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/app")
	t.Setenv("MINIO_ENDPOINT", "127.0.0.1:9000")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.com,http://b.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.DatabaseURL != "postgres://u:p@db/app" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if !cfg.Minio.UploadsEnabled() || !cfg.Minio.UseSSL {
		t.Fatalf("minio = %+v", cfg.Minio)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("cors origins = %v, want 2", cfg.CORSAllowedOrigins)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("DEBUG", "not-a-bool")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
