package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("porta incorreta: %d", cfg.Port)
	}
	if cfg.RoleSlotKey != "siteguard:role" {
		t.Fatalf("chave de slot incorreta: %q", cfg.RoleSlotKey)
	}
	if cfg.RateLimitPublic.RequestsPerSecond <= 0 || cfg.RateLimitPublic.Burst <= 0 {
		t.Fatalf("rate limit sem default: %+v", cfg.RateLimitPublic)
	}
}

func TestLoadRequiresRedisURL(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("REDIS_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("REDIS_URL vazio deveria falhar")
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	for _, port := range []string{"abc", "0", "-1"} {
		t.Setenv("PORT", port)
		if _, err := Load(); err == nil {
			t.Fatalf("PORT=%q deveria falhar", port)
		}
	}
}

func TestLoadParsesAllowOrigins(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("ALLOW_ORIGINS", " https://app.siteguard.com , https://*.siteguard.dev ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(cfg.AllowOrigins) != 2 {
		t.Fatalf("origens inesperadas: %v", cfg.AllowOrigins)
	}
	if cfg.AllowOrigins[0] != "https://app.siteguard.com" {
		t.Fatalf("origem não aparada: %q", cfg.AllowOrigins[0])
	}
}
