package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"access":  "",
			"refresh": "",
		},
		"loginThrottle": map[string]any{
			"maxAttempts": 5,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SECRETKEY_REFRESH", want: "secretKey.refresh"},
		{envKey: "LOGINTHROTTLE_MAXATTEMPTS", want: "loginThrottle.maxAttempts"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyAuthDefaults(t *testing.T) {
	cfg := &Config{}
	applyAuthDefaults(cfg)

	if cfg.Auth == nil {
		t.Fatal("expected Auth config to be populated")
	}
	if cfg.Auth.AccessTokenTTL != defaultAccessTokenTTL {
		t.Fatalf("AccessTokenTTL = %v, want %v", cfg.Auth.AccessTokenTTL, defaultAccessTokenTTL)
	}
	if cfg.Auth.RefreshTokenTTL != defaultRefreshTokenTTL {
		t.Fatalf("RefreshTokenTTL = %v, want %v", cfg.Auth.RefreshTokenTTL, defaultRefreshTokenTTL)
	}
	if cfg.Auth.RememberTokenTTL != defaultRememberTokenTTL {
		t.Fatalf("RememberTokenTTL = %v, want %v", cfg.Auth.RememberTokenTTL, defaultRememberTokenTTL)
	}
}
