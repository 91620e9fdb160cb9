package httpclient

import (
	"strings"
	"testing"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{BaseURL: "https://api.example.com"}
	cfg.ApplyDefaults()
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want %q", cfg.UserAgent, DefaultUserAgent)
	}
	if cfg.TokenType != DefaultTokenType {
		t.Errorf("TokenType = %q, want %q", cfg.TokenType, DefaultTokenType)
	}
}

func TestConfigApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{BaseURL: "https://api.example.com", UserAgent: "custom", TokenType: "Bearer"}
	cfg.ApplyDefaults()
	if cfg.UserAgent != "custom" || cfg.TokenType != "Bearer" {
		t.Errorf("explicit values overwritten: %+v", cfg)
	}
}

func TestConfigValidateCredentials(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"no credentials", Config{BaseURL: "https://x.example.com"}, false},
		{"username and password", Config{BaseURL: "https://x.example.com", Username: "u", Password: "p"}, false},
		{"username and token", Config{BaseURL: "https://x.example.com", Username: "u", Token: "t"}, false},
		{"token only", Config{BaseURL: "https://x.example.com", Token: "t"}, false},
		{"username without secret", Config{BaseURL: "https://x.example.com", Username: "u"}, true},
		{"password and token", Config{BaseURL: "https://x.example.com", Username: "u", Password: "p", Token: "t"}, true},
		{"missing base url", Config{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.ApplyDefaults()
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !IsConfig(err) {
				t.Errorf("expected a *ConfigError, got %T", err)
			}
		})
	}
}

func TestConfigValidateUsernameErrorNamesUser(t *testing.T) {
	cfg := Config{BaseURL: "https://x.example.com", Username: "alice"}
	cfg.ApplyDefaults()
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "alice") {
		t.Errorf("error should name the user, got: %v", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(Config{BaseURL: "https://x.example.com", Username: "u"}); !IsConfig(err) {
		t.Errorf("expected config error, got %v", err)
	}
	if _, err := New(Config{BaseURL: "https://x.example.com", Username: "u", Password: "p", Token: "t"}); !IsConfig(err) {
		t.Errorf("expected config error, got %v", err)
	}
}
