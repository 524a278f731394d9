package websms

import (
	"testing"
	"time"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("WEBSMS_LOGIN", "env-login")
	t.Setenv("WEBSMS_PASSWORD", "env-secret")
	t.Setenv("WEBSMS_ENDPOINT", "https://staging.example.com/rest/smsmessaging/text")
	t.Setenv("WEBSMS_TIMEOUT", "7s")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Login != "env-login" || cfg.Password != "env-secret" {
		t.Errorf("credentials = %q / %q", cfg.Login, cfg.Password)
	}
	if cfg.Endpoint != "https://staging.example.com/rest/smsmessaging/text" {
		t.Errorf("endpoint = %q", cfg.Endpoint)
	}
	if cfg.Timeout != 7*time.Second {
		t.Errorf("timeout = %v, want 7s", cfg.Timeout)
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := Config{
		Login:    "login",
		Password: "secret",
		Endpoint: "https://staging.example.com/rest/smsmessaging/text",
		Timeout:  9 * time.Second,
	}
	c, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if c.endpoint.Host != "staging.example.com" {
		t.Errorf("endpoint host = %q", c.endpoint.Host)
	}
	if c.http.Timeout != 9*time.Second {
		t.Errorf("timeout = %v", c.http.Timeout)
	}
}

func TestNewFromConfig_Defaults(t *testing.T) {
	c, err := NewFromConfig(Config{Login: "login", Password: "secret"})
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if c.endpoint.String() != DefaultEndpoint {
		t.Errorf("endpoint = %q, want default", c.endpoint.String())
	}
	if c.http.Timeout != defaultTimeout {
		t.Errorf("timeout = %v, want default", c.http.Timeout)
	}
}

func TestNewFromConfig_MissingCredentials(t *testing.T) {
	if _, err := NewFromConfig(Config{Password: "secret"}); err == nil {
		t.Errorf("missing login must fail")
	}
	if _, err := NewFromConfig(Config{Login: "login"}); err == nil {
		t.Errorf("missing password must fail")
	}
}
