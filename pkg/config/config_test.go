package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/madninja/bonusly-go/pkg/client"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BONUSLY_TOKEN", "test-token")

	settings, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if settings.Token != "test-token" {
		t.Errorf("Token = %q, want %q", settings.Token, "test-token")
	}
	if settings.BaseURL != client.DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", settings.BaseURL, client.DefaultBaseURL)
	}
	if settings.Timeout != client.DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", settings.Timeout, client.DefaultTimeout)
	}
	if settings.PageSize != client.DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", settings.PageSize, client.DefaultPageSize)
	}
	if settings.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", settings.LogLevel)
	}
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("BONUSLY_TOKEN", "")
	os.Unsetenv("BONUSLY_TOKEN")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
	if client.KindOf(err) != client.KindConfiguration {
		t.Errorf("KindOf() = %q, want %q", client.KindOf(err), client.KindConfiguration)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("BONUSLY_TOKEN", "test-token")
	t.Setenv("BONUSLY_BASE_URL", "https://staging.bonus.ly/api/v1")
	t.Setenv("BONUSLY_TIMEOUT", "10s")
	t.Setenv("BONUSLY_PAGE_SIZE", "50")
	t.Setenv("BONUSLY_LOG_LEVEL", "debug")

	settings, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if settings.BaseURL != "https://staging.bonus.ly/api/v1" {
		t.Errorf("BaseURL = %q", settings.BaseURL)
	}
	if settings.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", settings.Timeout)
	}
	if settings.PageSize != 50 {
		t.Errorf("PageSize = %d, want 50", settings.PageSize)
	}
	if settings.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", settings.LogLevel)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv("BONUSLY_TOKEN", "")
	os.Unsetenv("BONUSLY_TOKEN")

	envFile := filepath.Join(t.TempDir(), "test.env")
	content := "BONUSLY_TOKEN=token-from-file\nBONUSLY_PAGE_SIZE=5\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	// godotenv mutates the process environment; clean up after.
	t.Cleanup(func() {
		os.Unsetenv("BONUSLY_TOKEN")
		os.Unsetenv("BONUSLY_PAGE_SIZE")
	})

	settings, err := Load(WithEnvFile(envFile))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if settings.Token != "token-from-file" {
		t.Errorf("Token = %q, want token-from-file", settings.Token)
	}
	if settings.PageSize != 5 {
		t.Errorf("PageSize = %d, want 5", settings.PageSize)
	}
}

func TestLoad_EnvFileMissing(t *testing.T) {
	_, err := Load(WithEnvFile(filepath.Join(t.TempDir(), "does-not-exist.env")))
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
	if client.KindOf(err) != client.KindConfiguration {
		t.Errorf("KindOf() = %q, want %q", client.KindOf(err), client.KindConfiguration)
	}
}

func TestLoad_SettingsFile(t *testing.T) {
	t.Setenv("BONUSLY_TOKEN", "")
	os.Unsetenv("BONUSLY_TOKEN")

	settingsFile := filepath.Join(t.TempDir(), "bonusly.yml")
	content := "token: token-from-yaml\nbase_url: https://yaml.bonus.ly/api/v1\npage_size: 15\n"
	if err := os.WriteFile(settingsFile, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	settings, err := Load(WithSettingsFile(settingsFile))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if settings.Token != "token-from-yaml" {
		t.Errorf("Token = %q, want token-from-yaml", settings.Token)
	}
	if settings.BaseURL != "https://yaml.bonus.ly/api/v1" {
		t.Errorf("BaseURL = %q", settings.BaseURL)
	}
	if settings.PageSize != 15 {
		t.Errorf("PageSize = %d, want 15", settings.PageSize)
	}
}

func TestLoad_EnvironmentWinsOverSettingsFile(t *testing.T) {
	t.Setenv("BONUSLY_TOKEN", "token-from-env")

	settingsFile := filepath.Join(t.TempDir(), "bonusly.yml")
	if err := os.WriteFile(settingsFile, []byte("token: token-from-yaml\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	settings, err := Load(WithSettingsFile(settingsFile))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if settings.Token != "token-from-env" {
		t.Errorf("Token = %q, want token-from-env", settings.Token)
	}
}

func TestLoad_InvalidPageSize(t *testing.T) {
	t.Setenv("BONUSLY_TOKEN", "test-token")
	t.Setenv("BONUSLY_PAGE_SIZE", "0")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
	if client.KindOf(err) != client.KindConfiguration {
		t.Errorf("KindOf() = %q, want %q", client.KindOf(err), client.KindConfiguration)
	}
}

func TestNewClient(t *testing.T) {
	t.Setenv("BONUSLY_TOKEN", "test-token")

	c, err := NewClient()
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if c == nil {
		t.Error("Client is nil")
	}
}

func TestNewClient_MissingToken(t *testing.T) {
	t.Setenv("BONUSLY_TOKEN", "")
	os.Unsetenv("BONUSLY_TOKEN")

	_, err := NewClient()
	if client.KindOf(err) != client.KindConfiguration {
		t.Errorf("KindOf() = %q, want %q", client.KindOf(err), client.KindConfiguration)
	}
}
