package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const minimalJSON = `{
  "server": {"url": "http://media.local:8096/", "api_key": "token-123"},
  "libraries": [
    {"name": "Movies", "content_type": "Movies", "folders": [" /media/movies "]}
  ]
}`

func TestLoadNormalizesServerAndLibraries(t *testing.T) {
	cfg, err := Load(writeConfig(t, "jellyfin.config.json", minimalJSON))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.URL != "http://media.local:8096" {
		t.Fatalf("trailing slash not stripped: %q", cfg.Server.URL)
	}
	if cfg.Libraries[0].ContentType != "movies" {
		t.Fatalf("content type not lowercased: %q", cfg.Libraries[0].ContentType)
	}
	if cfg.Libraries[0].Folders[0] != "/media/movies" {
		t.Fatalf("folder not trimmed: %q", cfg.Libraries[0].Folders[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	_, err := Load(writeConfig(t, "bad.json", `{"server": `))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadMissingCredential(t *testing.T) {
	t.Setenv("JELLYFIN_API_KEY", "")
	_, err := Load(writeConfig(t, "nokey.json", `{"server": {"url": "http://x:8096"}}`))
	if !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}

func TestLoadPlaceholderCredentialRejected(t *testing.T) {
	t.Setenv("JELLYFIN_API_KEY", "")
	_, err := Load(writeConfig(t, "placeholder.json",
		`{"server": {"url": "http://x:8096", "api_key": "YOUR_API_KEY_HERE"}}`))
	if !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}

func TestLoadCredentialFromEnvironment(t *testing.T) {
	t.Setenv("JELLYFIN_API_KEY", "env-token")
	t.Setenv("JELLYFIN_URL", "http://env.local:8096")

	cfg, err := Load(writeConfig(t, "envonly.json", `{}`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.APIKey != "env-token" {
		t.Fatalf("api key not read from environment: %q", cfg.Server.APIKey)
	}
	if cfg.Server.URL != "http://env.local:8096" {
		t.Fatalf("url not read from environment: %q", cfg.Server.URL)
	}
}

func TestLoadTOMLVariant(t *testing.T) {
	cfg, err := Load(writeConfig(t, "jellyfin.config.toml", `
[server]
url = "http://media.local:8096"
api_key = "token-123"

[[libraries]]
name = "Movies"
content_type = "movies"
folders = ["/media/movies"]

[scheduled_tasks.scan_media_library]
interval_minutes = 720
`))
	if err != nil {
		t.Fatalf("load toml: %v", err)
	}
	if len(cfg.Libraries) != 1 || cfg.Libraries[0].Name != "Movies" {
		t.Fatalf("unexpected libraries: %#v", cfg.Libraries)
	}
	task := cfg.ScheduledTasks["scan_media_library"]
	if task.IntervalMinutes == nil || *task.IntervalMinutes != 720 {
		t.Fatalf("interval not decoded: %#v", task)
	}
}

func TestValidateRejectsDuplicateLibraryNames(t *testing.T) {
	_, err := Load(writeConfig(t, "dup.json", `{
  "server": {"url": "http://x:8096", "api_key": "k"},
  "libraries": [
    {"name": "Movies", "folders": ["/a"]},
    {"name": "Movies", "folders": ["/b"]}
  ]
}`))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestValidateRejectsLibraryWithoutFolders(t *testing.T) {
	_, err := Load(writeConfig(t, "nofolders.json", `{
  "server": {"url": "http://x:8096", "api_key": "k"},
  "libraries": [{"name": "Movies", "folders": []}]
}`))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestProviderAndTaskDefaults(t *testing.T) {
	enabled := false
	p := Provider{Name: "x"}
	if !p.IsEnabled() {
		t.Fatal("provider without enabled flag should default to enabled")
	}
	p.Enabled = &enabled
	if p.IsEnabled() {
		t.Fatal("provider with enabled=false should be disabled")
	}

	task := Task{}
	if !task.IsEnabled() {
		t.Fatal("task without enabled flag should default to enabled")
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample", "jellyfin.config.json")
	if err := CreateSample(path); err != nil {
		t.Fatalf("create sample: %v", err)
	}
	// The sample ships a placeholder key, which must fail validation until
	// the user edits it or supplies the environment variable.
	t.Setenv("JELLYFIN_API_KEY", "")
	if _, err := Load(path); !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("expected placeholder credential rejection, got %v", err)
	}

	t.Setenv("JELLYFIN_API_KEY", "token-from-env")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load sample with env key: %v", err)
	}
	if len(cfg.Libraries) == 0 || len(cfg.ScheduledTasks) == 0 {
		t.Fatal("sample should declare libraries and scheduled tasks")
	}
}
