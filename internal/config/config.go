package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.json
var sampleConfig string

// DefaultPath is the config file consulted when --config is not given.
const DefaultPath = "jellyfin.config.json"

var (
	// ErrNotFound reports a missing config file. Fatal at startup.
	ErrNotFound = errors.New("config file not found")
	// ErrInvalid reports a file that failed to parse or validate. Fatal at startup.
	ErrInvalid = errors.New("invalid config")
	// ErrMissingCredential reports an absent API key. Fatal before any write.
	ErrMissingCredential = errors.New("api key not configured")
)

// Server holds the connection details for the target server.
type Server struct {
	URL    string `json:"url" toml:"url"`
	APIKey string `json:"api_key" toml:"api_key"`
}

// Provider is one ranked entry in a metadata downloader, image fetcher, or
// metadata saver list. Nil Enabled means enabled; nil Priority ranks last.
type Provider struct {
	Name     string `json:"name" toml:"name"`
	Enabled  *bool  `json:"enabled" toml:"enabled"`
	Priority *int   `json:"priority" toml:"priority"`
}

// IsEnabled resolves the enabled flag with its default.
func (p Provider) IsEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}

// LibrarySettings carries basic per-library toggles.
type LibrarySettings struct {
	EnableRealtimeMonitoring *bool `json:"enable_realtime_monitoring" toml:"enable_realtime_monitoring"`
}

// MetadataSettings carries optional metadata-related advanced settings.
// Absent fields are never defaulted; they stay absent on the wire.
type MetadataSettings struct {
	PreferredLanguage            *string `json:"preferred_language" toml:"preferred_language"`
	Country                      *string `json:"country" toml:"country"`
	AutomaticallyRefreshMetadata *bool   `json:"automatically_refresh_metadata" toml:"automatically_refresh_metadata"`
	SaveArtworkIntoMediaFolders  *bool   `json:"save_artwork_into_media_folders" toml:"save_artwork_into_media_folders"`
}

// ChapterImageSettings carries optional chapter image extraction settings.
type ChapterImageSettings struct {
	EnableChapterImageExtraction *bool `json:"enable_chapter_image_extraction" toml:"enable_chapter_image_extraction"`
	ExtractDuringLibraryScan     *bool `json:"extract_during_library_scan" toml:"extract_during_library_scan"`
}

// TrickplaySettings carries optional trickplay extraction settings.
type TrickplaySettings struct {
	EnableTrickplayExtraction *bool `json:"enable_trickplay_extraction" toml:"enable_trickplay_extraction"`
}

// Advanced groups the optional advanced-settings sections of a library.
type Advanced struct {
	Metadata      *MetadataSettings     `json:"metadata" toml:"metadata"`
	ChapterImages *ChapterImageSettings `json:"chapter_images" toml:"chapter_images"`
	Trickplay     *TrickplaySettings    `json:"trickplay" toml:"trickplay"`
}

// Library declares one media library.
type Library struct {
	Name                string          `json:"name" toml:"name"`
	ContentType         string          `json:"content_type" toml:"content_type"`
	Folders             []string        `json:"folders" toml:"folders"`
	Library             LibrarySettings `json:"library" toml:"library"`
	MetadataDownloaders []Provider      `json:"metadata_downloaders" toml:"metadata_downloaders"`
	ImageFetchers       []Provider      `json:"image_fetchers" toml:"image_fetchers"`
	MetadataSavers      []Provider      `json:"metadata_savers" toml:"metadata_savers"`
	Advanced            Advanced        `json:"advanced" toml:"advanced"`
}

// Task declares the schedule for one scheduled task. Nil Enabled means
// enabled. IntervalMinutes wins over Schedule/Time when both appear.
type Task struct {
	Enabled         *bool  `json:"enabled" toml:"enabled"`
	IntervalMinutes *int   `json:"interval_minutes" toml:"interval_minutes"`
	Schedule        string `json:"schedule" toml:"schedule"`
	Time            string `json:"time" toml:"time"`
}

// IsEnabled resolves the enabled flag with its default.
func (t Task) IsEnabled() bool {
	return t.Enabled == nil || *t.Enabled
}

// Config is the full desired-state document.
type Config struct {
	Server           Server          `json:"server" toml:"server"`
	Libraries        []Library       `json:"libraries" toml:"libraries"`
	ScheduledTasks   map[string]Task `json:"scheduled_tasks" toml:"scheduled_tasks"`
	TrickplayOptions map[string]any  `json:"trickplay_options" toml:"trickplay_options"`
}

// Load reads, decodes, normalizes, and validates a desired-state document.
// The decoder follows the file extension: .toml selects TOML, anything else
// is treated as JSON.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %w", ErrInvalid, path, err)
		}
	} else {
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %w", ErrInvalid, path, err)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CreateSample writes the embedded sample document to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
