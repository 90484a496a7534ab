package config

import (
	"os"
	"strings"
)

const defaultServerURL = "http://localhost:8096"

func (c *Config) normalize() {
	c.normalizeServer()
	c.normalizeLibraries()
}

func (c *Config) normalizeServer() {
	c.Server.URL = strings.TrimSpace(c.Server.URL)
	if c.Server.URL == "" {
		if value, ok := os.LookupEnv("JELLYFIN_URL"); ok {
			c.Server.URL = strings.TrimSpace(value)
		}
	}
	if c.Server.URL == "" {
		c.Server.URL = defaultServerURL
	}
	c.Server.URL = strings.TrimRight(c.Server.URL, "/")

	c.Server.APIKey = strings.TrimSpace(c.Server.APIKey)
	// The sample's placeholder counts as unset so the environment can fill it.
	if c.Server.APIKey == "" || c.Server.APIKey == placeholderAPIKey {
		c.Server.APIKey = ""
		if value, ok := os.LookupEnv("JELLYFIN_API_KEY"); ok {
			c.Server.APIKey = strings.TrimSpace(value)
		}
	}
}

func (c *Config) normalizeLibraries() {
	for i := range c.Libraries {
		lib := &c.Libraries[i]
		lib.Name = strings.TrimSpace(lib.Name)
		lib.ContentType = strings.ToLower(strings.TrimSpace(lib.ContentType))

		folders := make([]string, 0, len(lib.Folders))
		for _, folder := range lib.Folders {
			if folder = strings.TrimSpace(folder); folder != "" {
				folders = append(folders, folder)
			}
		}
		lib.Folders = folders
	}
}
