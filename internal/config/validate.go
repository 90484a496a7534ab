package config

import (
	"fmt"
	"strings"
)

// Placeholder shipped in the sample config; treated the same as no key.
const placeholderAPIKey = "YOUR_API_KEY_HERE"

// Validate ensures the document is usable. Unknown content types and
// scheduled task keys are deliberately not rejected here: content types fall
// back to the movie mapping and unknown task keys are skipped with a warning
// during reconciliation.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	return c.validateLibraries()
}

func (c *Config) validateServer() error {
	if c.Server.APIKey == "" || c.Server.APIKey == placeholderAPIKey {
		return fmt.Errorf("%w: set server.api_key or export JELLYFIN_API_KEY", ErrMissingCredential)
	}
	if !strings.HasPrefix(c.Server.URL, "http://") && !strings.HasPrefix(c.Server.URL, "https://") {
		return fmt.Errorf("%w: server.url %q must start with http:// or https://", ErrInvalid, c.Server.URL)
	}
	return nil
}

func (c *Config) validateLibraries() error {
	seen := make(map[string]struct{}, len(c.Libraries))
	for _, lib := range c.Libraries {
		if lib.Name == "" {
			return fmt.Errorf("%w: every library needs a name", ErrInvalid)
		}
		if _, dup := seen[lib.Name]; dup {
			return fmt.Errorf("%w: duplicate library name %q", ErrInvalid, lib.Name)
		}
		seen[lib.Name] = struct{}{}
		if len(lib.Folders) == 0 {
			return fmt.Errorf("%w: library %q needs at least one folder", ErrInvalid, lib.Name)
		}
	}
	return nil
}
