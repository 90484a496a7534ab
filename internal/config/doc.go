// Package config loads, normalizes, and validates the desired-state document.
//
// The document declares what the target Jellyfin server should look like:
// connection details, media libraries with their provider rankings and
// advanced options, global trickplay overrides, and scheduled task schedules.
// Files are JSON by default; a .toml extension selects the TOML decoder.
// Credentials may come from the environment (JELLYFIN_URL, JELLYFIN_API_KEY)
// so tokens can stay out of checked-in files.
//
// The document is read once at startup and treated as immutable input for the
// rest of the run. Nothing is ever written back.
package config
