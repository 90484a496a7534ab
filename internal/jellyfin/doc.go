// Package jellyfin implements the HTTP client for the Jellyfin server API.
//
// The client covers the small slice of the API this tool needs: system info
// and configuration, virtual folder (library) listing and creation, library
// options updates, and scheduled task trigger replacement. Authentication uses
// the X-Emby-Token header. A dry-run mode skips every mutating call while
// still performing reads, so callers can compute a what-if plan.
package jellyfin
