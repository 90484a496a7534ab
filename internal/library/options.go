package library

import (
	"sort"

	"jellysync/internal/config"
	"jellysync/internal/jellyfin"
)

// Entries without a declared priority rank after every declared one.
const defaultPriority = 999

// BuildOptions translates one declared library into the full options payload.
// Pure function: only fields present in the document appear in the result.
func BuildOptions(lib config.Library) jellyfin.LibraryOptions {
	var opts jellyfin.LibraryOptions

	opts.EnableRealtimeMonitor = lib.Library.EnableRealtimeMonitoring

	if meta := lib.Advanced.Metadata; meta != nil {
		opts.PreferredMetadataLanguage = meta.PreferredLanguage
		opts.MetadataCountryCode = meta.Country
		opts.AutomaticallyAddToCollection = meta.AutomaticallyRefreshMetadata
		opts.SaveLocalMetadata = meta.SaveArtworkIntoMediaFolders
	}
	if chapters := lib.Advanced.ChapterImages; chapters != nil {
		opts.EnableChapterImageExtraction = chapters.EnableChapterImageExtraction
		opts.ExtractChapterImagesDuringLibraryScan = chapters.ExtractDuringLibraryScan
	}
	if trickplay := lib.Advanced.Trickplay; trickplay != nil {
		opts.EnableTrickplayImageExtraction = trickplay.EnableTrickplayExtraction
	}

	opts.TypeOptions = []jellyfin.TypeOptions{{
		Type:             Category(lib.ContentType).TypeName(),
		MetadataFetchers: rankedNames(lib.MetadataDownloaders),
		ImageFetchers:    rankedNames(lib.ImageFetchers),
		// Savers keep declared order; they carry no priority field.
		MetadataSavers: enabledNames(lib.MetadataSavers),
	}}

	return opts
}

// rankedNames filters enabled providers and sorts them by ascending priority.
// The sort is stable, so ties keep document order.
func rankedNames(providers []config.Provider) []string {
	enabled := make([]config.Provider, 0, len(providers))
	for _, p := range providers {
		if p.IsEnabled() {
			enabled = append(enabled, p)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		return priorityOf(enabled[i]) < priorityOf(enabled[j])
	})

	names := make([]string, 0, len(enabled))
	for _, p := range enabled {
		names = append(names, p.Name)
	}
	return names
}

func enabledNames(providers []config.Provider) []string {
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		if p.IsEnabled() {
			names = append(names, p.Name)
		}
	}
	return names
}

func priorityOf(p config.Provider) int {
	if p.Priority == nil {
		return defaultPriority
	}
	return *p.Priority
}
