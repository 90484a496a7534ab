package jellyfin

// SystemInfo is the subset of GET /System/Info this tool reads.
type SystemInfo struct {
	ServerName string `json:"ServerName"`
	Version    string `json:"Version"`
	ID         string `json:"Id"`
}

// VirtualFolder describes an existing library as returned by
// GET /Library/VirtualFolders.
type VirtualFolder struct {
	Name           string   `json:"Name"`
	ItemID         string   `json:"ItemId"`
	CollectionType string   `json:"CollectionType"`
	Locations      []string `json:"Locations"`
}

// TaskInfo describes a scheduled task as returned by GET /ScheduledTasks.
type TaskInfo struct {
	Name     string `json:"Name"`
	ID       string `json:"Id"`
	Key      string `json:"Key"`
	Category string `json:"Category"`
}

// Identifier returns the value used to address the task in trigger updates.
// The server reports both Key and Id; Key wins when present.
func (t TaskInfo) Identifier() string {
	if t.Key != "" {
		return t.Key
	}
	return t.ID
}

// Trigger type discriminators understood by the server.
const (
	TriggerInterval = "IntervalTrigger"
	TriggerDaily    = "DailyTrigger"
)

// TaskTrigger is one schedule rule attached to a scheduled task. Tick values
// are 100-nanosecond units.
type TaskTrigger struct {
	Type           string `json:"Type"`
	IntervalTicks  *int64 `json:"IntervalTicks,omitempty"`
	TimeOfDayTicks *int64 `json:"TimeOfDayTicks,omitempty"`
}

// LibraryOptions is the options payload pushed to
// POST /Library/VirtualFolders/LibraryOptions. Pointer fields are omitted
// from the wire payload when unset so the server keeps its current value.
type LibraryOptions struct {
	EnableRealtimeMonitor                 *bool         `json:"EnableRealtimeMonitor,omitempty"`
	PreferredMetadataLanguage             *string       `json:"PreferredMetadataLanguage,omitempty"`
	MetadataCountryCode                   *string       `json:"MetadataCountryCode,omitempty"`
	AutomaticallyAddToCollection          *bool         `json:"AutomaticallyAddToCollection,omitempty"`
	SaveLocalMetadata                     *bool         `json:"SaveLocalMetadata,omitempty"`
	EnableChapterImageExtraction          *bool         `json:"EnableChapterImageExtraction,omitempty"`
	ExtractChapterImagesDuringLibraryScan *bool         `json:"ExtractChapterImagesDuringLibraryScan,omitempty"`
	EnableTrickplayImageExtraction        *bool         `json:"EnableTrickplayImageExtraction,omitempty"`
	TypeOptions                           []TypeOptions `json:"TypeOptions,omitempty"`
}

// TypeOptions bundles provider name lists for one content type.
type TypeOptions struct {
	Type             string   `json:"Type"`
	MetadataFetchers []string `json:"MetadataFetchers"`
	ImageFetchers    []string `json:"ImageFetchers"`
	MetadataSavers   []string `json:"MetadataSavers"`
}
