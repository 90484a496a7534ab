package schedule

import (
	"testing"

	"jellysync/internal/jellyfin"
)

func TestMatchTaskIsCaseInsensitiveSubstring(t *testing.T) {
	tasks := []jellyfin.TaskInfo{
		{Name: "Clean Transcode Directory", ID: "clean"},
		{Name: "SCAN MEDIA LIBRARY", ID: "scan-upper"},
		{Name: "Scan Media Library (secondary)", ID: "scan-second"},
	}

	task, ok := MatchTask(tasks, TaskLibraryScan.DisplayName())
	if !ok {
		t.Fatal("expected a match")
	}
	if task.ID != "scan-upper" {
		t.Fatalf("first match should win, got %q", task.ID)
	}
}

func TestMatchTaskReportsMiss(t *testing.T) {
	tasks := []jellyfin.TaskInfo{{Name: "Clean Cache Directory", ID: "cache"}}
	if _, ok := MatchTask(tasks, TaskIntroDetection.DisplayName()); ok {
		t.Fatal("expected no match")
	}
}

func TestKindsCoverDisplayNames(t *testing.T) {
	if len(Kinds()) != len(displayNames) {
		t.Fatalf("Kinds() lists %d kinds, display map has %d", len(Kinds()), len(displayNames))
	}
	for _, kind := range Kinds() {
		if kind.DisplayName() == "" {
			t.Fatalf("kind %q has no display name", kind)
		}
		if !Known(string(kind)) {
			t.Fatalf("kind %q not reported as known", kind)
		}
	}
	if Known("defragment_database") {
		t.Fatal("unexpected key reported as known")
	}
}

func TestTaskIdentifierPrefersKey(t *testing.T) {
	task := jellyfin.TaskInfo{ID: "id-1", Key: "RefreshLibrary"}
	if got := task.Identifier(); got != "RefreshLibrary" {
		t.Fatalf("expected key, got %q", got)
	}
	task.Key = ""
	if got := task.Identifier(); got != "id-1" {
		t.Fatalf("expected id fallback, got %q", got)
	}
}
