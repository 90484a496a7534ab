package schedule

import (
	"strings"

	"golang.org/x/text/cases"

	"jellysync/internal/jellyfin"
)

// TaskKind identifies one of the scheduled tasks this tool manages, keyed by
// the scheduled_tasks entry names in the desired-state document.
type TaskKind string

const (
	TaskLibraryScan    TaskKind = "scan_media_library"
	TaskChapterImages  TaskKind = "extract_chapter_images"
	TaskTrickplay      TaskKind = "trickplay_image_extraction"
	TaskIntroDetection TaskKind = "generate_intro_skip_data"
)

var displayNames = map[TaskKind]string{
	TaskLibraryScan:    "Scan Media Library",
	TaskChapterImages:  "Extract Chapter Images",
	TaskTrickplay:      "Trickplay Image Extraction",
	TaskIntroDetection: "Detect Intros",
}

// Kinds returns the managed task kinds in a fixed order.
func Kinds() []TaskKind {
	return []TaskKind{TaskLibraryScan, TaskChapterImages, TaskTrickplay, TaskIntroDetection}
}

// Known reports whether key names a managed task.
func Known(key string) bool {
	_, ok := displayNames[TaskKind(key)]
	return ok
}

// DisplayName returns the server-side task name the kind matches against.
func (k TaskKind) DisplayName() string {
	return displayNames[k]
}

// MatchTask finds the first server task whose name contains the display name,
// compared with Unicode case folding. First match wins.
func MatchTask(tasks []jellyfin.TaskInfo, displayName string) (jellyfin.TaskInfo, bool) {
	fold := cases.Fold()
	needle := fold.String(displayName)
	for _, task := range tasks {
		if strings.Contains(fold.String(task.Name), needle) {
			return task, true
		}
	}
	return jellyfin.TaskInfo{}, false
}
