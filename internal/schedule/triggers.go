package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"jellysync/internal/config"
	"jellysync/internal/jellyfin"
)

// The server counts time in 100-nanosecond ticks.
const ticksPerSecond = 10_000_000

// Applied when a daily schedule declares no time.
const defaultDailyTime = "03:00"

// ErrMalformedSchedule reports a daily time that is not HH:MM.
var ErrMalformedSchedule = errors.New("malformed schedule time")

// Translate converts a declared task schedule into the trigger list to write.
//
// A disabled task yields an empty list, which clears the schedule server-side.
// So does a task with no recognized schedule key: the caller still writes the
// empty list, wiping any existing triggers. That matches the server-facing
// behavior this tool has always had and is relied upon to disable schedules.
func Translate(task config.Task) ([]jellyfin.TaskTrigger, error) {
	if !task.IsEnabled() {
		return []jellyfin.TaskTrigger{}, nil
	}

	if task.IntervalMinutes != nil {
		ticks := int64(*task.IntervalMinutes) * 60 * ticksPerSecond
		return []jellyfin.TaskTrigger{{
			Type:          jellyfin.TriggerInterval,
			IntervalTicks: &ticks,
		}}, nil
	}

	if task.Schedule == "daily" {
		hours, minutes, err := parseClock(task.Time)
		if err != nil {
			return nil, err
		}
		ticks := int64(hours*3600+minutes*60) * ticksPerSecond
		return []jellyfin.TaskTrigger{{
			Type:           jellyfin.TriggerDaily,
			TimeOfDayTicks: &ticks,
		}}, nil
	}

	return []jellyfin.TaskTrigger{}, nil
}

// parseClock parses HH:MM as exactly two colon-separated integers. Values are
// not range-checked beyond integer parsing.
func parseClock(value string) (int, int, error) {
	if strings.TrimSpace(value) == "" {
		value = defaultDailyTime
	}
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q is not HH:MM", ErrMalformedSchedule, value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not HH:MM", ErrMalformedSchedule, value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not HH:MM", ErrMalformedSchedule, value)
	}
	return hours, minutes, nil
}
