// Package schedule translates declarative task schedules into the server's
// tick-based trigger objects and locates scheduled tasks by display name.
//
// Ticks are 100-nanosecond units, so one second is 10,000,000 ticks. The
// translation deliberately mirrors the server's conventions: a disabled task
// (or one with no recognized schedule) translates to an empty trigger list,
// and writing an empty list clears the task's schedule on the server.
package schedule
