package display

import (
	"time"
)

// Scheduler runs a task once after a delay on a goroutine of its own. There
// is no cancellation; the task must tolerate running after its popup is
// already gone.
type Scheduler interface {
	Schedule(after time.Duration, task func())
}

// TimerScheduler schedules tasks with time.AfterFunc.
type TimerScheduler struct{}

// Schedule implements Scheduler.
func (TimerScheduler) Schedule(after time.Duration, task func()) {
	time.AfterFunc(after, task)
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(after time.Duration, task func())

// Schedule implements Scheduler.
func (f SchedulerFunc) Schedule(after time.Duration, task func()) {
	f(after, task)
}
