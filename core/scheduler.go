package core

// Task represents a scheduled unit of work
type Task struct {
	WakeTime uint32
	Handler  func(*Task) uint8
	Next     *Task
}

const (
	SF_DONE       = 0
	SF_RESCHEDULE = 1
)

var (
	taskList    *Task
	currentTime uint32
)

// timeBefore reports whether a is earlier than b, tolerating counter wrap
func timeBefore(a, b uint32) bool {
	return int32(a-b) < 0
}

// ScheduleTask adds a task to the schedule
func ScheduleTask(t *Task) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	insertTask(t)
}

// insertTask inserts a task in sorted order by WakeTime
// Tasks with equal WakeTime run in insertion order
func insertTask(t *Task) {
	if taskList == nil || timeBefore(t.WakeTime, taskList.WakeTime) {
		t.Next = taskList
		taskList = t
		return
	}

	current := taskList
	for current.Next != nil && !timeBefore(t.WakeTime, current.Next.WakeTime) {
		current = current.Next
	}

	t.Next = current.Next
	current.Next = t
}

// TaskDispatch runs due tasks on the calling context
// Handlers run with interrupts enabled so they may sleep or block on a bus.
// A handler that reschedules itself must move WakeTime past the current time.
func TaskDispatch() {
	for {
		state := disableInterrupts()
		task := taskList
		if task == nil || timeBefore(currentTime, task.WakeTime) {
			restoreInterrupts(state)
			return
		}
		taskList = task.Next
		task.Next = nil
		restoreInterrupts(state)

		result := task.Handler(task)

		// Reschedule if requested
		if result == SF_RESCHEDULE {
			ScheduleTask(task)
		}
	}
}

// NewPeriodicTask returns a task that runs fn every period ticks,
// first at GetTime()+period. The task still has to be scheduled.
func NewPeriodicTask(period uint32, fn func()) *Task {
	if period == 0 {
		period = 1
	}
	return &Task{
		WakeTime: GetTime() + period,
		Handler: func(t *Task) uint8 {
			fn()
			t.WakeTime += period
			// Skip missed periods instead of running a burst
			if !timeBefore(currentTime, t.WakeTime) {
				t.WakeTime = currentTime + period
			}
			return SF_RESCHEDULE
		},
	}
}

// ResetTasks drops every pending task
func ResetTasks() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	taskList = nil
}
