// Package reminder classifies tasks as overdue or due today.
package reminder

import (
	"time"

	"github.com/SaraLubadah/planner/internal/task"
)

// Report holds the reminder sets for one evaluation.
type Report struct {
	Overdue  []task.Task
	DueToday []task.Task
}

// OverdueCount returns the number of overdue tasks.
func (r *Report) OverdueCount() int {
	return len(r.Overdue)
}

// DueTodayCount returns the number of tasks due today.
func (r *Report) DueTodayCount() int {
	return len(r.DueToday)
}

// Today returns the current local date in the task date format.
func Today() string {
	return time.Now().Format(task.DateFormat)
}

// Evaluate computes the reminder state for the collection at the
// given date. It is a pure function and is recomputed in full after
// every store mutation; the dataset is small and local, so no
// incremental bookkeeping is kept.
//
// A task is overdue when it is incomplete and due strictly before
// today, and due today when it is incomplete and due exactly today.
// ISO date strings compare in calendar order, so plain string
// comparison is the date comparison.
//
// When nothing is due, Evaluate returns nil so callers can hide the
// reminder area entirely rather than render empty lists.
func Evaluate(tasks []task.Task, today string) *Report {
	var r Report
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		switch {
		case t.DueDate < today:
			r.Overdue = append(r.Overdue, t)
		case t.DueDate == today:
			r.DueToday = append(r.DueToday, t)
		}
	}
	if len(r.Overdue) == 0 && len(r.DueToday) == 0 {
		return nil
	}
	return &r
}
