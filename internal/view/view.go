// Package view derives grouped, display-ready data from the task collection.
package view

import (
	"sort"

	"github.com/SaraLubadah/planner/internal/task"
)

// Group holds one subject and its ordered tasks.
type Group struct {
	Subject string
	Tasks   []task.Task
}

// Count returns the number of tasks in the group.
func (g *Group) Count() int {
	return len(g.Tasks)
}

// Overview is the grouped presentation of the whole collection.
type Overview struct {
	Groups []Group
}

// Total returns the number of tasks across all groups.
func (o *Overview) Total() int {
	n := 0
	for i := range o.Groups {
		n += len(o.Groups[i].Tasks)
	}
	return n
}

// Build groups tasks by subject and orders both the groups and the
// tasks within each group deterministically. It is a pure function of
// its input: the collection is never mutated and repeated calls yield
// identical output.
//
// Groups are ordered alphabetically by subject (exact string match,
// case-sensitive). Within a group, tasks are ordered by:
//  1. completed: incomplete before completed
//  2. due date: earlier before later
//  3. priority: high before medium before low
//
// An empty collection returns nil so the caller can show a
// placeholder instead of an empty grouping.
func Build(tasks []task.Task) *Overview {
	if len(tasks) == 0 {
		return nil
	}

	bySubject := make(map[string][]task.Task)
	for _, t := range tasks {
		bySubject[t.Subject] = append(bySubject[t.Subject], t)
	}

	subjects := make([]string, 0, len(bySubject))
	for subject := range bySubject {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)

	o := &Overview{Groups: make([]Group, 0, len(subjects))}
	for _, subject := range subjects {
		grouped := bySubject[subject]
		sortTasks(grouped)
		o.Groups = append(o.Groups, Group{Subject: subject, Tasks: grouped})
	}
	return o
}

// sortTasks orders tasks by the composite display key.
// SliceStable keeps tasks that compare equal in their input order.
func sortTasks(tasks []task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if a.DueDate != b.DueDate {
			return a.DueDate < b.DueDate
		}
		return a.Priority.Rank() < b.Priority.Rank()
	})
}
