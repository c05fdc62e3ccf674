package task

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Store owns the canonical task collection and its persistence.
// Every mutating operation ends with a full write of the collection;
// the in-memory state stays authoritative if the write fails.
type Store struct {
	path   string
	logger *log.Logger
	file   *File
}

// Open creates a Store backed by the task file at path.
// A missing or malformed file is not an error: the collection starts
// empty and the discarded data is logged.
func Open(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{
		path:   path,
		logger: logger,
	}
	s.load()
	return s
}

// Path returns the task file path backing the store.
func (s *Store) Path() string {
	return s.path
}

// load reads the task file, resetting to an empty collection when the
// file is missing or cannot be parsed.
func (s *Store) load() {
	f, err := Load(s.path)
	if err != nil {
		if !isNotExist(err) {
			s.logger.Warn("discarding malformed task file", "path", s.path, "err", err)
		}
		s.file = NewFile()
		return
	}
	if f.SchemaVersion != SchemaVersion {
		s.logger.Warn("discarding task file with unknown schema version",
			"path", s.path, "schema_version", f.SchemaVersion)
		s.file = NewFile()
		return
	}
	if f.Tasks == nil {
		f.Tasks = []Task{}
	}
	// Structurally valid JSON can still carry bad task data. Anything
	// that breaks the collection invariants is discarded, not repaired.
	if result := f.Validate(ValidationOptions{}); !result.Valid {
		s.logger.Warn("discarding invalid task file",
			"path", s.path, "errors", errorsSummary(result.Errors))
		s.file = NewFile()
		return
	}
	s.file = f
}

// Tasks returns a copy of the task collection.
// Display order is always derived by callers, never stored.
func (s *Store) Tasks() []Task {
	tasks := make([]Task, len(s.file.Tasks))
	copy(tasks, s.file.Tasks)
	return tasks
}

// Len returns the number of tasks in the collection.
func (s *Store) Len() int {
	return len(s.file.Tasks)
}

// Get returns a copy of the task with the given id.
func (s *Store) Get(id string) (Task, bool) {
	if t := s.file.Get(id); t != nil {
		return *t, true
	}
	return Task{}, false
}

// Add constructs a task with a fresh id and the current timestamp,
// appends it, and persists. Text fields are trimmed; an empty subject
// or description is accepted. The due date must be a real calendar
// date in DateFormat.
func (s *Store) Add(subject, description, dueDate string, priority Priority) (Task, error) {
	dueDate = strings.TrimSpace(dueDate)
	if _, err := time.Parse(DateFormat, dueDate); err != nil {
		return Task{}, fmt.Errorf("invalid due date %q: expected %s", dueDate, DateFormat)
	}
	if priority == "" {
		priority = PriorityMedium
	}
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return Task{}, fmt.Errorf("invalid priority %q, must be one of: low, medium, high", priority)
	}

	t := Task{
		ID:          uuid.NewString(),
		Subject:     strings.TrimSpace(subject),
		Description: strings.TrimSpace(description),
		DueDate:     dueDate,
		Priority:    priority,
		Completed:   false,
		CreatedAt:   time.Now().UTC(),
	}
	s.file.Tasks = append(s.file.Tasks, t)
	return t, s.Persist()
}

// ToggleComplete flips the completed flag on the task with the given
// id and persists. An unknown id is a silent no-op, so repeated or
// stale gestures stay safe.
func (s *Store) ToggleComplete(id string) error {
	t := s.file.Get(id)
	if t == nil {
		return nil
	}
	t.Completed = !t.Completed
	return s.Persist()
}

// Remove deletes the task with the given id and persists.
// An unknown id is a silent no-op.
func (s *Store) Remove(id string) error {
	for i := range s.file.Tasks {
		if s.file.Tasks[i].ID == id {
			s.file.Tasks = append(s.file.Tasks[:i], s.file.Tasks[i+1:]...)
			return s.Persist()
		}
	}
	return nil
}

// RemoveCompleted deletes every completed task and persists.
// It returns the number of tasks removed.
func (s *Store) RemoveCompleted() (int, error) {
	kept := s.file.Tasks[:0]
	removed := 0
	for _, t := range s.file.Tasks {
		if t.Completed {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.file.Tasks = kept
	return removed, s.Persist()
}

// Persist writes the full collection to the task file. This is the
// only write path to storage.
func (s *Store) Persist() error {
	if err := s.file.Save(s.path); err != nil {
		return fmt.Errorf("persist tasks: %w", err)
	}
	return nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func errorsSummary(errs []error) string {
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}
