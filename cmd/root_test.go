// Package cmd provides tests for CLI command handlers.
package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SaraLubadah/planner/internal/task"
)

// setup isolates HOME and the working directory so commands never see
// a real config or task file, and returns the task file path.
func setup(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	work := t.TempDir()
	t.Chdir(work)
	return filepath.Join(work, "tasks.json")
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	return Run(context.Background(), args)
}

func loadTasks(t *testing.T, path string) []task.Task {
	t.Helper()
	f, err := task.Load(path)
	if err != nil {
		t.Fatalf("loading task file: %v", err)
	}
	return f.Tasks
}

func TestRun(t *testing.T) {
	t.Run("shows help with --help flag", func(t *testing.T) {
		setup(t)
		if err := run(t, "--help"); err != nil {
			t.Errorf("expected no error with --help, got %v", err)
		}
	})

	t.Run("shows version with -v flag", func(t *testing.T) {
		setup(t)
		if err := run(t, "-v"); err != nil {
			t.Errorf("expected no error with -v, got %v", err)
		}
	})

	t.Run("unknown command returns error", func(t *testing.T) {
		setup(t)
		err := run(t, "unknown-command")
		if err == nil {
			t.Error("expected error for unknown command, got nil")
		}
		if !strings.Contains(err.Error(), "unknown command") {
			t.Errorf("expected 'unknown command' error, got %v", err)
		}
	})

	t.Run("ls works with no task file", func(t *testing.T) {
		setup(t)
		if err := run(t, "ls"); err != nil {
			t.Errorf("ls failed: %v", err)
		}
	})
}

func TestAddCommand(t *testing.T) {
	path := setup(t)

	err := run(t, "add", "-subject", " Math ", "-desc", "Chapter 4", "-due", "2030-03-01", "-priority", "high")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	tasks := loadTasks(t, path)
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	got := tasks[0]
	if got.Subject != "Math" || got.Description != "Chapter 4" {
		t.Errorf("text fields: got %+v", got)
	}
	if got.DueDate != "2030-03-01" || got.Priority != task.PriorityHigh || got.Completed {
		t.Errorf("state fields: got %+v", got)
	}
	if got.ID == "" || got.CreatedAt.IsZero() {
		t.Errorf("id/timestamp not set: %+v", got)
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	setup(t)

	if err := run(t, "add", "-subject", "Math", "-due", "not-a-date"); err == nil {
		t.Error("expected an error for a bad due date")
	}
	if err := run(t, "add", "-subject", "Math", "-due", "2030-03-01", "-priority", "urgent"); err == nil {
		t.Error("expected an error for a bad priority")
	}
}

func TestDoneCommand(t *testing.T) {
	path := setup(t)

	if err := run(t, "add", "-subject", "Math", "-due", "2030-03-01"); err != nil {
		t.Fatal(err)
	}
	id := loadTasks(t, path)[0].ID

	if err := run(t, "done", id); err != nil {
		t.Fatalf("done failed: %v", err)
	}
	if !loadTasks(t, path)[0].Completed {
		t.Error("task not marked completed")
	}

	// Toggling again restores the original value.
	if err := run(t, "done", id); err != nil {
		t.Fatalf("done failed: %v", err)
	}
	if loadTasks(t, path)[0].Completed {
		t.Error("second toggle should restore incomplete")
	}
}

func TestDoneAcceptsIDPrefix(t *testing.T) {
	path := setup(t)

	if err := run(t, "add", "-subject", "Math", "-due", "2030-03-01"); err != nil {
		t.Fatal(err)
	}
	id := loadTasks(t, path)[0].ID

	if err := run(t, "done", id[:8]); err != nil {
		t.Fatalf("done with prefix failed: %v", err)
	}
	if !loadTasks(t, path)[0].Completed {
		t.Error("prefix did not resolve to the task")
	}
}

func TestDoneRejectsEmptyID(t *testing.T) {
	path := setup(t)

	if err := run(t, "add", "-subject", "Math", "-due", "2030-03-01"); err != nil {
		t.Fatal(err)
	}

	// An empty id must not prefix-match every task.
	if err := run(t, "done", ""); err == nil {
		t.Error("expected an error for an empty id")
	}
	if loadTasks(t, path)[0].Completed {
		t.Error("empty id toggled a task")
	}
}

func TestDoneUnknownIDIsNoOp(t *testing.T) {
	path := setup(t)

	if err := run(t, "add", "-subject", "Math", "-due", "2030-03-01"); err != nil {
		t.Fatal(err)
	}

	if err := run(t, "done", "zzzz-nonexistent"); err != nil {
		t.Errorf("done on unknown id should be a no-op, got %v", err)
	}
	tasks := loadTasks(t, path)
	if len(tasks) != 1 || tasks[0].Completed {
		t.Errorf("collection changed: %+v", tasks)
	}
}

func TestRmCommand(t *testing.T) {
	path := setup(t)

	if err := run(t, "add", "-subject", "Math", "-due", "2030-03-01"); err != nil {
		t.Fatal(err)
	}
	if err := run(t, "add", "-subject", "History", "-due", "2030-04-01"); err != nil {
		t.Fatal(err)
	}
	tasks := loadTasks(t, path)
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}

	if err := run(t, "rm", "-y", tasks[0].ID); err != nil {
		t.Fatalf("rm failed: %v", err)
	}
	remaining := loadTasks(t, path)
	if len(remaining) != 1 || remaining[0].ID != tasks[1].ID {
		t.Errorf("wrong task removed: %+v", remaining)
	}

	// Removing an unknown id is a silent no-op.
	if err := run(t, "rm", "-y", "zzzz-nonexistent"); err != nil {
		t.Errorf("rm on unknown id should be a no-op, got %v", err)
	}
	if len(loadTasks(t, path)) != 1 {
		t.Error("collection changed by no-op rm")
	}
}

func TestClearCommand(t *testing.T) {
	path := setup(t)

	if err := run(t, "add", "-subject", "Math", "-due", "2030-03-01"); err != nil {
		t.Fatal(err)
	}
	if err := run(t, "add", "-subject", "History", "-due", "2030-04-01"); err != nil {
		t.Fatal(err)
	}
	id := loadTasks(t, path)[0].ID
	if err := run(t, "done", id); err != nil {
		t.Fatal(err)
	}

	if err := run(t, "clear", "-y"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	remaining := loadTasks(t, path)
	if len(remaining) != 1 {
		t.Fatalf("got %d tasks, want 1", len(remaining))
	}
	if remaining[0].Completed {
		t.Error("an incomplete task was removed")
	}
}

func TestRemindersCommand(t *testing.T) {
	setup(t)

	if err := run(t, "add", "-subject", "Math", "-due", "2000-01-01"); err != nil {
		t.Fatal(err)
	}
	if err := run(t, "reminders"); err != nil {
		t.Errorf("reminders failed: %v", err)
	}
}

func TestInitAndDoctor(t *testing.T) {
	path := setup(t)

	if err := run(t, "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	for _, f := range []string{"planner.toml", "tasks.schema.json", path} {
		if _, err := os.Stat(f); err != nil {
			t.Errorf("%s missing after init: %v", f, err)
		}
	}
	if _, err := task.Load(path); err != nil {
		t.Errorf("task file not readable after init: %v", err)
	}

	// Doctor should pass against the files init wrote.
	if err := run(t, "doctor"); err != nil {
		t.Errorf("doctor failed: %v", err)
	}

	// Second init is a no-op, not an error.
	if err := run(t, "init"); err != nil {
		t.Errorf("repeat init failed: %v", err)
	}
}

func TestDoctorRejectsInvalidFile(t *testing.T) {
	path := setup(t)

	f := &task.File{SchemaVersion: 1, Tasks: []task.Task{{ID: "a1", DueDate: "soon", Priority: "urgent"}}}
	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}

	if err := run(t, "doctor"); err == nil {
		t.Error("expected doctor to fail on an invalid task file")
	}
}
