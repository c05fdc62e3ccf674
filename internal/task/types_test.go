package task

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tasks.json")

	now := time.Now().UTC().Truncate(time.Second)
	original := &File{
		SchemaVersion: 1,
		Tasks: []Task{
			{
				ID:          "a1",
				Subject:     "Math",
				Description: "Chapter 4 exercises",
				DueDate:     "2024-03-01",
				Priority:    PriorityMedium,
				Completed:   false,
				CreatedAt:   now,
			},
		},
	}

	// Save
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify field-for-field
	if loaded.SchemaVersion != original.SchemaVersion {
		t.Errorf("SchemaVersion: got %d, want %d", loaded.SchemaVersion, original.SchemaVersion)
	}
	if len(loaded.Tasks) != 1 {
		t.Fatalf("Tasks count: got %d, want 1", len(loaded.Tasks))
	}
	got, want := loaded.Tasks[0], original.Tasks[0]
	if got.ID != want.ID || got.Subject != want.Subject || got.Description != want.Description {
		t.Errorf("text fields: got %+v, want %+v", got, want)
	}
	if got.DueDate != want.DueDate || got.Priority != want.Priority || got.Completed != want.Completed {
		t.Errorf("state fields: got %+v, want %+v", got, want)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("CreatedAt: got %v, want %v", got.CreatedAt, want.CreatedAt)
	}
}

func TestValidateMinimal(t *testing.T) {
	valid := Task{ID: "a1", Subject: "Math", DueDate: "2024-03-01", Priority: PriorityHigh}

	tests := []struct {
		name    string
		file    *File
		wantErr bool
	}{
		{
			name:    "valid file",
			file:    &File{SchemaVersion: 1, Tasks: []Task{valid}},
			wantErr: false,
		},
		{
			name:    "empty subject accepted",
			file:    &File{SchemaVersion: 1, Tasks: []Task{{ID: "a1", DueDate: "2024-03-01", Priority: PriorityLow}}},
			wantErr: false,
		},
		{
			name:    "missing schema_version",
			file:    &File{Tasks: []Task{valid}},
			wantErr: true,
		},
		{
			name:    "wrong schema_version",
			file:    &File{SchemaVersion: 2, Tasks: []Task{valid}},
			wantErr: true,
		},
		{
			name:    "missing tasks",
			file:    &File{SchemaVersion: 1},
			wantErr: true,
		},
		{
			name:    "task missing id",
			file:    &File{SchemaVersion: 1, Tasks: []Task{{Subject: "Math", DueDate: "2024-03-01", Priority: PriorityLow}}},
			wantErr: true,
		},
		{
			name:    "duplicate ids",
			file:    &File{SchemaVersion: 1, Tasks: []Task{valid, valid}},
			wantErr: true,
		},
		{
			name:    "due date not a date",
			file:    &File{SchemaVersion: 1, Tasks: []Task{{ID: "a1", DueDate: "soon", Priority: PriorityLow}}},
			wantErr: true,
		},
		{
			name:    "due date out of range",
			file:    &File{SchemaVersion: 1, Tasks: []Task{{ID: "a1", DueDate: "2024-02-30", Priority: PriorityLow}}},
			wantErr: true,
		},
		{
			name:    "invalid priority",
			file:    &File{SchemaVersion: 1, Tasks: []Task{{ID: "a1", DueDate: "2024-03-01", Priority: "urgent"}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.file.Validate(ValidationOptions{})
			if result.Valid == tt.wantErr {
				t.Errorf("Validate() valid = %v, want error %v", result.Valid, tt.wantErr)
			}
		})
	}
}

func TestValidateWithSchema(t *testing.T) {
	tmpDir := t.TempDir()
	schemaPath := filepath.Join(tmpDir, "tasks.schema.json")
	if err := os.WriteFile(schemaPath, []byte(DefaultSchema), 0644); err != nil {
		t.Fatalf("write schema: %v", err)
	}

	f := &File{
		SchemaVersion: 1,
		Tasks: []Task{
			{ID: "a1", Subject: "Math", DueDate: "2024-03-01", Priority: PriorityHigh, CreatedAt: time.Now().UTC()},
		},
	}
	result := f.Validate(ValidationOptions{SchemaPath: schemaPath})
	if !result.UsedSchema {
		t.Fatal("expected schema validation to run")
	}
	if !result.Valid {
		t.Fatalf("expected valid, got errors: %v", result.Errors)
	}

	f.Tasks[0].Priority = "urgent"
	result = f.Validate(ValidationOptions{SchemaPath: schemaPath})
	if result.Valid {
		t.Error("expected schema validation to reject invalid priority")
	}
}

func TestValidateSchemaMissingFallsBack(t *testing.T) {
	f := &File{SchemaVersion: 1, Tasks: []Task{}}
	result := f.Validate(ValidationOptions{SchemaPath: filepath.Join(t.TempDir(), "nope.json")})
	if result.UsedSchema {
		t.Error("expected fallback to minimal checks")
	}
	if !result.Valid {
		t.Errorf("expected valid, got errors: %v", result.Errors)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning about the missing schema")
	}
}

func TestGet(t *testing.T) {
	f := &File{
		Tasks: []Task{
			{ID: "a1", Subject: "Math", DueDate: "2024-03-01", Priority: PriorityLow},
			{ID: "a2", Subject: "History", DueDate: "2024-03-02", Priority: PriorityLow},
		},
	}

	// Existing task
	task := f.Get("a2")
	if task == nil {
		t.Fatal("Get(a2) returned nil")
	}
	if task.Subject != "History" {
		t.Errorf("Subject: got %s, want History", task.Subject)
	}

	// Non-existing task
	task = f.Get("missing")
	if task != nil {
		t.Errorf("Get(missing) should return nil, got %+v", task)
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"", PriorityMedium, false},
		{"low", PriorityLow, false},
		{"Medium", PriorityMedium, false},
		{" HIGH ", PriorityHigh, false},
		{"urgent", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePriority(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePriority(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePriority(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPriorityRank(t *testing.T) {
	if !(PriorityHigh.Rank() < PriorityMedium.Rank() && PriorityMedium.Rank() < PriorityLow.Rank()) {
		t.Error("priority rank order should be high < medium < low")
	}
}
