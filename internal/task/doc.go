// Package task parses, validates, and updates the checklist file.
//
// The task file format (tasks.json) follows the schema defined in tasks.schema.json:
//
//	{
//	  "schema_version": 1,
//	  "tasks": [
//	    {
//	      "id": "5f0c9d3e-...",
//	      "subject": "Math",
//	      "description": "Chapter 4 exercises",
//	      "due_date": "2024-03-01",
//	      "priority": "medium",
//	      "completed": false,
//	      "created_at": "2024-01-01T00:00:00Z"
//	    }
//	  ]
//	}
//
// # Validation
//
// The package supports two validation modes:
//
// 1. JSON Schema validation (when a schema file is provided):
//   - Full validation against JSON Schema draft-2020-12
//   - Supports: type checking, required fields, enum values, formats
//
// 2. Minimal fallback validation (when no schema is available):
//   - Structural checks (schema_version, tasks presence)
//   - Task field validation (id presence and uniqueness, due date, priority enum)
//   - No external dependencies required
//
// # Priority Values
//
//   - "high": sorts first within equal due dates
//   - "medium": the default
//   - "low": sorts last
//
// # File Format
//
// When writing task files, the package uses:
//   - 2-space indentation
//   - Trailing newline
//   - Stable key ordering (via JSON marshaling)
package task
