package task

// DefaultSchema is the JSON Schema for the task file. The init
// command writes it to tasks.schema.json; doctor validates against it.
const DefaultSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "Planner task file",
  "type": "object",
  "required": ["schema_version", "tasks"],
  "additionalProperties": false,
  "properties": {
    "schema_version": {
      "const": 1
    },
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "subject", "due_date", "priority", "completed", "created_at"],
        "additionalProperties": false,
        "properties": {
          "id": {
            "type": "string",
            "minLength": 1
          },
          "subject": {
            "type": "string"
          },
          "description": {
            "type": "string"
          },
          "due_date": {
            "type": "string",
            "pattern": "^\\d{4}-\\d{2}-\\d{2}$"
          },
          "priority": {
            "enum": ["low", "medium", "high"]
          },
          "completed": {
            "type": "boolean"
          },
          "created_at": {
            "type": "string",
            "format": "date-time"
          }
        }
      }
    }
  }
}
`
