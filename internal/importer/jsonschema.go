package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const planSchemaURL = "https://atelier.local/schemas/plan-file.schema.json"

// planSchemaJSON checks the shape of an import document. It is deliberately
// loose about record content: every record field is optional and unknown
// fields are allowed, since the normalizer supplies defaults.
const planSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["plan"],
  "additionalProperties": false,
  "properties": {
    "plan": {
      "type": "object",
      "required": ["shortId", "name"],
      "properties": {
        "shortId": {"type": "string", "minLength": 1},
        "name": {"type": "string", "minLength": 1},
        "owner": {"type": "string"},
        "activity": {"type": "string"},
        "currency": {"type": "string", "pattern": "^[A-Za-z]{3}$"}
      }
    },
    "milestones": {"type": "array", "items": {"$ref": "#/$defs/milestone"}},
    "tasks": {"type": "array", "items": {"$ref": "#/$defs/task"}},
    "canvas": {"type": "array", "items": {"$ref": "#/$defs/record"}},
    "pricing": {"type": "array", "items": {"$ref": "#/$defs/pricing"}},
    "segments": {"type": "array", "items": {"$ref": "#/$defs/segment"}},
    "competitors": {"type": "array", "items": {"$ref": "#/$defs/competitor"}},
    "opportunities": {"type": "array", "items": {"$ref": "#/$defs/record"}},
    "trends": {"type": "array", "items": {"$ref": "#/$defs/record"}},
    "riskClients": {"type": "array", "items": {"$ref": "#/$defs/riskClient"}}
  },
  "$defs": {
    "strings": {"type": "array", "items": {"type": "string"}},
    "record": {
      "type": "object",
      "properties": {
        "id": {"type": "string"},
        "createdAt": {"type": "string"},
        "updatedAt": {"type": "string"}
      }
    },
    "milestone": {
      "$ref": "#/$defs/record",
      "properties": {
        "isCompleted": {"type": "boolean"},
        "completed": {"type": "boolean"},
        "progress": {"type": "number"},
        "taskCount": {"type": "integer", "minimum": 0},
        "completedTaskCount": {"type": "integer", "minimum": 0}
      }
    },
    "task": {
      "$ref": "#/$defs/record",
      "properties": {
        "completed": {"type": "boolean"},
        "estimatedHours": {"type": "number"},
        "estimatedTime": {"type": "number"},
        "actualHours": {"type": "number"},
        "dependencies": {"$ref": "#/$defs/strings"},
        "dependsOn": {"$ref": "#/$defs/strings"},
        "tags": {"$ref": "#/$defs/strings"},
        "labels": {"$ref": "#/$defs/strings"},
        "comments": {"type": "array", "items": {"type": "object"}},
        "subTasks": {"type": "array", "items": {"$ref": "#/$defs/record"}},
        "subtasks": {"type": "array", "items": {"$ref": "#/$defs/record"}}
      }
    },
    "pricing": {
      "$ref": "#/$defs/record",
      "properties": {
        "hourlyRate": {"type": "number"},
        "rate": {"type": "number"},
        "price": {"type": "number"},
        "amount": {"type": "number"},
        "hours": {"type": "number"},
        "minPrice": {"type": "number"},
        "maxPrice": {"type": "number"},
        "deliverables": {"$ref": "#/$defs/strings"},
        "includes": {"$ref": "#/$defs/strings"}
      }
    },
    "segment": {
      "$ref": "#/$defs/record",
      "properties": {
        "needs": {"$ref": "#/$defs/strings"},
        "problems": {"$ref": "#/$defs/strings"}
      }
    },
    "competitor": {
      "$ref": "#/$defs/record",
      "properties": {
        "strengths": {"$ref": "#/$defs/strings"},
        "weaknesses": {"$ref": "#/$defs/strings"}
      }
    },
    "riskClient": {
      "$ref": "#/$defs/record",
      "properties": {
        "incidents": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "id": {"type": "string"},
              "amount": {"type": "number"},
              "resolved": {"type": "boolean"}
            }
          }
        }
      }
    }
  }
}`

var compiledPlanSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(planSchemaURL, strings.NewReader(planSchemaJSON)); err != nil {
		return nil, fmt.Errorf("plan schema load failed: %w", err)
	}
	sch, err := c.Compile(planSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("plan schema compile failed: %w", err)
	}
	return sch, nil
})

// ValidateDocument checks raw import JSON against the plan file schema and
// returns one error per violated constraint.
func ValidateDocument(data []byte) []error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return []error{fmt.Errorf("parsing import file: %w", err)}
	}
	sch, err := compiledPlanSchema()
	if err != nil {
		return []error{err}
	}
	if err := sch.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return flattenValidation(ve, nil)
		}
		return []error{err}
	}
	return nil
}

func flattenValidation(ve *jsonschema.ValidationError, errs []error) []error {
	if len(ve.Causes) == 0 {
		return append(errs, fmt.Errorf("%s: %s", fieldPath(ve.InstanceLocation), ve.Message))
	}
	for _, c := range ve.Causes {
		errs = flattenValidation(c, errs)
	}
	return errs
}

// fieldPath renders a JSON pointer such as "/tasks/0/title" as
// "tasks[0].title".
func fieldPath(pointer string) string {
	if pointer == "" || pointer == "/" {
		return "(root)"
	}
	var b strings.Builder
	for _, seg := range strings.Split(strings.TrimPrefix(pointer, "/"), "/") {
		seg = strings.ReplaceAll(strings.ReplaceAll(seg, "~1", "/"), "~0", "~")
		if _, err := strconv.Atoi(seg); err == nil {
			b.WriteString("[" + seg + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}
