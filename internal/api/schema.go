package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const todoListSchemaURL = "todolist.schema.json"

// todoListSchema describes the GET /todos payload: an array of items that carry
// an id under either "_id" or "id". Title and description are optional but
// must be strings when present.
const todoListSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "_id": {"type": ["string", "integer"]},
      "id": {"type": ["string", "integer"]},
      "title": {"type": "string"},
      "description": {"type": "string"}
    },
    "anyOf": [
      {"required": ["_id"]},
      {"required": ["id"]}
    ]
  }
}`

var (
	listSchemaOnce sync.Once
	listSchema     *jsonschema.Schema
	listSchemaErr  error
)

func compiledListSchema() (*jsonschema.Schema, error) {
	listSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(todoListSchemaURL, strings.NewReader(todoListSchema)); err != nil {
			listSchemaErr = fmt.Errorf("failed to load list schema: %w", err)
			return
		}
		listSchema, listSchemaErr = compiler.Compile(todoListSchemaURL)
	})
	return listSchema, listSchemaErr
}

// ValidateTodoList checks a raw GET /todos body against the list schema.
func ValidateTodoList(body []byte) error {
	schema, err := compiledListSchema()
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPayload, firstSchemaCause(err))
	}
	return nil
}

// firstSchemaCause returns the deepest message of a validation error, which
// names the offending location instead of the generic top-level failure.
func firstSchemaCause(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if ve.InstanceLocation == "" {
		return ve.Message
	}
	return ve.InstanceLocation + ": " + ve.Message
}
