package envelope

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/blueprint.schema.json
var schemaBytes []byte

// Validate checks a serialized document (the JSON Encode produces, before
// compression) against the embedded blueprint schema.
func Validate(jsonBytes []byte) error {
	compiler := jsonschema.NewCompiler()
	const resourceName = "blueprint.schema.json"
	if err := compiler.AddResource(resourceName, bytes.NewReader(schemaBytes)); err != nil {
		return fmt.Errorf("envelope: add schema resource: %w", err)
	}
	schema, err := compiler.Compile(resourceName)
	if err != nil {
		return fmt.Errorf("envelope: compile schema: %w", err)
	}

	var v any
	if err := json.Unmarshal(jsonBytes, &v); err != nil {
		return fmt.Errorf("envelope: unmarshal for validation: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("envelope: schema validation: %w", err)
	}
	return nil
}
