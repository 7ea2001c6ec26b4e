package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "posteingang-rules.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// rulesSchema compiles BuildRulesJSONSchema once per process; every rules
// document, the embedded one included, is checked against it.
func rulesSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		raw, err := json.Marshal(BuildRulesJSONSchema())
		if err != nil {
			compileErr = fmt.Errorf("marshal rules schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, bytes.NewReader(raw)); err != nil {
			compileErr = fmt.Errorf("add rules schema: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateDocument checks a rules document that was decoded from YAML and
// re-encoded as JSON. The error names the offending path, e.g.
// "/domain_staff/0/staff".
func validateDocument(asJSON []byte) error {
	schema, err := rulesSchema()
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(asJSON, &doc); err != nil {
		return fmt.Errorf("decode rules json: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("rules rejected: %w", err)
	}
	return nil
}
