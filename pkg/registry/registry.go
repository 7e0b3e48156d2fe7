// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ActivityRegistry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

// Find returns the activity registered for a task type.
func (r *ActivityRegistry) Find(taskType string) (*Activity, bool) {
	for i := range r.Activities {
		if r.Activities[i].TaskType == taskType {
			return &r.Activities[i], true
		}
	}
	return nil, false
}

// ValidateRaw checks a raw job variable payload against the activity's
// input schema. Payloads that do not decode to a JSON object are
// rejected before schema evaluation.
func (a *Activity) ValidateRaw(raw []byte) error {
	if a.InputSchema == nil {
		return nil
	}
	var vars map[string]interface{}
	if err := json.Unmarshal(raw, &vars); err != nil {
		return fmt.Errorf("variables are not a JSON object: %w", err)
	}
	return a.ValidateInput(vars)
}

// ValidateInput checks job variables against the activity's input schema.
func (a *Activity) ValidateInput(vars map[string]interface{}) error {
	if a.InputSchema == nil {
		return nil
	}

	schemaLoader := gojsonschema.NewGoLoader(a.InputSchema)
	documentLoader := gojsonschema.NewGoLoader(vars)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := ""
		for _, e := range result.Errors() {
			if errs != "" {
				errs += "; "
			}
			errs += e.String()
		}
		return fmt.Errorf("input does not match schema for %s: %s", a.TaskType, errs)
	}

	return nil
}
