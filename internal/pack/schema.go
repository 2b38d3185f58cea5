package pack

import (
	_ "embed"
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed openpeon.schema.json
var schemaJSON string

var manifestSchema = jsonschema.MustCompileString("openpeon.schema.json", schemaJSON)

// validate checks raw manifest bytes against the CESP schema.
func validate(data []byte) error {
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return err
	}
	return manifestSchema.Validate(instance)
}
