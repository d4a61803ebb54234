package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// descriptorSchema is a minimal JSON Schema for sfdx-project.json covering
// the fields sf-preflight reads. Validation produces warnings only; a
// descriptor that fails it is still parsed best-effort.
const descriptorSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Salesforce DX Project Descriptor",
  "type": "object",
  "required": ["packageDirectories"],
  "properties": {
    "name": {
      "type": "string"
    },
    "namespace": {
      "type": "string"
    },
    "sourceApiVersion": {
      "type": "string",
      "pattern": "^[0-9]+\\.[0-9]+$"
    },
    "sfdcLoginUrl": {
      "type": "string"
    },
    "packageDirectories": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["path"],
        "properties": {
          "path": {"type": "string"},
          "default": {"type": "boolean"}
        }
      }
    }
  }
}`

// ValidateDescriptor checks the descriptor at the given workspace root
// against the schema and returns human-readable warnings. A missing or
// unreadable descriptor yields an error; malformed JSON yields a single
// warning instead of failing.
func ValidateDescriptor(root string) ([]string, error) {
	path := filepath.Join(root, DescriptorName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project descriptor: %w", err)
	}

	schemaLoader := gojsonschema.NewStringLoader(descriptorSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return []string{fmt.Sprintf("descriptor is not valid JSON: %v", err)}, nil
	}

	var warnings []string
	for _, desc := range result.Errors() {
		warnings = append(warnings, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return warnings, nil
}
