//go:build ignore

// gen_schema.go generates a JSON schema for the .wilderrc registry record and writes
// it to wilderrc.schema.json.
//
// Usage:
//
//	go run gen_schema.go [output-path]
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/devantler-tech/wilder/pkg/io/configstore"
	"github.com/invopop/jsonschema"
)

const (
	dirPermissions  = 0o750
	filePermissions = 0o600
)

// registryPattern matches what registry.Normalize produces.
const registryPattern = "^https?://[^/]+/(.*/)?$"

func main() {
	if err := run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(&configstore.RegistryConfig{})

	customizeSchema(schema)

	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	outputPath := "wilderrc.schema.json"
	if len(args) > 1 {
		outputPath = args[1]
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), dirPermissions); err != nil {
		return fmt.Errorf("create directory for %s: %w", outputPath, err)
	}

	if err := os.WriteFile(outputPath, append(schemaJSON, '\n'), filePermissions); err != nil {
		return fmt.Errorf("write schema to %s: %w", outputPath, err)
	}

	fmt.Printf("gen_schema: wrote %s (%d bytes)\n", outputPath, len(schemaJSON))

	return nil
}

// customizeSchema applies all schema customizations.
func customizeSchema(schema *jsonschema.Schema) {
	schema.ID = ""
	schema.Title = "Wilder Registry Record"
	schema.Description = "JSON schema for the registry record Wilder keeps in " + configstore.FileName

	if schema.Properties == nil {
		return
	}

	if p, ok := schema.Properties.Get("registry"); ok && p != nil {
		p.Pattern = registryPattern
	}
}
