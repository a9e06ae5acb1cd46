package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/grovetools/gametidy/config"
	"github.com/invopop/jsonschema"
)

const schemaFile = "gtidy.schema.json"

// configSchema reflects config.Config using its yaml field names.
func configSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&config.Config{})
	schema.Title = "gtidy Configuration"
	schema.Description = "Schema for " + config.DefaultPath + "."
	return schema
}

func main() {
	data, err := json.MarshalIndent(configSchema(), "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling schema: %v", err)
	}

	if err := os.WriteFile(schemaFile, data, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Wrote %s", schemaFile)
}
