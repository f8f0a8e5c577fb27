package commands

import (
	"flag"
	"fmt"
	"log"

	"github.com/zbst/ad-schemas/internal/config"
	"github.com/zbst/ad-schemas/internal/schemastore"
	"github.com/zbst/ad-schemas/internal/validator"
)

// ValidateCommand checks every stored schema file: JSON syntax, the $id
// naming convention, and conformance to the Draft-07 meta-schema. It
// returns an error (non-zero exit) if any file fails.
func ValidateCommand(args []string) error {
	cfg := config.NewConfig()

	flags := flag.NewFlagSet("validate", flag.ExitOnError)
	schemasDir := flags.String("schemas", cfg.SchemasDir, "Root directory of the schema tree")
	if err := flags.Parse(args); err != nil {
		return err
	}

	v := validator.New(schemastore.New(*schemasDir))

	files, err := v.Files()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found under %s", schemastore.Extension, *schemasDir)
	}

	log.Printf("Validating %d schemas under %s...\n", len(files), *schemasDir)

	validCount := 0
	for _, rel := range files {
		if err := v.ValidateSchema(rel); err != nil {
			log.Printf("  ❌ %s: %v", rel, err)
		} else {
			log.Printf("  ✅ %s", rel)
			validCount++
		}
	}

	errorCount := len(files) - validCount
	log.Printf("\nResults: %d valid, %d errors", validCount, errorCount)

	if errorCount > 0 {
		return fmt.Errorf("validation failed for %d of %d schemas", errorCount, len(files))
	}
	return nil
}
