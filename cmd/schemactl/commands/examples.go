package commands

import (
	"flag"
	"fmt"
	"log"

	"github.com/zbst/ad-schemas/internal/config"
	"github.com/zbst/ad-schemas/internal/schemastore"
	"github.com/zbst/ad-schemas/internal/validator"
)

// ExamplesCommand validates every embedded example instance against the
// schema that carries it. Schemas and their examples must stay consistent;
// any mismatch fails the batch.
func ExamplesCommand(args []string) error {
	cfg := config.NewConfig()

	flags := flag.NewFlagSet("examples", flag.ExitOnError)
	schemasDir := flags.String("schemas", cfg.SchemasDir, "Root directory of the schema tree")
	if err := flags.Parse(args); err != nil {
		return err
	}

	v := validator.New(schemastore.New(*schemasDir))

	files, err := v.Files()
	if err != nil {
		return err
	}

	validCount := 0
	exampleCount := 0
	for _, rel := range files {
		n, err := v.ValidateExamples(rel)
		if err != nil {
			log.Printf("  ❌ %s: %v", rel, err)
			continue
		}
		if n == 0 {
			log.Printf("  ⚠️  %s: no examples", rel)
		} else {
			log.Printf("  ✅ %s (%d examples)", rel, n)
		}
		validCount++
		exampleCount += n
	}

	errorCount := len(files) - validCount
	log.Printf("\nResults: %d examples across %d schemas, %d errors", exampleCount, len(files), errorCount)

	if errorCount > 0 {
		return fmt.Errorf("example validation failed for %d of %d schemas", errorCount, len(files))
	}
	return nil
}
