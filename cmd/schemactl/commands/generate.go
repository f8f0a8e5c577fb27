package commands

import (
	"flag"
	"fmt"
	"log"

	"github.com/zbst/ad-schemas/internal/config"
	"github.com/zbst/ad-schemas/internal/generator"
	"github.com/zbst/ad-schemas/internal/schemastore"
)

// GenerateCommand emits one Go model file per schema into the output tree,
// preserving the category layout. A failing file is reported and the batch
// continues; the command exits non-zero if any file failed.
func GenerateCommand(args []string) error {
	cfg := config.NewConfig()

	flags := flag.NewFlagSet("generate", flag.ExitOnError)
	schemasDir := flags.String("schemas", cfg.SchemasDir, "Root directory of the schema tree")
	outDir := flags.String("out", cfg.ModelsDir, "Root directory for generated model files")
	if err := flags.Parse(args); err != nil {
		return err
	}

	g := generator.New(schemastore.New(*schemasDir), *outDir)

	files, err := g.Files()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found under %s", schemastore.Extension, *schemasDir)
	}

	log.Printf("Generating models for %d schemas into %s...\n", len(files), *outDir)

	generatedCount := 0
	for _, rel := range files {
		outPath, err := g.Generate(rel)
		if err != nil {
			log.Printf("  ❌ %s: %v", rel, err)
			continue
		}
		log.Printf("  ✅ %s -> %s", rel, outPath)
		generatedCount++
	}

	errorCount := len(files) - generatedCount
	log.Printf("\nResults: %d generated, %d errors", generatedCount, errorCount)

	if errorCount > 0 {
		return fmt.Errorf("generation failed for %d of %d schemas", errorCount, len(files))
	}
	return nil
}
