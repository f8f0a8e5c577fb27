package commands

import (
	"flag"
	"log"
	"path/filepath"
	"strings"

	"github.com/zbst/ad-schemas/internal/config"
	"github.com/zbst/ad-schemas/internal/constraints"
	"github.com/zbst/ad-schemas/internal/schemastore"
)

// ConstraintsCommand loads the cross-schema business rules, verifies that
// every rule references schemas present in the store, and prints the rule
// set. These rules are documentation the schemas cannot enforce; the command
// keeps them from drifting out of sync with the tree.
func ConstraintsCommand(args []string) error {
	cfg := config.NewConfig()

	flags := flag.NewFlagSet("constraints", flag.ExitOnError)
	schemasDir := flags.String("schemas", cfg.SchemasDir, "Root directory of the schema tree")
	if err := flags.Parse(args); err != nil {
		return err
	}

	store := schemastore.New(*schemasDir)

	f, err := constraints.Load(filepath.Join(*schemasDir, "constraints.yaml"))
	if err != nil {
		return err
	}
	if err := f.Verify(store); err != nil {
		return err
	}

	log.Printf("%d cross-schema rules:\n", len(f.Rules))
	for _, rule := range f.Rules {
		log.Printf("  %s (%s)", rule.ID, strings.Join(rule.Schemas, ", "))
		log.Printf("    %s", strings.TrimSpace(rule.Description))
	}
	return nil
}
