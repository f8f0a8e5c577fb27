// Package constraints loads the cross-schema business rules documented in
// schemas/constraints.yaml. JSON Schema cannot express these rules (subset
// relations, sums across fields), so they are carried as docs-as-data: the
// tooling verifies that every rule points at schemas that exist, and leaves
// instance-level enforcement to downstream services.
package constraints

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zbst/ad-schemas/internal/schemastore"
)

// Rule is one documented cross-schema business rule.
type Rule struct {
	ID          string   `yaml:"id"`
	Description string   `yaml:"description"`
	Schemas     []string `yaml:"schemas"`
}

// File is the decoded constraints registry.
type File struct {
	Rules []Rule `yaml:"rules"`
}

var (
	// ErrRuleMissingID indicates a rule without an id
	ErrRuleMissingID = errors.New("rule has no id")
	// ErrRuleNoSchemas indicates a rule that references no schemas
	ErrRuleNoSchemas = errors.New("rule references no schemas")
	// ErrUnknownSchema indicates a rule referencing a schema absent from the store
	ErrUnknownSchema = errors.New("rule references unknown schema")
)

// Load reads and decodes a constraints registry.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read constraints file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse constraints file: %w", err)
	}
	return &f, nil
}

// Verify checks every rule against the store: rules must carry an id, and
// every schema reference must name an existing document. All violations are
// reported, not just the first.
func (f *File) Verify(store *schemastore.Store) error {
	var errs []error
	for i, rule := range f.Rules {
		if strings.TrimSpace(rule.ID) == "" {
			errs = append(errs, fmt.Errorf("%w: rule %d", ErrRuleMissingID, i+1))
			continue
		}
		if len(rule.Schemas) == 0 {
			errs = append(errs, fmt.Errorf("%w: %s", ErrRuleNoSchemas, rule.ID))
		}
		for _, ref := range rule.Schemas {
			if !store.Exists(ref) {
				errs = append(errs, fmt.Errorf("%w: %s references %s", ErrUnknownSchema, rule.ID, ref))
			}
		}
	}
	return errors.Join(errs...)
}
