package commands

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/zbst/ad-schemas/internal/config"
	"github.com/zbst/ad-schemas/internal/schemastore"
)

// refPattern is the accepted shape of a "category/name" argument. Names are
// lowercase with hyphen separators, matching the existing tree.
var refPattern = regexp.MustCompile(`^[a-z]+/[a-z]+(-[a-z0-9]+)*$`)

// scaffold mirrors the conventional layout of a stored schema document.
// Field order here is the key order of the written file.
type scaffold struct {
	Schema               string                  `json:"$schema"`
	ID                   string                  `json:"$id"`
	Title                string                  `json:"title"`
	Description          string                  `json:"description"`
	Type                 string                  `json:"type"`
	Properties           map[string]scaffoldProp `json:"properties"`
	Required             []string                `json:"required"`
	AdditionalProperties bool                    `json:"additionalProperties"`
	Examples             []map[string]string     `json:"examples"`
}

type scaffoldProp struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	MinLength   int    `json:"minLength,omitempty"`
}

// NewCommand scaffolds a schema document at schemas/<category>/<name> with
// the $id convention pre-filled and a seeded example instance.
func NewCommand(args []string) error {
	cfg := config.NewConfig()

	if len(args) < 1 {
		return errors.New("usage: schemactl new <category>/<name>")
	}
	ref := args[0]
	if !refPattern.MatchString(ref) {
		return fmt.Errorf("invalid reference %q, want <category>/<name>", ref)
	}

	parts := strings.SplitN(ref, "/", 2)
	category, name := schemastore.Category(parts[0]), parts[1]
	if !category.IsValid() {
		return fmt.Errorf("unknown category %q", category)
	}

	rel := ref + schemastore.Extension
	path := filepath.Join(cfg.SchemasDir, filepath.FromSlash(rel))
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	doc := scaffold{
		Schema:      "http://json-schema.org/draft-07/schema#",
		ID:          fmt.Sprintf("%s%s/%s%s", schemastore.IDPrefix, category, name, schemastore.Extension),
		Title:       titleFromName(name),
		Description: fmt.Sprintf("Describe the %s object here.", name),
		Type:        "object",
		Properties: map[string]scaffoldProp{
			"id": {
				Type:        "string",
				Description: fmt.Sprintf("Unique identifier of the %s.", name),
				MinLength:   1,
			},
		},
		Required:             []string{"id"},
		AdditionalProperties: false,
		Examples: []map[string]string{
			{"id": fmt.Sprintf("%s_%s", name, uuid.NewString())},
		},
	}

	jsonData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating category directory: %w", err)
	}
	if err := os.WriteFile(path, append(jsonData, '\n'), 0o600); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	log.Printf("Created %s", path)
	log.Printf("\nEdit the document to add properties, then run:")
	log.Printf("  schemactl validate")
	log.Printf("  schemactl examples")
	return nil
}

// titleFromName turns "revenue-split" into "RevenueSplit".
func titleFromName(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "-") {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
