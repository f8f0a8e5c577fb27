package schemastore

import (
	"fmt"
	"path"
	"strings"

	json "github.com/goccy/go-json"
)

// Node is the subset of JSON Schema keywords the generator inspects.
// Keywords outside this set still participate in meta-schema validation;
// they are simply opaque here.
type Node struct {
	Type        string           `json:"type"`
	Description string           `json:"description"`
	Format      string           `json:"format"`
	Pattern     string           `json:"pattern"`
	Enum        []any            `json:"enum"`
	Properties  map[string]*Node `json:"properties"`
	Required    []string         `json:"required"`
	Items       *Node            `json:"items"`
}

// Definition is the strictly decoded top level of a schema document, used by
// the model generator. Valid Draft-07 documents outside the store
// conventions (union types, boolean subschemas) may fail to decode; that is
// a generation error, not a validity error.
type Definition struct {
	Schema      string           `json:"$schema"`
	ID          string           `json:"$id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Type        string           `json:"type"`
	Properties  map[string]*Node `json:"properties"`
	Required    []string         `json:"required"`
}

// Document is a schema file loaded from the store. Only JSON syntax is
// checked at load time; structural validity against the meta-schema is the
// validator's concern.
type Document struct {
	// Rel is the path of the file relative to the store root, using slashes.
	Rel string
	// Category is the first path element under the store root.
	Category Category
	// Name is the file base name with the .schema.json extension stripped.
	Name string
	// Raw holds the file contents exactly as read.
	Raw []byte

	// value is the syntax-checked decoding of Raw.
	value any
}

// Ref returns the short "category/name" reference used in constraints rules
// and command output.
func (d *Document) Ref() string {
	return string(d.Category) + "/" + d.Name
}

// CanonicalID returns the $id the document must declare under the naming
// convention.
func (d *Document) CanonicalID() string {
	return fmt.Sprintf("%s%s/%s%s", IDPrefix, d.Category, d.Name, Extension)
}

// ID returns the document's declared $id, or "" when absent or not a
// string.
func (d *Document) ID() string {
	m, ok := d.value.(map[string]any)
	if !ok {
		return ""
	}
	id, _ := m["$id"].(string)
	return id
}

// Examples returns the document's examples array as decoded JSON values.
// Absent or malformed arrays yield nil; the meta-schema check reports the
// latter.
func (d *Document) Examples() []any {
	m, ok := d.value.(map[string]any)
	if !ok {
		return nil
	}
	examples, _ := m["examples"].([]any)
	return examples
}

// Definition strictly decodes the document into the shape the generator
// works from.
func (d *Document) Definition() (*Definition, error) {
	var def Definition
	if err := json.Unmarshal(d.Raw, &def); err != nil {
		return nil, fmt.Errorf("schema does not follow the store conventions: %w", err)
	}
	return &def, nil
}

// parseRel splits a store-relative path into category and document name.
func parseRel(rel string) (Category, string, error) {
	if !strings.HasSuffix(rel, Extension) {
		return "", "", fmt.Errorf("%w: %s", ErrNotSchemaFile, rel)
	}
	dir, base := path.Split(path.Clean(rel))
	dir = strings.Trim(dir, "/")
	if dir == "" {
		return "", "", fmt.Errorf("%w: %s", ErrUncategorized, rel)
	}
	category := Category(dir)
	if !category.IsValid() {
		return "", "", fmt.Errorf("%w: %s", ErrUnknownCategory, dir)
	}
	return category, strings.TrimSuffix(base, Extension), nil
}
