// Package validator checks schema documents for structural validity against
// the JSON Schema Draft-07 meta-schema, verifies the $id naming convention,
// and validates each document's embedded examples against the document
// itself.
package validator

import (
	"bytes"
	"errors"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/zbst/ad-schemas/internal/schemastore"
)

// ErrIDMismatch indicates that a document's $id does not follow the
// https://schemas.zbst.io/{category}/{name}.schema.json convention
var ErrIDMismatch = errors.New("$id does not match naming convention")

// Validator runs the per-file checks over a schema store.
type Validator struct {
	store *schemastore.Store
}

// New creates a Validator reading from the given store.
func New(store *schemastore.Store) *Validator {
	return &Validator{store: store}
}

// Files returns the store-relative paths of every schema file to be checked.
func (v *Validator) Files() ([]string, error) {
	return v.store.Files()
}

// ValidateSchema checks a single schema file: it must decode as JSON, its
// $id must follow the naming convention, and it must compile against the
// Draft-07 meta-schema. A nil return means the file passed.
func (v *Validator) ValidateSchema(rel string) error {
	doc, err := v.store.Read(rel)
	if err != nil {
		return err
	}

	if doc.ID() != doc.CanonicalID() {
		return fmt.Errorf("%w: have %q, want %q", ErrIDMismatch, doc.ID(), doc.CanonicalID())
	}

	if _, err := compile(doc); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	return nil
}

// ValidateExamples validates every member of a document's examples array
// against the document's own schema. It returns the number of examples
// checked; a non-nil error names the first failing example.
func (v *Validator) ValidateExamples(rel string) (int, error) {
	doc, err := v.store.Read(rel)
	if err != nil {
		return 0, err
	}

	schema, err := compile(doc)
	if err != nil {
		return 0, fmt.Errorf("invalid schema: %w", err)
	}

	examples := doc.Examples()
	for i, instance := range examples {
		if err := schema.Validate(instance); err != nil {
			return i, fmt.Errorf("example %d does not validate: %w", i+1, err)
		}
	}
	return len(examples), nil
}

// compile builds a Draft-07 schema from the document's raw bytes. Each
// document gets a fresh compiler so duplicate $id values across files cannot
// collide.
func compile(doc *schemastore.Document) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7

	url := doc.ID()
	if url == "" {
		url = doc.CanonicalID()
	}
	if err := compiler.AddResource(url, bytes.NewReader(doc.Raw)); err != nil {
		return nil, err
	}
	return compiler.Compile(url)
}
