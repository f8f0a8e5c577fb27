// Package generator emits Go data-model source from schema documents, one
// file per schema, mirroring the store's category layout. Output is
// deterministic: properties are emitted in sorted order and nothing
// time- or run-dependent leaks into the generated source.
package generator

import (
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zbst/ad-schemas/internal/schemastore"
)

// Generator writes generated model files for a schema store.
type Generator struct {
	store  *schemastore.Store
	outDir string
}

// New creates a Generator reading from store and writing under outDir.
func New(store *schemastore.Store, outDir string) *Generator {
	return &Generator{store: store, outDir: outDir}
}

// Files returns the store-relative paths of every schema file to generate
// from.
func (g *Generator) Files() ([]string, error) {
	return g.store.Files()
}

// Generate emits the model file for a single schema document and returns the
// path written.
func (g *Generator) Generate(rel string) (string, error) {
	doc, err := g.store.Read(rel)
	if err != nil {
		return "", err
	}

	src, err := Render(doc)
	if err != nil {
		return "", err
	}

	outPath := filepath.Join(g.outDir, string(doc.Category), doc.Name+".go")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return "", fmt.Errorf("failed to write model file: %w", err)
	}
	return outPath, nil
}

// Render produces gofmt-formatted model source for a document without
// touching the filesystem.
func Render(doc *schemastore.Document) ([]byte, error) {
	def, err := doc.Definition()
	if err != nil {
		return nil, err
	}
	if def.Type != "object" {
		return nil, fmt.Errorf("schema %s has type %q, only object schemas generate models", doc.Ref(), def.Type)
	}

	e := &emitter{usesTime: false}
	rootName := typeName(doc, def)
	e.emitStruct(rootName, def.Description, def.Properties, def.Required)

	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by schemactl from schemas/%s%s. DO NOT EDIT.\n\n", doc.Ref(), schemastore.Extension)
	fmt.Fprintf(&b, "package %s\n\n", doc.Category)
	if e.usesTime {
		b.WriteString("import \"time\"\n\n")
	}
	b.WriteString(e.out.String())

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("generated source does not format: %w", err)
	}
	return src, nil
}

// emitter accumulates struct declarations. Nested object properties become
// named types emitted after their parent, depth first in field order.
type emitter struct {
	out      strings.Builder
	usesTime bool
}

// pending is a nested object type queued for emission after its parent.
type pending struct {
	name string
	node *schemastore.Node
}

func (e *emitter) emitStruct(name, description string, props map[string]*schemastore.Node, required []string) {
	var nested []pending

	if description != "" {
		fmt.Fprintf(&e.out, "// %s %s\n", name, firstSentence(description))
	}
	fmt.Fprintf(&e.out, "type %s struct {\n", name)

	for _, prop := range sortedKeys(props) {
		node := props[prop]
		goType := e.goType(name, prop, node, &nested)
		tag := prop
		if !contains(required, prop) {
			tag += ",omitempty"
		}
		if node != nil && node.Description != "" {
			fmt.Fprintf(&e.out, "\t// %s\n", firstSentence(node.Description))
		}
		fmt.Fprintf(&e.out, "\t%s %s `json:%q`\n", fieldName(prop), goType, tag)
	}
	e.out.WriteString("}\n\n")

	for _, n := range nested {
		e.emitStruct(n.name, n.node.Description, n.node.Properties, n.node.Required)
	}
}

// goType maps a schema node to a Go type, queueing nested object types for
// emission under parent-derived names.
func (e *emitter) goType(parent, prop string, node *schemastore.Node, nested *[]pending) string {
	if node == nil {
		return "any"
	}
	switch node.Type {
	case "string":
		if node.Format == "date-time" {
			e.usesTime = true
			return "time.Time"
		}
		return "string"
	case "integer":
		return "int"
	case "number":
		return "float64"
	case "boolean":
		return "bool"
	case "array":
		return "[]" + e.goType(parent, prop, node.Items, nested)
	case "object":
		name := parent + fieldName(prop)
		*nested = append(*nested, pending{name, node})
		return name
	default:
		return "any"
	}
}

// typeName derives the root Go type name, preferring the schema title.
func typeName(doc *schemastore.Document, def *schemastore.Definition) string {
	if t := def.Title; t != "" && !strings.ContainsAny(t, " \t") {
		return t
	}
	return fieldName(doc.Name)
}

// initialisms are property names that map to conventional Go spellings.
var initialisms = map[string]string{
	"id":  "ID",
	"url": "URL",
	"uri": "URI",
}

// fieldName converts a schema property name to an exported Go identifier.
// Underscores and hyphens split words; known initialisms keep their
// conventional casing.
func fieldName(prop string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(prop, func(r rune) bool {
		return r == '_' || r == '-'
	}) {
		if up, ok := initialisms[strings.ToLower(part)]; ok {
			b.WriteString(up)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// firstSentence trims a description to its first sentence for use as a doc
// comment.
func firstSentence(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, ". "); i >= 0 {
		return s[:i+1]
	}
	return s
}

func sortedKeys(m map[string]*schemastore.Node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
