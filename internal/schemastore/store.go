package schemastore

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
)

// Store provides read access to a directory tree of schema documents.
type Store struct {
	root string
}

// New creates a store rooted at the given directory.
func New(root string) *Store {
	return &Store{root: root}
}

// Root returns the directory the store reads from.
func (s *Store) Root() string {
	return s.root
}

// Files returns the store-relative paths of every schema file under the
// root, sorted lexically. Files without the .schema.json extension are
// ignored. An unreadable root is a first-class tool failure and is returned
// as an error.
func (s *Store) Files() ([]string, error) {
	var files []string
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), Extension) {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk schema tree %s: %w", s.root, err)
	}
	sort.Strings(files)
	return files, nil
}

// Read loads and decodes a single schema document by its store-relative
// path.
func (s *Store) Read(rel string) (*Document, error) {
	category, name, err := parseRel(rel)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	doc := &Document{
		Rel:      rel,
		Category: category,
		Name:     name,
		Raw:      raw,
	}
	if err := json.Unmarshal(raw, &doc.value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return doc, nil
}

// Exists reports whether a document for the "category/name" reference is
// present in the store.
func (s *Store) Exists(ref string) bool {
	rel := ref + Extension
	if _, _, err := parseRel(rel); err != nil {
		return false
	}
	info, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(rel)))
	return err == nil && !info.IsDir()
}
