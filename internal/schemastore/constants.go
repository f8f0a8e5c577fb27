package schemastore

import "errors"

// Extension is the filename suffix every stored schema document carries.
const Extension = ".schema.json"

// IDPrefix is the base URI every document's $id must start with.
const IDPrefix = "https://schemas.zbst.io/"

// Category is a grouping label for schema documents. It controls filesystem
// placement and the $id convention only; it carries no runtime semantics.
type Category string

const (
	CategoryOpenDirect Category = "opendirect"
	CategoryOpenRTB    Category = "openrtb"
	CategoryVAST       Category = "vast"
	CategoryCATS       Category = "cats"
	CategoryAdCOM      Category = "adcom"
	CategoryZbst       Category = "zbst"
)

// Categories lists the known categories in filesystem order.
var Categories = []Category{
	CategoryAdCOM,
	CategoryCATS,
	CategoryOpenDirect,
	CategoryOpenRTB,
	CategoryVAST,
	CategoryZbst,
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

var (
	// ErrMalformedJSON indicates that a schema file is not syntactically valid JSON
	ErrMalformedJSON = errors.New("malformed JSON")
	// ErrUnknownCategory indicates that a schema file sits under a directory that is not a known category
	ErrUnknownCategory = errors.New("unknown category")
	// ErrNotSchemaFile indicates that a path does not end in the .schema.json extension
	ErrNotSchemaFile = errors.New("not a schema file")
	// ErrUncategorized indicates that a schema file sits at the store root rather than under a category directory
	ErrUncategorized = errors.New("schema file is not under a category directory")
)
