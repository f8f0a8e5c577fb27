package validator_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zbst/ad-schemas/internal/schemastore"
	"github.com/zbst/ad-schemas/internal/validator"
)

// schemaDoc builds a minimal account-like Draft-07 document with the given
// examples array (JSON fragment) for fixture use.
func schemaDoc(examples string) string {
	return fmt.Sprintf(`{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "$id": "https://schemas.zbst.io/opendirect/account.schema.json",
  "title": "Account",
  "type": "object",
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "advertiserid": {"type": "string"},
    "buyerid": {"type": "string"},
    "status": {"type": "string", "enum": ["Pending", "Approved", "Rejected", "Suspended"]}
  },
  "required": ["id", "advertiserid", "buyerid"],
  "additionalProperties": false,
  "examples": [%s]
}`, examples)
}

func writeSchema(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newValidator(t *testing.T, rel, content string) *validator.Validator {
	t.Helper()
	root := t.TempDir()
	writeSchema(t, root, rel, content)
	return validator.New(schemastore.New(root))
}

func TestValidateSchema(t *testing.T) {
	v := newValidator(t, "opendirect/account.schema.json", schemaDoc(""))

	require.NoError(t, v.ValidateSchema("opendirect/account.schema.json"))
}

func TestValidateSchema_MalformedJSON(t *testing.T) {
	v := newValidator(t, "opendirect/account.schema.json", `{"title": "Account",`)

	err := v.ValidateSchema("opendirect/account.schema.json")

	require.Error(t, err)
	assert.ErrorIs(t, err, schemastore.ErrMalformedJSON)
}

func TestValidateSchema_MetaSchemaViolation(t *testing.T) {
	// "type" must be a string or array of strings per the meta-schema.
	v := newValidator(t, "zbst/deal.schema.json", `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "$id": "https://schemas.zbst.io/zbst/deal.schema.json",
  "type": 12
}`)

	err := v.ValidateSchema("zbst/deal.schema.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid schema")
}

func TestValidateSchema_IDConvention(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "missing $id", id: ""},
		{name: "wrong host", id: "https://example.com/opendirect/account.schema.json"},
		{name: "wrong category", id: "https://schemas.zbst.io/zbst/account.schema.json"},
		{name: "wrong name", id: "https://schemas.zbst.io/opendirect/accounts.schema.json"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := fmt.Sprintf(`{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "$id": %q,
  "type": "object"
}`, tc.id)
			v := newValidator(t, "opendirect/account.schema.json", doc)

			err := v.ValidateSchema("opendirect/account.schema.json")

			require.Error(t, err)
			assert.ErrorIs(t, err, validator.ErrIDMismatch)
		})
	}
}

func TestValidateExamples(t *testing.T) {
	// The canonical account example from the store must validate.
	v := newValidator(t, "opendirect/account.schema.json", schemaDoc(
		`{"id": "acc_123", "advertiserid": "adv_456", "buyerid": "buyer_789", "status": "Approved"}`))

	n, err := v.ValidateExamples("opendirect/account.schema.json")

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestValidateExamples_Failures(t *testing.T) {
	tests := []struct {
		name    string
		example string
	}{
		{
			name:    "missing required property",
			example: `{"id": "acc_123", "advertiserid": "adv_456"}`,
		},
		{
			name:    "undeclared property rejected",
			example: `{"id": "acc_123", "advertiserid": "adv_456", "buyerid": "buyer_789", "region": "emea"}`,
		},
		{
			name:    "enum violation",
			example: `{"id": "acc_123", "advertiserid": "adv_456", "buyerid": "buyer_789", "status": "Live"}`,
		},
		{
			name:    "type violation",
			example: `{"id": 7, "advertiserid": "adv_456", "buyerid": "buyer_789"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := newValidator(t, "opendirect/account.schema.json", schemaDoc(tc.example))

			_, err := v.ValidateExamples("opendirect/account.schema.json")

			require.Error(t, err)
			assert.Contains(t, err.Error(), "example 1")
		})
	}
}

func TestValidateExamples_NoExamples(t *testing.T) {
	v := newValidator(t, "opendirect/account.schema.json", schemaDoc(""))

	n, err := v.ValidateExamples("opendirect/account.schema.json")

	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

// TestStoredSchemas is the regression property for the real tree: every
// schema in schemas/ must pass structural validation and its examples must
// validate against it.
func TestStoredSchemas(t *testing.T) {
	v := validator.New(schemastore.New(filepath.Join("..", "..", "schemas")))

	files, err := v.Files()
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, rel := range files {
		t.Run(rel, func(t *testing.T) {
			require.NoError(t, v.ValidateSchema(rel))

			n, err := v.ValidateExamples(rel)
			require.NoError(t, err)
			assert.Positive(t, n, "every stored schema should carry at least one example")
		})
	}
}
