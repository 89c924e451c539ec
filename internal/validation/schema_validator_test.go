package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"id": { "type": "string", "minLength": 1 },
		"price": { "type": "number", "exclusiveMinimum": 0 }
	},
	"required": ["id", "price"]
}`

func TestValidateBytes(t *testing.T) {
	schemaPath := writeSchema(t, testSchema)
	v := NewSchemaValidator()

	tests := []struct {
		name      string
		data      string
		wantError bool
	}{
		{"valid document", `{"id": "chicken", "price": 1}`, false},
		{"missing required field", `{"price": 1}`, true},
		{"wrong type", `{"id": "chicken", "price": "one"}`, true},
		{"zero price rejected", `{"id": "chicken", "price": 0}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), schemaPath)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBytesInvalidJSON(t *testing.T) {
	schemaPath := writeSchema(t, testSchema)
	v := NewSchemaValidator()

	assert.Error(t, v.ValidateBytes([]byte("{nope"), schemaPath))
}

func TestValidateBytesMissingSchema(t *testing.T) {
	v := NewSchemaValidator()
	err := v.ValidateBytes([]byte(`{}`), filepath.Join(t.TempDir(), "absent.schema.json"))
	assert.Error(t, err)
}

func TestValidateBytesSchemaCached(t *testing.T) {
	schemaPath := writeSchema(t, testSchema)
	v := NewSchemaValidator()

	require.NoError(t, v.ValidateBytes([]byte(`{"id": "a", "price": 1}`), schemaPath))

	// Second validation must not re-read the schema file
	require.NoError(t, os.Remove(schemaPath))
	assert.NoError(t, v.ValidateBytes([]byte(`{"id": "b", "price": 2}`), schemaPath))
}
