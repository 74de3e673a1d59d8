// Package validator provides JSON Schema validation of decoded documents.
package validator

// A JSONDocument is a decoded JSON value, as produced by DecodeJSON.
type JSONDocument interface{}

// Validator validates a JSON document against a compiled schema.
type Validator interface {
	Validate(v JSONDocument) error
}

// Compiler registers schemas and compiles them into Validators.
type Compiler interface {
	// AddSchema registers the schema document under id.
	AddSchema(id string, data JSONDocument) error

	// Compile creates a Validator from the schema previously added with id.
	Compile(id string) (Validator, error)
}
