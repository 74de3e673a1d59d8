package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// NewSanthoshCompiler returns a Compiler backed by santhosh-tekuri/jsonschema/v6.
func NewSanthoshCompiler() Compiler {
	return &santhoshCompiler{c: jsonschema.NewCompiler()}
}

type santhoshValidator struct {
	v *jsonschema.Schema
}

func (sv *santhoshValidator) Validate(doc JSONDocument) error {
	return sv.v.Validate(doc)
}

type santhoshCompiler struct {
	mu sync.Mutex
	c  *jsonschema.Compiler
}

func (s *santhoshCompiler) AddSchema(id string, data JSONDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.AddResource(id, data)
}

func (s *santhoshCompiler) Compile(id string) (Validator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, err := s.c.Compile(id)
	if err != nil {
		return nil, err
	}
	return &santhoshValidator{v: v}, nil
}

// DecodeJSON decodes data into the representation the validator expects.
func DecodeJSON(data []byte) (JSONDocument, error) {
	return jsonschema.UnmarshalJSON(bytes.NewReader(data))
}

// Normalise converts a value decoded by another codec (e.g. YAML) into a
// JSONDocument by round-tripping it through encoding/json.
func Normalise(v any) (JSONDocument, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("document cannot be represented as JSON: %w", err)
	}
	return DecodeJSON(data)
}
