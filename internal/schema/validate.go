package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema is a compiled JSON schema. It is safe for concurrent use.
type Schema struct {
	name string
	s    *jsonschema.Schema
}

// MustCompile compiles schemaJSON and panics on failure. Intended for
// package-level schema variables.
func MustCompile(name, schemaJSON string) *Schema {
	s, err := Compile(name, schemaJSON)
	if err != nil {
		panic(err)
	}
	return s
}

func Compile(name, schemaJSON string) (*Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("schema resource: %w", err)
	}
	s, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Schema{name: name, s: s}, nil
}

// Validate parses raw and validates it against the schema.
func (s *Schema) Validate(raw []byte) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return fmt.Errorf("empty json")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	return s.s.Validate(doc)
}

// Violation locates the innermost cause of a validation failure. Field is
// the first segment of the failing instance path ("" for the document root).
func Violation(err error) (field, message string, ok bool) {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return "", "", false
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	loc := strings.TrimPrefix(ve.InstanceLocation, "/")
	if i := strings.IndexByte(loc, '/'); i >= 0 {
		loc = loc[:i]
	}
	return loc, ve.Message, true
}
