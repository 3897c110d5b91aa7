package provider

import (
	"encoding/json"
	"reflect"

	"github.com/bitop-dev/ai-mixedbread/internal/schema"
)

// ParseOptions reads the namespace entry of opts, validates it against s and
// decodes it into out. Entries for other namespaces are ignored. It reports
// false, with out untouched, when the namespace is absent.
func ParseOptions(namespace string, opts map[string]any, s *schema.Schema, out any) (bool, error) {
	raw, ok := opts[namespace]
	if !ok || raw == nil {
		return false, nil
	}
	if v := reflect.ValueOf(raw); v.Kind() == reflect.Pointer && v.IsNil() {
		return false, nil
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return false, &ValidationError{Provider: namespace, Message: err.Error(), Cause: err}
	}
	if err := s.Validate(b); err != nil {
		field, msg, ok := schema.Violation(err)
		if !ok {
			msg = err.Error()
		}
		return false, &ValidationError{Provider: namespace, Field: field, Message: msg, Cause: err}
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, &ValidationError{Provider: namespace, Message: err.Error(), Cause: err}
	}
	return true, nil
}
