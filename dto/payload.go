package dto

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
)

// ErrNotJSON is returned when a request body is absent or is not a JSON object.
var ErrNotJSON = errors.New("Not a JSON")

// MissingFieldError reports a required payload key that is absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "Missing " + e.Field
}

// InvalidFieldError reports a payload value of the wrong JSON type.
type InvalidFieldError struct {
	Field string
}

func (e *InvalidFieldError) Error() string {
	return "Invalid " + e.Field
}

// Payload is a decoded JSON object request body.
type Payload map[string]any

// Require checks the keys in order and reports the first missing one.
func (p Payload) Require(fields ...string) error {
	for _, field := range fields {
		if _, ok := p[field]; !ok {
			return &MissingFieldError{Field: field}
		}
	}
	return nil
}

// String returns the value of key, which must be a JSON string.
func (p Payload) String(key string) (string, error) {
	v, ok := p[key]
	if !ok {
		return "", &MissingFieldError{Field: key}
	}
	s, ok := v.(string)
	if !ok {
		return "", &InvalidFieldError{Field: key}
	}
	return s, nil
}

// Decode converts the payload into a typed value.
func (p Payload) Decode(v any) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return decodeInto(raw, v)
}

// ApplyTo copies every payload key onto obj except the keys obj declares
// immutable. Unknown keys are ignored.
func (p Payload) ApplyTo(obj models.Model) error {
	immutable := obj.Immutable()

	current, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	merged := make(map[string]any)
	if err := json.Unmarshal(current, &merged); err != nil {
		return err
	}
	for key, value := range p {
		if isImmutable(immutable, key) {
			continue
		}
		// Drop the record's own casing of the key, or it would be decoded
		// after a differently cased payload key and win.
		for existing := range merged {
			if existing == key || !strings.EqualFold(existing, key) {
				continue
			}
			if _, sent := p[existing]; sent {
				continue
			}
			delete(merged, existing)
		}
		merged[key] = value
	}

	raw, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	return decodeInto(raw, obj)
}

// encoding/json matches keys case-insensitively, so the comparison does too.
func isImmutable(immutable []string, key string) bool {
	for _, field := range immutable {
		if strings.EqualFold(field, key) {
			return true
		}
	}
	return false
}

func decodeInto(raw []byte, v any) error {
	err := json.Unmarshal(raw, v)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &InvalidFieldError{Field: typeErr.Field}
	}
	return err
}
