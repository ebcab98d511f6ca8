package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"profile-exporter/core/utils"
)

// Scalar is a JSON number or string kept in its original textual form.
// The zero value is an absent scalar and encodes as null.
type Scalar struct {
	raw json.RawMessage
}

// NewScalar returns the Scalar for a Go number or string.
func NewScalar(v any) Scalar {
	switch v.(type) {
	case nil:
		return Scalar{}
	case string, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		raw, _ := json.Marshal(v)
		return Scalar{raw: raw}
	default:
		panic(fmt.Sprintf("models: unsupported scalar type %T", v))
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		s.raw = nil
		return nil
	}
	switch data[0] {
	case '{', '[', 't', 'f':
		return fmt.Errorf("models: expected number or string, got %s", data)
	}
	s.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.raw == nil {
		return []byte("null"), nil
	}
	return s.raw, nil
}

// IsZero reports whether the scalar is absent.
func (s Scalar) IsZero() bool {
	return s.raw == nil
}

// Value returns the scalar as nil, int64, float64 or string.
func (s Scalar) Value() any {
	if s.raw == nil {
		return nil
	}
	if s.raw[0] == '"' {
		var str string
		if err := json.Unmarshal(s.raw, &str); err != nil {
			return string(s.raw)
		}
		return str
	}
	text := string(s.raw)
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return f
	}
	return text
}

// String returns the scalar's value as text. An absent scalar is the empty string.
func (s Scalar) String() string {
	return utils.ToString(s.Value())
}

// Compare orders two scalars. See utils.Compare.
func (s Scalar) Compare(other Scalar) int {
	return utils.Compare(s.Value(), other.Value())
}

// IsString reports whether the scalar was a JSON string.
func (s Scalar) IsString() bool {
	return len(s.raw) > 0 && s.raw[0] == '"'
}

// Identical reports whether both scalars are present, of the same JSON kind
// and equal. A number is never identical to a string.
func (s Scalar) Identical(other Scalar) bool {
	if s.IsZero() || other.IsZero() || s.IsString() != other.IsString() {
		return false
	}
	return s.Compare(other) == 0
}

// Equal reports whether two scalars compare equal.
func (s Scalar) Equal(other Scalar) bool {
	return s.Compare(other) == 0
}
