package models

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

// Document holds the raw members of a JSON object.
// Model types keep the members they do not map in a Document so that a
// decoded payload re-encodes without losing data.
type Document map[string]json.RawMessage

// decodeObject decodes data into v and returns the members that v does not map.
// v must be a pointer to a struct type without its own UnmarshalJSON.
func decodeObject(data []byte, v any) (Document, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}

	var all Document
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}

	for key := range mappedKeys(reflect.TypeOf(v).Elem()) {
		delete(all, key)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// mappedKeyCache holds the member names of each model type, keyed by reflect.Type.
var mappedKeyCache sync.Map

// mappedKeys returns the JSON member names the struct type t maps, read once
// from its json tags.
func mappedKeys(t reflect.Type) map[string]struct{} {
	if keys, ok := mappedKeyCache.Load(t); ok {
		return keys.(map[string]struct{})
	}

	keys := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		keys[name] = struct{}{}
	}

	actual, _ := mappedKeyCache.LoadOrStore(t, keys)
	return actual.(map[string]struct{})
}

// encodeObject encodes v and merges extra into the result.
// Mapped members encoded as null are left out; extra never overrides a mapped member.
func encodeObject(v any, extra Document) ([]byte, error) {
	members, err := encodeMembers(v)
	if err != nil {
		return nil, err
	}
	for key, raw := range members {
		if bytes.Equal(raw, []byte("null")) {
			delete(members, key)
		}
	}
	for key, raw := range extra {
		if _, ok := members[key]; !ok {
			members[key] = raw
		}
	}
	return Marshal(members)
}

func encodeMembers(v any) (Document, error) {
	data, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	var members Document
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	if members == nil {
		members = Document{}
	}
	return members, nil
}

// Marshal encodes v as compact JSON without escaping HTML characters.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalIndent encodes v with two-space indentation without escaping HTML characters.
// This is the on-disk form of an exported profile.
func MarshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
