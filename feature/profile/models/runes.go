package models

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
)

// RuneCollection is a list of runes that may arrive either as a JSON array
// or as a sparse mapping keyed by position ({"0": {...}, "3": {...}}).
//
// Decoding records which shape was received. Normalize is the only place
// that turns a mapping into a sequence; consumers that depend on order call
// it first and never inspect the shape themselves.
type RuneCollection struct {
	// Items holds the runes. For a mapping, it follows Keys.
	Items []Rune
	// Keys is non-nil while the collection still has the mapping shape.
	Keys []string
}

// NewRuneList returns a collection with the sequence shape.
func NewRuneList(runes ...Rune) RuneCollection {
	if runes == nil {
		runes = []Rune{}
	}
	return RuneCollection{Items: runes}
}

// Sparse reports whether the collection still has the mapping shape.
func (c RuneCollection) Sparse() bool {
	return c.Keys != nil
}

// Len returns the number of runes.
func (c RuneCollection) Len() int {
	return len(c.Items)
}

// Normalize converts a mapping into a dense sequence. Sequences are left untouched.
func (c *RuneCollection) Normalize() {
	if c.Keys == nil {
		return
	}
	c.Keys = nil
	if c.Items == nil {
		c.Items = []Rune{}
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *RuneCollection) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	c.Items, c.Keys = nil, nil

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '[':
		var items []Rune
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		c.Items = items
		return nil
	case data[0] == '{':
		return c.decodeMapping(data)
	default:
		return fmt.Errorf("models: runes must be an array or an object, got %s", data)
	}
}

// decodeMapping reads the members in document order, then applies the
// property order of a JavaScript object: integer keys ascending first,
// remaining keys in insertion order.
func (c *RuneCollection) decodeMapping(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}

	type member struct {
		key   string
		index int64
		isInt bool
		value Rune
	}
	var members []member
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("models: unexpected runes key %v", tok)
		}
		var r Rune
		if err := dec.Decode(&r); err != nil {
			return fmt.Errorf("models: runes[%q]: %w", key, err)
		}
		m := member{key: key, value: r}
		if i, err := strconv.ParseInt(key, 10, 64); err == nil && i >= 0 && strconv.FormatInt(i, 10) == key {
			m.index, m.isInt = i, true
		}
		members = append(members, m)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	slices.SortStableFunc(members, func(a, b member) int {
		switch {
		case a.isInt && b.isInt:
			return cmp.Compare(a.index, b.index)
		case a.isInt:
			return -1
		case b.isInt:
			return 1
		default:
			return 0
		}
	})

	c.Items = make([]Rune, 0, len(members))
	c.Keys = make([]string, 0, len(members))
	for _, m := range members {
		c.Items = append(c.Items, m.value)
		c.Keys = append(c.Keys, m.key)
	}
	return nil
}

// MarshalJSON implements json.Marshaler. A collection that was never
// normalized keeps its mapping shape.
func (c RuneCollection) MarshalJSON() ([]byte, error) {
	if c.Keys == nil {
		if c.Items == nil {
			return []byte("null"), nil
		}
		return Marshal(c.Items)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range c.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := Marshal(c.Items[i])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
