// Package models contains the profile data model exchanged with the game client.
//
// A Profile is decoded from a login event payload. Only the members that
// the accumulator and the ordering engine need are mapped to fields; all
// other members are kept verbatim so the exported file carries the whole
// payload.
//
// # Scalars
//
// Identifiers and sort keys are Scalars: a JSON number or string kept in
// its original text. Two numbers compare numerically, anything else
// compares lexically.
//
// # Rune collections
//
// The game sometimes sends a creature's runes (and the rune inventory) as
// an object keyed by position instead of an array. RuneCollection records
// the received shape and Normalize converts a mapping into a sequence.
//
// # Usage
//
//	var p models.Profile
//	if err := json.Unmarshal(payload, &p); err != nil {
//	    return err
//	}
//	if !p.HasRequiredData() {
//	    // building_list missing, drop the event
//	}
//	data, err := models.MarshalIndent(&p)
package models
