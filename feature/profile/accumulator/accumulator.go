package accumulator

import (
	"errors"

	"profile-exporter/feature/profile/models"
)

// ErrMissingData is returned when a primary payload has no building list.
// It is an upstream hiccup that normally resolves on a later login.
var ErrMissingData = errors.New("profile payload is missing building_list")

// Status is the result kind of an ingestion.
type Status string

const (
	// StatusAccepted means a primary payload was stored.
	StatusAccepted Status = "accepted"
	// StatusRejected means a primary payload was refused and nothing changed.
	StatusRejected Status = "rejected"
	// StatusUpdated means an augmentation was merged into a stored profile.
	StatusUpdated Status = "updated"
	// StatusIgnored means an augmentation had no stored profile to merge into.
	StatusIgnored Status = "ignored"
)

// Outcome describes the result of an ingestion.
type Outcome struct {
	Status Status
	// Record is the stored profile for Accepted and Updated outcomes.
	Record *models.Profile
	// Err is set for Rejected outcomes.
	Err error
}

// Option configures an Accumulator.
type Option func(*Accumulator)

// WithOrdering applies order to every primary payload before it is stored.
func WithOrdering(order func(*models.Profile) *models.Profile) Option {
	return func(a *Accumulator) {
		a.order = order
	}
}

// Accumulator assembles partial profile payloads into one record per identity.
// It performs no locking; callers deliver events one at a time.
type Accumulator struct {
	store Store
	order func(*models.Profile) *models.Profile
}

// New creates an Accumulator backed by store.
func New(store Store, opts ...Option) *Accumulator {
	a := &Accumulator{store: store}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// IngestPrimary stores p as the base record for identity, replacing any
// previous record. A payload without a building list is rejected and the
// store is left untouched.
func (a *Accumulator) IngestPrimary(identity string, p *models.Profile) Outcome {
	if !p.HasRequiredData() {
		return Outcome{Status: StatusRejected, Err: ErrMissingData}
	}
	if a.order != nil {
		p = a.order(p)
	}
	a.store.Put(identity, p)
	return Outcome{Status: StatusAccepted, Record: p}
}

// IngestAugmentation replaces the storage list of the record stored for
// identity. Without a stored record it does nothing; an augmentation never
// creates a record on its own.
//
// The stored record is replaced by a copy, so profiles previously returned
// by Peek keep their old storage list.
func (a *Accumulator) IngestAugmentation(identity string, unitStorageList []models.Creature) Outcome {
	current, ok := a.store.Get(identity)
	if !ok {
		return Outcome{Status: StatusIgnored}
	}

	merged := current.Clone()
	merged.UnitStorageList = unitStorageList
	a.store.Put(identity, merged)
	return Outcome{Status: StatusUpdated, Record: merged}
}

// CompleteAndEvict removes and returns the record stored for identity.
func (a *Accumulator) CompleteAndEvict(identity string) (*models.Profile, bool) {
	p, ok := a.store.Get(identity)
	if !ok {
		return nil, false
	}
	a.store.Delete(identity)
	return p, true
}

// Peek returns the record stored for identity without removing it.
func (a *Accumulator) Peek(identity string) (*models.Profile, bool) {
	return a.store.Get(identity)
}

// Len returns the number of records held.
func (a *Accumulator) Len() int {
	return a.store.Len()
}
