// Package entity defines the records of the question catalog.
//
// Entities are plain values that enforce their own field invariants. They never
// hold references to related entities; relations are resolved by the catalog
// repositories on demand.
package entity

import "time"

// Timestamped carries the identity and the storage timestamps shared by every entity.
// An ID of 0 means the entity has never been saved, or has just been deleted.
type Timestamped struct {
	id        uint
	createdAt time.Time
	updatedAt time.Time
}

// ID returns the storage-assigned identifier, or 0 for a transient entity.
func (t Timestamped) ID() uint { return t.id }

// CreatedAt returns the time the row was inserted.
func (t Timestamped) CreatedAt() time.Time { return t.createdAt }

// UpdatedAt returns the time the row was last written.
func (t Timestamped) UpdatedAt() time.Time { return t.updatedAt }

// IsPersisted reports whether the entity has a storage identity.
func (t Timestamped) IsPersisted() bool { return t.id != 0 }

// Stamp sets the identity and timestamps read back from storage.
// Only the storage layer calls it.
func (t *Timestamped) Stamp(id uint, createdAt, updatedAt time.Time) {
	t.id = id
	t.createdAt = createdAt
	t.updatedAt = updatedAt
}

// Detach clears the identity after the row has been deleted.
func (t *Timestamped) Detach() {
	t.id = 0
}
