package entity

import "strconv"

// OptionalID is a foreign key that may be absent.
// The zero value is absent.
type OptionalID struct {
	id    uint
	valid bool
}

// IDOf returns an OptionalID holding id. An id of 0 never references a row,
// so IDOf(0) is absent.
func IDOf(id uint) OptionalID {
	return OptionalID{id: id, valid: id != 0}
}

// NoID returns an absent OptionalID.
func NoID() OptionalID {
	return OptionalID{}
}

// Get returns the referenced id and whether it is present.
func (o OptionalID) Get() (uint, bool) {
	return o.id, o.valid
}

// IsSet reports whether the reference is present.
func (o OptionalID) IsSet() bool {
	return o.valid
}

func (o OptionalID) String() string {
	if !o.valid {
		return "none"
	}
	return strconv.FormatUint(uint64(o.id), 10)
}
