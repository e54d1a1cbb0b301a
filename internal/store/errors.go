package store

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("store: record not found")
	// ErrDuplicateID is returned when inserting a record whose id already exists.
	ErrDuplicateID = errors.New("store: duplicate record id")
)
