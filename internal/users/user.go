// Package users holds the user record, its validation rule and the stores
// that keep records for the lifetime of the process.
package users

import (
	"errors"
	"strconv"
)

// ErrNotFound is returned when no user has the requested id.
var ErrNotFound = errors.New("user not found")

// User is a single user record.
type User struct {
	ID     int    `json:"id"     yaml:"id"`
	Nombre string `json:"nombre" yaml:"nombre"`
}

// DefaultSeed is the set of records a store starts with when no other seed
// is configured.
func DefaultSeed() []User {
	return []User{
		{ID: 1, Nombre: "Grover"},
		{ID: 2, Nombre: "Pablo"},
		{ID: 3, Nombre: "Ana"},
	}
}

// ParseID parses an id taken from a URL path. Anything that is not a
// positive integer reports ok=false, which callers treat as "no match".
func ParseID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
