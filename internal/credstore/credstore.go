// Package credstore holds the credential records loaded at startup. The
// store is keyed by username digests, never plaintext names, and is
// read-only for the lifetime of the process — concurrent lookups need no
// locking.
package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Lookup when no record matches the key.
var ErrNotFound = errors.New("credstore: no record for key")

// Record is the stored reference data for one athlete. PasswordHash is the
// SHA-256 hex digest of the password; the JSON field name matches the
// deployed credential map.
type Record struct {
	PasswordHash  string `json:"hash"`
	SheetURL      string `json:"sheetUrl"`
	EditPlanSheet string `json:"editPlanSheet"`
}

// Admin is the distinguished administrator credential pair. It lives outside
// the general map and is checked before any store lookup, so an admin entry
// can never collide with an athlete record.
type Admin struct {
	UsernameHash string
	PasswordHash string
}

// Store maps username digests to credential records.
type Store struct {
	records map[string]Record
}

// Load builds a Store from the raw JSON credential map.
func Load(raw []byte) (*Store, error) {
	records := make(map[string]Record)
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse credential map: %w", err)
	}
	return &Store{records: records}, nil
}

// Lookup returns the record stored under userKeyHash.
func (s *Store) Lookup(userKeyHash string) (Record, error) {
	rec, ok := s.records[userKeyHash]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// Len reports the number of loaded records.
func (s *Store) Len() int {
	return len(s.records)
}
