// Package store persists named collections as full-replace JSON blobs,
// mirroring the key-value layout of browser local storage.
package store

import "errors"

// Collection keys. These match the names the site has always used.
const (
	KeyProducts = "products"
	KeyMessages = "contactMessages"
	KeyAuth     = "auth"
)

// ErrNotFound is returned by Load when no blob exists under the key.
var ErrNotFound = errors.New("store: key not found")

// Store reads and writes one JSON blob per key. Save overwrites the
// whole blob every time; there are no partial writes and no versioning.
// Callers treat a failed Load as "use the default collection".
type Store interface {
	Load(key string, v any) error
	Save(key string, v any) error
	Delete(key string) error
}
