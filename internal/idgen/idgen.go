// Package idgen issues translator and snapshot identifiers. Callers treat the
// values as opaque strings; NewFunc can be replaced in tests.
package idgen

import "github.com/google/uuid"

// namespace scopes name based identifiers to this module.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("github.com/viant/uidkey"))

// NewFunc returns a random identifier.
var NewFunc = func() string { return uuid.New().String() }

// New returns a random identifier.
func New() string { return NewFunc() }

// FromName returns an identifier derived from name; equal names give equal
// identifiers.
func FromName(name string) string {
	return uuid.NewSHA1(namespace, []byte(name)).String()
}
