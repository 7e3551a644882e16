// Package dictionary seeds translators from YAML documents and writes
// snapshots of them, through any viant/afs storage URL.
//
// A document lists labels and keys in insertion order:
//
//	createdAt: "2026-01-02T03:04:05Z"
//	entries:
//	  red: RED
//	  green: GREEN
//
// Every label mints a new uid token on load. Token identities are process
// local and are not stored; a snapshot written by Save and loaded again
// yields the same labels and keys under fresh identities.
package dictionary
