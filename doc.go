// Package uidkey keeps cheap process-unique identities and application keys
// in sync.
//
// The module is split into small packages:
//
//   - uid: identity tokens and their generator
//   - translator: strict token <-> key bijection with batch insertion
//   - ordered: insertion-ordered map used by translations
//   - dictionary: YAML seeds and snapshots over viant/afs storage
//   - tracing: OpenTelemetry bootstrap used by dictionary
//
// Typical use:
//
//	red, green := uid.NewNamed("red"), uid.NewNamed("green")
//	colors := translator.New[string]()
//	_ = colors.Insert(
//		translator.Entry[string]{Token: red, Key: "#f00"},
//		translator.Entry[string]{Token: green, Key: "#0f0"},
//	)
//	hex, _ := colors.KeyFor(red)
//	token, _ := colors.TokenFor("#0f0")
package uidkey
