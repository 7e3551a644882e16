package uid

import "strconv"

// Token is an immutable identity issued by New or NewNamed. The zero Token is
// never issued and reports IsZero.
type Token struct {
	id    uint64
	label string
}

// ID returns the numeric identity.
func (t Token) ID() uint64 { return t.id }

// Label returns the display label, empty when none was given.
func (t Token) Label() string { return t.label }

// IsZero returns true for a Token that was not issued by New or NewNamed.
func (t Token) IsZero() bool { return t.id == 0 }

// Equal compares numeric identities only.
func (t Token) Equal(other Token) bool { return t.id == other.id }

// String renders Uid{'label'} for labelled tokens and Uid{id} otherwise.
func (t Token) String() string {
	if t.label != "" {
		return "Uid{'" + t.label + "'}"
	}
	return "Uid{" + strconv.FormatUint(t.id, 10) + "}"
}
