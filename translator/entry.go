package translator

import (
	"fmt"

	"github.com/viant/uidkey/uid"
)

// Entry associates a token with a key.
type Entry[K comparable] struct {
	Token uid.Token
	Key   K
}

// String renders token=key.
func (e Entry[K]) String() string {
	return fmt.Sprintf("%v=%v", e.Token, e.Key)
}
