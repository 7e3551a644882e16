package translator

import (
	"iter"
	"reflect"
	"strings"
	"sync"

	"github.com/viant/uidkey/internal/idgen"
	"github.com/viant/uidkey/ordered"
	"github.com/viant/uidkey/uid"
)

// Translator is an insertion-ordered bijection between tokens and keys.
// It only grows. All methods are safe for concurrent use; an Insert is
// atomic with respect to lookups.
type Translator[K comparable] struct {
	id      string
	zeroKey bool

	mu      sync.RWMutex
	entries []Entry[K]
	byToken map[uint64]int
	byKey   map[K]uid.Token
}

// New creates an empty translator.
func New[K comparable](opts ...Option) *Translator[K] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.name == "" {
		o.name = idgen.New()
	}
	return &Translator[K]{
		id:      o.name,
		zeroKey: o.zeroKey,
		byToken: make(map[uint64]int),
		byKey:   make(map[K]uid.Token),
	}
}

// ID returns the translator identifier, a UUID unless WithName was used.
func (t *Translator[K]) ID() string { return t.id }

// Insert adds the batch in the given order. The whole batch is validated
// before anything is stored; on error the dictionary is unchanged.
func (t *Translator[K]) Insert(batch ...Entry[K]) error {
	const op = "insert"
	if len(batch) == 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	tokens := make(map[uint64]int, len(batch))
	keys := make(map[K]int, len(batch))
	var zero K
	for i, entry := range batch {
		if entry.Token.IsZero() {
			return newError(op, ErrInvalidToken, "entry %d: token was not issued by uid", i)
		}
		if _, ok := t.byToken[entry.Token.ID()]; ok {
			return newError(op, ErrDuplicateToken, "entry %d: token %v is already in the dictionary", i, entry.Token)
		}
		if prev, ok := tokens[entry.Token.ID()]; ok {
			return newError(op, ErrDuplicateToken, "entry %d: token %v repeats entry %d", i, entry.Token, prev)
		}
		if !hashable(entry.Key) {
			return newError(op, ErrInvalidKey, "entry %d: key of type %T for %v cannot be hashed", i, entry.Key, entry.Token)
		}
		if !t.zeroKey && entry.Key == zero {
			return newError(op, ErrEmptyKey, "entry %d: key for %v is empty", i, entry.Token)
		}
		if owner, ok := t.byKey[entry.Key]; ok {
			return newError(op, ErrDuplicateKey, "entry %d: key %v is already mapped to %v", i, entry.Key, owner)
		}
		if prev, ok := keys[entry.Key]; ok {
			return newError(op, ErrDuplicateKey, "entry %d: key %v repeats entry %d", i, entry.Key, prev)
		}
		tokens[entry.Token.ID()] = i
		keys[entry.Key] = i
	}

	for _, entry := range batch {
		t.byToken[entry.Token.ID()] = len(t.entries)
		t.byKey[entry.Key] = entry.Token
		t.entries = append(t.entries, entry)
	}
	return nil
}

// InsertMap adds the entries of m in iteration order, with Insert semantics.
func (t *Translator[K]) InsertMap(m *ordered.Map[uid.Token, K]) error {
	batch := make([]Entry[K], 0, m.Len())
	for token, key := range m.All() {
		batch = append(batch, Entry[K]{Token: token, Key: key})
	}
	return t.Insert(batch...)
}

// KeyFor returns the key associated with token.
func (t *Translator[K]) KeyFor(token uid.Token) (K, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.keyFor("keyFor", token)
}

func (t *Translator[K]) keyFor(op string, token uid.Token) (K, error) {
	idx, ok := t.byToken[token.ID()]
	if !ok || token.IsZero() {
		var zero K
		return zero, newError(op, ErrNotFound, "token %v is not in the dictionary", token)
	}
	return t.entries[idx].Key, nil
}

// TokenFor returns the token associated with key.
func (t *Translator[K]) TokenFor(key K) (uid.Token, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tokenFor("tokenFor", key)
}

func (t *Translator[K]) tokenFor(op string, key K) (uid.Token, error) {
	if !hashable(key) {
		return uid.Token{}, newError(op, ErrInvalidKey, "key of type %T cannot be hashed", key)
	}
	token, ok := t.byKey[key]
	if !ok {
		return uid.Token{}, newError(op, ErrNotFound, "key %v is not in the dictionary", key)
	}
	return token, nil
}

// Contains returns true if token is in the dictionary.
func (t *Translator[K]) Contains(token uid.Token) bool {
	_, err := t.KeyFor(token)
	return err == nil
}

// ContainsKey returns true if key is in the dictionary.
func (t *Translator[K]) ContainsKey(key K) bool {
	_, err := t.TokenFor(key)
	return err == nil
}

// Len returns the number of associations.
func (t *Translator[K]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Entries returns a snapshot of the associations in insertion order.
func (t *Translator[K]) Entries() []Entry[K] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Entry[K](nil), t.entries...)
}

// String renders the associations in insertion order, for diagnostics only.
func (t *Translator[K]) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var b strings.Builder
	b.WriteByte('{')
	for i, entry := range t.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(entry.String())
	}
	b.WriteByte('}')
	return b.String()
}

// ToKeys replaces every token of seq with its key, keeping order and values.
// It fails on the first unknown token and returns no partial result. seq is
// drained before the dictionary is read.
func ToKeys[K comparable, V any](t *Translator[K], seq iter.Seq2[uid.Token, V]) (*ordered.Map[K, V], error) {
	input := collect(seq)
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := ordered.New[K, V](len(input))
	for _, pair := range input {
		key, err := t.keyFor("toKeys", pair.Key)
		if err != nil {
			return nil, err
		}
		out.Set(key, pair.Value)
	}
	return out, nil
}

// ToTokens replaces every key of seq with its token, keeping order and
// values. It fails on the first unknown key and returns no partial result.
func ToTokens[K comparable, V any](t *Translator[K], seq iter.Seq2[K, V]) (*ordered.Map[uid.Token, V], error) {
	input := collect(seq)
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := ordered.New[uid.Token, V](len(input))
	for _, pair := range input {
		token, err := t.tokenFor("toTokens", pair.Key)
		if err != nil {
			return nil, err
		}
		out.Set(token, pair.Value)
	}
	return out, nil
}

// collect drains seq before any lock is taken, so an iterator may call back
// into the translator.
func collect[K comparable, V any](seq iter.Seq2[K, V]) []ordered.Pair[K, V] {
	var out []ordered.Pair[K, V]
	for k, v := range seq {
		out = append(out, ordered.Pair[K, V]{Key: k, Value: v})
	}
	return out
}

// hashable reports whether key can be used as a map key at run time; an
// interface typed K may hold a slice, map or func.
func hashable(key any) bool {
	if key == nil {
		return true
	}
	return reflect.ValueOf(key).Comparable()
}
