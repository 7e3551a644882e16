// Package translator keeps a strict one-to-one association between
// uid tokens and application keys and translates in both directions.
//
// Insertions are validated as a whole batch: a batch that repeats a token or
// a key, uses an empty key, or carries a token that was not issued by the
// uid package fails with *Error and leaves the dictionary untouched.
//
//	t := translator.New[Color]()
//	red, green := uid.NewNamed("red"), uid.NewNamed("green")
//	err := t.Insert(translator.Entry[Color]{red, Red}, translator.Entry[Color]{green, Green})
//	key, err := t.KeyFor(red)        // Red
//	token, err := t.TokenFor(Green)  // green
package translator
