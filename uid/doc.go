// Package uid issues process-unique identity tokens.
//
// A Token carries a numeric identity and an optional display label. Two
// tokens are equal only when they share the numeric identity; the label is
// used for display and nothing else.
//
//	red := uid.NewNamed("red")
//	anon := uid.New()
//	fmt.Println(red, anon) // Uid{'red'} Uid{2}
package uid
