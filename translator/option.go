package translator

// Option configures a Translator.
type Option func(o *options)

type options struct {
	zeroKey bool
	name    string
}

// WithZeroKey accepts the zero value of the key type as a regular key, for
// example an iota enum whose first constant is meaningful.
func WithZeroKey() Option {
	return func(o *options) { o.zeroKey = true }
}

// WithName sets the translator identifier returned by ID.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}
