package dictionary

import (
	"log"

	"github.com/viant/afs"
)

// Option configures a Service.
type Option func(s *Service)

// WithFS sets the storage service.
func WithFS(fs afs.Service) Option {
	return func(s *Service) { s.fs = fs }
}

// WithLogger sets the logger used for load/save summaries.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithZeroKey lets loaded translators accept the empty string as a key.
func WithZeroKey() Option {
	return func(s *Service) { s.zeroKey = true }
}

// WithURL sets the dictionary location used by Load when called with an
// empty URL.
func WithURL(URL string) Option {
	return func(s *Service) { s.URL = URL }
}
