package dictionary

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/uidkey/internal/clock"
	"github.com/viant/uidkey/internal/idgen"
	"github.com/viant/uidkey/internal/yml"
	"github.com/viant/uidkey/tracing"
	"github.com/viant/uidkey/translator"
	"github.com/viant/uidkey/uid"
	"gopkg.in/yaml.v3"
)

const (
	entriesNode   = "entries"
	createdAtNode = "createdAt"
)

// Service loads and saves translator dictionaries.
type Service struct {
	URL     string
	fs      afs.Service
	logger  *log.Logger
	zeroKey bool
}

// New creates a Service backed by afs.New() and log.Default() unless
// overridden.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	return s
}

// NewFromConfig validates cfg, initialises tracing when configured and
// returns a Service.
func NewFromConfig(cfg *Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dictionary config: %w", err)
	}
	if cfg.Tracing.Service != "" {
		if err := tracing.Init(cfg.Tracing.Service, cfg.Tracing.Version, cfg.Tracing.Output); err != nil {
			return nil, fmt.Errorf("failed to init tracing: %w", err)
		}
	}
	if cfg.ZeroKey {
		opts = append(opts, WithZeroKey())
	}
	if cfg.URL != "" {
		opts = append([]Option{WithURL(cfg.URL)}, opts...)
	}
	return New(opts...), nil
}

// Load reads the document at URL, or at the service URL when URL is empty,
// and returns a populated translator named after the URL.
func (s *Service) Load(ctx context.Context, URL string) (_ *translator.Translator[string], err error) {
	if URL == "" {
		URL = s.URL
	}
	if URL == "" {
		return nil, fmt.Errorf("dictionary URL was empty")
	}
	ctx, span := tracing.StartSpan(ctx, "dictionary.load")
	span.WithAttributes(map[string]string{"url": URL})
	defer func() { tracing.EndSpan(span, err) }()

	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check dictionary %s: %w", URL, err)
	}
	if !exists {
		return nil, fmt.Errorf("dictionary not found: %s", URL)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", URL, err)
	}
	ret, err := s.decode(data, translator.WithName(idgen.FromName(URL)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode dictionary %s: %w", URL, err)
	}
	span.WithInt("entries", ret.Len())
	s.logger.Printf("dictionary: loaded %d entries from %s", ret.Len(), URL)
	return ret, nil
}

// Decode builds a translator from a YAML document.
func (s *Service) Decode(data []byte) (*translator.Translator[string], error) {
	return s.decode(data)
}

func (s *Service) decode(data []byte, opts ...translator.Option) (*translator.Translator[string], error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if s.zeroKey {
		opts = append(opts, translator.WithZeroKey())
	}
	ret := translator.New[string](opts...)
	if doc.Kind == 0 { // empty document
		return ret, nil
	}
	root := (*yml.Node)(&doc).Root()
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected mapping document", root.Line)
	}
	entries := root.Lookup(entriesNode)
	if entries == nil {
		return ret, nil
	}

	var batch []translator.Entry[string]
	labels := map[string]int{}
	err := entries.Pairs(func(label string, node *yml.Node) error {
		if prev, ok := labels[label]; ok {
			return fmt.Errorf("line %d: label %q already defined at line %d", node.Line, label, prev)
		}
		labels[label] = node.Line
		key, err := node.Scalar()
		if err != nil {
			return fmt.Errorf("label %q: %w", label, err)
		}
		if node.IsNull() {
			key = ""
		}
		batch = append(batch, translator.Entry[string]{Token: uid.NewNamed(label), Key: key})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := ret.Insert(batch...); err != nil {
		return nil, err
	}
	return ret, nil
}

// Save writes a snapshot of t to URL.
func (s *Service) Save(ctx context.Context, URL string, t *translator.Translator[string]) (err error) {
	ctx, span := tracing.StartSpan(ctx, "dictionary.save")
	span.WithAttributes(map[string]string{"url": URL, "translator": t.ID()})
	defer func() { tracing.EndSpan(span, err) }()

	data, err := s.Encode(t)
	if err != nil {
		return fmt.Errorf("failed to encode dictionary %s: %w", URL, err)
	}
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save dictionary to %s: %w", URL, err)
	}
	span.WithInt("entries", t.Len())
	s.logger.Printf("dictionary: saved %d entries to %s", t.Len(), URL)
	return nil
}

// Encode renders t as a YAML document. Labelled tokens are written under
// their label, others under their numeric identity.
func (s *Service) Encode(t *translator.Translator[string]) ([]byte, error) {
	entries := yml.NewMap()
	labels := map[string]uid.Token{}
	for _, entry := range t.Entries() {
		label := entry.Token.Label()
		if label == "" {
			label = strconv.FormatUint(entry.Token.ID(), 10)
		}
		if prev, ok := labels[label]; ok {
			return nil, fmt.Errorf("label %q is shared by %d and %d", label, prev.ID(), entry.Token.ID())
		}
		labels[label] = entry.Token
		entries.Put(label, entry.Key)
	}
	root := yml.NewMap()
	root.Put(createdAtNode, clock.Now().Format(time.RFC3339))
	root.PutNode(entriesNode, entries)
	return yaml.Marshal((*yaml.Node)(root))
}
