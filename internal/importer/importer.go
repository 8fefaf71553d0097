package importer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cameronfoundation/aba/internal/encoding"
	"github.com/cameronfoundation/aba/internal/model"
)

// Parser converts a CSV export into transactions.
type Parser interface {
	Parse(r io.Reader) ([]model.Transaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats lists the registered format names.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry returns a registry with all built-in parsers. Donation
// rows carry no transaction code, so they are written with code.
func DefaultRegistry(code model.TransactionCode) *Registry {
	r := NewRegistry()
	r.Register(&DonationsParser{Code: code})
	r.Register(&StandardParser{})
	return r
}

// ParseFile decodes path to UTF-8 and parses it with p.
func ParseFile(p Parser, path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r, err := encoding.NewUTF8Reader(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	txns, err := p.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s as %s: %w", path, p.Format(), err)
	}
	return txns, nil
}
