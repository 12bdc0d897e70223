package tokens

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/graphite-design/themegen/pkg/scsserrors"
)

// TokenMeta carries the optional annotations for one token. Role strings and
// the alias field may reference other tokens by their internal identifiers;
// those references are rewritten to public form by scssgen.NormalizeMetadata
// before declaration synthesis.
type TokenMeta struct {
	Name       string   `json:"name"                 yaml:"name"`
	Alias      string   `json:"alias,omitempty"      yaml:"alias,omitempty"`
	Role       []string `json:"role,omitempty"       yaml:"role,omitempty"`
	Deprecated bool     `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}

// Metadata is the per-token annotation document. Entries for tokens that are
// not in the token list are inert.
type Metadata struct {
	Tokens []TokenMeta `json:"tokens" yaml:"tokens"`
}

// Get returns the metadata entry for the given internal token identifier.
func (m *Metadata) Get(name string) (*TokenMeta, bool) {
	for i := range m.Tokens {
		if m.Tokens[i].Name == name {
			return &m.Tokens[i], true
		}
	}

	return nil, false
}

// LoadMetadata reads a metadata document from path. Callers are expected to
// treat failure as recoverable and continue with empty metadata.
func LoadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %w", scsserrors.ErrFileNotFound, err)
		}

		return nil, fmt.Errorf("read metadata %q: %w", path, err)
	}

	md := &Metadata{}
	if err := yaml.Unmarshal(data, md); err != nil {
		return nil, fmt.Errorf("%w: metadata %q: %w", scsserrors.ErrYAMLUnmarshal, path, err)
	}

	return md, nil
}
