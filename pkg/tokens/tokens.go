package tokens

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/graphite-design/themegen/pkg/scsserrors"
)

// List is the authoritative ordered list of color token identifiers. Token
// declarations and theme-switch rebinds are emitted in this order, not in the
// order any particular theme happens to define.
type List struct {
	Colors []string `json:"colors" yaml:"colors"`
}

// LoadList reads a token list document from path.
func LoadList(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %w", scsserrors.ErrFileNotFound, err)
		}

		return nil, fmt.Errorf("read token list %q: %w", path, err)
	}

	list := &List{}
	if err := yaml.Unmarshal(data, list); err != nil {
		return nil, fmt.Errorf("%w: token list %q: %w", scsserrors.ErrYAMLUnmarshal, path, err)
	}

	return list, nil
}
