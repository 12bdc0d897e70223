package tokens

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/graphite-design/themegen/pkg/scsserrors"
)

// TokenValue is one token assignment within a theme.
type TokenValue struct {
	Token string
	Value string
}

// Theme is a named assignment of color values to tokens. Values preserve the
// key order of the source document. A theme may omit tokens; omission is
// passed through silently rather than validated.
type Theme struct {
	Name   string
	Values []TokenValue
}

// Get returns the value assigned to token, if any.
func (t *Theme) Get(token string) (string, bool) {
	for _, tv := range t.Values {
		if tv.Token == token {
			return tv.Value, true
		}
	}

	return "", false
}

// ThemeSet is an ordered collection of themes plus the distinguished default
// theme name.
type ThemeSet struct {
	Default string
	Themes  []Theme
}

// Get returns the named theme, if present.
func (ts *ThemeSet) Get(name string) (*Theme, bool) {
	for i := range ts.Themes {
		if ts.Themes[i].Name == name {
			return &ts.Themes[i], true
		}
	}

	return nil, false
}

// Names returns theme names in collection order.
func (ts *ThemeSet) Names() []string {
	names := make([]string, 0, len(ts.Themes))
	for _, t := range ts.Themes {
		names = append(names, t.Name)
	}

	return names
}

// UnmarshalYAML decodes a themes document. Go maps do not preserve key order,
// so the mapping nodes are walked directly.
func (ts *ThemeSet) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: themes document must be a mapping", scsserrors.ErrYAMLUnmarshal)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		switch key.Value {
		case "themes":
			if err := ts.unmarshalThemes(value); err != nil {
				return err
			}

		case "default":
			ts.Default = value.Value
		}
	}

	return nil
}

func (ts *ThemeSet) unmarshalThemes(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: themes must be a mapping of theme name to token values", scsserrors.ErrYAMLUnmarshal)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		name, values := node.Content[i], node.Content[i+1]

		if values.Kind != yaml.MappingNode {
			return fmt.Errorf("%w: theme %q must be a mapping of token to color value",
				scsserrors.ErrYAMLUnmarshal, name.Value)
		}

		theme := Theme{Name: name.Value}
		for j := 0; j+1 < len(values.Content); j += 2 {
			theme.Values = append(theme.Values, TokenValue{
				Token: values.Content[j].Value,
				Value: values.Content[j+1].Value,
			})
		}

		ts.Themes = append(ts.Themes, theme)
	}

	return nil
}

// LoadThemes reads a themes document from path.
func LoadThemes(path string) (*ThemeSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %w", scsserrors.ErrFileNotFound, err)
		}

		return nil, fmt.Errorf("read themes %q: %w", path, err)
	}

	ts := &ThemeSet{}
	if err := yaml.Unmarshal(data, ts); err != nil {
		return nil, fmt.Errorf("%w: themes %q: %w", scsserrors.ErrYAMLUnmarshal, path, err)
	}

	return ts, nil
}

// ThemesDocument is the plain shape of the themes input document, used for
// schema export. [ThemeSet] decodes the same document while preserving key
// order.
type ThemesDocument struct {
	Themes  map[string]map[string]string `json:"themes"`
	Default string                       `json:"default,omitempty"`
}
