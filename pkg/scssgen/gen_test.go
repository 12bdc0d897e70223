package scssgen_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphite-design/themegen/pkg/scsserrors"
	"github.com/graphite-design/themegen/pkg/scssgen"
	"github.com/graphite-design/themegen/pkg/tokens"
)

var testDataDir string

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	testDataDir = filepath.Join(dir, "testdata")
}

// errorWriter implements io.Writer and always returns an error.
type errorWriter struct{}

func (w *errorWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("simulated write error")
}

func newTestGenerator(t *testing.T) *scssgen.Generator {
	t.Helper()

	colors := []string{"interactive01", "uiBackground", "brand01"}

	themes := &tokens.ThemeSet{
		Default: "white",
		Themes: []tokens.Theme{
			{
				Name: "white",
				Values: []tokens.TokenValue{
					{Token: "interactive01", Value: "#0062ff"},
					{Token: "uiBackground", Value: "#ffffff"},
					{Token: "brand01", Value: "#0062ff"},
				},
			},
			{
				Name: "g90",
				Values: []tokens.TokenValue{
					{Token: "interactive01", Value: "#0062ff"},
					{Token: "uiBackground", Value: "#262626"},
					{Token: "brand01", Value: "#0062ff"},
				},
			},
		},
	}

	md := &tokens.Metadata{
		Tokens: []tokens.TokenMeta{
			{
				Name: "interactive01",
				Role: []string{"Primary interactive color", "Primary buttons"},
			},
			{
				Name: "uiBackground",
				Role: []string{"Default page background"},
			},
			{
				Name:       "brand01",
				Role:       []string{"Brand color, same value as interactive01"},
				Alias:      "interactive01",
				Deprecated: true,
			},
		},
	}

	scssgen.NormalizeMetadata(md, colors)

	return &scssgen.Generator{
		Colors:   colors,
		Themes:   themes,
		Metadata: md,
	}
}

func TestEmitArtifacts(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t)

	tcs := map[string]struct {
		emit         func(*scssgen.Generator, *bytes.Buffer) error
		expectedPath string
	}{
		"theme maps": {
			emit: func(g *scssgen.Generator, b *bytes.Buffer) error {
				return g.EmitThemeMaps(b)
			},
			expectedPath: "output/theme-maps.scss",
		},
		"token declarations": {
			emit: func(g *scssgen.Generator, b *bytes.Buffer) error {
				return g.EmitTokenDecls(b)
			},
			expectedPath: "output/theme-tokens.scss",
		},
		"theme mixins": {
			emit: func(g *scssgen.Generator, b *bytes.Buffer) error {
				return g.EmitThemeMixins(b)
			},
			expectedPath: "output/theme-mixins.scss",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			expected, err := os.ReadFile(filepath.Join(testDataDir, tc.expectedPath))
			require.NoError(t, err)

			b := &bytes.Buffer{}
			require.NoError(t, tc.emit(g, b))
			assert.Equal(t, string(expected), b.String())

			// Re-running with identical inputs must be byte-identical.
			b2 := &bytes.Buffer{}
			require.NoError(t, tc.emit(g, b2))
			assert.Equal(t, b.String(), b2.String())
		})
	}
}

func TestGenerateThemeMaps_Counts(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t)

	b := &bytes.Buffer{}
	require.NoError(t, g.GenerateThemeMaps(b))

	out := b.String()
	assert.Equal(t, len(g.Themes.Themes), strings.Count(out, ") !default;"),
		"one map declaration per theme")
	assert.Equal(t, 1, strings.Count(out, "$graphite--theme: "),
		"exactly one default alias declaration")
	assert.Less(t,
		strings.Index(out, "$graphite--theme--white:"),
		strings.Index(out, "$graphite--theme--g90:"),
		"declaration order matches theme collection order")
}

func TestGenerateTokenDecls_OnePerToken(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t)

	// No metadata at all still yields one declaration per listed token.
	g.Metadata = nil

	b := &bytes.Buffer{}
	require.NoError(t, g.GenerateTokenDecls(b))

	out := b.String()
	assert.Equal(t, len(g.Colors), strings.Count(out, " !default;"))
	assert.NotContains(t, out, "@alias")
	assert.NotContains(t, out, "@deprecated")
	assert.Equal(t, len(g.Colors), strings.Count(out, "/// @type Color"),
		"fixed annotation block is always emitted")
}

func TestGenerateThemeMixin_RebindsEveryToken(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t)

	b := &bytes.Buffer{}
	require.NoError(t, g.GenerateThemeMixin(b))

	out := b.String()
	for _, id := range g.Colors {
		assert.Contains(t, out, "$"+scssgen.FormatTokenName(id)+": map-get($theme, ")
	}

	assert.Contains(t, out, "@content;")
	assert.Contains(t, out, "@if $theme != $graphite--theme {")
	assert.Contains(t, out, "@include theme();")
}

func TestEmit_WriteError(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t)

	err := g.EmitThemeMaps(&errorWriter{})
	require.ErrorIs(t, err, scsserrors.ErrWrite)
}

func TestThemeMapVar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$graphite--theme--g100", scssgen.ThemeMapVar("g100"))
}
