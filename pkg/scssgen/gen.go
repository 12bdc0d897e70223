package scssgen

import (
	"bytes"
	"fmt"
	"io"

	"github.com/graphite-design/themegen/pkg/scsserrors"
	"github.com/graphite-design/themegen/pkg/scssfmt"
	"github.com/graphite-design/themegen/pkg/tokens"
)

// Generated artifact file names. The mixins artifact imports the maps
// artifact, so the two must be emitted into the same directory.
const (
	ThemeMapsFile   = "_theme-maps.scss"
	ThemeTokensFile = "_theme-tokens.scss"
	ThemeMixinsFile = "_theme-mixins.scss"
)

const (
	// DefaultThemeVar is the map variable backing the default declarations
	// and the default argument of the theme mixin.
	DefaultThemeVar = "$graphite--theme"

	group = "@graphite/themes"
)

// Header is the fixed license and generation notice prepended to every
// artifact.
const Header = `//
// Copyright Graphite Design System Contributors
//
// This source code is licensed under the Apache-2.0 license found in the
// LICENSE file in the root directory of this source tree.
//
// Code generated by themegen. DO NOT EDIT.
//
`

// Generator holds one immutable input snapshot. Colors is the authoritative
// ordered color token list; Metadata must already be normalized.
type Generator struct {
	Themes   *tokens.ThemeSet
	Metadata *tokens.Metadata
	Colors   []string
}

// ThemeMapVar returns the map variable name declared for a theme.
func ThemeMapVar(theme string) string {
	return fmt.Sprintf("$graphite--theme--%s", theme)
}

// GenerateThemeMaps writes one named map declaration per theme, in theme
// collection order, followed by the default theme alias declaration.
func (g *Generator) GenerateThemeMaps(w io.Writer) error {
	b := &bytes.Buffer{}

	for _, theme := range g.Themes.Themes {
		fmt.Fprintf(b, "/// Graphite's %s theme\n", theme.Name)
		fmt.Fprintln(b, "/// @type Map")
		fmt.Fprintln(b, "/// @access public")
		fmt.Fprintf(b, "/// @group %s\n", group)
		fmt.Fprintf(b, "%s: (\n", ThemeMapVar(theme.Name))

		for _, tv := range theme.Values {
			fmt.Fprintf(b, "  %s: %s,\n", FormatTokenName(tv.Token), tv.Value)
		}

		fmt.Fprintln(b, ") !default;")
		fmt.Fprintln(b)
	}

	fmt.Fprintln(b, "/// Graphite's default theme")
	fmt.Fprintln(b, "/// @type Map")
	fmt.Fprintln(b, "/// @access public")
	fmt.Fprintf(b, "/// @alias graphite--theme--%s\n", g.Themes.Default)
	fmt.Fprintf(b, "%s: %s !default;\n", DefaultThemeVar, ThemeMapVar(g.Themes.Default))

	if _, err := b.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", scsserrors.ErrWrite, err)
	}

	return nil
}

// GenerateTokenDecls writes one default-theme-bound declaration per listed
// color token, in list order, annotated with any normalized metadata. Tokens
// without a metadata entry still get the fixed annotation block and a
// declaration line.
func (g *Generator) GenerateTokenDecls(w io.Writer) error {
	b := &bytes.Buffer{}

	for i, id := range g.Colors {
		if i > 0 {
			fmt.Fprintln(b)
		}

		name := FormatTokenName(id)

		var meta *tokens.TokenMeta
		if g.Metadata != nil {
			meta, _ = g.Metadata.Get(id)
		}

		if meta != nil && len(meta.Role) > 0 {
			fmt.Fprintf(b, "/// %s\n", joinRoles(meta.Role))
		}

		fmt.Fprintln(b, "/// @type Color")
		fmt.Fprintln(b, "/// @access public")
		fmt.Fprintf(b, "/// @group %s\n", group)

		if meta != nil && meta.Alias != "" {
			fmt.Fprintf(b, "/// @alias %s\n", meta.Alias)
		}

		if meta != nil && meta.Deprecated {
			fmt.Fprintln(b, "/// @deprecated")
		}

		fmt.Fprintf(b, "$%s: map-get(%s, '%s') !default;\n", name, DefaultThemeVar, name)
	}

	if _, err := b.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", scsserrors.ErrWrite, err)
	}

	return nil
}

// GenerateThemeMixin writes the theme-switch mixin. The mixin rebinds every
// color token variable globally to the supplied map's values, yields to the
// caller's content, and reapplies the default theme if a non-default map was
// supplied. Rebinding goes through shared global variables; that contract is
// documented in the emitted SassDoc rather than changed.
func (g *Generator) GenerateThemeMixin(w io.Writer) error {
	b := &bytes.Buffer{}

	fmt.Fprintln(b, "/// Rebinds each color token variable globally to the values in the")
	fmt.Fprintln(b, "/// supplied theme map, yields to the caller's content, and then restores")
	fmt.Fprintln(b, "/// the default theme if a non-default map was applied.")
	fmt.Fprintln(b, "///")
	fmt.Fprintln(b, "/// Variables are rebound with `!global`, so nested inclusions share")
	fmt.Fprintln(b, "/// state: an inner reset can restore the default theme before the outer")
	fmt.Fprintln(b, "/// content finishes rendering.")
	fmt.Fprintf(b, "/// @param {Map} $theme [%s] - The theme map to apply\n", DefaultThemeVar)
	fmt.Fprintln(b, "/// @content")
	fmt.Fprintf(b, "@mixin theme($theme: %s) {\n", DefaultThemeVar)

	for _, id := range g.Colors {
		name := FormatTokenName(id)
		fmt.Fprintf(b, "  $%s: map-get($theme, '%s') !global;\n", name, name)
	}

	fmt.Fprintln(b)
	fmt.Fprintln(b, "  @content;")
	fmt.Fprintln(b)
	fmt.Fprintln(b, "  // Reapply the default theme once the caller's content has rendered.")
	fmt.Fprintf(b, "  @if $theme != %s {\n", DefaultThemeVar)
	fmt.Fprintln(b, "    @include theme();")
	fmt.Fprintln(b, "  }")
	fmt.Fprintln(b, "}")

	if _, err := b.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", scsserrors.ErrWrite, err)
	}

	return nil
}

// EmitThemeMaps writes the complete theme-maps artifact: header, body, and
// the deterministic formatting pass.
func (g *Generator) EmitThemeMaps(w io.Writer) error {
	return g.emit(w, "", g.GenerateThemeMaps)
}

// EmitTokenDecls writes the complete token-declarations artifact.
func (g *Generator) EmitTokenDecls(w io.Writer) error {
	return g.emit(w, "", g.GenerateTokenDecls)
}

// EmitThemeMixins writes the complete mixins artifact, which imports the
// theme-maps artifact.
func (g *Generator) EmitThemeMixins(w io.Writer) error {
	return g.emit(w, "@import 'theme-maps';\n\n", g.GenerateThemeMixin)
}

func (g *Generator) emit(w io.Writer, imports string, generate func(io.Writer) error) error {
	b := &bytes.Buffer{}
	b.WriteString(Header)
	b.WriteString("\n")
	b.WriteString(imports)

	if err := generate(b); err != nil {
		return fmt.Errorf("%w: %w", scsserrors.ErrGenerate, err)
	}

	formatted, err := scssfmt.Printer.Format(b.String())
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, formatted); err != nil {
		return fmt.Errorf("%w: %w", scsserrors.ErrWrite, err)
	}

	return nil
}

// joinRoles joins role descriptions the way the annotation contract expects.
func joinRoles(roles []string) string {
	out := roles[0]
	for _, r := range roles[1:] {
		out += "; " + r
	}

	return out
}
