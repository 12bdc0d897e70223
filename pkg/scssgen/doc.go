// Package scssgen provides code generation for the Graphite theme stylesheets.
//
// This package implements the transformation from the token list, theme
// collection, and normalized token metadata into the three generated SCSS
// artifacts: the per-theme maps, the default token declarations, and the
// theme-switch mixin.
package scssgen
