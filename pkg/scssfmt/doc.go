// Package scssfmt applies deterministic formatting to generated SCSS.
//
// The formatting pass normalizes string quoting to single quotes, strips
// trailing whitespace, collapses repeated blank lines, and guarantees a
// trailing newline. It also validates delimiter balance; malformed input is
// an error rather than a best-effort output, since generation must either
// produce well-formed artifacts or fail outright.
package scssfmt
