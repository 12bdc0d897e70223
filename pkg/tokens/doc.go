// Package tokens models the generator's inputs: the authoritative color token
// list, the named theme collection, and per-token metadata.
//
// All three are loaded from YAML documents. Theme iteration order and the
// token key order within each theme follow the source document, since the
// generated output must be byte-identical across runs with identical inputs.
package tokens
