// Package gencmd implements the generate command: loading the input
// documents, normalizing metadata, and synthesizing, formatting, and writing
// the three generated SCSS artifacts.
package gencmd
