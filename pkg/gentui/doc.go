// Package gentui provides a terminal user interface for the generate command.
//
// This package implements a TUI layer for
// [github.com/graphite-design/themegen/pkg/gencmd], offering visual feedback
// for generation runs. It uses the Bubble Tea framework to provide progress
// indicators, spinners, and formatted output.
package gentui
