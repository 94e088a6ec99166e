// Package term implements a [plot.Surface] that approximates a figure on a
// grid of terminal cells, used by the interactive preview.
//
// [plot.Surface]: github.com/plotkit/barplot/pkg/plot.Surface
package term
