// Package viewport computes which rows and columns of a virtualized grid have
// to be drawn.
//
// It owns the column layout (widths, left offsets, frozen-first ordering),
// scroll direction classification, visible index ranges and the asymmetric
// overscan applied in the direction of travel. Every function is pure: inputs
// are never modified and each call returns a fresh [Metrics], [Span] or
// [Range]. Units are terminal cells.
package viewport
