// Package table converts provider responses into display tables.
package table

import (
	"strconv"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Title           string
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// centered returns an alignment slice centering n columns.
func centered(n int) []Align {
	align := make([]Align, n)
	for i := range align {
		align[i] = AlignCenter
	}
	return align
}

// num formats a float the way the provider writes it: no trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
