// Package money models currency amounts as integer minor units (cents). It
// parses decimal currency text exactly and formats amounts for display using
// locale-aware number formatting. Amounts never pass through floating point,
// in arithmetic or in display.
package money
