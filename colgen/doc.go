// Package colgen implements the column-generation loop that alternates the
// master LP and the pricing MWIS solver for a single B&P node until the LP
// relaxation converges, dominates the current incumbent, or the shared
// deadline is reached.
package colgen
