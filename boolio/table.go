// SPDX-License-Identifier: MIT

package boolio

import (
	"fmt"
	"io"
	"strconv"

	"github.com/markkurossi/tabulate"
)

// Cell glyphs used by WriteTable.
const (
	tableTrue  = "1"
	tableFalse = "·"
)

// WriteTable renders grid as a bordered table with row and column indices,
// one cell per matrix element. Intended for terminals; use WriteMatrix for
// machine-readable output.
func WriteTable(w io.Writer, grid [][]bool) error {
	if err := validateGrid(grid); err != nil {
		return fmt.Errorf("boolio: table: %w", err)
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("").SetAlign(tabulate.MR)
	for j := range grid[0] {
		tab.Header(strconv.Itoa(j)).SetAlign(tabulate.MR)
	}

	for i, r := range grid {
		row := tab.Row()
		row.Column(strconv.Itoa(i)).SetFormat(tabulate.FmtBold)
		for _, v := range r {
			if v {
				row.Column(tableTrue)
			} else {
				row.Column(tableFalse)
			}
		}
	}
	tab.Print(w)

	return nil
}
