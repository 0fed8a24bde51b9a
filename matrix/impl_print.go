// SPDX-License-Identifier: MIT

// Package matrix - diagnostic rendering.
package matrix

import (
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtEllipsis = "..."
	_fmtSep      = " "
	_fmtNewline  = "\n"
)

const ctxPrint = "Print"

// Print writes at most maxRows×maxCols elements of m to w, each right-aligned
// in a fixed-width field. A trailing "..." marks truncated columns on each
// row, and a final "..." line marks truncated rows.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrInvalidDimensions when maxRows or maxCols is not positive.
//   - Any error returned by w.
func (m *Dense[T]) Print(w io.Writer, maxRows, maxCols int) error {
	if m == nil {
		return fmt.Errorf("%s: %w", ctxPrint, ErrNilMatrix)
	}
	if maxRows <= 0 || maxCols <= 0 {
		return fmt.Errorf("%s(%d,%d): %w", ctxPrint, maxRows, maxCols, ErrInvalidDimensions)
	}
	_, err := io.WriteString(w, m.render(maxRows, maxCols))

	return err
}

// String renders the top-left DefaultPrintRows×DefaultPrintCols window.
func (m *Dense[T]) String() string {
	if m == nil {
		return "<nil>"
	}

	return m.render(DefaultPrintRows, DefaultPrintCols)
}

// render builds the truncated text view; callers validate the bounds.
func (m *Dense[T]) render(maxRows, maxCols int) string {
	r, c := min(m.r, maxRows), min(m.c, maxCols)

	var sb strings.Builder
	for i := 0; i < r; i++ {
		row := m.data[i*m.c : i*m.c+c]
		for _, v := range row {
			fmt.Fprintf(&sb, "%*v%s", printWidth, v, _fmtSep)
		}
		if c < m.c {
			sb.WriteString(_fmtEllipsis)
		}
		sb.WriteString(_fmtNewline)
	}
	if r < m.r {
		sb.WriteString(_fmtEllipsis + _fmtNewline)
	}

	return sb.String()
}
