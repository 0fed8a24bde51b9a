// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/dlops/matrix"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	m := mustDense[int](t, 3, 3)
	require.NoError(t, m.FillSequential())

	tests := []struct {
		name       string
		rows, cols int
		want       string
	}{
		{"full", 3, 3, "" +
			"     0      1      2 \n" +
			"     3      4      5 \n" +
			"     6      7      8 \n"},
		{"truncated", 2, 2, "" +
			"     0      1 ...\n" +
			"     3      4 ...\n" +
			"...\n"},
		{"bounds larger than matrix", 10, 10, "" +
			"     0      1      2 \n" +
			"     3      4      5 \n" +
			"     6      7      8 \n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, m.Print(&buf, tc.rows, tc.cols))
			require.Equal(t, tc.want, buf.String())
		})
	}
}

func TestPrintInvalid(t *testing.T) {
	var buf bytes.Buffer
	m := mustDense[int](t, 1, 1)
	require.ErrorIs(t, m.Print(&buf, 0, 1), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, m.Print(&buf, 1, -1), matrix.ErrInvalidDimensions)

	var nilM *matrix.Dense[int]
	require.ErrorIs(t, nilM.Print(&buf, 1, 1), matrix.ErrNilMatrix)
	require.Empty(t, buf.String())
}

// TestStringDefaultWindow checks the 5x5 default window.
func TestStringDefaultWindow(t *testing.T) {
	m := mustDense[int](t, 6, 6)
	s := m.String()
	require.Equal(t, 6, bytes.Count([]byte(s), []byte("\n")))
	require.Contains(t, s, "...\n")
}
