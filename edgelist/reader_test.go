package edgelist_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafo/edgelist"
)

// TestParseLine covers whitespace handling, limits and bad tokens.
func TestParseLine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		in      string
		want    []uint64
		wantErr error
	}{
		{"simple", "1 2 3", []uint64{1, 2, 3}, nil},
		{"tabs and padding", "\t 7\t\t8  ", []uint64{7, 8}, nil},
		{"max uint64", "18446744073709551615", []uint64{18446744073709551615}, nil},
		{"empty", "", []uint64{}, nil},
		{"negative", "1 -2", nil, edgelist.ErrBadToken},
		{"overflow", "18446744073709551616", nil, edgelist.ErrBadToken},
		{"word", "a b", nil, edgelist.ErrBadToken},
		{"float", "1.5", nil, edgelist.ErrBadToken},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := edgelist.ParseLine(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestReader skips blanks and comments and reports line numbers.
func TestReader(t *testing.T) {
	t.Parallel()
	in := "# header\n\n0 1\n   \n1 2 9\n# trailing\n"
	r := edgelist.NewReader(strings.NewReader(in))

	row, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 1}, row)
	assert.Equal(t, 3, r.Line())

	row, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 9}, row)
	assert.Equal(t, 5, r.Line())

	_, err = r.Next()
	assert.True(t, errors.Is(err, io.EOF))

	bad := edgelist.NewReader(strings.NewReader("1 2\n3 x\n"))
	_, err = bad.Next()
	require.NoError(t, err)
	_, err = bad.Next()
	require.ErrorIs(t, err, edgelist.ErrBadToken)
	assert.Contains(t, err.Error(), "line 2")
}
