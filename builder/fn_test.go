package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/grafo/builder"
)

func TestIDFns(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn", builder.DefaultIDFn, 123, "123", false},
		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_tooHigh", builder.SymbolIDFn, 26, "", true},
		{"SymbolIDFn_neg", builder.SymbolIDFn, -1, "", true},
		{"ExcelColumnIDFn_Z", builder.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumnIDFn_AA", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_ZZ", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"ExcelColumnIDFn_AAA", builder.ExcelColumnIDFn, 702, "AAA", false},
		{"ExcelColumnIDFn_neg", builder.ExcelColumnIDFn, -1, "", true},
		{"PrefixIDFn", builder.PrefixIDFn("v"), 9, "v9", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

func TestWeightFns(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.ConstantWeightFn(math.NaN()) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.Panics(t, func() { builder.IntWeightFn(-1, 4) })

	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(2, 3)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.IntWeightFn(2, 3)(nil))
	assert.Equal(t, 2.0, builder.UniformWeightFn(2, 2)(rand.New(rand.NewSource(1))))

	rng := rand.New(rand.NewSource(42))
	u := builder.UniformWeightFn(1, 100)
	for i := 0; i < 200; i++ {
		w := u(rng)
		assert.GreaterOrEqual(t, w, 1.0)
		assert.Less(t, w, 100.0)
	}
}
