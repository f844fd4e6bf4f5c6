// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// symbolCount is the size of the Latin alphabet used by symbol schemes.
const symbolCount = 26

// IDFn maps a zero-based vertex index to its label. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal text of idx, matching how edgelist.Load
// labels numeric rows.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns "A".."Z" for idx in [0, 25]. Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx >= symbolCount {
		panic(fmt.Sprintf("builder: SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('A' + idx))
}

// ExcelColumnIDFn returns spreadsheet column names: 0->"A", 25->"Z", 26->"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: ExcelColumnIDFn: idx must be >= 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/symbolCount - 1 {
		runes = append(runes, rune('A'+i%symbolCount))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns prefix + decimal index, e.g. "v0", "v1".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// WithSymbolIDs labels vertices "A".."Z"; graphs larger than 26 vertices panic
// during construction, use WithExcelColumnIDs for those.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs labels vertices "A".."Z","AA",...
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithPrefixIDs labels vertices prefix+index.
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }
