// SPDX-License-Identifier: MIT

// Package matrix - weight storage backends.
//
// Purpose:
//   - Provide the square weight table behind Graph in two interchangeable layouts:
//     a cache-friendly row-major buffer (default) and per-row maps (WithSparse).
//   - Keep algorithmic determinism: row scans always run in ascending column order.
//
// Bounds are validated once by Graph (checkIndex); backends assume 0 <= i,j < n.
//
// Complexity quicksheet:
//   - dense:  new O(n²); at/set O(1); scanRow O(n); clone O(n²).
//   - sparse: new O(n);  at/set O(1) avg; scanRow O(d log d); clone O(n + E).
package matrix

import "sort"

// storage is the weight table contract shared by both backends.
// Cells never written read as NoEdge.
type storage interface {
	// at returns the weight at (i, j).
	at(i, j int) float64
	// set writes w at (i, j).
	set(i, j int, w float64)
	// scanRow calls fn for every cell of row i whose weight differs from
	// NoEdge, in ascending column order.
	scanRow(i int, fn func(j int, w float64))
	// clone returns an independent deep copy.
	clone() storage
}

// Compile-time assertions.
var (
	_ storage = (*dense)(nil)
	_ storage = (*sparse)(nil)
)

// newStorage picks the backend for the given options.
func newStorage(n int, sparseLayout bool) storage {
	if sparseLayout {
		return newSparse(n)
	}

	return newDense(n)
}

// dense is a row-major n×n table; offset = i*n + j.
type dense struct {
	n    int       // side length
	data []float64 // contiguous row-major storage (len == n*n)
}

// newDense allocates an n×n table filled with NoEdge.
func newDense(n int) *dense {
	buf := make([]float64, n*n)
	for k := range buf {
		buf[k] = NoEdge
	}

	return &dense{n: n, data: buf}
}

func (d *dense) at(i, j int) float64 {
	return d.data[i*d.n+j]
}

func (d *dense) set(i, j int, w float64) {
	d.data[i*d.n+j] = w
}

func (d *dense) scanRow(i int, fn func(j int, w float64)) {
	row := d.data[i*d.n : (i+1)*d.n]
	for j, w := range row {
		if w != NoEdge {
			fn(j, w)
		}
	}
}

func (d *dense) clone() storage {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return &dense{n: d.n, data: cp}
}

// sparse keeps one map per row holding only cells different from NoEdge.
// Writing NoEdge deletes the cell, so an emptied row costs nothing.
type sparse struct {
	rows []map[int]float64 // rows[i][j] = weight; nil map ⇒ empty row
}

// newSparse allocates n empty rows.
func newSparse(n int) *sparse {
	return &sparse{rows: make([]map[int]float64, n)}
}

func (s *sparse) at(i, j int) float64 {
	if w, ok := s.rows[i][j]; ok {
		return w
	}

	return NoEdge
}

func (s *sparse) set(i, j int, w float64) {
	if w == NoEdge {
		delete(s.rows[i], j) // delete on a nil map is a no-op
		return
	}
	if s.rows[i] == nil {
		s.rows[i] = make(map[int]float64)
	}
	s.rows[i][j] = w
}

func (s *sparse) scanRow(i int, fn func(j int, w float64)) {
	row := s.rows[i]
	if len(row) == 0 {
		return
	}
	cols := make([]int, 0, len(row))
	for j := range row {
		cols = append(cols, j)
	}
	sort.Ints(cols)
	for _, j := range cols {
		fn(j, row[j])
	}
}

func (s *sparse) clone() storage {
	cp := &sparse{rows: make([]map[int]float64, len(s.rows))}
	for i, row := range s.rows {
		if len(row) == 0 {
			continue
		}
		cp.rows[i] = make(map[int]float64, len(row))
		for j, w := range row {
			cp.rows[i][j] = w
		}
	}

	return cp
}
