// Package layout maps spherical-harmonic index tuples onto flat storage.
//
// Triangular covers (l, m) with 0 <= m <= l <= lmax. Ragged covers
// (l, m, p) with 0 <= m, p <= l <= lmax and stores (l+1)^2 entries per
// degree. Both mappings are dense bijections: enumerating the tuples in
// nested order visits 0, 1, 2, ... without gaps.
package layout

import "fmt"

// Triangular indexes (degree, order) pairs.
type Triangular struct {
	lmax int
}

// NewTriangular returns the layout for degrees 0..lmax.
func NewTriangular(lmax int) Triangular {
	return Triangular{lmax: lmax}
}

// MaxDegree returns the highest degree covered by the layout.
func (t Triangular) MaxDegree() int { return t.lmax }

// Len returns the number of (l, m) entries, (lmax+1)(lmax+2)/2.
func (t Triangular) Len() int {
	return TriangularLen(t.lmax)
}

// Contains reports whether (l, m) lies inside the layout.
func (t Triangular) Contains(l, m int) bool {
	return l >= 0 && l <= t.lmax && m >= 0 && m <= l
}

// Index returns the flat index of (l, m). Panics if (l, m) is outside the layout.
func (t Triangular) Index(l, m int) int {
	if !t.Contains(l, m) {
		panic(fmt.Sprintf("layout: (l=%d, m=%d) outside triangular layout of degree %d", l, m, t.lmax))
	}
	return TriangularIndex(l, m)
}

// TriangularIndex is the unchecked mapping l(l+1)/2 + m.
func TriangularIndex(l, m int) int {
	return l*(l+1)/2 + m
}

// TriangularLen returns the entry count of a triangular layout of degree lmax.
func TriangularLen(lmax int) int {
	if lmax < 0 {
		return 0
	}
	return (lmax + 1) * (lmax + 2) / 2
}

// Ragged indexes (degree, order, p) triples.
type Ragged struct {
	lmax int
}

// NewRagged returns the layout for degrees 0..lmax.
func NewRagged(lmax int) Ragged {
	return Ragged{lmax: lmax}
}

// MaxDegree returns the highest degree covered by the layout.
func (r Ragged) MaxDegree() int { return r.lmax }

// Len returns the number of (l, m, p) entries.
func (r Ragged) Len() int {
	if r.lmax < 0 {
		return 0
	}
	return DegreeOffset(r.lmax + 1)
}

// Contains reports whether (l, m, p) lies inside the layout.
func (r Ragged) Contains(l, m, p int) bool {
	return l >= 0 && l <= r.lmax && m >= 0 && m <= l && p >= 0 && p <= l
}

// Index returns the flat index of (l, m, p). Panics if the triple is outside
// the layout.
func (r Ragged) Index(l, m, p int) int {
	if !r.Contains(l, m, p) {
		panic(fmt.Sprintf("layout: (l=%d, m=%d, p=%d) outside ragged layout of degree %d", l, m, p, r.lmax))
	}
	return r.Block(l, m) + p
}

// Block returns the flat index of (l, m, 0); the l+1 entries for p = 0..l
// follow contiguously.
func (r Ragged) Block(l, m int) int {
	return DegreeOffset(l) + m*(l+1)
}

// DegreeOffset returns the index of the first entry of degree l,
// l(l+1)(2l+1)/6.
func DegreeOffset(l int) int {
	return l * (l + 1) * (2*l + 1) / 6
}

// PFromK converts the k = l - 2p index to p. The result is only meaningful
// when |k| <= l and k has the parity of l.
func PFromK(l, k int) int {
	return (l - k) / 2
}
