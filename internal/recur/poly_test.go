package recur

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rat(n, d int64) *big.Rat { return big.NewRat(n, d) }

func TestFindRealRootsDistinctRational(t *testing.T) {
	// r^2 - 3r + 2 = (r-1)(r-2)
	p := NewPoly(rat(2, 1), rat(-3, 1), rat(1, 1))
	roots := FindRealRoots(p)
	require.Equal(t, 2, TotalMultiplicity(roots))
	assert.Equal(t, 1, MultiplicityOf(roots, Rational(rat(1, 1))))
	assert.Equal(t, 1, MultiplicityOf(roots, Rational(rat(2, 1))))
}

func TestFindRealRootsRepeated(t *testing.T) {
	// r^2 - 4r + 4 = (r-2)^2
	p := NewPoly(rat(4, 1), rat(-4, 1), rat(1, 1))
	roots := FindRealRoots(p)
	require.Len(t, roots, 1)
	assert.Equal(t, 2, roots[0].Mult)
	assert.True(t, Equal(roots[0].Value, Rational(rat(2, 1))))
}

func TestFindRealRootsIrrationalPair(t *testing.T) {
	// r^2 - 10r + 1 = 0 -> r = 5 +/- 2*sqrt(6) (s(n)=10s(n-1)-s(n-2))
	p := NewPoly(rat(1, 1), rat(-10, 1), rat(1, 1))
	roots := FindRealRoots(p)
	require.Equal(t, 2, TotalMultiplicity(roots))
	for _, r := range roots {
		assert.Equal(t, 1, r.Mult)
	}
}

func TestFindRealRootsComplexPairAbsent(t *testing.T) {
	// r^2 + 1 = 0 has no real roots.
	p := NewPoly(rat(1, 1), rat(0, 1), rat(1, 1))
	roots := FindRealRoots(p)
	assert.Equal(t, 0, TotalMultiplicity(roots))
}

func TestFindRealRootsDegreeThreeWithRationalRoot(t *testing.T) {
	// r^3 - 6r^2 + 11r - 6 = (r-1)(r-2)(r-3)
	p := NewPoly(rat(-6, 1), rat(11, 1), rat(-6, 1), rat(1, 1))
	roots := FindRealRoots(p)
	require.Equal(t, 3, TotalMultiplicity(roots))
	for _, v := range []int64{1, 2, 3} {
		assert.Equal(t, 1, MultiplicityOf(roots, Rational(rat(v, 1))), "missing root %d", v)
	}
}

func TestPolyDeflateIsExact(t *testing.T) {
	p := NewPoly(rat(-6, 1), rat(11, 1), rat(-6, 1), rat(1, 1))
	q := p.deflate(rat(1, 1))
	// quotient should be r^2 - 5r + 6
	assert.Equal(t, 0, q.Eval(rat(2, 1)).Cmp(rat(0, 1)))
	assert.Equal(t, 0, q.Eval(rat(3, 1)).Cmp(rat(0, 1)))
}
