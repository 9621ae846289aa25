package recur

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveSystemUnique(t *testing.T) {
	// x + y = 3 ; x - y = 1 -> x=2, y=1
	eqs := []LinearEq{
		{Coeffs: map[string]*big.Rat{"x": rat(1, 1), "y": rat(1, 1)}, Const: rat(3, 1)},
		{Coeffs: map[string]*big.Rat{"x": rat(1, 1), "y": rat(-1, 1)}, Const: rat(1, 1)},
	}
	got, err := SolveSystem(eqs, []string{"x", "y"}, ParseConstraintViolated)
	require.NoError(t, err)
	assert.Equal(t, 0, got["x"].Cmp(rat(2, 1)))
	assert.Equal(t, 0, got["y"].Cmp(rat(1, 1)))
}

func TestSolveSystemUnderdeterminedSetsZero(t *testing.T) {
	// single equation x + y = 2, two unknowns: the free column (y) is
	// set to zero per the LinSolve convention.
	eqs := []LinearEq{
		{Coeffs: map[string]*big.Rat{"x": rat(1, 1), "y": rat(1, 1)}, Const: rat(2, 1)},
	}
	got, err := SolveSystem(eqs, []string{"x", "y"}, ParseConstraintViolated)
	require.NoError(t, err)
	assert.Equal(t, 0, got["y"].Cmp(rat(0, 1)))
	assert.Equal(t, 0, got["x"].Cmp(rat(2, 1)))
}

func TestSolveSystemInconsistent(t *testing.T) {
	eqs := []LinearEq{
		{Coeffs: map[string]*big.Rat{"x": rat(1, 1)}, Const: rat(1, 1)},
		{Coeffs: map[string]*big.Rat{"x": rat(1, 1)}, Const: rat(2, 1)},
	}
	_, err := SolveSystem(eqs, []string{"x"}, UndeterminedSystemInconsistent)
	require.Error(t, err)
	var se *SolveError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, UndeterminedSystemInconsistent, se.Kind)
}
