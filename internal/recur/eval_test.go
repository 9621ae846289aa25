package recur

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalArithmetic(t *testing.T) {
	e := Add(Mul(Int(2), Var("n")), Int(1))
	v, err := Eval(e, map[string]*big.Rat{"n": rat(3, 1)})
	require.NoError(t, err)
	assert.Equal(t, 0, v.Cmp(rat(7, 1)))
}

func TestEvalRejectsRecCall(t *testing.T) {
	_, err := Eval(RecCall(1), map[string]*big.Rat{})
	assert.Error(t, err)
}

func TestEvalAtNLeavesUnknownsSymbolic(t *testing.T) {
	// p_0_0 * 2^n at n=3 -> 8 * p_0_0
	e := Mul(PCoeff(0, 0), Pow(Int(2), Var(VarN)))
	got, err := EvalAtN(e, rat(3, 1))
	require.NoError(t, err)
	want := Mul(Rational(rat(8, 1)), PCoeff(0, 0))
	assert.True(t, Equal(Expand(got), Expand(want)), "got %s", got)
}

func TestEvalAtNHandlesIrrationalAtom(t *testing.T) {
	// 5 + sqrt(5) evaluated at n=0 mentions no n and comes back unchanged
	// without error: the sqrt(5) sub-expression has exponent 1/2 on a rational base and
	// must not be rejected as a "non-integer exponent" (this is the bug
	// evalPartial's KindPow case previously had).
	sqrt5 := Pow(Rational(rat(5, 1)), Rational(rat(1, 2)))
	e := Add(Rational(rat(5, 1)), sqrt5)
	got, err := EvalAtN(e, rat(0, 1))
	require.NoError(t, err)
	assert.True(t, Equal(Expand(got), Expand(e)))
}
