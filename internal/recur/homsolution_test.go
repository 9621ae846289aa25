package recur

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneralSolutionDistinctRoots(t *testing.T) {
	roots := []Root{{Value: Rational(rat(2, 1)), Mult: 1}, {Value: Rational(rat(3, 1)), Mult: 1}}
	sol, free := GeneralSolution(roots)
	require.Equal(t, []string{"p_0_0", "p_1_0"}, free)
	want := Add(
		Mul(PCoeff(0, 0), Pow(Rational(rat(2, 1)), Var(VarN))),
		Mul(PCoeff(1, 0), Pow(Rational(rat(3, 1)), Var(VarN))),
	)
	assert.True(t, Equal(sol, want), "got %s", sol)
}

func TestGeneralSolutionRepeatedRoot(t *testing.T) {
	roots := []Root{{Value: Rational(rat(2, 1)), Mult: 2}}
	sol, free := GeneralSolution(roots)
	require.Equal(t, []string{"p_0_0", "p_0_1"}, free)
	want := Mul(
		Add(PCoeff(0, 0), Mul(PCoeff(0, 1), Var(VarN))),
		Pow(Rational(rat(2, 1)), Var(VarN)),
	)
	assert.True(t, Equal(sol, want), "got %s", sol)
}
