package recur

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRecurrence(t *testing.T, rhs Expr, initial map[int]Expr) *Recurrence {
	t.Helper()
	rec, err := NewRecurrence(rhs, initial)
	require.NoError(t, err)
	return rec
}

// TestSolverFibonacci covers the Fibonacci scenario: a
// distinct-irrational-root homogeneous recurrence.
func TestSolverFibonacci(t *testing.T) {
	rec := mustRecurrence(t, Add(RecCall(1), RecCall(2)), map[int]Expr{0: Int(0), 1: Int(1)})
	solver := NewSolver(rec, DefaultConfig())

	closed, err := solver.Solve()
	require.NoError(t, err)
	assert.NotEmpty(t, closed.String())

	for n := 0; n <= 10; n++ {
		v, err := solver.EvaluateByIteration(n)
		require.NoError(t, err)
		assert.Equal(t, 0, v.Cmp(big.NewRat(fib(n), 1)), "F(%d)", n)
	}

	require.NoError(t, VerifyAgreement(solver, 0, 15, 1e-6))
}

func fib(n int) int64 {
	a, b := int64(0), int64(1)
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a
}

// TestSolverRepeatedRoot covers s(n) = -4s(n-2) + 4s(n-1), whose
// characteristic equation r^2 - 4r + 4 has the double root r=2.
func TestSolverRepeatedRoot(t *testing.T) {
	rhs := Add(Mul(Int(-4), RecCall(2)), Mul(Int(4), RecCall(1)))
	rec := mustRecurrence(t, rhs, map[int]Expr{0: Int(1), 1: Int(4)})
	solver := NewSolver(rec, DefaultConfig())

	_, err := solver.Solve()
	require.NoError(t, err)
	require.NoError(t, VerifyAgreement(solver, 0, 15, 1e-6))
}

// TestSolverIrrationalRoots covers s(n) = 10s(n-1) - s(n-2), whose
// characteristic roots are 5 +/- 2*sqrt(6) (exercising the irrational
// sqrt-atom evaluation path end to end).
func TestSolverIrrationalRoots(t *testing.T) {
	rhs := Sub(Mul(Int(10), RecCall(1)), RecCall(2))
	rec := mustRecurrence(t, rhs, map[int]Expr{0: Int(0), 1: Int(1)})
	solver := NewSolver(rec, DefaultConfig())

	_, err := solver.Solve()
	require.NoError(t, err)
	require.NoError(t, VerifyAgreement(solver, 0, 12, 1e-3))
}

// TestSolverQuadraticRepeatedRoot covers s(n) = 6s(n-1) - 9s(n-2),
// characteristic root r=3 with multiplicity 2.
func TestSolverQuadraticRepeatedRoot(t *testing.T) {
	rhs := Sub(Mul(Int(6), RecCall(1)), Mul(Int(9), RecCall(2)))
	rec := mustRecurrence(t, rhs, map[int]Expr{0: Int(1), 1: Int(6)})
	solver := NewSolver(rec, DefaultConfig())

	_, err := solver.Solve()
	require.NoError(t, err)
	require.NoError(t, VerifyAgreement(solver, 0, 12, 1e-6))
}

// TestSolverResonantForcing covers s(n) = s(n-1) + 2^n + 1, where the
// forcing base 2 does not resonate but the constant-1 bucket resonates
// with the characteristic root r=1, requiring the extra n^mu factor.
func TestSolverResonantForcing(t *testing.T) {
	rhs := Add(RecCall(1), Pow(Int(2), Var(VarN)), Int(1))
	rec := mustRecurrence(t, rhs, map[int]Expr{0: Int(0)})
	solver := NewSolver(rec, DefaultConfig())

	_, err := solver.Solve()
	require.NoError(t, err)
	require.NoError(t, VerifyAgreement(solver, 0, 12, 1e-6))
}

// TestSolverMixedForcing covers s(n) = -5s(n-1) - 6s(n-2) + 42*4^n.
func TestSolverMixedForcing(t *testing.T) {
	rhs := Add(Mul(Int(-5), RecCall(1)), Mul(Int(-6), RecCall(2)), Mul(Int(42), Pow(Int(4), Var(VarN))))
	rec := mustRecurrence(t, rhs, map[int]Expr{0: Int(1), 1: Int(2)})
	solver := NewSolver(rec, DefaultConfig())

	_, err := solver.Solve()
	require.NoError(t, err)
	require.NoError(t, VerifyAgreement(solver, 0, 12, 1e-3))
}

// TestSolverComplexRootsRejected covers the ComplexRootsPresent path:
// s(n) = -s(n-1) - s(n-2) has characteristic roots that are a complex
// conjugate pair (discriminant 1-4 = -3).
func TestSolverComplexRootsRejected(t *testing.T) {
	rhs := Add(Mul(Int(-1), RecCall(1)), Mul(Int(-1), RecCall(2)))
	rec := mustRecurrence(t, rhs, map[int]Expr{0: Int(0), 1: Int(1)})
	solver := NewSolver(rec, DefaultConfig())

	_, err := solver.Solve()
	require.Error(t, err)
	var se *SolveError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ComplexRootsPresent, se.Kind)
}

// TestSolverCachesClosedForm checks Solve's determinism contract:
// calling it twice returns the identical expression without
// recomputation.
func TestSolverCachesClosedForm(t *testing.T) {
	rec := mustRecurrence(t, Add(RecCall(1), RecCall(2)), map[int]Expr{0: Int(0), 1: Int(1)})
	solver := NewSolver(rec, DefaultConfig())

	first, err := solver.Solve()
	require.NoError(t, err)
	second, err := solver.Solve()
	require.NoError(t, err)
	assert.Equal(t, first.String(), second.String())
}
