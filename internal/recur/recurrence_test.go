package recur

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeFibonacci(t *testing.T) {
	// s(n) = s(n-1) + s(n-2)
	rhs := Add(RecCall(1), RecCall(2))
	res, err := Analyze(rhs)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Order)
	assert.True(t, res.Forcing.IsZero())
	assert.Equal(t, 0, res.Coefficients[1].Cmp(rat(1, 1)))
	assert.Equal(t, 0, res.Coefficients[2].Cmp(rat(1, 1)))
}

func TestAnalyzeWithForcing(t *testing.T) {
	// s(n) = s(n-1) + 2^n + 1
	rhs := Add(RecCall(1), Pow(Int(2), Var(VarN)), Int(1))
	res, err := Analyze(rhs)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Order)
	assert.False(t, res.Forcing.IsZero())
}

func TestAnalyzeRejectsNonLinearSquare(t *testing.T) {
	// s(n) = s(n-1)^2
	rhs := Pow(RecCall(1), Int(2))
	_, err := Analyze(rhs)
	require.Error(t, err)
	var se *SolveError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, NonLinear, se.Kind)
}

func TestAnalyzeRejectsNonConstantCoefficient(t *testing.T) {
	// s(n) = n*s(n-1)
	rhs := Mul(Var(VarN), RecCall(1))
	_, err := Analyze(rhs)
	require.Error(t, err)
	var se *SolveError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, NonLinear, se.Kind)
}

func TestNewRecurrenceFibonacci(t *testing.T) {
	rhs := Add(RecCall(1), RecCall(2))
	initial := map[int]Expr{0: Int(0), 1: Int(1)}
	rec, err := NewRecurrence(rhs, initial)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Order)
	assert.Equal(t, 0, rec.I0)
	assert.Equal(t, 0, rec.Coefficient(1).Cmp(rat(1, 1)))
	assert.Equal(t, 0, rec.Coefficient(3).Cmp(rat(0, 1))) // defaults to 0
}

func TestNewRecurrenceWrongInitialCount(t *testing.T) {
	rhs := Add(RecCall(1), RecCall(2))
	_, err := NewRecurrence(rhs, map[int]Expr{0: Int(0)})
	require.Error(t, err)
	var se *SolveError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, InitialSystemInconsistent, se.Kind)
}

func TestNewRecurrenceNonContiguousInitial(t *testing.T) {
	rhs := Add(RecCall(1), RecCall(2))
	_, err := NewRecurrence(rhs, map[int]Expr{0: Int(0), 2: Int(1)})
	require.Error(t, err)
	var se *SolveError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, InitialSystemInconsistent, se.Kind)
}
