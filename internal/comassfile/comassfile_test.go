package comassfile

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bfix/comass/internal/recur"
)

func TestParseFibonacci(t *testing.T) {
	src := `eqs := [
		s(n) = s(n-1) + s(n-2),
		s(0) = 0,
		s(1) = 1
	];
`
	pf, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	want := recur.Add(recur.RecCall(1), recur.RecCall(2))
	assert.True(t, recur.Equal(pf.RecurrenceRHS, want), "got %s", pf.RecurrenceRHS)

	require.Len(t, pf.Initial, 2)
	v0, err := recur.Eval(pf.Initial[0], map[string]*big.Rat{})
	require.NoError(t, err)
	assert.Equal(t, 0, v0.Cmp(big.NewRat(0, 1)))
	v1, err := recur.Eval(pf.Initial[1], map[string]*big.Rat{})
	require.NoError(t, err)
	assert.Equal(t, 0, v1.Cmp(big.NewRat(1, 1)))
}

func TestParseExprArithmetic(t *testing.T) {
	e, err := ParseExpr("2*n + 1")
	require.NoError(t, err)
	want := recur.Add(recur.Mul(recur.Int(2), recur.Var("n")), recur.Int(1))
	assert.True(t, recur.Equal(e, want), "got %s", e)
}

func TestParseExprPowerAndFraction(t *testing.T) {
	e, err := ParseExpr("n^2 + 1/2")
	require.NoError(t, err)
	want := recur.Add(recur.Pow(recur.Var("n"), recur.Int(2)), recur.Rational(big.NewRat(1, 2)))
	assert.True(t, recur.Equal(e, want), "got %s", e)
}

func TestParseExprRecCall(t *testing.T) {
	e, err := ParseExpr("10*s(n-1) - s(n-2)")
	require.NoError(t, err)
	want := recur.Sub(recur.Mul(recur.Int(10), recur.RecCall(1)), recur.RecCall(2))
	assert.True(t, recur.Equal(recur.Expand(e), recur.Expand(want)), "got %s", e)
}

func TestParseExprRejectsBadRecCallArgument(t *testing.T) {
	_, err := ParseExpr("s(n-n)")
	require.Error(t, err)
	var se *recur.SolveError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, recur.ParseConstraintViolated, se.Kind)
}

func TestParseRejectsMissingHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("s(n) = s(n-1);"))
	require.Error(t, err)
}

func TestParseRejectsMissingRecurrenceLine(t *testing.T) {
	_, err := Parse(strings.NewReader("eqs := [ s(0) = 1 ];"))
	require.Error(t, err)
}
