package recur

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandDistributes(t *testing.T) {
	// (n+1)*(n+1) = n^2 + 2n + 1
	e := Mul(Add(Var("n"), Int(1)), Add(Var("n"), Int(1)))
	got := Expand(e)
	want := Add(Pow(Var("n"), Int(2)), Mul(Int(2), Var("n")), Int(1))
	assert.True(t, Equal(got, want), "got %s", got)
}

func TestExpandCombinesLikeTerms(t *testing.T) {
	// n + n + n = 3n
	got := Expand(Add(Var("n"), Var("n"), Var("n")))
	want := Mul(Int(3), Var("n"))
	assert.True(t, Equal(got, want), "got %s", got)
}

func TestExpandCancelsToZero(t *testing.T) {
	got := Expand(Sub(Var("n"), Var("n")))
	assert.True(t, got.IsZero())
}

func TestExpandIntegerPower(t *testing.T) {
	// (n-1)^2 = n^2 - 2n + 1
	got := Expand(Pow(Sub(Var("n"), Int(1)), Int(2)))
	want := Add(Pow(Var("n"), Int(2)), Mul(Int(-2), Var("n")), Int(1))
	assert.True(t, Equal(got, want), "got %s", got)
}

func TestExpandKeepsSqrtAtomOpaque(t *testing.T) {
	// A sqrt atom raised to an integer power is treated as an
	// indivisible base rather than evaluated; its numeric cancellation
	// only happens under float evaluation (see verify.go), not here.
	sqrt5 := Pow(Rational(big.NewRat(5, 1)), Rational(big.NewRat(1, 2)))
	got := Expand(Pow(sqrt5, Int(2)))
	want := Pow(sqrt5, Int(2))
	assert.True(t, Equal(got, want), "got %s", got)
}
