package recur

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualIgnoresOperandOrder(t *testing.T) {
	a := Add(Var("n"), Int(1))
	b := Add(Int(1), Var("n"))
	assert.True(t, Equal(a, b))
}

func TestEqualDistinguishesDifferentShapes(t *testing.T) {
	a := Add(Var("n"), Var("n"))
	b := Mul(Int(2), Var("n"))
	assert.False(t, Equal(a, b), "Equal must not perform algebraic simplification")
}

func TestEqualDistinguishesRecCallOffsets(t *testing.T) {
	assert.False(t, Equal(RecCall(1), RecCall(2)))
	assert.True(t, Equal(RecCall(0), RecCall(0)))
}
