package recur

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsAndAccessors(t *testing.T) {
	r := Rational(big.NewRat(3, 4))
	require.Equal(t, KindRational, r.Kind())
	assert.Equal(t, 0, r.Rat().Cmp(big.NewRat(3, 4)))

	v := Var("n")
	require.Equal(t, KindVar, v.Kind())
	assert.Equal(t, "n", v.Name())

	rc := RecCall(2)
	require.Equal(t, KindRecCall, rc.Kind())
	assert.Equal(t, 2, rc.Offset())

	assert.True(t, Int(0).IsZero())
	assert.True(t, Int(1).IsOne())
	assert.False(t, Int(2).IsZero())
}

func TestRecCallNegativePanics(t *testing.T) {
	assert.Panics(t, func() { RecCall(-1) })
}

func TestMentionsAndFreeVars(t *testing.T) {
	e := Add(Mul(Var("n"), PCoeff(0, 1)), RecCall(1))
	assert.True(t, MentionsRecCall(e))
	assert.True(t, MentionsVar(e, "n"))
	assert.False(t, MentionsVar(e, "q_0_0"))

	free := FreeVars(Add(Var("n"), Var("p_0_0"), Var("n")))
	assert.Equal(t, []string{"n", "p_0_0"}, free)
}

func TestSubstitute(t *testing.T) {
	e := Add(Var("n"), Int(1))
	got := SubstituteVar(e, "n", Int(5))
	want := Add(Int(5), Int(1))
	assert.True(t, Equal(got, want))
}

func TestShiftN(t *testing.T) {
	e := Mul(Var("n"), Var("n"))
	shifted := ShiftN(e, -1)
	want := Mul(Sub(Var("n"), Int(1)), Sub(Var("n"), Int(1)))
	assert.True(t, Equal(Expand(shifted), Expand(want)))
}
