package recur

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyForcingMixed(t *testing.T) {
	// F(n) = 2^n + n + 1
	forcing := Add(Pow(Int(2), Var(VarN)), Var(VarN), Int(1))
	buckets, err := ClassifyForcing(forcing)
	require.NoError(t, err)

	byBase := make(map[string]ForcingBucket)
	for _, b := range buckets {
		byBase[b.Base.RatString()] = b
	}
	require.Contains(t, byBase, "2")
	require.Contains(t, byBase, "1")
	assert.Equal(t, 0, byBase["2"].MaxDegree)
	assert.Equal(t, 1, byBase["1"].MaxDegree)
}

func TestClassifyForcingRejectsUnsupportedBase(t *testing.T) {
	// n^n is outside {rational, n^d, b^n}
	_, err := ClassifyForcing(Pow(Var(VarN), Var(VarN)))
	require.Error(t, err)
	var se *SolveError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ForcingUnsupported, se.Kind)
}

func TestParticularTemplateResonance(t *testing.T) {
	// Forcing base 1 resonates with a characteristic root of 1
	// (e.g. s(n) = s(n-1) + 1): template gets an extra n^1 factor.
	buckets := []ForcingBucket{{Base: rat(1, 1), MaxDegree: 0}}
	roots := []Root{{Value: Rational(rat(1, 1)), Mult: 1}}
	tmpl, free := ParticularTemplate(buckets, roots)
	require.Equal(t, []string{"q_0_0"}, free)
	want := Mul(Var(VarN), QCoeff(0, 0), Pow(Rational(rat(1, 1)), Var(VarN)))
	assert.True(t, Equal(Expand(tmpl), Expand(want)), "got %s", tmpl)
}
