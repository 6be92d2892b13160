package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ugv-telemetry/uvt/uvterr"
)

func quaternionFixtures() [4]Quaternion {
	return [4]Quaternion{
		{X: 0, Y: 0, Z: 1, W: 0},
		{X: 3, Y: 4, Z: 5, W: 2},
		{X: 0, Y: 0, Z: math.Sqrt2 / 2, W: math.Sqrt2 / 2},
		{X: 0, Y: math.Sqrt2 / 2, Z: 0, W: math.Sqrt2 / 2},
	}
}

func TestQuaternionSquareLenAndNorm(t *testing.T) {
	q := NewQuaternion(1, 2, 2, 1)
	assert.Equal(t, 10.0, q.SquareLen())
	assert.InDelta(t, math.Sqrt(10), q.Norm(), 1e-15)
}

func TestQuaternionConjugate(t *testing.T) {
	q := NewQuaternion(1, -2, 3, -4)
	conj := q.Conjugate()
	assert.Equal(t, NewQuaternion(-1, 2, -3, -4), conj)
	assert.Equal(t, q, conj.Conjugate())
}

func TestQuaternionNormalize(t *testing.T) {
	q := NewQuaternion(0, 3, 0, 4)
	normed, err := q.Normalize()
	require.NoError(t, err)

	assert.InDelta(t, 1.0, normed.Norm(), 1e-15)
	assert.InDelta(t, 0.0, normed.X, 1e-15)
	assert.InDelta(t, 0.6, normed.Y, 1e-15)
	assert.InDelta(t, 0.0, normed.Z, 1e-15)
	assert.InDelta(t, 0.8, normed.W, 1e-15)
}

func TestQuaternionNormalize_ZeroNorm(t *testing.T) {
	q := NewQuaternion(0, 0, 0, 0)
	_, err := q.Normalize()
	assert.ErrorIs(t, err, uvterr.ErrZeroNorm)
}

func TestQuaternionScale(t *testing.T) {
	fixtures := quaternionFixtures()
	q2 := fixtures[1]

	scaled := q2.Scale(2.0)
	assert.Equal(t, NewQuaternion(6, 8, 10, 4), scaled)
}

func TestQuaternionConjugateSelfProduct(t *testing.T) {
	// q * q.conjugate() has zero vector part and w == |q|^2.
	for _, q := range quaternionFixtures() {
		prod := q.Mul(q.Conjugate())
		assert.InDelta(t, 0.0, prod.X, 1e-9)
		assert.InDelta(t, 0.0, prod.Y, 1e-9)
		assert.InDelta(t, 0.0, prod.Z, 1e-9)
		assert.InDelta(t, q.SquareLen(), prod.W, 1e-9)
	}
}

func TestQuaternionNormalizedHasUnitNorm(t *testing.T) {
	for _, q := range quaternionFixtures() {
		if q.Norm() == 0 {
			continue
		}
		normed, err := q.Normalize()
		require.NoError(t, err)
		assert.InDelta(t, 1.0, normed.Norm(), 1e-9)
	}
}

func TestQuaternionAddSub(t *testing.T) {
	a := NewQuaternion(1, 2, 3, 4)
	b := NewQuaternion(0.5, 0.5, 0.5, 0.5)

	sum := a.Add(b)
	assert.Equal(t, NewQuaternion(1.5, 2.5, 3.5, 4.5), sum)

	diff := sum.Sub(b)
	assert.Equal(t, a, diff)
}
