package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoseSixDOFRoundTrip(t *testing.T) {
	cases := [][6]float64{
		{0, 0, 0, 0, 0, 0},
		{1, 2, 3, 0, 0, 0},
		{1, 2, 3, 0.3, 0.4, 0.5},
		{-5.5, 10, -2.25, -0.6, 0.2, 1.1},
		{0, 0, 0, 0.1, 0.0, 0.0},
		{0, 0, 0, 0.0, 0.1, 0.0},
		{0, 0, 0, 0.0, 0.0, 0.1},
	}

	for _, c := range cases {
		pose := NewPoseFromSixDOF(c[0], c[1], c[2], c[3], c[4], c[5])
		x, y, z, roll, pitch, yaw := pose.SixDOF()

		assert.InDelta(t, c[0], x, 1e-9)
		assert.InDelta(t, c[1], y, 1e-9)
		assert.InDelta(t, c[2], z, 1e-9)
		assert.InDelta(t, c[3], roll, 1e-9)
		assert.InDelta(t, c[4], pitch, 1e-9)
		assert.InDelta(t, c[5], yaw, 1e-9)
	}
}

func TestPoseFromSixDOF_IsUnitQuaternion(t *testing.T) {
	pose := NewPoseFromSixDOF(0, 0, 0, 0.4, -0.7, 1.2)
	assert.InDelta(t, 1.0, pose.Orientation.Norm(), 1e-12)
}

func TestPoseFromSixDOF_IdentityIsUnrotated(t *testing.T) {
	pose := NewPoseFromSixDOF(0, 0, 0, 0, 0, 0)
	assert.Equal(t, NewQuaternion(0, 0, 0, 1), pose.Orientation)
}

func TestPathLen(t *testing.T) {
	header := Header{FrameID: "Coucou", Seq: 0}
	pose := NewPoseFromSixDOF(0, 0, 0, 0, 0, 0)

	stamped := make([]PoseStamped, 6)
	for i := range stamped {
		stamped[i] = NewPoseStamped(header, pose)
	}

	path := NewPathFromPoseStampeds(stamped)
	assert.Equal(t, 6, path.Len())
	assert.Equal(t, "Coucou", path.Header.FrameID)
}

func TestPoseStampedFromParts(t *testing.T) {
	header := Header{FrameID: "map"}
	pos := NewPoint(1, 2, 3)
	orient := NewQuaternion(0, 0, 0, 1)

	ps := NewPoseStampedFromParts(header, pos, orient)
	assert.Equal(t, pos, ps.Pose.Position)
	assert.Equal(t, orient, ps.Pose.Orientation)
}

func TestEulerFromQuaternion_GimbalNeighborhood(t *testing.T) {
	// Pitch near +pi/2 stresses the asin clamp path.
	pose := NewPoseFromSixDOF(0, 0, 0, 0.1, math.Pi/2-1e-6, 0.2)
	_, _, _, _, pitch, _ := pose.SixDOF()
	assert.InDelta(t, math.Pi/2, pitch, 1e-5)
}
