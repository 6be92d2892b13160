package geometry

import (
	"math"

	"github.com/ugv-telemetry/uvt/uvterr"
)

// Quaternion is the analog of geometry_msgs/msg/Quaternion in ROS, using the
// Hamilton convention (w is the scalar part).
type Quaternion struct {
	X, Y, Z, W float64
}

// NewQuaternion builds a Quaternion from its four components.
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// Add returns the componentwise sum of q and r.
func (q Quaternion) Add(r Quaternion) Quaternion {
	return Quaternion{X: q.X + r.X, Y: q.Y + r.Y, Z: q.Z + r.Z, W: q.W + r.W}
}

// Sub returns the componentwise difference q - r.
func (q Quaternion) Sub(r Quaternion) Quaternion {
	return Quaternion{X: q.X - r.X, Y: q.Y - r.Y, Z: q.Z - r.Z, W: q.W - r.W}
}

// Scale returns q with every component multiplied by s.
func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{X: q.X * s, Y: q.Y * s, Z: q.Z * s, W: q.W * s}
}

// Mul returns the Hamilton product q * r.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.X*r.W + q.W*r.X - q.Z*r.Y + q.Y*r.Z,
		Y: q.Y*r.W + q.Z*r.X + q.W*r.Y - q.X*r.Z,
		Z: q.Z*r.W - q.Y*r.X + q.X*r.Y + q.W*r.Z,
	}
}

// Conjugate negates the vector part of q and preserves the scalar part.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// SquareLen returns the squared norm of q.
func (q Quaternion) SquareLen() float64 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Norm returns the Euclidean norm of q.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.SquareLen())
}

// Normalize returns q scaled to unit norm. Returns uvterr.ErrZeroNorm if q
// has zero norm.
func (q Quaternion) Normalize() (Quaternion, error) {
	norm := q.Norm()
	if norm == 0 {
		return Quaternion{}, uvterr.ErrZeroNorm
	}

	return q.Scale(1.0 / norm), nil
}

// quaternionFromEuler builds a unit quaternion from an extrinsic XYZ Euler
// rotation (roll about X, then pitch about Y, then yaw about Z, all about
// fixed world axes), angles in radians. This is the standard ZYX-intrinsic
// composition applied in roll/pitch/yaw order.
func quaternionFromEuler(roll, pitch, yaw float64) Quaternion {
	hr, hp, hy := roll*0.5, pitch*0.5, yaw*0.5
	cr, sr := math.Cos(hr), math.Sin(hr)
	cp, sp := math.Cos(hp), math.Sin(hp)
	cy, sy := math.Cos(hy), math.Sin(hy)

	return Quaternion{
		W: cr*cp*cy + sr*sp*sy,
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
	}
}

// eulerFromQuaternion recovers the (roll, pitch, yaw) extrinsic XYZ Euler
// angles from a unit quaternion, the inverse of quaternionFromEuler. Pitch is
// clamped to [-pi/2, pi/2] to guard against floating-point overshoot at the
// gimbal-lock poles.
func eulerFromQuaternion(q Quaternion) (roll, pitch, yaw float64) {
	sinrCosp := 2 * (q.W*q.X + q.Y*q.Z)
	cosrCosp := 1 - 2*(q.X*q.X+q.Y*q.Y)
	roll = math.Atan2(sinrCosp, cosrCosp)

	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	switch {
	case sinp >= 1:
		pitch = math.Pi / 2
	case sinp <= -1:
		pitch = -math.Pi / 2
	default:
		pitch = math.Asin(sinp)
	}

	sinyCosp := 2 * (q.W*q.Z + q.X*q.Y)
	cosyCosp := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	yaw = math.Atan2(sinyCosp, cosyCosp)

	return roll, pitch, yaw
}
