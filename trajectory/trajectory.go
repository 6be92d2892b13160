// Package trajectory parses a stamped pose message (the wire analog of
// nav_msgs/msg/Odometry in ROS) into a geometry.PoseStamped, discarding the
// child_frame_id, pose covariance, twist, and twist covariance fields the
// wire format carries but this core has no use for.
package trajectory

import (
	"github.com/ugv-telemetry/uvt/backend"
	"github.com/ugv-telemetry/uvt/geometry"
)

const (
	poseCovarianceBytes  = 36 * 8
	twistLinearBytes     = 3 * 8
	twistAngularBytes    = 3 * 8
	twistCovarianceBytes = 36 * 8
)

// Parse reads a stamped pose from b in the field order header, child_frame_id
// (discarded), position (x, y, z as f64), orientation (x, y, z, w as f64),
// pose covariance (36 f64, discarded), twist linear (3 f64, discarded),
// twist angular (3 f64, discarded), twist covariance (36 f64, discarded).
func Parse(b backend.ReaderBackend) (geometry.PoseStamped, error) {
	header, err := b.ReadHeader()
	if err != nil {
		return geometry.PoseStamped{}, err
	}

	if _, err := b.ReadLPStringAligned(8); err != nil {
		return geometry.PoseStamped{}, err
	}

	x, err := b.ReadF64LE()
	if err != nil {
		return geometry.PoseStamped{}, err
	}

	y, err := b.ReadF64LE()
	if err != nil {
		return geometry.PoseStamped{}, err
	}

	z, err := b.ReadF64LE()
	if err != nil {
		return geometry.PoseStamped{}, err
	}

	qx, err := b.ReadF64LE()
	if err != nil {
		return geometry.PoseStamped{}, err
	}

	qy, err := b.ReadF64LE()
	if err != nil {
		return geometry.PoseStamped{}, err
	}

	qz, err := b.ReadF64LE()
	if err != nil {
		return geometry.PoseStamped{}, err
	}

	qw, err := b.ReadF64LE()
	if err != nil {
		return geometry.PoseStamped{}, err
	}

	if _, err := b.Take(poseCovarianceBytes); err != nil {
		return geometry.PoseStamped{}, err
	}

	if _, err := b.Take(twistLinearBytes); err != nil {
		return geometry.PoseStamped{}, err
	}

	if _, err := b.Take(twistAngularBytes); err != nil {
		return geometry.PoseStamped{}, err
	}

	if _, err := b.Take(twistCovarianceBytes); err != nil {
		return geometry.PoseStamped{}, err
	}

	pose := geometry.Pose{
		Position:    geometry.NewPoint(x, y, z),
		Orientation: geometry.NewQuaternion(qx, qy, qz, qw),
	}

	return geometry.NewPoseStamped(header, pose), nil
}
