package geometry

// Pose is the analog of geometry_msgs/msg/Pose in ROS.
type Pose struct {
	Position    Point
	Orientation Quaternion
}

// NewPoseFromSixDOF builds a Pose from six degrees of freedom
// (x, y, z, roll, pitch, yaw), angles in radians, roll/pitch/yaw applied as
// an extrinsic XYZ Euler rotation.
func NewPoseFromSixDOF(x, y, z, roll, pitch, yaw float64) Pose {
	return Pose{
		Position:    Point{X: x, Y: y, Z: z},
		Orientation: quaternionFromEuler(roll, pitch, yaw),
	}
}

// SixDOF recovers the (x, y, z, roll, pitch, yaw) tuple that produces p under
// NewPoseFromSixDOF, the inverse transform.
func (p Pose) SixDOF() (x, y, z, roll, pitch, yaw float64) {
	roll, pitch, yaw = eulerFromQuaternion(p.Orientation)
	return p.Position.X, p.Position.Y, p.Position.Z, roll, pitch, yaw
}

// PoseStamped is the analog of geometry_msgs/msg/PoseStamped in ROS.
type PoseStamped struct {
	Header Header
	Pose   Pose
}

// NewPoseStamped builds a PoseStamped from a header and a pose.
func NewPoseStamped(header Header, pose Pose) PoseStamped {
	return PoseStamped{Header: header, Pose: pose}
}

// NewPoseStampedFromParts builds a PoseStamped from a header, position, and
// orientation, the analog of the original crate's from_hpo constructor.
func NewPoseStampedFromParts(header Header, position Point, orientation Quaternion) PoseStamped {
	return PoseStamped{
		Header: header,
		Pose:   Pose{Position: position, Orientation: orientation},
	}
}

// Path is the analog of nav_msgs/msg/Path in ROS: a shared header plus the
// ordered sequence of poses making up the trajectory.
type Path struct {
	Header Header
	Poses  []Pose
}

// NewPathFromPoseStampeds builds a Path from a non-empty slice of
// PoseStamped, taking the header of the first element.
func NewPathFromPoseStampeds(stamped []PoseStamped) Path {
	poses := make([]Pose, len(stamped))
	for i, ps := range stamped {
		poses[i] = ps.Pose
	}

	var header Header
	if len(stamped) > 0 {
		header = stamped[0].Header
	}

	return Path{Header: header, Poses: poses}
}

// Len returns the number of poses in the path.
func (p Path) Len() int {
	return len(p.Poses)
}
