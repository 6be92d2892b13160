package geometry

import "time"

// Time is the wire analog of builtin_interfaces/msg/Time in ROS: a signed
// seconds field and an unsigned nanosecond remainder.
type Time struct {
	Sec     int32
	Nanosec uint32
}

// NewTimeFromDuration converts a time.Duration to its Time representation.
func NewTimeFromDuration(d time.Duration) Time {
	return Time{
		Sec:     int32(d / time.Second),
		Nanosec: uint32(d % time.Second),
	}
}

// Duration converts t back to a time.Duration.
func (t Time) Duration() time.Duration {
	return time.Duration(t.Sec)*time.Second + time.Duration(t.Nanosec)
}
