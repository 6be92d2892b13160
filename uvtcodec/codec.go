// Package uvtcodec implements the text-level UVT file format: a legacy VTK
// map blob and a trajectory CSV table separated by a fixed delimiter line.
// The map itself is never interpreted here — MapCodec models the boundary
// to an external VTK library, with Passthrough as the provided
// implementation that round-trips the map bytes verbatim.
package uvtcodec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ugv-telemetry/uvt/geometry"
	"github.com/ugv-telemetry/uvt/uvterr"
)

// Delimiter separates the map section from the trajectory section: exactly
// 29 '#' characters on their own line.
const Delimiter = "#############################"

// Map is the opaque map blob threaded through a MapCodec.
type Map struct {
	Raw []byte
}

// MapCodec decodes and encodes the map section of a UVT file. Passthrough
// is the only implementation provided here; a real VTK parser would
// implement this same interface without changing any other part of this
// package.
type MapCodec interface {
	Decode(raw []byte) (Map, error)
	Encode(m Map) ([]byte, error)
}

// Passthrough stores the map section's trimmed bytes verbatim and re-emits
// them unchanged on write, satisfying the byte-equal map round-trip without
// a real VTK parser.
type Passthrough struct{}

func (Passthrough) Decode(raw []byte) (Map, error) {
	return Map{Raw: raw}, nil
}

func (Passthrough) Encode(m Map) ([]byte, error) {
	return m.Raw, nil
}

// Uvt is the full in-memory contents of a UVT file: the map section and the
// ordered trajectory.
type Uvt struct {
	Map        Map
	Trajectory []geometry.PoseStamped
}

// Read parses content (the full text of a UVT file) into a Uvt, using codec
// to decode the map section.
func Read(content []byte, codec MapCodec) (Uvt, error) {
	text := string(content)

	idx := strings.Index(text, Delimiter)
	if idx < 0 {
		return Uvt{}, fmt.Errorf("%w: missing delimiter", uvterr.ErrMalformedUVT)
	}

	mapText := strings.TrimSpace(text[:idx])
	trajText := strings.TrimSpace(text[idx+len(Delimiter):])

	mapVal, err := codec.Decode([]byte(mapText))
	if err != nil {
		return Uvt{}, err
	}

	if trajText == "" {
		return Uvt{}, fmt.Errorf("%w: missing frame_id line", uvterr.ErrMalformedUVT)
	}

	lines := strings.Split(trajText, "\n")

	frameID, ok := parseFrameIDLine(lines[0])
	if !ok {
		return Uvt{}, fmt.Errorf("%w: missing frame_id line", uvterr.ErrMalformedUVT)
	}

	trajectory := make([]geometry.PoseStamped, 0, len(lines)-1)
	for i, line := range lines[1:] {
		lineNo := i + 2

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		values, err := parseTrajLine(line, lineNo)
		if err != nil {
			return Uvt{}, err
		}

		header := geometry.Header{
			Seq:     uint32(lineNo),
			Stamp:   geometry.Time{},
			FrameID: frameID,
		}

		pose := geometry.NewPoseFromSixDOF(values[0], values[1], values[2], values[3], values[4], values[5])
		trajectory = append(trajectory, geometry.NewPoseStamped(header, pose))
	}

	return Uvt{Map: mapVal, Trajectory: trajectory}, nil
}

func parseFrameIDLine(line string) (string, bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", false
	}

	return strings.TrimSpace(line[idx+1:]), true
}

func parseTrajLine(line string, lineNo int) ([6]float64, error) {
	var values [6]float64

	parts := strings.Split(line, ",")
	if len(parts) != 6 {
		return values, fmt.Errorf("%w: line %d", uvterr.ErrMalformedTrajLine, lineNo)
	}

	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return values, fmt.Errorf("%w: line %d", uvterr.ErrMalformedTrajLine, lineNo)
		}

		values[i] = v
	}

	return values, nil
}

// Write serialises u into the UVT text format: the map section via codec,
// the delimiter, the frame_id line, and one rounded CSV pose line per
// trajectory entry. The frame id is taken from the first trajectory entry's
// header; an empty trajectory writes an empty frame id.
func Write(u Uvt, codec MapCodec) ([]byte, error) {
	mapBytes, err := codec.Encode(u.Map)
	if err != nil {
		return nil, err
	}

	var frameID string
	if len(u.Trajectory) > 0 {
		frameID = u.Trajectory[0].Header.FrameID
	}

	var b strings.Builder
	b.Write(mapBytes)
	b.WriteByte('\n')
	b.WriteString(Delimiter)
	b.WriteByte('\n')
	b.WriteString("frame_id : ")
	b.WriteString(frameID)

	for _, ps := range u.Trajectory {
		x, y, z, roll, pitch, yaw := ps.Pose.SixDOF()

		b.WriteByte('\n')
		b.WriteString(formatTrajValue(x))
		b.WriteByte(',')
		b.WriteString(formatTrajValue(y))
		b.WriteByte(',')
		b.WriteString(formatTrajValue(z))
		b.WriteByte(',')
		b.WriteString(formatTrajValue(roll))
		b.WriteByte(',')
		b.WriteString(formatTrajValue(pitch))
		b.WriteByte(',')
		b.WriteString(formatTrajValue(yaw))
	}

	return []byte(b.String()), nil
}

// formatTrajValue rounds v to six decimal places using half-away-from-zero
// rounding, then formats it with the minimum digits needed (no trailing
// zeros, no trailing decimal point for whole numbers).
func formatTrajValue(v float64) string {
	const decimals = 6

	shift := math.Pow10(decimals)

	var rounded float64
	if v >= 0 {
		rounded = math.Floor(v*shift+0.5) / shift
	} else {
		rounded = math.Ceil(v*shift-0.5) / shift
	}

	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
