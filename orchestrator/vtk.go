package orchestrator

import (
	"fmt"
	"strings"

	"github.com/ugv-telemetry/uvt/geometry"
)

// buildInlinePolyData renders points as a minimal legacy-VTK ASCII
// POLYDATA dataset carrying only the point coordinates, each truncated to
// 32-bit float precision per the orchestrator's map contract. This is the
// byte payload threaded into uvtcodec.Map through the Passthrough codec;
// an external VTK library, wired in behind uvtcodec.MapCodec, would replace
// this with its own legacy writer without touching the rest of this
// package.
func buildInlinePolyData(points []geometry.Point) []byte {
	var b strings.Builder

	b.WriteString("# vtk DataFile Version 3.0\n")
	b.WriteString("uvt inline map\n")
	b.WriteString("ASCII\n")
	b.WriteString("DATASET POLYDATA\n")
	fmt.Fprintf(&b, "POINTS %d float\n", len(points))

	for _, p := range points {
		fmt.Fprintf(&b, "%g %g %g\n", float32(p.X), float32(p.Y), float32(p.Z))
	}

	return []byte(strings.TrimRight(b.String(), "\n"))
}
