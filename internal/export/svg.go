// Package export turns stored traces into standalone artifacts.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/spiro/internal/rotor"
)

// TraceToSVG renders the traced path as an SVG polyline on a dark canvas.
// Points are already in screen space (origin top-left, y down), which is
// also SVG space, so no remapping is needed; the renderer clips anything
// outside the viewBox.
func TraceToSVG(points []rotor.Coord, width, height int, stroke string, strokeWidth float64) string {
	if len(points) < 2 {
		return ""
	}
	if stroke == "" {
		stroke = "#9b0a14"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="%.1f" d="M`,
		width, height, width, height, stroke, strokeWidth))

	for i, p := range points {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.0f,%.0f", p.X, p.Y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.0f,%.0f", p.X, p.Y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// ColorHex formats an RGB triple as an SVG color attribute.
func ColorHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
