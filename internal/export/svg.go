// Package export renders sweep results to standalone SVG documents.
package export

import (
	"fmt"
	"strings"

	"github.com/lapdoer/lapdoer/internal/sweep"
)

// SpeedCurveSVG draws max speed against curvature as a polyline.
// Non-converged points are skipped.
func SpeedCurveSVG(points []sweep.Point, width, height int, strokeColor string) string {
	converged := make([]sweep.Point, 0, len(points))
	for _, p := range points {
		if p.Converged {
			converged = append(converged, p)
		}
	}
	if len(converged) < 2 {
		return ""
	}

	minX, maxX := converged[0].Curvature, converged[0].Curvature
	minY, maxY := converged[0].Speed, converged[0].Speed
	for _, p := range converged {
		if p.Curvature < minX {
			minX = p.Curvature
		}
		if p.Curvature > maxX {
			maxX = p.Curvature
		}
		if p.Speed < minY {
			minY = p.Speed
		}
		if p.Speed > maxY {
			maxY = p.Speed
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range converged {
		x := (p.Curvature - minX) / rangeX * float64(width)
		y := float64(height) - (p.Speed-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
