package svg

import "fedsd/core"

var defaultRenderer = NewRenderer(DefaultStyle())

// Line draws a segment with the default style.
func Line(from, to core.Point, dashed bool) string {
	return defaultRenderer.Line(from, to, dashed)
}

// ArrowHead draws an arrowhead with the default style.
func ArrowHead(srcX, sinkX, sinkY float64) string {
	return defaultRenderer.ArrowHead(srcX, sinkX, sinkY)
}

// Label draws an arrow label with the default style.
func Label(from, to core.Point, text string) string {
	return defaultRenderer.Label(from, to, text)
}

// Arrow draws a complete message arrow with the default style.
func Arrow(from, to core.Point, label string, dashed bool) string {
	return defaultRenderer.Arrow(from, to, label, dashed)
}

// Comment wraps text in an SVG comment.
func Comment(text string) string {
	return defaultRenderer.Comment(text)
}

// Dot draws a labelled marker with the default style.
func Dot(p core.Point, label string) string {
	return defaultRenderer.Dot(p, label)
}
