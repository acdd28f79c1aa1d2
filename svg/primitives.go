// Package svg renders the drawing primitives of a federated sequence diagram
// as SVG fragments. Fragments are self-contained lines of markup meant to be
// concatenated, in order, inside a Document.
package svg

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"fedsd/core"
	"fedsd/geometry"
)

// headLength and headHalfWidth size the triangular arrowhead.
const (
	headLength    = 10
	headHalfWidth = 5
)

// labelOffset shifts labels off the line they annotate.
const labelOffset = 5

// Renderer writes fragments using a fixed Style. It holds no mutable state
// and is safe for concurrent use.
type Renderer struct {
	style Style
}

// NewRenderer creates a renderer with the given style.
func NewRenderer(style Style) *Renderer {
	return &Renderer{style: style}
}

// Style returns the style the renderer writes with.
func (r *Renderer) Style() Style {
	return r.style
}

// Line draws a straight segment between two points, optionally dashed.
func (r *Renderer) Line(from, to core.Point, dashed bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\t<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"%s\" stroke-width=\"%s\"",
		num(from.X), num(from.Y), num(to.X), num(to.Y), r.style.Stroke, num(r.style.StrokeWidth))
	if dashed {
		fmt.Fprintf(&sb, " stroke-dasharray=\"%s\" ", r.style.DashArray)
	}
	sb.WriteString("/>\n")
	return sb.String()
}

// ArrowHead draws a filled triangle with its tip at (sinkX, sinkY). The base
// sits right of the tip when the arrow travels leftward and left of it
// otherwise; a vertical arrow counts as rightward.
func (r *Renderer) ArrowHead(srcX, sinkX, sinkY float64) string {
	heading := core.Arrow{From: core.Pt(srcX, sinkY), To: core.Pt(sinkX, sinkY)}.Heading()
	baseX := sinkX - headLength
	if heading == core.Left {
		baseX = sinkX + headLength
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\t<path d=\"M%s %s L%s %s L%s %s Z\"",
		num(sinkX), num(sinkY),
		num(baseX), num(sinkY+headHalfWidth),
		num(baseX), num(sinkY-headHalfWidth))
	if r.style.HeadFill != "" {
		fmt.Fprintf(&sb, " fill=\"%s\"", r.style.HeadFill)
	}
	sb.WriteString(" />\n")
	return sb.String()
}

// Label places text along the arrow from `from` to `to`. Leftward arrows get
// a left-aligned label just above the sink; all others get a centred label
// above the rounded-up midpoint.
func (r *Renderer) Label(from, to core.Point, text string) string {
	rot := geometry.LabelRotation(from, to)
	text = html.EscapeString(text)

	if to.X < from.X {
		return fmt.Sprintf("\t<text transform=\"translate(%s, %s) rotate(%s)\" font-size=\"%s\">%s</text>\n",
			num(to.X+labelOffset), num(to.Y-labelOffset), num(rot), r.style.FontSize, text)
	}

	mid := geometry.CeilMidpoint(from, to)
	return fmt.Sprintf("\t<text transform=\"translate(%s, %s) rotate(%s)\" font-size=\"%s\" text-anchor=\"middle\">%s</text>\n",
		num(mid.X), num(mid.Y-labelOffset), num(rot), r.style.FontSize, text)
}

// Arrow draws the line, the arrowhead and the label of a message, in that order.
func (r *Renderer) Arrow(from, to core.Point, label string, dashed bool) string {
	return r.Line(from, to, dashed) + r.ArrowHead(from.X, to.X, to.Y) + r.Label(from, to, label)
}

// Comment wraps text in an SVG comment. The text is not escaped and must not
// contain "--".
func (r *Renderer) Comment(text string) string {
	return "\n\t<!-- " + text + " -->\n"
}

// Dot draws a filled circle at p with a label to its lower right.
func (r *Renderer) Dot(p core.Point, label string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\t<circle cx=\"%s\" cy=\"%s\" r=\"%s\" stroke=\"%s\" stroke-width=\"%s\" fill=\"%s\"/>\n",
		num(p.X), num(p.Y), num(r.style.DotRadius), r.style.DotStroke, num(r.style.DotStrokeWidth), r.style.DotFill)
	fmt.Fprintf(&sb, "\t<text x=\"%s\" y=\"%s\" fill=\"%s\" font-size=\"%s\">%s</text>\n",
		num(p.X+labelOffset), num(p.Y+2), r.style.DotLabelFill, r.style.FontSize, html.EscapeString(label))
	return sb.String()
}

// num formats a coordinate the shortest way that round-trips, so integral
// values print without a decimal point.
func num(v float64) string {
	return strconv.FormatFloat(geometry.Normalize(v), 'f', -1, 64)
}
