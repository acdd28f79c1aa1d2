package export

import (
	"fmt"

	"fedsd/config"
	"fedsd/events"
	"fedsd/scene"
	"fedsd/svg"
)

// SVGExporter draws a scene as a standalone SVG document
type SVGExporter struct {
	renderer *svg.Renderer
	events   *events.Table
}

// NewSVGExporter creates a new SVG exporter
func NewSVGExporter(cfg config.Config) *SVGExporter {
	return &SVGExporter{
		renderer: svg.NewRenderer(cfg.Style),
		events:   cfg.Events,
	}
}

// Export renders every element in scene order
func (e *SVGExporter) Export(s *scene.Scene) (string, error) {
	if s == nil {
		return "", fmt.Errorf("scene is nil")
	}
	if err := s.Validate(); err != nil {
		return "", err
	}

	resolved, _ := s.Resolve(e.events)
	doc := svg.NewDocument(resolved.Width, resolved.Height).SetTitle(resolved.Title)

	for i, el := range resolved.Elements {
		switch el.Kind() {
		case "comment":
			doc.Add(e.renderer.Comment(*el.Comment))
		case "arrow":
			a := el.Arrow.Arrow()
			doc.Add(e.renderer.Arrow(a.From, a.To, a.Label, a.Dashed))
		case "dot":
			doc.Add(e.renderer.Dot(el.Dot.At, el.Dot.Label))
		default:
			return "", fmt.Errorf("element %d: unknown kind", i)
		}
	}

	return doc.Render()
}

// GetFileExtension returns the file extension for SVG
func (e *SVGExporter) GetFileExtension() string {
	return ".svg"
}

// GetFormatName returns the format name
func (e *SVGExporter) GetFormatName() string {
	return "SVG"
}
