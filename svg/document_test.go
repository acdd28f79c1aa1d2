package svg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fedsd/core"
	"fedsd/svg"
)

func TestDocumentRender(t *testing.T) {
	doc := svg.NewDocument(400, 300).
		Add(svg.Comment("RTI")).
		Add(svg.Dot(core.Pt(10, 20), "start"))

	out, err := doc.Render()
	require.NoError(t, err)

	expected := "<svg width=\"400\" height=\"300\" xmlns=\"http://www.w3.org/2000/svg\">\n" +
		"\n\t<!-- RTI -->\n" +
		svg.Dot(core.Pt(10, 20), "start") +
		"</svg>\n"
	assert.Equal(t, expected, out)
	assert.Equal(t, 2, doc.Len())
}

func TestDocumentTitle(t *testing.T) {
	out, err := svg.NewDocument(10.5, 20).SetTitle("Fed <A>").Render()
	require.NoError(t, err)
	assert.Equal(t,
		"<svg width=\"10.5\" height=\"20\" xmlns=\"http://www.w3.org/2000/svg\">\n\t<title>Fed &lt;A&gt;</title>\n</svg>\n",
		out)
}

func TestDocumentInvalidSize(t *testing.T) {
	_, err := svg.NewDocument(0, 100).Render()
	assert.ErrorContains(t, err, "invalid document size")
}
