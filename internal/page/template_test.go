package page

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate(t *testing.T) {
	templator := &Templator{}

	html, err := templator.Template(context.Background(), Params{
		Image:      "20240101.png",
		Model:      "phoenix",
		Prompt:     "a lighthouse in fog",
		Generation: "gen-1",
	})
	require.NoError(t, err)

	page := string(html)
	assert.Contains(t, page, `src="20240101.png"`)
	assert.Contains(t, page, "a lighthouse in fog")
	assert.Contains(t, page, "phoenix")
	assert.Contains(t, page, "gen-1")
}

func TestTemplateEscapesPrompt(t *testing.T) {
	templator := &Templator{}

	html, err := templator.Template(context.Background(), Params{
		Image:  "x.png",
		Prompt: `<script>alert("hi")</script>`,
	})
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>")
}
