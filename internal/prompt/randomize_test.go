package prompt

import (
	"context"
	"testing"

	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/image"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomize(t *testing.T) {
	r, err := newRandomizer([]string{"anime-xl|rain city bokeh"})
	require.NoError(t, err)

	model, prompt, err := r.Randomize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, image.ModelAnimeXL, model)
	assert.Equal(t, "rain city bokeh", prompt)
}

func TestRandomizeBarePrompt(t *testing.T) {
	r, err := newRandomizer([]string{"neon alley at midnight"})
	require.NoError(t, err)

	model, prompt, err := r.Randomize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, image.ModelPhoenix, model)
	assert.Equal(t, "neon alley at midnight", prompt)
}

func TestRandomizeMalformedEntry(t *testing.T) {
	r, err := newRandomizer([]string{"phoenix|"})
	require.NoError(t, err)

	_, _, err = r.Randomize(context.Background())
	require.ErrorContains(t, err, "malformed prompt entry")
}

func TestRandomizeEmptyList(t *testing.T) {
	_, err := newRandomizer(nil)
	require.ErrorContains(t, err, "empty")
}
