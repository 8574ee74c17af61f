package handler

import (
	"context"
	"testing"

	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/feed"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/image"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/page"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/post"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/prompt"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/store"
	"github.com/samber/do"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	params image.Params
}

func (g *fakeGenerator) Generate(_ context.Context, params image.Params) (image.Result, error) {
	g.params = params
	return image.Result{Data: []byte("png"), GenerationID: "gen-1", ImageID: "img-1"}, nil
}

type fakeUpscaler struct {
	imageID string
}

func (u *fakeUpscaler) Upscale(_ context.Context, imageID string) (string, error) {
	u.imageID = imageID
	return "job-1", nil
}

type fakeUploader struct {
	uploads []store.UploadParams
}

func (u *fakeUploader) Upload(_ context.Context, params store.UploadParams) error {
	u.uploads = append(u.uploads, params)
	return nil
}

type fakeInvalidator struct {
	paths []string
}

func (i *fakeInvalidator) Invalidate(_ context.Context, paths []string) error {
	i.paths = append(i.paths, paths...)
	return nil
}

type fakeFeeder struct{}

func (*fakeFeeder) Generate(context.Context) ([]byte, error) {
	return []byte("<rss/>"), nil
}

type fakePoster struct {
	posts []post.Params
}

func (p *fakePoster) Post(_ context.Context, params post.Params) error {
	p.posts = append(p.posts, params)
	return nil
}

type fakes struct {
	generator   *fakeGenerator
	upscaler    *fakeUpscaler
	uploader    *fakeUploader
	invalidator *fakeInvalidator
	poster      *fakePoster
}

func newTestHandler(t *testing.T) (*Handler, *fakes) {
	t.Helper()
	f := &fakes{
		generator:   &fakeGenerator{},
		upscaler:    &fakeUpscaler{},
		uploader:    &fakeUploader{},
		invalidator: &fakeInvalidator{},
		poster:      &fakePoster{},
	}

	injector := do.New()
	do.ProvideNamedValue[[]string](injector, "prompts", []string{"phoenix|a kitten made of stars"})
	do.Provide[*prompt.Randomizer](injector, prompt.NewRandomizer)
	do.Provide[*page.Templator](injector, page.NewTemplator)
	do.ProvideValue[image.Generator](injector, f.generator)
	do.ProvideValue[image.Upscaler](injector, f.upscaler)
	do.ProvideValue[store.Uploader](injector, f.uploader)
	do.ProvideValue[store.Invalidator](injector, f.invalidator)
	do.ProvideValue[feed.Generator](injector, &fakeFeeder{})
	do.ProvideValue[post.Poster](injector, f.poster)

	h, err := NewHandler(injector)
	require.NoError(t, err)
	return h, f
}

func uploadKeys(uploads []store.UploadParams) []string {
	return lo.Map(uploads, func(u store.UploadParams, _ int) string { return u.Key })
}

func TestHandleBackfill(t *testing.T) {
	h, f := newTestHandler(t)

	out, err := h.Handle(context.Background(), Input{
		Date:   "20240101",
		Model:  "anime-xl",
		Prompt: "rooftop garden",
	})
	require.NoError(t, err)

	assert.Equal(t, "gen-1", out.Generation)
	assert.Empty(t, out.UpscaleJob)
	assert.Equal(t, image.Params{Model: "anime-xl", Prompt: "rooftop garden"}, f.generator.params)
	assert.Equal(t, []string{"20240101.png", "20240101.html", "feed.xml"}, uploadKeys(f.uploader.uploads))
	assert.Equal(t, []string{"/20240101.png", "/20240101.html", "/feed.xml"}, f.invalidator.paths)
	assert.Empty(t, f.poster.posts, "backfills are not announced")
}

func TestHandleLatest(t *testing.T) {
	h, f := newTestHandler(t)

	out, err := h.Handle(context.Background(), Input{Upscale: true})
	require.NoError(t, err)

	assert.Equal(t, "phoenix", out.Model)
	assert.Equal(t, "a kitten made of stars", out.Prompt)
	assert.NotEmpty(t, out.Date)
	assert.Equal(t, "job-1", out.UpscaleJob)
	assert.Equal(t, "img-1", f.upscaler.imageID)

	keys := uploadKeys(f.uploader.uploads)
	assert.Contains(t, keys, out.Date+".png")
	assert.Contains(t, keys, "latest.png")
	assert.Contains(t, keys, "latest.html")
	assert.Contains(t, keys, "feed.xml")
	assert.Contains(t, f.invalidator.paths, "/latest.png")

	require.Len(t, f.poster.posts, 1)
	assert.Equal(t, "gen-1", f.poster.posts[0].Generation)

	png, ok := lo.Find(f.uploader.uploads, func(u store.UploadParams) bool { return u.Key == out.Date+".png" })
	require.True(t, ok)
	assert.Equal(t, "gen-1", png.Metadata["generation"])
	assert.Equal(t, "job-1", png.Metadata["upscale-job"])
}
