package handler

import (
	"context"
	"time"

	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/feed"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/image"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/log"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/page"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/post"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/prompt"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/store"
	"github.com/samber/do"
	"github.com/samber/lo"
)

type Input struct {
	Date    string `json:"date,omitempty"`
	Model   string `json:"model,omitempty"`
	Prompt  string `json:"prompt,omitempty"`
	Upscale bool   `json:"upscale,omitempty"`
}

type Output struct {
	Input
	Generation string `json:"generation,omitempty"`
	UpscaleJob string `json:"upscaleJob,omitempty"`
}

type Handler struct {
	randomizer  *prompt.Randomizer
	generator   image.Generator
	upscaler    image.Upscaler
	uploader    store.Uploader
	invalidator store.Invalidator
	templator   *page.Templator
	feeder      feed.Generator
	poster      post.Poster
}

func NewHandler(i *do.Injector) (*Handler, error) {
	return &Handler{
		randomizer:  do.MustInvoke[*prompt.Randomizer](i),
		generator:   do.MustInvoke[image.Generator](i),
		upscaler:    do.MustInvoke[image.Upscaler](i),
		uploader:    do.MustInvoke[store.Uploader](i),
		invalidator: do.MustInvoke[store.Invalidator](i),
		templator:   do.MustInvoke[*page.Templator](i),
		feeder:      do.MustInvoke[feed.Generator](i),
		poster:      do.MustInvoke[post.Poster](i),
	}, nil
}

func (h *Handler) Handle(ctx context.Context, input Input) (Output, error) {
	logger := log.FromContextOrDiscard(ctx).WithGroup("handler").With("input", input)
	logger.Info("handling invocation")

	if input.Model == "" || input.Prompt == "" {
		model, prompt, err := h.randomizer.Randomize(ctx)
		if err != nil {
			return Output{}, err
		}
		input.Model = lo.Ternary(input.Model != "", input.Model, model)
		input.Prompt = lo.Ternary(input.Prompt != "", input.Prompt, prompt)
	}

	latest := false
	if input.Date == "" {
		input.Date = time.Now().UTC().Format("20060102")
		latest = true
	}

	result, err := h.generator.Generate(ctx, image.Params{Model: input.Model, Prompt: input.Prompt})
	if err != nil {
		return Output{}, err
	}
	output := Output{Input: input, Generation: result.GenerationID}

	if input.Upscale {
		job, err := h.upscaler.Upscale(ctx, result.ImageID)
		if err != nil {
			return Output{}, err
		}
		output.UpscaleJob = job
	}

	html, err := h.templator.Template(ctx, page.Params{
		Image:      input.Date + ".png",
		Model:      input.Model,
		Prompt:     input.Prompt,
		Generation: result.GenerationID,
	})
	if err != nil {
		return Output{}, err
	}

	metadata := map[string]string{
		"date":       input.Date,
		"model":      input.Model,
		"prompt":     input.Prompt,
		"generation": result.GenerationID,
	}
	if output.UpscaleJob != "" {
		metadata["upscale-job"] = output.UpscaleJob
	}

	uploads := []store.UploadParams{
		{Key: input.Date + ".png", Data: result.Data, ContentType: "image/png", Metadata: metadata},
		{Key: input.Date + ".html", Data: html, ContentType: "text/html", Metadata: metadata},
	}
	if latest {
		uploads = append(uploads,
			store.UploadParams{Key: "latest.png", Data: result.Data, ContentType: "image/png", Metadata: metadata},
			store.UploadParams{Key: "latest.html", Data: html, ContentType: "text/html", Metadata: metadata},
		)
	}
	for _, u := range uploads {
		if err := h.uploader.Upload(ctx, u); err != nil {
			return Output{}, err
		}
	}

	rss, err := h.feeder.Generate(ctx)
	if err != nil {
		return Output{}, err
	}
	if err := h.uploader.Upload(ctx, store.UploadParams{
		Key:         "feed.xml",
		Data:        rss,
		ContentType: "application/rss+xml",
	}); err != nil {
		return Output{}, err
	}

	paths := []string{"/" + input.Date + ".png", "/" + input.Date + ".html", "/feed.xml"}
	if latest {
		paths = append(paths, "/latest.png", "/latest.html")
	}
	if err := h.invalidator.Invalidate(ctx, paths); err != nil {
		return Output{}, err
	}

	if latest {
		if err := h.poster.Post(ctx, post.Params{
			Date:       input.Date,
			Model:      input.Model,
			Prompt:     input.Prompt,
			Generation: result.GenerationID,
		}); err != nil {
			return Output{}, err
		}
	}

	return output, nil
}
