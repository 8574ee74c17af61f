package image

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/leonardo"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/log"
	"github.com/samber/do"
)

type LeonardoGenerator struct {
	api      *leonardo.Client
	client   *http.Client
	interval time.Duration
}

func NewLeonardoGenerator(i *do.Injector) (Generator, error) {
	return &LeonardoGenerator{
		api:      do.MustInvoke[*leonardo.Client](i),
		client:   do.MustInvoke[*http.Client](i),
		interval: 5 * time.Second,
	}, nil
}

// Generate runs the full caller-side workflow the API client itself stays
// out of: submit the generation, poll until the job completes, download
// the first image.
func (g *LeonardoGenerator) Generate(ctx context.Context, params Params) (Result, error) {
	logger := log.FromContextOrDiscard(ctx).WithGroup("generator").With("params", params)
	logger.Info("generating image via leonardo")

	id, err := g.submit(ctx, params)
	if err != nil {
		return Result{}, err
	}
	logger.Info("generation submitted", "generation", id)

	imageID, url, err := g.await(ctx, id)
	if err != nil {
		return Result{}, err
	}
	logger.Info("generation complete", "generation", id, "image", imageID)

	data, err := g.download(ctx, url)
	if err != nil {
		return Result{}, err
	}

	return Result{Data: data, GenerationID: id, ImageID: imageID}, nil
}

func (g *LeonardoGenerator) submit(ctx context.Context, params Params) (string, error) {
	var resp map[string]any
	var err error
	switch params.Model {
	case ModelAnimeXL:
		p := leonardo.DefaultAnimeXLParams
		p.Prompt = params.Prompt
		resp, err = g.api.GenerateAnimeXL(ctx, p)
	case ModelPhoenix, "":
		p := leonardo.DefaultPhoenixParams
		p.Prompt = params.Prompt
		resp, err = g.api.GeneratePhoenix(ctx, p)
	default:
		return "", fmt.Errorf("unknown model %q", params.Model)
	}
	if err != nil {
		return "", err
	}

	job, err := objectField(resp, "sdGenerationJob")
	if err != nil {
		return "", err
	}
	return stringField(job, "generationId")
}

// await polls the generation until the service reports a terminal status.
// The poll loop lives here, not in the API client, so the client keeps
// its one-shot contract; ctx bounds how long we are willing to wait.
func (g *LeonardoGenerator) await(ctx context.Context, id string) (string, string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", "", fmt.Errorf("waiting for generation %s: %w", id, ctx.Err())
		case <-time.After(g.interval):
		}

		resp, err := g.api.GetGeneration(ctx, id)
		if err != nil {
			return "", "", err
		}

		gen, err := objectField(resp, "generations_by_pk")
		if err != nil {
			return "", "", err
		}
		status, _ := gen["status"].(string)
		switch status {
		case "PENDING", "":
			continue
		case "COMPLETE":
		default:
			return "", "", fmt.Errorf("generation %s ended with status %s", id, status)
		}

		images, err := sliceField(gen, "generated_images")
		if err != nil {
			return "", "", err
		}
		if len(images) == 0 {
			return "", "", fmt.Errorf("generation %s completed without images", id)
		}
		first, ok := images[0].(map[string]any)
		if !ok {
			return "", "", fmt.Errorf("generation %s has a malformed image entry", id)
		}

		imageID, err := stringField(first, "id")
		if err != nil {
			return "", "", err
		}
		url, err := stringField(first, "url")
		if err != nil {
			return "", "", err
		}
		return imageID, url, nil
	}
}

func (g *LeonardoGenerator) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("downloading image: unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
