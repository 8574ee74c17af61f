package image

import (
	"context"

	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/leonardo"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/log"
	"github.com/samber/do"
)

type LeonardoUpscaler struct {
	api *leonardo.Client
}

func NewLeonardoUpscaler(i *do.Injector) (Upscaler, error) {
	return &LeonardoUpscaler{api: do.MustInvoke[*leonardo.Client](i)}, nil
}

// Upscale kicks off a universal-upscaler job with the default quality
// knobs and returns the job id. The service finishes the job on its own
// schedule; the id is recorded in artifact metadata for later lookup.
func (u *LeonardoUpscaler) Upscale(ctx context.Context, generatedImageID string) (string, error) {
	logger := log.FromContextOrDiscard(ctx).WithGroup("upscaler").With("image", generatedImageID)
	logger.Info("requesting universal upscale")

	params := leonardo.DefaultUpscaleParams
	params.GeneratedImageID = generatedImageID

	resp, err := u.api.Upscale(ctx, params)
	if err != nil {
		return "", err
	}

	job, err := objectField(resp, "universalUpscaler")
	if err != nil {
		return "", err
	}
	id, err := stringField(job, "id")
	if err != nil {
		return "", err
	}
	logger.Info("upscale job submitted", "job", id)
	return id, nil
}
