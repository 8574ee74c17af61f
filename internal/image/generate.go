package image

import "context"

// Model names accepted in pipeline input and prompt lists.
const (
	ModelPhoenix = "phoenix"
	ModelAnimeXL = "anime-xl"
)

type Params struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

// Result is one finished image: its bytes plus the ids needed to
// reference it later (the generation and the specific generated image).
type Result struct {
	Data         []byte
	GenerationID string
	ImageID      string
}

type Generator interface {
	Generate(context.Context, Params) (Result, error)
}

// Upscaler requests an upscale job for a generated image and returns the
// job id. The job runs asynchronously on the service side.
type Upscaler interface {
	Upscale(ctx context.Context, generatedImageID string) (string, error)
}
