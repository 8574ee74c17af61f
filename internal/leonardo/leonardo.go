// Package leonardo is a thin client for the Leonardo.Ai production REST
// API. Every operation is a single blocking HTTP round trip: build the
// payload, attach the bearer headers, fail on a non-2xx status, hand back
// the parsed JSON untouched. Workflow concerns like polling a generation
// until it completes belong to callers, not here.
package leonardo

const defaultBaseURL = "https://cloud.leonardo.ai/api/rest/v1"

// Fixed model identifiers for the two generation variants.
const (
	PhoenixModelID = "de7d3faf-762f-48e0-b3b7-9d0ac3a3fcf3"
	AnimeXLModelID = "e71a1c2f-4f80-4800-934f-2c68979d8cc8"
)

// DefaultStyleUUID is the style applied to Phoenix generations unless the
// caller picks another one.
const DefaultStyleUUID = "a5632c7c-ddbb-4e2f-ba34-8456ab3ac436"

// PhoenixParams are the inputs to a Phoenix 1.0 generation. Width and
// height are expected by the service to be in [512, 1536] and a multiple
// of 8, and contrast in [1.0, 4.5]; the client does not enforce either,
// the service rejects out-of-range values itself.
type PhoenixParams struct {
	Prompt    string
	Width     int
	Height    int
	NumImages int
	Contrast  float64
	StyleUUID string
	Alchemy   bool
}

// AnimeXLParams are the inputs to an Anime XL (SDXL) generation, which
// takes a preset style name instead of Phoenix's contrast and style UUID.
type AnimeXLParams struct {
	Prompt      string
	Width       int
	Height      int
	NumImages   int
	PresetStyle string
	Alchemy     bool
}

// UpscaleParams are the inputs to a universal-upscaler job. The three
// quality knobs conventionally range 1-5, and a multiplier much above 1.5
// tends to hit the service's ~20 megapixel output cap.
type UpscaleParams struct {
	GeneratedImageID   string
	Multiplier         float64
	Style              string
	CreativityStrength int
	DetailContrast     int
	Similarity         int
}

// Default parameter sets matching the service's sweet spots. Copy and set
// the prompt or image id; nothing is filled in implicitly.
var (
	DefaultPhoenixParams = PhoenixParams{
		Width:     1216,
		Height:    1520,
		NumImages: 4,
		Contrast:  3.5,
		StyleUUID: DefaultStyleUUID,
		Alchemy:   true,
	}

	DefaultAnimeXLParams = AnimeXLParams{
		Width:       1216,
		Height:      1520,
		NumImages:   4,
		PresetStyle: "CINEMATIC",
		Alchemy:     true,
	}

	DefaultUpscaleParams = UpscaleParams{
		Multiplier:         1.5,
		Style:              "ARTISTIC",
		CreativityStrength: 5,
		DetailContrast:     5,
		Similarity:         5,
	}
)
