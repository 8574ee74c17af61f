package leonardo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/log"
)

// RequestError is returned whenever the service answers with a status
// outside the 2xx range. The body is kept verbatim for diagnostics; the
// client does not classify failures further.
type RequestError struct {
	Status int
	Body   []byte
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("leonardo: request failed with status %d: %s", e.Status, e.Body)
}

// Client calls the Leonardo REST API with a single held credential. It is
// stateless across calls and safe for concurrent use.
type Client struct {
	client *http.Client
	key    string
	base   string
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. The default carries a
// two minute timeout so a stuck round trip cannot block forever.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithBaseURL points the client at a different API root.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.base = base
	}
}

// New creates a Client holding the given API key. The key is the only
// credential; it is never logged.
func New(key string, options ...Option) *Client {
	c := &Client{
		client: &http.Client{Timeout: 2 * time.Minute},
		key:    key,
		base:   defaultBaseURL,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// GeneratePhoenix submits a generation against the Phoenix 1.0 model and
// returns the service's response as parsed JSON.
func (c *Client) GeneratePhoenix(ctx context.Context, params PhoenixParams) (map[string]any, error) {
	payload := struct {
		ModelID   string  `json:"modelId"`
		Prompt    string  `json:"prompt"`
		Width     int     `json:"width"`
		Height    int     `json:"height"`
		NumImages int     `json:"num_images"`
		Contrast  float64 `json:"contrast"`
		Alchemy   bool    `json:"alchemy"`
		StyleUUID string  `json:"styleUUID"`
	}{
		ModelID:   PhoenixModelID,
		Prompt:    params.Prompt,
		Width:     params.Width,
		Height:    params.Height,
		NumImages: params.NumImages,
		Contrast:  params.Contrast,
		Alchemy:   params.Alchemy,
		StyleUUID: params.StyleUUID,
	}
	return c.post(ctx, "/generations", payload)
}

// GenerateAnimeXL submits a generation against the Anime XL model and
// returns the service's response as parsed JSON.
func (c *Client) GenerateAnimeXL(ctx context.Context, params AnimeXLParams) (map[string]any, error) {
	payload := struct {
		ModelID     string `json:"modelId"`
		Prompt      string `json:"prompt"`
		Width       int    `json:"width"`
		Height      int    `json:"height"`
		NumImages   int    `json:"num_images"`
		Alchemy     bool   `json:"alchemy"`
		PresetStyle string `json:"presetStyle"`
	}{
		ModelID:     AnimeXLModelID,
		Prompt:      params.Prompt,
		Width:       params.Width,
		Height:      params.Height,
		NumImages:   params.NumImages,
		Alchemy:     params.Alchemy,
		PresetStyle: params.PresetStyle,
	}
	return c.post(ctx, "/generations", payload)
}

// GetGeneration fetches the status and results of a generation by id. The
// id is substituted into the path verbatim.
func (c *Client) GetGeneration(ctx context.Context, id string) (map[string]any, error) {
	return c.get(ctx, "/generations/"+id)
}

// Upscale requests a universal-upscaler job for a previously generated
// image and returns the job details as parsed JSON.
func (c *Client) Upscale(ctx context.Context, params UpscaleParams) (map[string]any, error) {
	payload := struct {
		UltraUpscaleStyle  string  `json:"ultraUpscaleStyle"`
		CreativityStrength int     `json:"creativityStrength"`
		DetailContrast     int     `json:"detailContrast"`
		Similarity         int     `json:"similarity"`
		UpscaleMultiplier  float64 `json:"upscaleMultiplier"`
		GeneratedImageID   string  `json:"generatedImageId"`
	}{
		UltraUpscaleStyle:  params.Style,
		CreativityStrength: params.CreativityStrength,
		DetailContrast:     params.DetailContrast,
		Similarity:         params.Similarity,
		UpscaleMultiplier:  params.Multiplier,
		GeneratedImageID:   params.GeneratedImageID,
	}
	return c.post(ctx, "/variations/universal-upscaler", payload)
}

// headers is the one shared header rule: bearer auth plus JSON content
// type, a pure function of the held credential.
func (c *Client) headers() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + c.key,
		"Content-Type":  "application/json",
	}
}

func (c *Client) post(ctx context.Context, path string, payload any) (map[string]any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("leonardo: marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) get(ctx context.Context, path string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (map[string]any, error) {
	logger := log.FromContextOrDiscard(req.Context()).WithGroup("leonardo")
	logger.Info("calling leonardo api", "method", req.Method, "path", req.URL.Path)

	for k, v := range c.headers() {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("leonardo: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("leonardo: reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("leonardo api returned an error", "status", resp.StatusCode)
		return nil, &RequestError{Status: resp.StatusCode, Body: body}
	}

	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("leonardo: decoding response body: %w", err)
	}
	return out, nil
}
