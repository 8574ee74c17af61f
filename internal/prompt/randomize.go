package prompt

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/image"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/log"
	"github.com/samber/do"
)

// Randomizer picks a model and prompt from a configured list of
// "model|prompt" pairs. A bare prompt with no model defaults to Phoenix.
type Randomizer struct {
	prompts []string
	rnd     *rand.Rand
}

func NewRandomizer(i *do.Injector) (*Randomizer, error) {
	prompts := do.MustInvokeNamed[[]string](i, "prompts")
	return newRandomizer(prompts)
}

func newRandomizer(prompts []string) (*Randomizer, error) {
	if len(prompts) == 0 {
		return nil, fmt.Errorf("prompt list is empty")
	}
	rnd := rand.New(rand.NewSource(time.Now().UTC().UnixNano()))
	return &Randomizer{prompts: prompts, rnd: rnd}, nil
}

func (r *Randomizer) Randomize(ctx context.Context) (string, string, error) {
	logger := log.FromContextOrDiscard(ctx).WithGroup("randomizer")
	logger.Info("picking random model and prompt")

	entry := r.prompts[r.rnd.Intn(len(r.prompts))]
	model, prompt, found := strings.Cut(entry, "|")
	if !found {
		return image.ModelPhoenix, entry, nil
	}
	if model == "" || prompt == "" {
		return "", "", fmt.Errorf("malformed prompt entry %q", entry)
	}
	return model, prompt, nil
}
