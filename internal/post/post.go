package post

import "context"

type Params struct {
	Date       string
	Model      string
	Prompt     string
	Generation string
}

type Poster interface {
	Post(context.Context, Params) error
}

// NoopPoster is used when no subreddit is configured.
type NoopPoster struct{}

func (*NoopPoster) Post(context.Context, Params) error {
	return nil
}
