package store

import "context"

type Invalidator interface {
	Invalidate(context.Context, []string) error
}

// NoopInvalidator is used when no CDN sits in front of the bucket.
type NoopInvalidator struct{}

func (*NoopInvalidator) Invalidate(context.Context, []string) error {
	return nil
}
