package inject

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/feed"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/handler"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/image"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/leonardo"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/log"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/page"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/param"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/post"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/prompt"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/store"
	"github.com/samber/do"
)

func Setup(ctx context.Context) *do.Injector {
	logger := log.FromContextOrDiscard(ctx)

	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			logger.Info(fmt.Sprintf(format, args...))
		},
	})
	do.Provide[aws.Config](injector, func(i *do.Injector) (aws.Config, error) {
		return config.LoadDefaultConfig(ctx)
	})
	do.Provide[*ssm.Client](injector, func(i *do.Injector) (*ssm.Client, error) {
		return ssm.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})
	do.Provide[*s3.Client](injector, func(i *do.Injector) (*s3.Client, error) {
		return s3.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})
	do.Provide[*cloudfront.Client](injector, func(i *do.Injector) (*cloudfront.Client, error) {
		return cloudfront.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})
	do.ProvideValue[*http.Client](injector, &http.Client{Timeout: 2 * time.Minute})

	do.Provide[param.Fetcher](injector, param.NewParameterStoreFetcher)
	do.Provide[*leonardo.Client](injector, func(i *do.Injector) (*leonardo.Client, error) {
		key := do.MustInvokeNamed[string](i, "leonardo_api_key")
		return leonardo.New(key, leonardo.WithHTTPClient(do.MustInvoke[*http.Client](i))), nil
	})
	do.Provide[*prompt.Randomizer](injector, prompt.NewRandomizer)
	do.Provide[image.Generator](injector, image.NewLeonardoGenerator)
	do.Provide[image.Upscaler](injector, image.NewLeonardoUpscaler)
	do.Provide[store.Uploader](injector, store.NewS3Uploader)
	do.Provide[store.Invalidator](injector, func(i *do.Injector) (store.Invalidator, error) {
		if do.MustInvokeNamed[string](i, "distribution") == "" {
			return &store.NoopInvalidator{}, nil
		}
		return store.NewCloudFrontInvalidator(i)
	})
	do.Provide[*page.Templator](injector, page.NewTemplator)
	do.Provide[feed.Generator](injector, feed.NewS3Generator)
	do.Provide[post.Poster](injector, func(i *do.Injector) (post.Poster, error) {
		if do.MustInvokeNamed[string](i, "subreddit") == "" {
			return &post.NoopPoster{}, nil
		}
		return post.NewRedditPoster(i)
	})

	do.ProvideNamed[string](injector, "leonardo_api_key", func(i *do.Injector) (string, error) {
		return do.MustInvoke[param.Fetcher](i).Fetch(ctx, os.Getenv("LEONARDO_KEY_PARAM"))
	})
	do.ProvideNamed[[]string](injector, "prompts", func(i *do.Injector) ([]string, error) {
		return do.MustInvoke[param.Fetcher](i).FetchAll(ctx, os.Getenv("PROMPTS_PARAM"))
	})
	do.ProvideNamed[string](injector, "reddit_client_id", func(i *do.Injector) (string, error) {
		return do.MustInvoke[param.Fetcher](i).Fetch(ctx, os.Getenv("REDDIT_CLIENT_ID_PARAM"))
	})
	do.ProvideNamed[string](injector, "reddit_client_secret", func(i *do.Injector) (string, error) {
		return do.MustInvoke[param.Fetcher](i).Fetch(ctx, os.Getenv("REDDIT_CLIENT_SECRET_PARAM"))
	})
	do.ProvideNamed[string](injector, "reddit_username", func(i *do.Injector) (string, error) {
		return do.MustInvoke[param.Fetcher](i).Fetch(ctx, os.Getenv("REDDIT_USERNAME_PARAM"))
	})
	do.ProvideNamed[string](injector, "reddit_password", func(i *do.Injector) (string, error) {
		return do.MustInvoke[param.Fetcher](i).Fetch(ctx, os.Getenv("REDDIT_PASSWORD_PARAM"))
	})
	do.ProvideNamedValue[string](injector, "bucket", os.Getenv("BUCKET"))
	do.ProvideNamedValue[string](injector, "distribution", os.Getenv("DISTRIBUTION"))
	do.ProvideNamedValue[string](injector, "subreddit", os.Getenv("SUBREDDIT"))
	do.ProvideNamedValue[string](injector, "site_url", os.Getenv("SITE_URL"))

	do.Provide[*handler.Handler](injector, handler.NewHandler)

	return injector
}
