package feed

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gorilla/feeds"
	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/log"
	"github.com/samber/do"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type Generator interface {
	Generate(context.Context) ([]byte, error)
}

// S3Generator builds the RSS feed from the artifacts already in the
// bucket, using the generation metadata stamped on each image at upload
// time.
type S3Generator struct {
	client *s3.Client
	bucket string
	site   string
}

func NewS3Generator(i *do.Injector) (Generator, error) {
	return &S3Generator{
		client: do.MustInvoke[*s3.Client](i),
		bucket: do.MustInvokeNamed[string](i, "bucket"),
		site:   do.MustInvokeNamed[string](i, "site_url"),
	}, nil
}

func (g *S3Generator) Generate(ctx context.Context) ([]byte, error) {
	logger := log.FromContextOrDiscard(ctx).WithGroup("feed")
	logger.Info("generating rss feed", "bucket", g.bucket)

	keys, err := g.listImages(ctx)
	if err != nil {
		return nil, err
	}

	// HeadObject fan-out. The channel is closed only after Wait returns,
	// so every sender has finished, and all feed mutation happens on this
	// goroutine while draining.
	group, gctx := errgroup.WithContext(ctx)
	items := make(chan *feeds.Item)
	for _, key := range keys {
		key := key
		group.Go(func() error {
			out, err := g.client.HeadObject(gctx, &s3.HeadObjectInput{
				Bucket: &g.bucket,
				Key:    &key,
			})
			if err != nil {
				return err
			}

			meta := out.Metadata
			items <- &feeds.Item{
				Title:       fmt.Sprintf("%s (%s)", meta["prompt"], meta["model"]),
				Description: fmt.Sprintf("generation %s", meta["generation"]),
				Link:        &feeds.Link{Href: fmt.Sprintf("%s/%s.html", g.site, meta["date"])},
				Updated:     *out.LastModified,
			}
			return nil
		})
	}

	var waitErr error
	go func() {
		waitErr = group.Wait()
		close(items)
	}()

	feed := feeds.Feed{
		Title:       "MDigitalArtz",
		Description: "Daily AI art from Leonardo",
		Link:        &feeds.Link{Href: g.site},
	}
	for item := range items {
		feed.Add(item)
	}
	if waitErr != nil {
		return nil, waitErr
	}

	feed.Sort(func(a, b *feeds.Item) bool {
		return a.Updated.Before(b.Updated)
	})
	if len(feed.Items) > 0 {
		feed.Updated = feed.Items[len(feed.Items)-1].Updated
	}
	rss, err := feed.ToRss()
	return []byte(rss), err
}

func (g *S3Generator) listImages(ctx context.Context) ([]string, error) {
	var keys []string
	pager := s3.NewListObjectsV2Paginator(g.client, &s3.ListObjectsV2Input{
		Bucket: &g.bucket,
	})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		keys = append(keys, lo.FilterMap(page.Contents, func(o s3types.Object, _ int) (string, bool) {
			key := *o.Key
			return key, strings.HasSuffix(key, ".png") && !strings.HasPrefix(key, "latest")
		})...)
	}
	return keys, nil
}
