package post

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/log"
	"github.com/samber/do"
	"github.com/samber/lo"
	"github.com/vartanbeno/go-reddit/v2/reddit"
)

type RedditPoster struct {
	client    *reddit.Client
	subreddit string
	site      string
}

func NewRedditPoster(i *do.Injector) (Poster, error) {
	creds := reddit.Credentials{
		ID:       do.MustInvokeNamed[string](i, "reddit_client_id"),
		Secret:   do.MustInvokeNamed[string](i, "reddit_client_secret"),
		Username: do.MustInvokeNamed[string](i, "reddit_username"),
		Password: do.MustInvokeNamed[string](i, "reddit_password"),
	}
	subreddit := do.MustInvokeNamed[string](i, "subreddit")
	site := do.MustInvokeNamed[string](i, "site_url")

	client, err := reddit.NewClient(creds, reddit.WithUserAgent(userAgent()))
	if err != nil {
		return nil, err
	}

	return &RedditPoster{client: client, subreddit: subreddit, site: site}, nil
}

// userAgent tags requests with the vcs revision when build info is
// present. Binaries built without it fall back to "unknown".
func userAgent() string {
	revision := "unknown"
	if info, ok := debug.ReadBuildInfo(); ok {
		setting := lo.FindOrElse(info.Settings, debug.BuildSetting{Value: revision}, func(s debug.BuildSetting) bool {
			return s.Key == "vcs.revision"
		})
		revision = setting.Value
	}
	return "web:mdigitalartz:" + revision
}

func (p *RedditPoster) Post(ctx context.Context, params Params) error {
	log.FromContextOrDiscard(ctx).Info("posting to reddit", "subreddit", p.subreddit)
	_, _, err := p.client.Post.SubmitLink(ctx, reddit.SubmitLinkRequest{
		Subreddit:   p.subreddit,
		Title:       fmt.Sprintf("%s - %s (%s)", params.Date, params.Prompt, params.Model),
		URL:         fmt.Sprintf("%s/%s.html", p.site, params.Date),
		SendReplies: lo.ToPtr(false),
	})
	return err
}
