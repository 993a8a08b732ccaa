package notifier

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"

	"github.com/confscout/confscout/internal/conference"
)

// tweetSpacing keeps consecutive posts under the write rate limit.
const tweetSpacing = 2 * time.Second

// TwitterNotifier posts CFP announcements to Twitter.
type TwitterNotifier struct {
	client *twitter.Client
	sleep  func(time.Duration)
}

// NewTwitterNotifier creates a Twitter notifier using environment variables.
// Required environment variables:
//   - TWITTER_API_KEY
//   - TWITTER_API_SECRET
//   - TWITTER_ACCESS_TOKEN
//   - TWITTER_ACCESS_SECRET
func NewTwitterNotifier() (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)

	return &TwitterNotifier{
		client: twitter.NewClient(httpClient),
		sleep:  time.Sleep,
	}, nil
}

// NotifyNewCFPs implements Notifier.
func (n *TwitterNotifier) NotifyNewCFPs(ctx context.Context, confs []*conference.Conference) error {
	return n.post(ctx, confs, formatNewCFPTweet)
}

// NotifyClosingSoon implements Notifier.
func (n *TwitterNotifier) NotifyClosingSoon(ctx context.Context, confs []*conference.Conference) error {
	return n.post(ctx, confs, formatClosingTweet)
}

func (n *TwitterNotifier) post(ctx context.Context, confs []*conference.Conference, format func(*conference.Conference) string) error {
	for i, c := range confs {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, _, err := n.client.Statuses.Update(format(c), nil); err != nil {
			return fmt.Errorf("posting tweet for %s: %w", c.ID, err)
		}

		if i < len(confs)-1 {
			n.sleep(tweetSpacing)
		}
	}
	return nil
}
