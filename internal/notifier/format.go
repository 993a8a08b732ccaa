package notifier

import (
	"fmt"
	"strings"

	"github.com/confscout/confscout/internal/conference"
)

const tweetLimit = 280

// formatNewCFPTweet formats a newly opened CFP as a tweet.
func formatNewCFPTweet(c *conference.Conference) string {
	tweet := "📢 CFP now open!\n\n"
	tweet += fmt.Sprintf("🎤 %s\n", c.Name)

	if c.StartDate != "" {
		tweet += fmt.Sprintf("📅 %s\n", c.StartDate)
	}
	if location := shortLocation(c); location != "" {
		tweet += fmt.Sprintf("📍 %s\n", location)
	}
	if c.CFP != nil && c.CFP.EndDate != "" {
		tweet += fmt.Sprintf("⏰ Submit by %s\n", c.CFP.EndDate)
	}
	if c.CFP != nil && c.CFP.URL != "" {
		tweet += fmt.Sprintf("\n🔗 %s\n", c.CFP.URL)
	}

	tweet += hashtags(c)
	return truncateTweet(tweet)
}

// formatClosingTweet formats a deadline reminder as a tweet.
func formatClosingTweet(c *conference.Conference) string {
	days := 0
	if c.CFP != nil {
		days = c.CFP.DaysRemaining
	}

	var tweet string
	switch {
	case days <= 1:
		tweet = fmt.Sprintf("🚨 Last call! The CFP for %s closes today.\n", c.Name)
	default:
		tweet = fmt.Sprintf("⏳ %d days left to submit to %s.\n", days, c.Name)
	}

	if c.CFP != nil && c.CFP.URL != "" {
		tweet += fmt.Sprintf("\n🔗 %s\n", c.CFP.URL)
	}
	tweet += hashtags(c)
	return truncateTweet(tweet)
}

func shortLocation(c *conference.Conference) string {
	switch {
	case c.Online && c.Location.City == "":
		return "Online"
	case c.Location.City != "" && c.Location.Country != "":
		return fmt.Sprintf("%s, %s", c.Location.City, c.Location.Country)
	}
	return c.Location.Raw
}

func hashtags(c *conference.Conference) string {
	tags := []string{"#CFP", "#CallForPapers"}
	if c.Domain != "" && c.Domain != "general" {
		tags = append(tags, "#"+strings.ReplaceAll(c.Domain, " ", ""))
	}
	return "\n" + strings.Join(tags, " ")
}

func truncateTweet(tweet string) string {
	if len(tweet) > tweetLimit {
		tweet = tweet[:tweetLimit-3] + "..."
	}
	return tweet
}
