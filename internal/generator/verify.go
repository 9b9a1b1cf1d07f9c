package generator

import (
	"fmt"

	"github.com/mmcdole/gofeed"
)

// verifyFeed parses content with a real feed reader and checks it is an
// Atom document carrying expected entries.
func verifyFeed(content string, expected int) error {
	parsed, err := gofeed.NewParser().ParseString(content)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFeedVerification, err)
	}
	if parsed.FeedType != "atom" {
		return fmt.Errorf("%w: expected atom document, got %q", ErrFeedVerification, parsed.FeedType)
	}
	if len(parsed.Items) != expected {
		return fmt.Errorf("%w: expected %d entries, parsed %d", ErrFeedVerification, expected, len(parsed.Items))
	}
	return nil
}
