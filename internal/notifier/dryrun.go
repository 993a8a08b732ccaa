package notifier

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/confscout/confscout/internal/conference"
)

// DryRunNotifier prints what would be posted without sending anything.
type DryRunNotifier struct {
	out io.Writer
}

// NewDryRunNotifier creates a dry-run notifier writing to stdout.
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{out: os.Stdout}
}

// NotifyNewCFPs implements Notifier.
func (n *DryRunNotifier) NotifyNewCFPs(_ context.Context, confs []*conference.Conference) error {
	return n.print("new CFP", confs, formatNewCFPTweet)
}

// NotifyClosingSoon implements Notifier.
func (n *DryRunNotifier) NotifyClosingSoon(_ context.Context, confs []*conference.Conference) error {
	return n.print("closing soon", confs, formatClosingTweet)
}

func (n *DryRunNotifier) print(kind string, confs []*conference.Conference, format func(*conference.Conference) string) error {
	for i, c := range confs {
		msg := format(c)
		fmt.Fprintf(n.out, "--- %s %d/%d ---\n", kind, i+1, len(confs))
		fmt.Fprintln(n.out, msg)
		fmt.Fprintf(n.out, "\n(Length: %d characters)\n\n", len(msg))
	}
	return nil
}
