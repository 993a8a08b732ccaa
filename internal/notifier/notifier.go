package notifier

import (
	"context"

	"github.com/confscout/confscout/internal/conference"
)

// Notifier posts CFP announcements to a channel.
type Notifier interface {
	// NotifyNewCFPs announces conferences whose CFP opened since the
	// previous run.
	NotifyNewCFPs(ctx context.Context, confs []*conference.Conference) error

	// NotifyClosingSoon reminds about open CFPs closing within the
	// configured window.
	NotifyClosingSoon(ctx context.Context, confs []*conference.Conference) error
}

// Multi fans announcements out to several channels. Errors are collected;
// one failing channel does not stop the others.
type Multi []Notifier

// NotifyNewCFPs implements Notifier.
func (m Multi) NotifyNewCFPs(ctx context.Context, confs []*conference.Conference) error {
	var firstErr error
	for _, n := range m {
		if err := n.NotifyNewCFPs(ctx, confs); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// NotifyClosingSoon implements Notifier.
func (m Multi) NotifyClosingSoon(ctx context.Context, confs []*conference.Conference) error {
	var firstErr error
	for _, n := range m {
		if err := n.NotifyClosingSoon(ctx, confs); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
