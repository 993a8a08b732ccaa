// Package notifier announces CFP changes detected between aggregation runs.
//
// Two channels are supported: Discord webhooks and Twitter. Both post newly
// opened CFPs and deadline reminders for CFPs closing soon. A dry-run
// implementation prints the messages instead, for local testing and the
// --dry-run flag.
package notifier
