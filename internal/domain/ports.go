package domain

import "context"

// FixtureSource supplies the two static datasets the feed renders. Both
// results are ordered by ID and must be treated as read-only.
type FixtureSource interface {
	// Posts returns every post record.
	Posts(ctx context.Context) ([]PostRecord, error)

	// Stories returns every story record.
	Stories(ctx context.Context) ([]StoryRecord, error)
}

// PressHandler receives the fire-and-forget press notifications a feed
// exposes upward.
type PressHandler interface {
	// NotificationPressed fires when the header's notification button is pressed.
	NotificationPressed()

	// MenuPressed fires when a post card's menu button is pressed.
	MenuPressed(postID int)
}
