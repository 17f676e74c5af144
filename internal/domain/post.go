package domain

// PostRecord is a single post shown as a card in the feed. Records are
// immutable fixtures.
type PostRecord struct {
	// ID uniquely identifies the post.
	ID int `json:"id" yaml:"id"`

	// UserName is the author's display name.
	UserName string `json:"user_name" yaml:"user_name"`

	// UserLocation is a free-form place name shown under the author.
	UserLocation string `json:"user_location" yaml:"user_location"`

	// ImageURL is optional. Hosts draw a placeholder when it is empty.
	ImageURL string `json:"image_url,omitempty" yaml:"image_url,omitempty"`

	// Engagement counters, never negative.
	Likes     int `json:"likes" yaml:"likes"`
	Comments  int `json:"comments" yaml:"comments"`
	Bookmarks int `json:"bookmarks" yaml:"bookmarks"`
}

// StoryRecord is a single circle in the stories strip.
type StoryRecord struct {
	// ID uniquely identifies the story.
	ID int `json:"id" yaml:"id"`

	// Name is the display name under the circle.
	Name string `json:"name" yaml:"name"`

	// ImageURL is optional.
	ImageURL string `json:"image_url,omitempty" yaml:"image_url,omitempty"`
}
