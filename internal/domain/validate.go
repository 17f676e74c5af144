package domain

import "fmt"

// ValidatePosts checks the fixture guarantees the feed relies on: unique IDs
// and non-negative counters.
func ValidatePosts(posts []PostRecord) error {
	seen := make(map[int]struct{}, len(posts))
	for _, p := range posts {
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate post id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.Likes < 0 || p.Comments < 0 || p.Bookmarks < 0 {
			return fmt.Errorf("post %d: negative engagement counter", p.ID)
		}
	}
	return nil
}

// ValidateStories checks that story IDs are unique.
func ValidateStories(stories []StoryRecord) error {
	seen := make(map[int]struct{}, len(stories))
	for _, s := range stories {
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("duplicate story id %d", s.ID)
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}
