// Package components turns domain records and design tokens into view trees.
// Every component is a pure function; the only state in a feed lives in the
// stories loader owned by the host.
package components

import (
	"github.com/blackmichael/explore-feed/internal/domain"
	"github.com/blackmichael/explore-feed/internal/theme"
	"github.com/blackmichael/explore-feed/internal/view"
)

// FeedProps is everything the feed screen renders.
type FeedProps struct {
	Header  TitleProps
	Stories StoriesProps
	Posts   []domain.PostRecord

	// TopInset is the safe-area inset reported by the host.
	TopInset float64
}

// Feed renders the whole screen: a vertical list whose header is the title
// row and the stories strip, followed by one card per post.
func Feed(t *theme.Tokens, p FeedProps) (*view.Node, error) {
	stories, err := Stories(t, p.Stories)
	if err != nil {
		return nil, err
	}

	cards := make([]*view.Node, 0, len(p.Posts))
	for _, post := range p.Posts {
		card, err := PostCard(t, post)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	return view.Box("screen", view.Style{Flex: 1, BackgroundColor: t.Colors.TextWhite, PaddingTop: p.TopInset},
		view.List("feed", view.Style{},
			view.Box("feed.header", view.Style{},
				Title(t, p.Header),
				stories,
			),
			view.Box("feed.posts", view.Style{}, cards...),
		),
	), nil
}
