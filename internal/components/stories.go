package components

import (
	"fmt"
	"strconv"

	"github.com/blackmichael/explore-feed/internal/domain"
	"github.com/blackmichael/explore-feed/internal/theme"
	"github.com/blackmichael/explore-feed/internal/view"
)

// storyRingGap is the white gap between the outer ring and the inner circle,
// in design units.
const storyRingGap = 4

// StoryItem renders one story: a pink ring around a white spacer around the
// initials circle, with the name underneath.
func StoryItem(t *theme.Tokens, s domain.StoryRecord) (*view.Node, error) {
	initials, err := Initials(s.Name)
	if err != nil {
		return nil, fmt.Errorf("story %d: %w", s.ID, err)
	}

	key := "story." + strconv.Itoa(s.ID)
	spacer := t.Sizes.Story.Outer - t.Screen().ModerateScale(storyRingGap)

	var inner *view.Node
	if s.ImageURL != "" {
		inner = view.Image(key+".image", s.ImageURL, view.Style{Overflow: "hidden"}.Circle(t.Sizes.Story.Inner))
	} else {
		inner = view.Box(key+".inner",
			centered.Merge(view.Style{BackgroundColor: t.Colors.StoryInnerPink}.Circle(t.Sizes.Story.Inner)),
			view.Text(key+".initials", initials, view.Style{
				FontFamily:    t.Typography.FontFamily.InterSemiBold,
				FontSize:      t.Screen().ScaleFont(20),
				FontWeight:    t.Typography.FontWeight.SemiBold,
				Color:         t.Colors.TextWhite,
				LetterSpacing: 0.4,
			}),
		)
	}

	return view.Box(key, view.Style{AlignItems: "center", MarginRight: t.Spacing.MD},
		view.Box(key+".ring", centered.Merge(view.Style{BackgroundColor: t.Colors.StoryBorderPink}.Circle(t.Sizes.Story.Outer)),
			view.Box(key+".spacer", centered.Merge(view.Style{BackgroundColor: t.Colors.TextWhite}.Circle(spacer)),
				inner,
			),
		),
		view.Text(key+".name", s.Name, view.Style{
			FontFamily:    t.Typography.FontFamily.InterSemiBold,
			FontSize:      t.Typography.FontSize.SM,
			FontWeight:    t.Typography.FontWeight.SemiBold,
			Color:         t.Colors.TextPrimary,
			LetterSpacing: t.Typography.LetterSpacing.XS,
			MarginTop:     t.Spacing.SM,
			TextAlign:     "center",
		}),
	), nil
}

// StoriesProps configure the stories strip.
type StoriesProps struct {
	// Stories is the visible window, usually a pager.Loader's items.
	Stories []domain.StoryRecord

	// HasMore draws a trailing "more" hint when the window is not exhausted.
	HasMore bool
}

// Stories renders the horizontal strip of story items.
func Stories(t *theme.Tokens, p StoriesProps) (*view.Node, error) {
	items := make([]*view.Node, 0, len(p.Stories)+1)
	for _, s := range p.Stories {
		n, err := StoryItem(t, s)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	if p.HasMore {
		items = append(items, view.Box("stories.more", centered.Merge(view.Style{Height: view.Units(t.Sizes.Story.Outer)}),
			view.Text("stories.more.label", "…", captionText(t)),
		))
	}

	return view.List("stories", view.Style{
		FlexDirection:     "row",
		PaddingHorizontal: t.Spacing.XL,
		PaddingVertical:   t.Spacing.MD,
	}, items...), nil
}

// StoryItemWidth is the horizontal extent of one story item including its
// trailing margin. Hosts use it to compute scroll metrics for the strip.
func StoryItemWidth(t *theme.Tokens) float64 {
	return t.Sizes.Story.Outer + t.Spacing.MD
}
