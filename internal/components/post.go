package components

import (
	"fmt"
	"strconv"

	"github.com/blackmichael/explore-feed/internal/domain"
	"github.com/blackmichael/explore-feed/internal/theme"
	"github.com/blackmichael/explore-feed/internal/view"
)

// PostHeader renders the avatar, author name, location and the menu button.
func PostHeader(t *theme.Tokens, p domain.PostRecord) (*view.Node, error) {
	initials, err := Initials(p.UserName)
	if err != nil {
		return nil, fmt.Errorf("post %d: %w", p.ID, err)
	}
	key := postKey(p.ID) + ".header"
	avatar := t.Sizes.Avatar
	hitSlop := t.Platform.TouchTargetPadding

	return view.Box(key, rowBetween.Merge(view.Style{Width: view.Percent(100)}),
		view.Box(key+".user", flexRow.Merge(view.Style{Gap: t.Spacing.SM, Flex: 1}),
			view.Box(key+".avatar", centered.Merge(view.Style{BackgroundColor: t.Colors.StoryInnerPink}.Circle(avatar)),
				view.Text(key+".initials", initials, view.Style{
					FontFamily: t.Typography.FontFamily.InterMedium,
					FontSize:   t.Typography.FontSize.MD,
					FontWeight: t.Typography.FontWeight.Medium,
					Color:      t.Colors.TextWhite,
				}),
			),
			view.Box(key+".text", view.Style{JustifyContent: "center", Gap: t.Screen().ModerateScale(4), Flex: 1},
				view.Text(key+".name", p.UserName, view.Style{
					FontFamily:    t.Typography.FontFamily.InterMedium,
					FontSize:      t.Typography.FontSize.MD,
					FontWeight:    t.Typography.FontWeight.Medium,
					Color:         t.Colors.Black,
					LetterSpacing: t.Typography.LetterSpacing.Tight,
				}),
				view.Text(key+".location", p.UserLocation, view.Style{
					FontFamily:    t.Typography.FontFamily.InterRegular,
					FontSize:      t.Typography.FontSize.XXS,
					FontWeight:    t.Typography.FontWeight.Regular,
					Color:         t.Colors.TextSecondary,
					LetterSpacing: t.Typography.LetterSpacing.XXS,
				}),
			),
		),
		view.Button(key+".menu", MenuAction(p.ID),
			centered.Merge(view.Style{Opacity: 0.7, PaddingHorizontal: hitSlop, PaddingVertical: hitSlop}).Square(t.Sizes.MenuButton),
			view.Icon(key+".menu.icon", "ellipsis-h", view.Style{
				Width: view.Units(t.Screen().ModerateScale(18)),
				Color: t.Colors.TextSecondary,
			}),
		),
	), nil
}

// PostImage renders the post image, or a gray placeholder when the post has
// none. Width follows the container and height follows the aspect ratio.
func PostImage(t *theme.Tokens, p domain.PostRecord) *view.Node {
	return view.Image(postKey(p.ID)+".image", p.ImageURL, view.Style{
		Width:           view.Percent(100),
		AspectRatio:     t.Sizes.PostImage.AspectRatio,
		BackgroundColor: t.Colors.PostImageBackground,
		BorderRadius:    t.Radius.MD,
		Overflow:        "hidden",
	})
}

// PostActions renders the likes, comments and bookmarks counters.
func PostActions(t *theme.Tokens, p domain.PostRecord) *view.Node {
	key := postKey(p.ID) + ".actions"
	item := func(name, icon string, count int) *view.Node {
		return view.Box(key+"."+name, flexRow.Merge(view.Style{Gap: t.Spacing.XS}),
			view.Icon(key+"."+name+".icon", icon, view.Style{
				Width: view.Units(t.Sizes.Icon.MD),
				Color: t.Colors.IconGray,
			}),
			view.Text(key+"."+name+".count", strconv.Itoa(count), view.Style{
				FontFamily:    t.Typography.FontFamily.InterMedium,
				FontSize:      t.Typography.FontSize.SM,
				FontWeight:    t.Typography.FontWeight.Medium,
				Color:         t.Colors.TextSecondary,
				LetterSpacing: t.Typography.LetterSpacing.Normal,
				MarginLeft:    t.Spacing.XS,
			}),
		)
	}

	return view.Box(key, flexRow.Merge(view.Style{Gap: t.Spacing.LG}),
		item("likes", "heart", p.Likes),
		item("comments", "comment", p.Comments),
		item("bookmarks", "bookmark", p.Bookmarks),
	)
}

// PostCard renders a full card: header, image and action row.
func PostCard(t *theme.Tokens, p domain.PostRecord) (*view.Node, error) {
	header, err := PostHeader(t, p)
	if err != nil {
		return nil, err
	}
	return view.Box(postKey(p.ID), view.Style{
		PaddingHorizontal: t.Spacing.LG,
		PaddingVertical:   t.Spacing.MD,
		Gap:               t.Spacing.MD,
	},
		header,
		PostImage(t, p),
		PostActions(t, p),
	), nil
}

func postKey(id int) string {
	return "post." + strconv.Itoa(id)
}
