package components

import (
	"strconv"

	"github.com/blackmichael/explore-feed/internal/theme"
	"github.com/blackmichael/explore-feed/internal/view"
)

// DefaultTitle is the header text.
const DefaultTitle = "Let's Explore"

// TitleProps configure the header row.
type TitleProps struct {
	Title             string
	NotificationCount int
}

// Title renders the header: the title on the left and the notification
// button on the right. The badge is drawn only for a positive count.
func Title(t *theme.Tokens, p TitleProps) *view.Node {
	title := p.Title
	if title == "" {
		title = DefaultTitle
	}

	var badge *view.Node
	if p.NotificationCount > 0 {
		badge = view.Box("header.badge", notificationBadge(t),
			view.Text("header.badge.count", strconv.Itoa(p.NotificationCount), notificationText(t)),
		)
	}

	return view.Box("header",
		rowBetween.Merge(view.Style{
			PaddingHorizontal: t.Spacing.XL,
			PaddingVertical:   t.Spacing.MD,
		}),
		view.Text("header.title", title, view.Style{
			FontFamily:    t.Typography.FontFamily.InterSemiBold,
			FontSize:      t.Typography.FontSize.XL,
			FontWeight:    t.Typography.FontWeight.SemiBold,
			Color:         t.Colors.TextPrimary,
			LetterSpacing: 0.48,
		}),
		view.Button("header.notification", ActionNotification, view.Style{Position: "relative", Opacity: 0.7},
			circularButton(t, "header.notification.circle", t.Sizes.Icon.LG,
				view.Icon("header.notification.icon", "heart", view.Style{
					Width:  view.Units(t.Screen().ModerateScale(25)),
					Height: view.Units(t.Screen().ModerateScale(20)),
					Color:  t.Colors.Primary,
				}),
			),
			badge,
		),
	)
}

func notificationBadge(t *theme.Tokens) view.Style {
	return centered.Merge(view.Style{
		Position:        "absolute",
		Top:             view.Offset(-t.Spacing.XS),
		Right:           view.Offset(-t.Spacing.XS),
		Width:           view.Units(t.Sizes.Badge),
		Height:          view.Units(t.Sizes.Badge),
		BorderRadius:    t.Radius.SM,
		BackgroundColor: t.Colors.Error,
	})
}

func notificationText(t *theme.Tokens) view.Style {
	return view.Style{
		FontFamily:    t.Typography.FontFamily.InterSemiBold,
		FontSize:      t.Typography.FontSize.XS,
		FontWeight:    t.Typography.FontWeight.SemiBold,
		Color:         t.Colors.TextWhite,
		LetterSpacing: t.Typography.LetterSpacing.Tight,
	}
}
