package components

import (
	"github.com/blackmichael/explore-feed/internal/theme"
	"github.com/blackmichael/explore-feed/internal/view"
)

// Shared layout presets.
var (
	rowBetween = view.Style{FlexDirection: "row", JustifyContent: "space-between", AlignItems: "center"}
	flexRow    = view.Style{FlexDirection: "row", AlignItems: "center"}
	centered   = view.Style{JustifyContent: "center", AlignItems: "center"}
)

// circularButton is the round light-gray icon holder.
func circularButton(t *theme.Tokens, key string, size float64, children ...*view.Node) *view.Node {
	return view.Box(key, centered.Merge(view.Style{BackgroundColor: t.Colors.BackgroundLight}.Circle(size)), children...)
}

// captionText is the secondary text style for hints and footers.
func captionText(t *theme.Tokens) view.Style {
	return view.Style{
		FontFamily: t.Typography.FontFamily.InterRegular,
		FontSize:   t.Typography.FontSize.SM,
		FontWeight: t.Typography.FontWeight.Regular,
		Color:      t.Colors.TextSecondary,
		LineHeight: t.Typography.FontSize.SM * t.Platform.LineHeight,
	}
}
