// Package theme holds the design tokens every presentation component reads:
// colors, typography, spacing, corner radii and named component sizes.
//
// Tokens are computed once from a responsive.Screen and never mutated. They
// are passed to components explicitly rather than kept in package state, so
// tests can build tokens for any device.
package theme

import "github.com/blackmichael/explore-feed/internal/responsive"

// Colors are the semantic color roles as hex strings.
type Colors struct {
	Primary             string `json:"primary" yaml:"primary"`
	Black               string `json:"black" yaml:"black"`
	BackgroundLight     string `json:"background_light" yaml:"background_light"`
	PostImageBackground string `json:"post_image_background" yaml:"post_image_background"`
	Error               string `json:"error" yaml:"error"`
	TextPrimary         string `json:"text_primary" yaml:"text_primary"`
	TextSecondary       string `json:"text_secondary" yaml:"text_secondary"`
	TextWhite           string `json:"text_white" yaml:"text_white"`
	StoryBorderPink     string `json:"story_border_pink" yaml:"story_border_pink"`
	StoryInnerPink      string `json:"story_inner_pink" yaml:"story_inner_pink"`
	IconGray            string `json:"icon_gray" yaml:"icon_gray"`
}

// FontFamilies names the font faces bundled with the app.
type FontFamilies struct {
	Inter         string `json:"inter" yaml:"inter"`
	InterRegular  string `json:"inter_regular" yaml:"inter_regular"`
	InterMedium   string `json:"inter_medium" yaml:"inter_medium"`
	InterSemiBold string `json:"inter_semibold" yaml:"inter_semibold"`
}

// FontSizes is the type scale, smallest first.
type FontSizes struct {
	XS  float64 `json:"xs" yaml:"xs"`
	XXS float64 `json:"xxs" yaml:"xxs"`
	SM  float64 `json:"sm" yaml:"sm"`
	MD  float64 `json:"md" yaml:"md"`
	LG  float64 `json:"lg" yaml:"lg"`
	XL  float64 `json:"xl" yaml:"xl"`
}

// FontWeights are CSS-style numeric weights.
type FontWeights struct {
	Regular  string `json:"regular" yaml:"regular"`
	Medium   string `json:"medium" yaml:"medium"`
	SemiBold string `json:"semibold" yaml:"semibold"`
}

// LetterSpacing steps. These do not scale.
type LetterSpacing struct {
	XXS    float64 `json:"xxs" yaml:"xxs"`
	XS     float64 `json:"xs" yaml:"xs"`
	Tight  float64 `json:"tight" yaml:"tight"`
	Normal float64 `json:"normal" yaml:"normal"`
}

// Typography groups the type tokens.
type Typography struct {
	FontFamily    FontFamilies  `json:"font_family" yaml:"font_family"`
	FontSize      FontSizes     `json:"font_size" yaml:"font_size"`
	FontWeight    FontWeights   `json:"font_weight" yaml:"font_weight"`
	LetterSpacing LetterSpacing `json:"letter_spacing" yaml:"letter_spacing"`
}

// Spacing steps.
type Spacing struct {
	XS float64 `json:"xs" yaml:"xs"`
	SM float64 `json:"sm" yaml:"sm"`
	MD float64 `json:"md" yaml:"md"`
	LG float64 `json:"lg" yaml:"lg"`
	XL float64 `json:"xl" yaml:"xl"`
}

// Radius steps.
type Radius struct {
	SM float64 `json:"sm" yaml:"sm"`
	MD float64 `json:"md" yaml:"md"`
	LG float64 `json:"lg" yaml:"lg"`
}

// IconSizes for glyphs and icon buttons.
type IconSizes struct {
	SM float64 `json:"sm" yaml:"sm"`
	MD float64 `json:"md" yaml:"md"`
	LG float64 `json:"lg" yaml:"lg"`
}

// StorySizes are the diameters of the story ring and its inner circle.
type StorySizes struct {
	Outer float64 `json:"outer" yaml:"outer"`
	Inner float64 `json:"inner" yaml:"inner"`
}

// PostImageSizes describe the post image placeholder. Hosts size the image by
// container width and AspectRatio; the base sizes are a reference.
type PostImageSizes struct {
	AspectRatio float64 `json:"aspect_ratio" yaml:"aspect_ratio"`
	BaseWidth   float64 `json:"base_width" yaml:"base_width"`
	BaseHeight  float64 `json:"base_height" yaml:"base_height"`
}

// Sizes are named component dimensions.
type Sizes struct {
	Icon       IconSizes      `json:"icon" yaml:"icon"`
	Badge      float64        `json:"badge" yaml:"badge"`
	Story      StorySizes     `json:"story" yaml:"story"`
	Avatar     float64        `json:"avatar" yaml:"avatar"`
	PostImage  PostImageSizes `json:"post_image" yaml:"post_image"`
	MenuButton float64        `json:"menu_button" yaml:"menu_button"`
}

// PlatformAdjustments hold values that differ between iOS and Android.
type PlatformAdjustments struct {
	TouchTargetPadding float64 `json:"touch_target_padding" yaml:"touch_target_padding"`
	LineHeight         float64 `json:"line_height" yaml:"line_height"`
}

// Tokens is the full, resolved design token set for one screen. A *Tokens
// is shared read-only by every component and session rendering for that
// screen; nothing may write to its fields after New returns. Call New again
// for a private copy.
type Tokens struct {
	Colors     Colors              `json:"colors" yaml:"colors"`
	Typography Typography          `json:"typography" yaml:"typography"`
	Spacing    Spacing             `json:"spacing" yaml:"spacing"`
	Radius     Radius              `json:"radius" yaml:"radius"`
	Sizes      Sizes               `json:"sizes" yaml:"sizes"`
	Platform   PlatformAdjustments `json:"platform" yaml:"platform"`
	Device     DeviceInfo          `json:"device" yaml:"device"`

	screen responsive.Screen
}

// DeviceInfo records what the tokens were derived from.
type DeviceInfo struct {
	Screen   responsive.Screen   `json:"screen" yaml:"screen"`
	Category responsive.Category `json:"category" yaml:"category"`
}

// PostImageAspectRatio is the width/height ratio of the post image design.
const PostImageAspectRatio = 327.0 / 220.0

// New resolves every token for the given screen.
func New(s responsive.Screen) *Tokens {
	return &Tokens{
		Colors: Colors{
			Primary:             "#022150",
			Black:               "#000000",
			BackgroundLight:     "#F9FAFB",
			PostImageBackground: "#D9D9D9",
			Error:               "#FF0000",
			TextPrimary:         "#022150",
			TextSecondary:       "#79869F",
			TextWhite:           "#FFFFFF",
			StoryBorderPink:     "#E91E63",
			StoryInnerPink:      "#F06292",
			IconGray:            "#79869F",
		},
		Typography: Typography{
			FontFamily: FontFamilies{
				Inter:         "Inter",
				InterRegular:  "Inter-Regular",
				InterMedium:   "Inter-Medium",
				InterSemiBold: "Inter_18pt-SemiBold",
			},
			FontSize: FontSizes{
				XS:  s.ScaleFont(10),
				XXS: s.ScaleFont(12),
				SM:  s.ScaleFont(14),
				MD:  s.ScaleFont(16),
				LG:  s.ScaleFont(18),
				XL:  s.ScaleFont(24),
			},
			FontWeight: FontWeights{
				Regular:  "400",
				Medium:   "500",
				SemiBold: "600",
			},
			LetterSpacing: LetterSpacing{
				XXS:    0.12,
				XS:     0.14,
				Tight:  0.16,
				Normal: 0.28,
			},
		},
		Spacing: Spacing{
			XS: s.ModerateScale(2),
			SM: s.ModerateScale(8),
			MD: s.ModerateScale(16),
			LG: s.ModerateScale(24),
			XL: s.ModerateScale(26),
		},
		Radius: Radius{
			SM: s.ModerateScale(9),
			MD: s.ModerateScale(15),
			LG: s.ModerateScale(24),
		},
		Sizes: Sizes{
			Icon: IconSizes{
				SM: s.ModerateScale(20),
				MD: s.ModerateScale(24),
				LG: s.ModerateScale(48),
			},
			Badge: s.ModerateScale(18),
			Story: StorySizes{
				Outer: s.ModerateScale(65),
				Inner: s.ModerateScale(59),
			},
			Avatar: s.ModerateScale(48),
			PostImage: PostImageSizes{
				AspectRatio: PostImageAspectRatio,
				BaseWidth:   s.ScaleWidth(327),
				BaseHeight:  s.ScaleHeight(220),
			},
			MenuButton: s.ModerateScale(32),
		},
		Platform: PlatformAdjustments{
			TouchTargetPadding: responsive.Select(s, s.ModerateScale(12), s.ModerateScale(8)),
			LineHeight:         responsive.Select(s, 1.2, 1.3),
		},
		Device: DeviceInfo{
			Screen:   s,
			Category: s.Category(),
		},
		screen: s,
	}
}

// Default returns tokens for the baseline screen.
func Default() *Tokens {
	return New(responsive.Baseline())
}

// Screen returns the screen the tokens were derived from. Components use it
// for one-off scaled values that are not worth a named token.
func (t *Tokens) Screen() responsive.Screen {
	return t.screen
}
