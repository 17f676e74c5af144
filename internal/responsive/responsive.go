// Package responsive maps sizes authored against a baseline phone screen to
// sizes appropriate for the device a rendering host reports.
package responsive

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Baseline resolution the visual design was authored against (iPhone 8/SE).
const (
	BaseWidth  = 375.0
	BaseHeight = 667.0
)

const (
	// DefaultModerateFactor damps ModerateScale.
	DefaultModerateFactor = 0.5

	// DefaultFontFactor damps ScaleFont so text grows slower than layout boxes.
	DefaultFontFactor = 0.3

	tabletMinWidth       = 600.0
	tabletMaxAspectRatio = 1.6
)

// ErrInvalidDimensions is returned when a screen is constructed from
// non-positive or non-finite dimensions.
var ErrInvalidDimensions = errors.New("screen dimensions must be positive")

// Platform identifies the runtime platform of the rendering host.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// ParsePlatform parses a platform name. The empty string means iOS.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ios":
		return PlatformIOS, nil
	case "android":
		return PlatformAndroid, nil
	default:
		return "", fmt.Errorf("unknown platform %q", s)
	}
}

// Screen is the device a rendering host reports, in logical units.
type Screen struct {
	Width    float64  `json:"width" yaml:"width"`
	Height   float64  `json:"height" yaml:"height"`
	Platform Platform `json:"platform" yaml:"platform"`
}

// NewScreen validates the dimensions and returns a Screen.
func NewScreen(width, height float64, platform Platform) (Screen, error) {
	if !positive(width) || !positive(height) {
		return Screen{}, fmt.Errorf("%w: got %vx%v", ErrInvalidDimensions, width, height)
	}
	if platform == "" {
		platform = PlatformIOS
	}
	return Screen{Width: width, Height: height, Platform: platform}, nil
}

// Baseline returns the reference screen, on which every scaling function is
// the identity.
func Baseline() Screen {
	return Screen{Width: BaseWidth, Height: BaseHeight, Platform: PlatformIOS}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// ScaleWidth scales size linearly with the screen width.
// Use for widths and horizontal spacing.
func (s Screen) ScaleWidth(size float64) float64 {
	return size * s.Width / BaseWidth
}

// ScaleHeight scales size linearly with the screen height.
// Use for heights and vertical spacing.
func (s Screen) ScaleHeight(size float64) float64 {
	return size * s.Height / BaseHeight
}

// ModerateScale scales size with DefaultModerateFactor.
func (s Screen) ModerateScale(size float64) float64 {
	return s.ModerateScaleFactor(size, DefaultModerateFactor)
}

// ModerateScaleFactor blends width scaling with the identity. A factor of 0
// returns size unchanged and a factor of 1 equals ScaleWidth.
func (s Screen) ModerateScaleFactor(size, factor float64) float64 {
	return size + (s.ScaleWidth(size)-size)*factor
}

// ScaleFont scales a font size with DefaultFontFactor.
func (s Screen) ScaleFont(size float64) float64 {
	return s.ScaleFontFactor(size, DefaultFontFactor)
}

// ScaleFontFactor is ModerateScaleFactor under a name that reads well at
// call sites dealing with type.
func (s Screen) ScaleFontFactor(size, factor float64) float64 {
	return s.ModerateScaleFactor(size, factor)
}

// IsTablet reports whether the screen is wide with a squarish aspect ratio.
func (s Screen) IsTablet() bool {
	return s.Width >= tabletMinWidth && s.Height/s.Width < tabletMaxAspectRatio
}

// IsSmallDevice reports whether the screen is narrower than the baseline.
func (s Screen) IsSmallDevice() bool {
	return s.Width < BaseWidth
}

// Category is a coarse device class.
type Category string

const (
	CategorySmall  Category = "small"
	CategoryNormal Category = "normal"
	CategoryTablet Category = "tablet"
)

// Category classifies the screen. Small wins over tablet.
func (s Screen) Category() Category {
	switch {
	case s.IsSmallDevice():
		return CategorySmall
	case s.IsTablet():
		return CategoryTablet
	default:
		return CategoryNormal
	}
}

// ResponsiveSize picks one of three hand-tuned values by device class.
func (s Screen) ResponsiveSize(small, normal, large float64) float64 {
	switch s.Category() {
	case CategorySmall:
		return small
	case CategoryTablet:
		return large
	default:
		return normal
	}
}

// Select returns ios on iOS and android on every other platform.
func Select[T any](s Screen, ios, android T) T {
	if s.Platform == PlatformAndroid {
		return android
	}
	return ios
}
