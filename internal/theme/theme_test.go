package theme

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/blackmichael/explore-feed/internal/responsive"
)

func TestDefault_MatchesDesignValues(t *testing.T) {
	tok := Default()

	assert.Equal(t, 10.0, tok.Typography.FontSize.XS)
	assert.Equal(t, 24.0, tok.Typography.FontSize.XL)
	assert.Equal(t, 16.0, tok.Spacing.MD)
	assert.Equal(t, 26.0, tok.Spacing.XL)
	assert.Equal(t, 15.0, tok.Radius.MD)
	assert.Equal(t, 65.0, tok.Sizes.Story.Outer)
	assert.Equal(t, 59.0, tok.Sizes.Story.Inner)
	assert.Equal(t, 48.0, tok.Sizes.Avatar)
	assert.Equal(t, 327.0, tok.Sizes.PostImage.BaseWidth)
	assert.Equal(t, 220.0, tok.Sizes.PostImage.BaseHeight)
	assert.InDelta(t, 1.486, tok.Sizes.PostImage.AspectRatio, 0.001)
	assert.Equal(t, "#022150", tok.Colors.Primary)
	assert.Equal(t, responsive.CategoryNormal, tok.Device.Category)
}

func TestNew_ScalesForTablet(t *testing.T) {
	s, err := responsive.NewScreen(750, 1000, responsive.PlatformIOS)
	require.NoError(t, err)
	tok := New(s)

	// width factor 2
	assert.InDelta(t, 24.0, tok.Spacing.MD, 1e-9)
	assert.InDelta(t, 13.0, tok.Typography.FontSize.XS, 1e-9)
	assert.InDelta(t, 654.0, tok.Sizes.PostImage.BaseWidth, 1e-9)
	assert.Equal(t, responsive.CategoryTablet, tok.Device.Category)

	// letter spacing is not scaled
	assert.Equal(t, 0.28, tok.Typography.LetterSpacing.Normal)
}

func TestNew_PlatformAdjustments(t *testing.T) {
	ios, err := responsive.NewScreen(375, 667, responsive.PlatformIOS)
	require.NoError(t, err)
	android, err := responsive.NewScreen(375, 667, responsive.PlatformAndroid)
	require.NoError(t, err)

	assert.Equal(t, 12.0, New(ios).Platform.TouchTargetPadding)
	assert.Equal(t, 1.2, New(ios).Platform.LineHeight)
	assert.Equal(t, 8.0, New(android).Platform.TouchTargetPadding)
	assert.Equal(t, 1.3, New(android).Platform.LineHeight)
}

func TestTokens_AreIndependentPerScreen(t *testing.T) {
	small, err := responsive.NewScreen(320, 568, responsive.PlatformIOS)
	require.NoError(t, err)

	a := Default()
	b := New(small)
	assert.NotEqual(t, a.Spacing.MD, b.Spacing.MD)
	assert.Equal(t, 16.0, a.Spacing.MD)
	assert.Equal(t, small, b.Screen())
}

func TestTokens_Marshal(t *testing.T) {
	tok := Default()

	raw, err := json.Marshal(tok)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "colors")
	assert.Contains(t, decoded, "typography")

	out, err := yaml.Marshal(tok)
	require.NoError(t, err)
	assert.Contains(t, string(out), "story_border_pink:")
	assert.Contains(t, string(out), "#E91E63")
}
