// Package fixtures holds the sample posts and stories the feed ships with.
package fixtures

import (
	"context"
	"slices"

	"github.com/blackmichael/explore-feed/internal/domain"
)

// Static serves the compiled-in datasets. It implements domain.FixtureSource.
type Static struct{}

// NewStatic returns the compiled-in fixture source.
func NewStatic() Static { return Static{} }

// Posts returns a copy of the sample posts.
func (Static) Posts(context.Context) ([]domain.PostRecord, error) {
	return slices.Clone(posts), nil
}

// Stories returns a copy of the sample stories.
func (Static) Stories(context.Context) ([]domain.StoryRecord, error) {
	return slices.Clone(stories), nil
}

var _ domain.FixtureSource = Static{}
