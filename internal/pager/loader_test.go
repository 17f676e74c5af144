package pager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type story struct {
	ID   int
	Name string
}

func stories(n int) []story {
	out := make([]story, n)
	for i := range out {
		out[i] = story{ID: i + 1, Name: fmt.Sprintf("story-%d", i+1)}
	}
	return out
}

func TestLoader_TwentyStoriesPageSixScenario(t *testing.T) {
	l, err := New(stories(20), 6)
	require.NoError(t, err)

	assert.Equal(t, 6, l.Len())
	assert.Equal(t, 1, l.PageCursor())
	assert.False(t, l.Exhausted())

	wantLens := []int{12, 18, 20, 20}
	wantExhausted := []bool{false, false, true, true}
	wantAppended := []bool{true, true, true, false}
	for i := range wantLens {
		appended := l.Advance()
		assert.Equal(t, wantAppended[i], appended, "advance %d", i+1)
		assert.Equal(t, wantLens[i], l.Len(), "advance %d", i+1)
		assert.Equal(t, wantExhausted[i], l.Exhausted(), "advance %d", i+1)
	}
	assert.Equal(t, 4, l.PageCursor())
}

func TestLoader_AdvanceCountToExhaustion(t *testing.T) {
	for n := 0; n <= 25; n++ {
		for pageSize := 1; pageSize <= 8; pageSize++ {
			t.Run(fmt.Sprintf("n=%d/page=%d", n, pageSize), func(t *testing.T) {
				l, err := New(stories(n), pageSize)
				require.NoError(t, err)

				calls := 0
				for !l.Exhausted() {
					l.Advance()
					calls++
					require.LessOrEqual(t, calls, n+1, "loader never exhausted")
				}

				want := 0
				if n > 0 {
					want = (n+pageSize-1)/pageSize - 1
				}
				assert.Equal(t, want, calls)
				assert.Equal(t, n, l.Len())
				assertInvariant(t, l)
			})
		}
	}
}

func TestLoader_VisibleIsPrefixInOrder(t *testing.T) {
	backing := stories(13)
	l, err := New(backing, 5)
	require.NoError(t, err)

	for {
		if diff := cmp.Diff(backing[:l.Len()], l.Items()); diff != "" {
			t.Fatalf("visible window is not a prefix (-want +got):\n%s", diff)
		}
		assertInvariant(t, l)
		if !l.Advance() {
			break
		}
	}
	assert.Equal(t, 13, l.Len())
}

func TestLoader_IdempotentOnceExhausted(t *testing.T) {
	l, err := New(stories(7), 3)
	require.NoError(t, err)
	for l.Advance() {
	}
	require.True(t, l.Exhausted())
	before := l.State()

	for i := 0; i < 10; i++ {
		assert.False(t, l.Advance())
	}
	assert.Equal(t, before, l.State())
}

func TestLoader_Empty(t *testing.T) {
	l, err := New([]story{}, 6)
	require.NoError(t, err)

	assert.Empty(t, l.Items())
	assert.Equal(t, 0, l.PageCursor())
	assert.True(t, l.Exhausted())
	assert.False(t, l.Advance())
	assert.Equal(t, 0, l.PageCursor())

	l, err = New[story](nil, 6)
	require.NoError(t, err)
	assert.True(t, l.Exhausted())
}

func TestLoader_SinglePageExhaustsImmediately(t *testing.T) {
	l, err := New(stories(6), 6)
	require.NoError(t, err)
	assert.True(t, l.Exhausted())
	assert.Equal(t, 1, l.PageCursor())
}

func TestLoader_InvalidPageSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := New(stories(3), size)
		assert.True(t, errors.Is(err, ErrInvalidPageSize))
	}
}

func TestLoader_ItemsReturnsCopy(t *testing.T) {
	l, err := New(stories(4), 2)
	require.NoError(t, err)

	items := l.Items()
	items[0].Name = "mutated"
	assert.Equal(t, "story-1", l.Items()[0].Name)
}

func TestLoader_DoesNotAliasBacking(t *testing.T) {
	backing := stories(4)
	l, err := New(backing, 2)
	require.NoError(t, err)
	l.Advance()

	// appending to the window must never write into the backing array
	assert.Equal(t, stories(4), backing)
	assert.Equal(t, 4, l.Len())
}

func assertInvariant[T any](t *testing.T, l *Loader[T]) {
	t.Helper()
	assert.Equal(t, min(l.PageCursor()*l.PageSize(), l.Total()), l.Len())
	assert.Equal(t, l.Len() == l.Total(), l.Exhausted())
}
