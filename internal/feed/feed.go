package feed

import (
	"github.com/blackmichael/explore-feed/internal/domain"
	"github.com/blackmichael/explore-feed/internal/pager"
)

// Page is one step of the stories window, as reported to hosts after the
// initial page and after every advance that appended items.
type Page struct {
	// Items are the stories appended by this step.
	Items []domain.StoryRecord `json:"items"`

	// Visible is the total number of visible stories after this step.
	Visible int `json:"visible"`

	// Total is the length of the backing sequence.
	Total int `json:"total"`

	PageCursor int  `json:"page_cursor"`
	Exhausted  bool `json:"exhausted"`
}

func pageOf(l *pager.Loader[domain.StoryRecord], from int) Page {
	items := l.Items()
	return Page{
		Items:      items[from:],
		Visible:    len(items),
		Total:      l.Total(),
		PageCursor: l.PageCursor(),
		Exhausted:  l.Exhausted(),
	}
}
