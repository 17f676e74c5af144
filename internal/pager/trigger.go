package pager

// DefaultThreshold is how close to the trailing edge, in visible lengths, the
// scroll position must be before a host asks for the next page.
const DefaultThreshold = 0.5

// ScrollMetrics describe a scroll container along its scrolling axis, in
// the same units for all three fields.
type ScrollMetrics struct {
	Offset        float64 `json:"offset"`
	ContentLength float64 `json:"content_length"`
	VisibleLength float64 `json:"visible_length"`
}

// DistanceFromEnd is how far the trailing edge of the viewport is from the
// end of the content. It is zero or negative when content does not fill the
// viewport.
func (m ScrollMetrics) DistanceFromEnd() float64 {
	return m.ContentLength - m.VisibleLength - m.Offset
}

// ShouldAdvance reports whether the viewport is within threshold visible
// lengths of the end of the content. The check is level triggered: it stays
// true while the condition holds, and Advance absorbs the repeats.
// A non-positive threshold falls back to DefaultThreshold.
func ShouldAdvance(m ScrollMetrics, threshold float64) bool {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return m.DistanceFromEnd() < threshold*m.VisibleLength
}

// AdvanceOnScroll calls Advance when the metrics cross the threshold and
// reports whether items were appended.
func (l *Loader[T]) AdvanceOnScroll(m ScrollMetrics, threshold float64) bool {
	if l.exhausted || !ShouldAdvance(m, threshold) {
		return false
	}
	return l.Advance()
}
