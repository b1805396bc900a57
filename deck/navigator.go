package deck

// Navigator tracks the current position over a fixed, ordered slide list.
// Movement is always clamped to [0, len-1]: requests outside the range are
// absorbed, never wrapped, and never an error.
type Navigator struct {
	slides []Slide
	index  int
}

// NewNavigator starts at start, clamped into range. A nil or empty slide
// list yields a navigator that stays pinned at index 0.
func NewNavigator(slides []Slide, start int) *Navigator {
	n := &Navigator{slides: slides}
	n.index = n.clamp(start)
	return n
}

// Step moves by delta slides, saturating at either end. A no-op at the
// boundary; callers do not need to pre-check.
func (n *Navigator) Step(delta int) {
	n.index = n.clamp(n.index + delta)
}

// JumpTo moves directly to i. The jump grid only ever hands over valid
// indexes, but out-of-range input is absorbed the same way Step absorbs it.
func (n *Navigator) JumpTo(i int) {
	n.index = n.clamp(i)
}

func (n *Navigator) Index() int { return n.index }

func (n *Navigator) Len() int { return len(n.slides) }

// Current returns the slide under the cursor, or a zero Slide for an
// empty deck.
func (n *Navigator) Current() Slide {
	if len(n.slides) == 0 {
		return Slide{}
	}
	return n.slides[n.index]
}

// Slides returns a copy of the deck in display order.
func (n *Navigator) Slides() []Slide {
	return append([]Slide(nil), n.slides...)
}

func (n *Navigator) AtStart() bool { return n.index == 0 }

func (n *Navigator) AtEnd() bool { return len(n.slides) == 0 || n.index == len(n.slides)-1 }

// ProgressPercent is a pure derived value: how far through the deck the
// cursor is, with the first slide already counting as 1/len.
func (n *Navigator) ProgressPercent() float64 {
	if len(n.slides) == 0 {
		return 0
	}
	return float64(n.index+1) / float64(len(n.slides)) * 100
}

// SectionLabel returns the label of the section divider governing the
// current slide, or "" before the first divider.
func (n *Navigator) SectionLabel() string {
	for i := n.index; i >= 0 && i < len(n.slides); i-- {
		if n.slides[i].Kind == KindSection {
			return n.slides[i].Label
		}
	}
	return ""
}

func (n *Navigator) clamp(i int) int {
	if len(n.slides) == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i > len(n.slides)-1 {
		return len(n.slides) - 1
	}
	return i
}
