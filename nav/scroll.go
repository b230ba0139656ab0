package nav

// DefaultCondenseThreshold is the scroll offset in px past which the bar condenses
const DefaultCondenseThreshold = 24

// ScrollObserver derives the condensed flag from document scroll events.
// Nothing else reads the raw scroll offset.
type ScrollObserver struct {
	threshold int
	condensed bool
	onChange  func(condensed bool)
	detach    func()
}

// NewScrollObserver attaches a scroll listener to doc. onChange fires only when
// the condensed flag flips.
func NewScrollObserver(doc *Document, threshold int, onChange func(bool)) *ScrollObserver {
	if threshold <= 0 {
		threshold = DefaultCondenseThreshold
	}
	o := &ScrollObserver{threshold: threshold, onChange: onChange}
	o.detach = doc.AddListener(EventScroll, o.handle)
	return o
}

func (o *ScrollObserver) handle(e Event) {
	c := e.ScrollY > o.threshold
	if c == o.condensed {
		return
	}
	o.condensed = c
	if o.onChange != nil {
		o.onChange(c)
	}
}

// Condensed reports the current flag
func (o *ScrollObserver) Condensed() bool {
	return o.condensed
}

// Detach removes the scroll listener
func (o *ScrollObserver) Detach() {
	if o.detach != nil {
		o.detach()
	}
}
