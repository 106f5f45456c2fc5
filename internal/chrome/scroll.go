package chrome

// ScrollObserver turns raw scroll offsets into the header's compact-mode
// signal. The callback only fires when the derived value flips.
type ScrollObserver struct {
	threshold int
	compact   bool
	onChange  func(compact bool)
	sub       Subscription
}

// NewScrollObserver creates an observer that reports compact once the offset
// exceeds threshold. onChange may be nil.
func NewScrollObserver(threshold int, onChange func(compact bool)) *ScrollObserver {
	return &ScrollObserver{threshold: threshold, onChange: onChange}
}

// Activate subscribes to src. A second Activate without Deactivate is a no-op.
func (o *ScrollObserver) Activate(src ScrollSource) {
	if o.sub != nil || src == nil {
		return
	}
	o.sub = src.Subscribe(func(offset int) {
		o.OnScrollChange(offset)
	})
}

// Deactivate releases the subscription taken by Activate.
func (o *ScrollObserver) Deactivate() {
	if o.sub == nil {
		return
	}
	o.sub.Unsubscribe()
	o.sub = nil
}

// Active reports whether the observer currently holds a subscription.
func (o *ScrollObserver) Active() bool {
	return o.sub != nil
}

// OnScrollChange recomputes the compact flag for offset.
func (o *ScrollObserver) OnScrollChange(offset int) (compact bool, changed bool) {
	next := offset > o.threshold
	if next == o.compact {
		return o.compact, false
	}
	o.compact = next
	if o.onChange != nil {
		o.onChange(next)
	}
	return next, true
}

// Compact reports the last derived value.
func (o *ScrollObserver) Compact() bool {
	return o.compact
}

// Threshold returns the offset that must be exceeded to enter compact mode.
func (o *ScrollObserver) Threshold() int {
	return o.threshold
}
