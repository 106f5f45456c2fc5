package chrome

// RouteObserver tracks the active navigation path and reports changes.
type RouteObserver struct {
	path     string
	onChange func(path string)
	sub      Subscription
}

// NewRouteObserver starts at initial; onChange runs for every new path.
func NewRouteObserver(initial string, onChange func(path string)) *RouteObserver {
	return &RouteObserver{path: initial, onChange: onChange}
}

// Activate subscribes to src. A second Activate without Deactivate is a no-op.
func (o *RouteObserver) Activate(src RouteSource) {
	if o.sub != nil || src == nil {
		return
	}
	o.sub = src.Subscribe(o.observe)
}

// Deactivate releases the subscription taken by Activate.
func (o *RouteObserver) Deactivate() {
	if o.sub == nil {
		return
	}
	o.sub.Unsubscribe()
	o.sub = nil
}

// Path returns the last observed path.
func (o *RouteObserver) Path() string {
	return o.path
}

func (o *RouteObserver) observe(path string) {
	if path == o.path {
		return
	}
	o.path = path
	if o.onChange != nil {
		o.onChange(path)
	}
}
