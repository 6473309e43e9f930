package widget

// SelectionChangedMsg is emitted through the Bubble Tea loop after a
// coalesced recompute changed the effective selection. Values carries the
// output-typed payload of the checked options.
type SelectionChangedMsg struct {
	Values []any
}

// LimitReachedMsg is the advisory emitted when an operation runs into the
// max selection count. Not an error; the operation applied its documented
// truncate/skip policy.
type LimitReachedMsg struct {
	Limit int
}

// PopupClosedMsg is emitted when the popup closes, with the selection at
// that moment.
type PopupClosedMsg struct {
	Values []any
}

// flushMsg asks the widget to run the pending coalesced recompute. It is
// the "run soon" callback of the update coalescer, routed through the
// single Bubble Tea loop.
type flushMsg struct{}

// guardExpiredMsg lifts the short-lived reopen guard set when the popup
// closes on select. gen stamps the guard so a cancelled guard's expiry is
// ignored.
type guardExpiredMsg struct {
	gen int
}
