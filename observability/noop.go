package observability

// NoOpObserver is an Observer that ignores every transition. It is the default
// when no observer is configured and keeps call sites free of nil checks.
type NoOpObserver struct{}

// ObserveTransition does nothing.
func (NoOpObserver) ObserveTransition(Transition) {}

// NewNoOpObserver creates a NoOpObserver.
func NewNoOpObserver() Observer {
	return NoOpObserver{}
}
