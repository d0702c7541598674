package component

// Phase classifies one firing of an injected hook-pair callback, derived from
// the pair's shared execution counter.
type Phase int

const (
	// PhaseBefore is the first firing of a pair, the "begin" half.
	PhaseBefore Phase = iota

	// PhaseAfter is the second firing, the "end" half.
	PhaseAfter

	// PhaseStale is any firing past the second. The host documents that later
	// hooks can be prepended out of order, so repeats are an expected state.
	PhaseStale
)

// String returns the phase name for logs and span attributes.
func (p Phase) String() string {
	switch p {
	case PhaseBefore:
		return "before"
	case PhaseAfter:
		return "after"
	default:
		return "stale"
	}
}

// PairFunc receives one firing of an injected hook pair: the hook name that
// fired and the phase derived from the pair's execution counter.
type PairFunc func(hook string, phase Phase)

// InjectPair front-inserts a single instrumentation callback into both hook
// lists of a begin/end pair. The callback fires before every callback the host
// already registered for either hook, and both registrations share one
// execution counter, so the first firing reports PhaseBefore, the second
// PhaseAfter, and anything further PhaseStale.
//
// The callback becomes a no-op once the instance is marked unmounted; it stays
// registered because the host may still invoke stale unmount-phase hooks.
func InjectPair(inst *Instance, before, after string, fn PairFunc) {
	if inst == nil || fn == nil {
		return
	}

	var count int
	wrap := func(hook string) func() {
		return func() {
			if inst.unmounted {
				return
			}
			var phase Phase
			switch count {
			case 0:
				phase = PhaseBefore
			case 1:
				phase = PhaseAfter
			default:
				phase = PhaseStale
			}
			count++
			fn(hook, phase)
		}
	}

	inst.prependHook(before, wrap(before))
	inst.prependHook(after, wrap(after))
}

// prependHook front-inserts fn into the hook list for name, creating the list
// when it does not exist yet.
func (i *Instance) prependHook(name string, fn func()) {
	if i.hooks == nil {
		i.hooks = make(map[string][]func())
	}
	i.hooks[name] = append([]func(){fn}, i.hooks[name]...)
}
