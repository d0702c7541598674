package component

import (
	"sync"
	"sync/atomic"
)

// ErrorHandler is the host application's single global error callback.
// info carries the lifecycle hook during which the error surfaced, when known.
type ErrorHandler func(err error, inst *Instance, info string)

// Descriptor describes a component type. All fields are optional; the namer
// package walks them in a fixed fallback order to produce a display name.
type Descriptor struct {
	// Name is the explicit component name, when the author supplied one.
	Name string

	// Tag is a legacy internal tag, kept for older host versions.
	Tag string

	// File is a file-path hint pointing at the component's source file.
	File string

	// Components maps locally registered child component names to their types.
	Components map[string]*Descriptor
}

// App is the application shell. It owns the root instance, the global
// component registry, and the global error handler slot.
type App struct {
	// ErrorHandler is invoked for uncaught errors surfaced by the host.
	// Wrappers replace it and are expected to chain to the previous value.
	ErrorHandler ErrorHandler

	mu         sync.Mutex
	nextUID    atomic.Uint64
	root       *Instance
	components map[string]*Descriptor
	onCreate   []func(*Instance)
}

// NewApp creates an empty application shell.
func NewApp() *App {
	return &App{
		components: make(map[string]*Descriptor),
	}
}

// Component registers a component type in the application-wide registry.
func (a *App) Component(name string, desc *Descriptor) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.components[name] = desc
}

// Components returns the application-wide component registry.
// The returned map must be treated as read-only.
func (a *App) Components() map[string]*Descriptor {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.components
}

// OnCreate registers a callback invoked for every instance the app creates,
// including the root. This is the registration capability instrumentation uses
// to install itself; it deliberately replaces any reach into ambient globals.
func (a *App) OnCreate(fn func(*Instance)) {
	if fn == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onCreate = append(a.onCreate, fn)
}

// Root returns the root instance, or nil before the first instance exists.
func (a *App) Root() *Instance {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.root
}

// NewInstance creates a live instance of desc under parent. A nil parent makes
// the instance the tree root (first one wins). All OnCreate callbacks run
// synchronously before NewInstance returns.
func (a *App) NewInstance(desc *Descriptor, parent *Instance) *Instance {
	inst := &Instance{
		uid:    a.nextUID.Add(1),
		typ:    desc,
		parent: parent,
		app:    a,
		hooks:  make(map[string][]func()),
	}

	a.mu.Lock()
	if parent == nil && a.root == nil {
		a.root = inst
	}
	created := make([]func(*Instance), len(a.onCreate))
	copy(created, a.onCreate)
	a.mu.Unlock()

	for _, fn := range created {
		fn(inst)
	}
	return inst
}

// Instance is one live component instance in the host tree.
//
// Hook lists and props are only touched from the host's single execution
// context and carry no locking of their own.
type Instance struct {
	uid       uint64
	typ       *Descriptor
	parent    *Instance
	app       *App
	hooks     map[string][]func()
	props     map[string]any
	propsFn   func() map[string]any
	unmounted bool
}

// UID returns the process-unique identity of this instance.
func (i *Instance) UID() uint64 { return i.uid }

// Type returns the instance's type descriptor.
func (i *Instance) Type() *Descriptor { return i.typ }

// Parent returns the parent instance, or nil for the root.
func (i *Instance) Parent() *Instance { return i.parent }

// App returns the owning application shell.
func (i *Instance) App() *App { return i.app }

// IsRoot reports whether this instance is the tree root.
func (i *Instance) IsRoot() bool { return i.app != nil && i.app.Root() == i }

// On appends a callback to the hook list for name, the way host code
// registers lifecycle callbacks.
func (i *Instance) On(name string, fn func()) {
	if fn == nil {
		return
	}
	i.hooks[name] = append(i.hooks[name], fn)
}

// EmitHook fires every callback registered for name, in list order.
// Unknown hook names fire nothing.
func (i *Instance) EmitHook(name string) {
	for _, fn := range i.hooks[name] {
		fn()
	}
}

// SetProps replaces the instance's live props.
func (i *Instance) SetProps(props map[string]any) { i.props = props }

// SetPropsFunc installs a lazy props source consulted by Props in place of the
// stored map. Hosts that compute props on demand use this.
func (i *Instance) SetPropsFunc(fn func() map[string]any) { i.propsFn = fn }

// Props returns the instance's current prop values.
func (i *Instance) Props() map[string]any {
	if i.propsFn != nil {
		return i.propsFn()
	}
	return i.props
}

// MarkUnmounted flags the instance as discarded by the host. Injected
// instrumentation callbacks become no-ops from this point on, even though they
// stay registered and the host may still fire stale unmount-phase hooks.
func (i *Instance) MarkUnmounted() { i.unmounted = true }

// Unmounted reports whether the instance has been discarded.
func (i *Instance) Unmounted() bool { return i.unmounted }
