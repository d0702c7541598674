package namer

import (
	"sync"

	"github.com/aalemi-dev/hooktrace/component"
)

// Anonymous is the terminal fallback when no step of the chain produces a name.
const Anonymous = "Anonymous Component"

// rootName names the tree root when nothing more specific is known.
const rootName = "Root"

// Resolver resolves display names for component instances, memoizing the
// expensive registry scans per instance UID.
//
// Safe for concurrent use.
type Resolver struct {
	mu    sync.Mutex
	cache map[uint64]string
}

// NewResolver creates a Resolver with an empty cache.
func NewResolver() *Resolver {
	return &Resolver{
		cache: make(map[uint64]string),
	}
}

// Resolve returns the display name for inst, walking the fallback chain
// documented on the package. A nil instance resolves to Anonymous.
func (r *Resolver) Resolve(inst *component.Instance) string {
	if inst == nil {
		return Anonymous
	}

	typ := inst.Type()
	if typ != nil {
		if typ.Name != "" {
			return typ.Name
		}
		if typ.Tag != "" {
			return typ.Tag
		}
	}

	r.mu.Lock()
	cached, ok := r.cache[inst.UID()]
	r.mu.Unlock()
	if ok {
		return cached
	}

	if typ != nil && typ.File != "" {
		return Classify(typ.File)
	}

	if inst.IsRoot() {
		return rootName
	}

	if parent := inst.Parent(); parent != nil && parent.Type() != nil {
		if name, ok := scan(parent.Type().Components, typ); ok {
			r.remember(inst.UID(), name)
			return name
		}
	}

	if app := inst.App(); app != nil {
		if name, ok := scan(app.Components(), typ); ok {
			r.remember(inst.UID(), name)
			return name
		}
	}

	return Anonymous
}

// scan walks a component registry looking for an entry whose value is this
// instance's exact type.
func scan(registry map[string]*component.Descriptor, typ *component.Descriptor) (string, bool) {
	if typ == nil {
		return "", false
	}
	for name, desc := range registry {
		if desc == typ {
			return name, true
		}
	}
	return "", false
}

func (r *Resolver) remember(uid uint64, name string) {
	r.mu.Lock()
	r.cache[uid] = name
	r.mu.Unlock()
}
