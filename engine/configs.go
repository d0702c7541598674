package engine

import "time"

// Defaults applied by NewEngine when the corresponding Config field is zero.
const (
	// DefaultTimeout is the idle debounce window before the root span closes.
	DefaultTimeout = 2 * time.Second

	// setupDetectionDelay is how long Attach waits for the first install
	// before warning about initialization order.
	setupDetectionDelay = 500 * time.Millisecond
)

// DefaultHooks are the operations instrumented when Config.Hooks is empty.
var DefaultHooks = []string{"activate", "mount", "update"}

// Config is the immutable configuration snapshot for one Engine. It is read
// once at construction; later mutation of the original value has no effect.
type Config struct {
	// TrackComponents enables child spans for component instances. When
	// false, and Components is empty, no child span is ever created; root
	// render tracking still runs.
	TrackComponents bool `yaml:"track_components" envconfig:"ENGINE_TRACK_COMPONENTS"`

	// Components restricts child-span tracking to the listed resolved
	// component names. A non-empty list implies tracking is on for exactly
	// those names, regardless of TrackComponents.
	Components []string `yaml:"components" envconfig:"ENGINE_COMPONENTS"`

	// Hooks is the ordered set of lifecycle operations to instrument, drawn
	// from: activate, create, unmount, mount, update. Unknown entries produce
	// a warning and are skipped. Empty means DefaultHooks.
	Hooks []string `yaml:"hooks" envconfig:"ENGINE_HOOKS"`

	// Timeout is the idle debounce window before the root span closes.
	// Zero means DefaultTimeout.
	Timeout time.Duration `yaml:"timeout" envconfig:"ENGINE_TIMEOUT"`
}

// shouldTrack applies the tracking rule to a resolved component name.
func (c Config) shouldTrack(name string) bool {
	if len(c.Components) > 0 {
		for _, candidate := range c.Components {
			if candidate == name {
				return true
			}
		}
		return false
	}
	return c.TrackComponents
}
