package interceptor

import (
	"github.com/zoobzio/clockz"

	"github.com/aalemi-dev/hooktrace/logger"
	"github.com/aalemi-dev/hooktrace/namer"
)

// Client wraps a host application's error callback. Construct it with
// NewClient and install it with Attach.
type Client struct {
	cfg      Config
	reporter Reporter
	resolver *namer.Resolver
	log      logger.Logger
	sched    Scheduler
	clock    clockz.Clock
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithLogger sets the logger for the interceptor's diagnostics.
// Defaults to a no-op logger.
func WithLogger(lg logger.Logger) Option {
	return func(c *Client) {
		if lg != nil {
			c.log = lg
		}
	}
}

// WithScheduler replaces the deferral primitive used for capture dispatch.
// Defaults to running the capture on a fresh goroutine; tests pass a manual
// scheduler to control when deferred work runs.
func WithScheduler(s Scheduler) Option {
	return func(c *Client) {
		if s != nil {
			c.sched = s
		}
	}
}

// WithResolver shares a name resolver with other collaborators, typically the
// span engine, so both see the same memoized names.
func WithResolver(r *namer.Resolver) Option {
	return func(c *Client) {
		if r != nil {
			c.resolver = r
		}
	}
}

// WithClock injects the clock used for event timestamps.
func WithClock(clock clockz.Clock) Option {
	return func(c *Client) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// NewClient creates an error interceptor forwarding to reporter. A nil
// reporter is tolerated; Attach then warns and leaves the application
// untouched.
func NewClient(cfg Config, reporter Reporter, opts ...Option) *Client {
	c := &Client{
		cfg:      cfg,
		reporter: reporter,
		resolver: namer.NewResolver(),
		log:      logger.NewNop(),
		sched:    goroutineScheduler{},
		clock:    clockz.RealClock,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
