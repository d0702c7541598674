package interceptor

import (
	"fmt"

	"github.com/aalemi-dev/hooktrace/component"
)

// Attach replaces the app's global error handler with one that schedules a
// capture and then chains to the handler that was installed before.
//
// The previous handler runs synchronously, inside the same turn and with the
// original arguments, after the capture has been scheduled. The capture
// itself runs on a later turn.
func (c *Client) Attach(app *component.App) {
	if app == nil {
		c.log.Warn("no host application to intercept errors on", nil)
		return
	}
	if c.reporter == nil {
		c.log.Warn("no capture pipeline configured, errors will not be reported", nil)
		return
	}

	prev := app.ErrorHandler
	app.ErrorHandler = func(err error, inst *component.Instance, info string) {
		ev := c.metadata(inst, info)

		c.sched.Defer(func() {
			c.reporter.CaptureException(err, ev)
		})

		if c.cfg.LogErrors {
			c.log.Error("unhandled component error", err, map[string]interface{}{
				"component":      ev.ComponentName,
				"lifecycle_hook": ev.LifecycleHook,
			})
		}

		if prev != nil {
			prev(err, inst, info)
		}
	}
}

// metadata builds the event record for one intercepted error. Extraction is
// fenced: a panic in name resolution or prop access leaves whatever was
// gathered so far in place and never reaches the host's error path.
func (c *Client) metadata(inst *component.Instance, info string) (ev Event) {
	ev.LifecycleHook = info
	ev.Timestamp = c.clock.Now()

	defer func() {
		if r := recover(); r != nil {
			c.log.Warn("failed to extract component metadata", fmt.Errorf("%v", r))
		}
	}()

	if inst == nil {
		return ev
	}
	ev.ComponentName = c.resolver.Resolve(inst)
	if c.cfg.AttachProps {
		ev.Props = inst.Props()
	}
	return ev
}
