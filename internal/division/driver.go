package division

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-division/internal/core"
)

// Script decides inputs in response to a snapshot. It runs on the
// driver's goroutine; returned inputs are applied in order before the
// driver waits for the next event.
type Script func(Snapshot) []core.Input

// Driver runs a Controller in real time without a terminal. All events
// (inputs and timer expirations) are handled on the goroutine that calls
// Run, one at a time, in arrival order.
type Driver struct {
	ctrl     *Controller
	inputs   chan core.Input
	fires    chan Timer
	observer func(Snapshot)
	script   Script
	speed    float64
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithObserver is called with a snapshot after every applied event.
func WithObserver(fn func(Snapshot)) DriverOption {
	return func(d *Driver) { d.observer = fn }
}

// WithScript makes the driver play by itself.
func WithScript(s Script) DriverOption {
	return func(d *Driver) { d.script = s }
}

// WithSpeed scales every timer: 2 runs twice as fast. Values <= 0 are ignored.
func WithSpeed(factor float64) DriverOption {
	return func(d *Driver) {
		if factor > 0 {
			d.speed = factor
		}
	}
}

// NewDriver creates a driver for ctrl.
func NewDriver(ctrl *Controller, opts ...DriverOption) *Driver {
	d := &Driver{
		ctrl:   ctrl,
		inputs: make(chan core.Input, 16),
		fires:  make(chan Timer, 4),
		speed:  1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Send queues an input. It blocks until the driver accepts it or ctx ends.
func (d *Driver) Send(ctx context.Context, in core.Input) error {
	select {
	case d.inputs <- in:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run starts a round and processes events until ctx is cancelled.
// It always returns ctx's error.
func (d *Driver) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	var (
		armed    *time.Timer
		armedFor Timer
	)
	// arm schedules the controller's outstanding timer unless it is
	// already running. A previous timer may already have fired; its value
	// is rejected by Controller.Fire if it arrives late.
	arm := func() {
		t := d.ctrl.Pending()
		if t == armedFor {
			return
		}
		if armed != nil {
			armed.Stop()
			armed = nil
		}
		armedFor = t
		if t.IsZero() {
			return
		}
		after := time.Duration(float64(t.After) / d.speed)
		armed = time.AfterFunc(after, func() {
			select {
			case d.fires <- t:
			case <-done:
			}
		})
	}
	defer func() {
		if armed != nil {
			armed.Stop()
		}
	}()

	d.ctrl.Start()
	d.settle(arm)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in := <-d.inputs:
			if _, ok := d.ctrl.Apply(in); ok {
				d.settle(arm)
			}
		case t := <-d.fires:
			if _, ok := d.ctrl.Fire(t); ok {
				d.settle(arm)
			}
		}
	}
}

// maxScriptSteps bounds how many times settle consults the script per event.
const maxScriptSteps = 8

// settle arms the pending timer, notifies the observer and runs the
// script until it has nothing more to say.
func (d *Driver) settle(arm func()) {
	for i := 0; i < maxScriptSteps; i++ {
		arm()
		snap := d.ctrl.Snapshot()
		if d.observer != nil {
			d.observer(snap)
		}
		if d.script == nil {
			return
		}
		inputs := d.script(snap)
		if len(inputs) == 0 {
			return
		}
		applied := false
		for _, in := range inputs {
			if _, ok := d.ctrl.Apply(in); ok {
				applied = true
			}
		}
		if !applied {
			return
		}
	}
	arm()
}
