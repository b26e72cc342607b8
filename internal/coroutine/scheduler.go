package coroutine

import (
	"context"
	"iter"
	"slices"
	"time"

	"github.com/specialistvlad/modehooks/internal/ctxlog"
	"github.com/specialistvlad/modehooks/internal/hook"
)

// WaitSteps parks the yielding coroutine for the given number of steps.
// WaitSteps(1) is equivalent to yielding nil.
type WaitSteps int

type frame struct {
	next func() (hook.Yield, bool)
	stop func()
}

// Coroutine is a routine registered with a Scheduler.
type Coroutine struct {
	name  string
	stack []frame
	wait  int
	done  bool
	steps int
}

// Name returns the diagnostic name given at Start.
func (c *Coroutine) Name() string { return c.name }

// Done reports whether the routine has run to completion or was stopped.
func (c *Coroutine) Done() bool { return c.done }

// Steps returns how many times the coroutine has been resumed.
func (c *Coroutine) Steps() int { return c.steps }

func (c *Coroutine) push(r hook.Routine) {
	next, stop := iter.Pull(r)
	c.stack = append(c.stack, frame{next: next, stop: stop})
}

func (c *Coroutine) release() {
	for i := len(c.stack) - 1; i >= 0; i-- {
		c.stack[i].stop()
	}
	c.stack = nil
	c.done = true
}

// resume advances the coroutine to its next suspension point and reports
// whether it is still live afterwards.
func (c *Coroutine) resume() bool {
	if c.done {
		return false
	}
	c.steps++
	if c.wait > 0 {
		c.wait--
		return true
	}
	for len(c.stack) > 0 {
		top := c.stack[len(c.stack)-1]
		y, ok := top.next()
		if !ok {
			top.stop()
			c.stack = c.stack[:len(c.stack)-1]
			continue
		}
		switch v := y.(type) {
		case WaitSteps:
			if v > 1 {
				c.wait = int(v) - 1
			}
			return true
		case hook.Routine:
			if v != nil {
				c.push(v)
			}
			continue
		case func(func(hook.Yield) bool):
			if v != nil {
				c.push(v)
			}
			continue
		default:
			return true
		}
	}
	c.release()
	return false
}

// Scheduler drives coroutines. The zero value is not usable; call New.
type Scheduler struct {
	live []*Coroutine
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

// Start registers a routine. It does not run until the next Step.
func (s *Scheduler) Start(name string, r hook.Routine) *Coroutine {
	c := &Coroutine{name: name}
	if r == nil {
		c.done = true
		return c
	}
	c.push(r)
	s.live = append(s.live, c)
	return c
}

// Stop abandons a coroutine. Whatever it had left to run never runs.
func (s *Scheduler) Stop(c *Coroutine) {
	if c == nil || c.done {
		return
	}
	c.release()
	s.compact()
}

// Live returns the number of coroutines that have not finished.
func (s *Scheduler) Live() int {
	return len(s.live)
}

// Step resumes every live coroutine once, in start order, and returns the
// number still live afterwards. Coroutines started during a step first run on
// the following step, and coroutines stopped during a step are skipped.
func (s *Scheduler) Step() int {
	for _, c := range slices.Clone(s.live) {
		c.resume()
	}
	s.compact()
	return len(s.live)
}

func (s *Scheduler) compact() {
	kept := s.live[:0]
	for _, c := range s.live {
		if !c.done {
			kept = append(kept, c)
		}
	}
	clear(s.live[len(kept):])
	s.live = kept
}

// RunUntilIdle steps until no coroutine is live or ctx is done, and returns
// the number of steps taken. A routine that never finishes keeps this running
// until ctx is cancelled.
func (s *Scheduler) RunUntilIdle(ctx context.Context) (int, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Scheduler running until idle.", "live", len(s.live))
	steps := 0
	for len(s.live) > 0 {
		if err := ctx.Err(); err != nil {
			logger.Warn("Scheduler interrupted.", "steps", steps, "live", len(s.live), "error", err)
			return steps, err
		}
		s.Step()
		steps++
	}
	logger.Debug("Scheduler idle.", "steps", steps)
	return steps, nil
}

// Run steps once per interval until no coroutine is live or ctx is done.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) (int, error) {
	if interval <= 0 {
		return s.RunUntilIdle(ctx)
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Scheduler ticking.", "interval", interval, "live", len(s.live))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	steps := 0
	for len(s.live) > 0 {
		select {
		case <-ctx.Done():
			logger.Warn("Scheduler interrupted.", "steps", steps, "live", len(s.live), "error", ctx.Err())
			return steps, ctx.Err()
		case <-ticker.C:
			s.Step()
			steps++
		}
	}
	logger.Debug("Scheduler idle.", "steps", steps)
	return steps, nil
}
