// Package kiln runs tasks on goroutines that each own an ember stack.
package kiln

import (
	"fmt"
	"io"

	"github.com/256dpi/xo"
	"gopkg.in/tomb.v2"

	"github.com/256dpi/ember"
	"github.com/256dpi/ember/stick"
)

// ErrInterrupted is returned by Wait and Close if a task has been interrupted.
var ErrInterrupted = xo.BF("interrupted")

// Task is a function run by a runner.
type Task func(ctx *Context)

// Options defines runner options.
type Options struct {
	// The mask of the outermost guard installed for every task. Exceptions
	// not accepted by the mask crash the task like a panic: the error is
	// reported, logged and returned by Wait and Close.
	//
	// Default: ember.MaskAll.
	Mask ember.Mask

	// The callback that is called with caught task exceptions.
	Reporter func(error)

	// The writer that receives task log lines.
	Logger io.Writer
}

// Runner runs tasks on separate goroutines. A task that is interrupted kills
// the runner and cancels the context of all other tasks.
type Runner struct {
	options Options
	tomb    tomb.Tomb
}

// NewRunner creates and returns a new runner.
func NewRunner(options Options) *Runner {
	// apply defaults
	options = stick.Merge(Options{
		Mask: ember.MaskAll,
	}, options)

	return &Runner{
		options: options,
	}
}

// Go will run the specified task on a new goroutine with a fresh stack. It
// must not be called after all tasks have returned.
func (r *Runner) Go(name string, task Task) {
	r.tomb.Go(func() error {
		return r.run(name, task)
	})
}

// Dying returns a channel that is closed when the runner is being killed.
func (r *Runner) Dying() <-chan struct{} {
	return r.tomb.Dying()
}

// Wait will wait until all tasks have returned and return ErrInterrupted if a
// task has been interrupted or the recovered panic if a task crashed.
func (r *Runner) Wait() error {
	return r.tomb.Wait()
}

// Close will kill the runner and wait for all tasks.
func (r *Runner) Close() error {
	// kill and wait
	r.tomb.Kill(nil)
	return r.tomb.Wait()
}

func (r *Runner) run(name string, task Task) error {
	// trace
	ctx, span := xo.Trace(r.tomb.Context(nil), "kiln/"+name)
	defer span.End()

	// prepare stack
	stack := ember.New()
	defer stack.Shutdown()

	// log
	r.log("running task: %s", name)

	// run task, panics and exceptions not accepted by the mask are recovered
	var exc ember.Exception
	err := xo.Catch(func() error {
		stack.Guard(&exc, r.options.Mask, func() {
			task(&Context{
				Context: ctx,
				Stack:   stack,
				Runner:  r,
				Name:    name,
			})
		})
		return nil
	})
	if err != nil {
		span.Tag("outcome", "crashed")
		r.log("task crashed: %s: %s", name, err.Error())
		r.report(err)
		return err
	}

	// handle exception
	switch exc.Reason {
	case 0:
		span.Tag("outcome", "completed")
		r.log("completed task: %s", name)
		return nil
	case ember.Error:
		span.Tag("outcome", "failed")
		r.log("task failed: %s: %s", name, exc.Error())
		r.report(xo.W(exc))
		return nil
	default:
		span.Tag("outcome", "interrupted")
		r.log("task interrupted: %s: %s", name, exc.Error())
		r.report(xo.W(exc))
		return ErrInterrupted.Wrap()
	}
}

func (r *Runner) log(format string, args ...any) {
	if r.options.Logger != nil {
		_, _ = fmt.Fprintf(r.options.Logger, format+"\n", args...)
	}
}

func (r *Runner) report(err error) {
	if r.options.Reporter != nil {
		r.options.Reporter(err)
	}
}
