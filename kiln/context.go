package kiln

import (
	"context"

	"github.com/256dpi/ember"
)

// Context is passed to tasks.
type Context struct {
	context.Context

	// The stack owned by the task.
	Stack *ember.Stack

	// The runner that runs the task.
	Runner *Runner

	// The name of the task.
	Name string
}

// Check will throw an interrupt if the context has been cancelled.
func (c *Context) Check() {
	if err := c.Err(); err != nil {
		c.Stack.ThrowFatal("%s: %s", c.Name, err.Error())
	}
}
