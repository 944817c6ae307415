// Package chain implements an ordered chain of pending cleanup actions that
// can be run, discarded, saved and restored at marks.
package chain

type record struct {
	next   *record
	action func()
	dtor   func()
}

// Mark identifies a position in a chain. A mark returned by Register stands for
// all records registered after it.
type Mark struct {
	rec *record
}

// All is the mark that refers to the bottom of a chain. Running or discarding
// to All processes every pending record.
var All = Mark{}

// Null is a no-op action. It may be registered to establish a known reference
// point that can later be passed to Run or Discard.
func Null() {}

// Chain is a LIFO chain of cleanup records. The zero value is an empty chain.
// A chain must not be used concurrently.
type Chain struct {
	head *record
}

// Register will add the action to the chain and return the mark that refers to
// all records registered from this point onwards, including this one.
func (c *Chain) Register(action func()) Mark {
	return c.RegisterDtor(action, nil)
}

// RegisterDtor is like Register but additionally registers a dtor. The dtor is
// called after the action when the record is run and instead of the action
// when the record is discarded.
func (c *Chain) RegisterDtor(action, dtor func()) Mark {
	// check action
	if action == nil {
		panic("chain: missing action")
	}

	// get old head
	old := c.head

	// push record
	c.head = &record{
		next:   old,
		action: action,
		dtor:   dtor,
	}

	return Mark{rec: old}
}

// Run will run the actions of all records newer than the specified mark from
// newest to oldest. Every record is removed before its action is called, so an
// action that panics leaves the remaining records pending.
func (c *Chain) Run(mark Mark) {
	for c.head != nil && c.head != mark.rec {
		// unlink first in case of recursion
		rec := c.head
		c.head = rec.next

		// call action
		rec.action()

		// call dtor
		if rec.dtor != nil {
			rec.dtor()
		}
	}
}

// Discard will remove all records newer than the specified mark without
// running their actions. Registered dtors are still called.
func (c *Chain) Discard(mark Mark) {
	for c.head != nil && c.head != mark.rec {
		// unlink
		rec := c.head
		c.head = rec.next

		// call dtor
		if rec.dtor != nil {
			rec.dtor()
		}
	}
}

// Save will detach the current records from the chain and return a mark that
// can be used to restore them. Later registrations start an independent chain.
func (c *Chain) Save() Mark {
	old := c.head
	c.head = nil
	return Mark{rec: old}
}

// Restore will reattach records previously detached with Save. Records that
// are still pending in the chain are dropped without being run.
func (c *Chain) Restore(mark Mark) {
	c.head = mark.rec
}

// Len returns the number of pending records.
func (c *Chain) Len() int {
	var n int
	for rec := c.head; rec != nil; rec = rec.next {
		n++
	}

	return n
}
