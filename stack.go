// Package ember provides structured throw and catch semantics together with
// guaranteed cleanups for code that cannot return errors at every call site.
//
// A Stack holds the active guards of a single goroutine. Code protected by
// Stack.Guard may throw an Exception that is delivered to the innermost guard
// whose mask accepts its reason, after the cleanups registered since that
// guard was entered have been run.
package ember

import (
	"fmt"

	"github.com/256dpi/ember/chain"
)

type state int

const (
	created state = iota
	running
	running1
	aborting
)

func (s state) String() string {
	switch s {
	case created:
		return "created"
	case running:
		return "running"
	case running1:
		return "running1"
	case aborting:
		return "aborting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type action int

const (
	iterate action = iota
	iterateInner
	throwing
)

func (a action) String() string {
	switch a {
	case iterate:
		return "iterate"
	case iterateInner:
		return "iterate-inner"
	case throwing:
		return "throwing"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

type frame struct {
	state state
	slot  *Exception
	mask  Mask
	mark  chain.Mark
	prev  *frame
}

// jump is the panic value used to transfer control to a frame.
type jump struct {
	stack *Stack
	frame *frame
}

// Stack is a stack of guards with its associated cleanup chains. A stack
// represents a single logical call stack and must only be used by one
// goroutine at a time.
//
// Cleanups run in reverse order per stack only. If guards of two stacks are
// nested on one goroutine, a throw on the outer stack runs its own cleanups
// before the guards of the inner stack are left and run theirs.
type Stack struct {
	top      *frame
	depth    int
	cleanups chain.Chain
	finals   chain.Chain
	messages []string
}

// New creates and returns a new stack.
func New() *Stack {
	return &Stack{}
}

// Depth returns the number of active guards.
func (s *Stack) Depth() int {
	return s.depth
}

// Cleanups returns the ordinary cleanup chain. Guards save the chain when
// entered and restore it when left, so only records registered within the
// innermost guard are run by a throw.
func (s *Stack) Cleanups() *chain.Chain {
	return &s.cleanups
}

// Finals returns the final cleanup chain. Its records are never touched by
// guards or throws and only run by Shutdown or explicit calls.
func (s *Stack) Finals() *chain.Chain {
	return &s.finals
}

// Shutdown will run all final cleanups.
func (s *Stack) Shutdown() {
	s.finals.Run(chain.All)
}

// Guard will run body under a new guard. The slot is zeroed when the guard is
// entered and receives the exception if the guard catches one. Exceptions with
// reasons not accepted by mask are thrown again to the enclosing guard.
//
// Returning early from body leaves the guard normally. Panics other than
// throws addressed to this guard run the guard's pending cleanups, leave the
// guard and continue unwinding. Throws from those cleanups are dropped.
func (s *Stack) Guard(slot *Exception, mask Mask, body func()) {
	// push frame
	f := s.push(slot, mask)

	// run state machine
	for s.drive(iterate) {
		for s.drive(iterateInner) {
			if !s.execute(f, body) {
				break
			}
		}
	}
}

func (s *Stack) execute(f *frame, body func()) (ok bool) {
	defer func() {
		// ignore normal returns
		if ok {
			return
		}

		// check for jump to this frame
		val := recover()
		if j, isJump := val.(*jump); isJump && j.stack == s && j.frame == f {
			return
		}

		// unwind frame
		s.abandon(f)

		// continue panic unless goexit
		if val != nil {
			panic(val)
		}
	}()

	// call body
	body()

	return true
}

func (s *Stack) push(slot *Exception, mask Mask) *frame {
	// ensure slot
	if slot == nil {
		slot = new(Exception)
	}

	// reset slot
	*slot = None

	// prepare frame, the chain is saved so that a throw only runs cleanups
	// registered within this guard
	f := &frame{
		state: created,
		slot:  slot,
		mask:  mask,
		mark:  s.cleanups.Save(),
		prev:  s.top,
	}

	// push frame
	s.top = f
	s.depth++

	return f
}

func (s *Stack) pop() {
	// get frame
	f := s.top
	if f == nil {
		panic("ember: pop without active guard")
	}

	// unlink frame
	s.top = f.prev
	s.depth--

	// restore chain
	s.cleanups.Restore(f.mark)
}

func (s *Stack) abandon(f *frame) {
	// check frame
	if s.top != f {
		panic("ember: abandoned guard is not the innermost guard")
	}

	// detach pending cleanups
	pending := s.cleanups.Save()

	// run them under a guard that drops throws, a throwing cleanup has the
	// remaining ones run by the throw itself
	s.Guard(nil, MaskAll, func() {
		s.cleanups.Restore(pending)
		s.cleanups.Run(chain.All)
	})

	// pop frame
	s.pop()
}

// drive advances the state machine of the innermost frame and returns whether
// the calling loop should continue.
func (s *Stack) drive(a action) bool {
	// get frame
	f := s.top
	if f == nil {
		panic(fmt.Sprintf("ember: %s without active guard", a))
	}

	switch f.state {
	case created:
		if a == iterate {
			f.state = running
			return true
		}
	case running:
		switch a {
		case iterate:
			// no exception, leave guard
			s.pop()
			return false
		case iterateInner:
			f.state = running1
			return true
		case throwing:
			f.state = aborting
			return true
		}
	case running1:
		switch a {
		case iterate:
			// body left inner loop early
			s.pop()
			return false
		case iterateInner:
			// inner pass done
			f.state = running
			return false
		case throwing:
			f.state = aborting
			return true
		}
	case aborting:
		if a == iterate {
			// get exception
			exc := *f.slot

			// leave guard
			s.pop()

			// check mask
			if f.mask.Accepts(exc.Reason) {
				return false
			}

			// relay to enclosing guard
			s.Throw(exc)
		}
	}

	panic(fmt.Sprintf("ember: invalid action %s in state %s", a, f.state))
}
