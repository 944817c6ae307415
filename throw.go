package ember

import (
	"fmt"

	"github.com/256dpi/ember/chain"
)

// Throw will run the cleanups registered within the innermost guard and
// transfer control to it. The guard either accepts the exception or throws it
// again to its enclosing guard. Throwing without an active guard or with a
// non-negative reason panics.
func (s *Stack) Throw(exc Exception) {
	// check reason
	if exc.Reason >= 0 {
		panic(fmt.Sprintf("ember: invalid reason %d", int(exc.Reason)))
	}

	// check frame
	if s.top == nil {
		panic(fmt.Sprintf("ember: throw without active guard: %s", exc.Error()))
	}

	// run cleanups of innermost guard
	s.cleanups.Run(chain.All)

	// get frame
	f := s.top

	// abort frame
	s.drive(throwing)

	// deliver exception
	*f.slot = exc

	// jump to guard
	panic(&jump{stack: s, frame: f})
}

// ThrowError will throw an exception with the Error reason, the specified code
// and a formatted message.
func (s *Stack) ThrowError(code Code, format string, args ...any) {
	s.throwFormatted(Error, code, format, args...)
}

// ThrowFatal will throw an exception with the Interrupt reason and a formatted
// message.
func (s *Stack) ThrowFatal(format string, args ...any) {
	s.throwFormatted(Interrupt, NoError, format, args...)
}

func (s *Stack) throwFormatted(reason Reason, code Code, format string, args ...any) {
	// check depth
	if s.depth == 0 {
		panic("ember: throw without active guard: " + fmt.Sprintf(format, args...))
	}

	// format message, it may use text of an earlier message
	msg := fmt.Sprintf(format, args...)

	// store message
	s.store(msg)

	// throw
	s.Throw(Exception{
		Reason:  reason,
		Code:    code,
		Message: msg,
	})
}
