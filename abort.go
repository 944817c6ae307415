package ember

import "github.com/256dpi/xo"

// Assert will only throw if the supplied error is present. The thrown exception
// has the GenericError code and the error's text as its message.
func (s *Stack) Assert(err error) {
	if err != nil {
		s.Abort(GenericError, err)
	}
}

// Abort will throw an error with the specified code even if the supplied error
// is nil.
func (s *Stack) Abort(code Code, err error) {
	// get message
	var msg string
	if err != nil {
		msg = err.Error()
	}

	s.throwFormatted(Error, code, "%s", msg)
}

// Catch will run fn under a guard that accepts all reasons and return the
// caught exception as an error. Other panics are not recovered.
func (s *Stack) Catch(fn func()) error {
	// run guard
	var exc Exception
	s.Guard(&exc, MaskAll, fn)

	// check exception
	if exc.IsNone() {
		return nil
	}

	return xo.W(exc)
}
