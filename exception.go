package ember

import "fmt"

// Reason describes why an exception has been thrown. All reasons are negative,
// zero is reserved for "no exception".
type Reason int

// The available reasons.
const (
	// Interrupt is used for user interrupts and fatal conditions.
	Interrupt Reason = -2

	// Error is used for any other error. The code of the exception refines it.
	Error Reason = -1
)

// String implements the fmt.Stringer interface.
func (r Reason) String() string {
	switch r {
	case 0:
		return "none"
	case Interrupt:
		return "interrupt"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Mask is a set of reasons a guard accepts.
type Mask int

// ReasonMask returns the mask that only accepts the specified reason.
func ReasonMask(r Reason) Mask {
	return 1 << uint(-r)
}

// The common masks.
var (
	MaskInterrupt = ReasonMask(Interrupt)
	MaskError     = ReasonMask(Error)
	MaskAll       = MaskInterrupt | MaskError
)

// Accepts returns whether the mask accepts the specified reason.
func (m Mask) Accepts(r Reason) bool {
	if r >= 0 {
		return false
	}

	return m&ReasonMask(r) != 0
}

// Exception is the record delivered to a guard's slot when a throw has been
// caught by it.
type Exception struct {
	// The reason for the throw.
	Reason Reason

	// The error code, only meaningful for the Error reason.
	Code Code

	// The message, if any.
	Message string
}

// None is the exception value that indicates that no exception is pending.
var None = Exception{}

// IsNone returns whether no exception is pending.
func (e Exception) IsNone() bool {
	return e.Reason == 0
}

// Error implements the error interface.
func (e Exception) Error() string {
	// check message
	if e.Message != "" {
		return e.Message
	}

	// check code
	if e.Reason == Error && e.Code != NoError {
		return e.Code.String()
	}

	return e.Reason.String()
}
