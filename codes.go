package ember

import "fmt"

// Code refines exceptions thrown with the Error reason. The set is open,
// applications may define their own codes starting at FirstUserCode.
type Code int

// The built-in codes.
const (
	// NoError is used by exceptions that are not errors.
	NoError Code = iota

	// GenericError is any generic error, the message carries the details.
	GenericError

	// NotFoundError indicates that something requested was not found.
	NotFoundError

	// ResourceError indicates a failure to access a resource like memory.
	ResourceError

	// ParseError indicates a problem parsing a document.
	ParseError

	// UnsupportedError indicates an unsupported feature.
	UnsupportedError

	// UnavailableError indicates that a value is not available.
	UnavailableError

	// NoEntryValueError indicates that a value could not be resolved from
	// the entry state of a computation.
	NoEntryValueError

	// FirstUserCode is the first code free for application use.
	FirstUserCode
)

var codeNames = map[Code]string{
	NoError:           "no error",
	GenericError:      "generic error",
	NotFoundError:     "not found",
	ResourceError:     "resource error",
	ParseError:        "parse error",
	UnsupportedError:  "unsupported",
	UnavailableError:  "not available",
	NoEntryValueError: "no entry value",
}

// String implements the fmt.Stringer interface.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}

	return fmt.Sprintf("code(%d)", int(c))
}
